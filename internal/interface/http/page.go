package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/infra/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const formTemplate = "form.html"

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// PageHandler serves the server-rendered intake form.
type PageHandler struct {
	sessions   *intake.Sessions
	cookieName string
	cookieAge  int
	logger     *slog.Logger
}

// NewPageHandler constructs the form page handler.
func NewPageHandler(sessions *intake.Sessions, cfg *config.Config, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
		cookieAge:  int(cfg.Session.TTL.Seconds()),
		logger:     logger.With("component", "http.page"),
	}
}

type pageData struct {
	Sections []sectionView
	View     intake.View
}

type sectionView struct {
	Title  string
	Fields []fieldView
}

type fieldView struct {
	intake.Field
	Value   string
	Checked bool
}

// Show renders the form for the caller's session.
func (p *PageHandler) Show(c *gin.Context) {
	ctrl := p.session(c)
	c.HTML(http.StatusOK, formTemplate, buildPageData(ctrl.View()))
}

// Post applies posted fields, then submits or resets when asked.
func (p *PageHandler) Post(c *gin.Context) {
	ctrl := p.session(c)
	if err := c.Request.ParseForm(); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "malformed form body", err))
		return
	}

	values := make(map[string]any)
	for _, f := range intake.Fields() {
		if _, ok := c.Request.PostForm[f.Name]; ok {
			values[f.Name] = c.Request.PostForm.Get(f.Name)
		}
	}
	if err := ctrl.UpdateFields(values); err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}

	switch c.Request.PostForm.Get("action") {
	case "submit":
		ctrl.Submit(c.Request.Context())
	case "reset":
		ctrl.Reset()
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// session returns the cookie's controller, starting a new session when needed.
func (p *PageHandler) session(c *gin.Context) *intake.Controller {
	if id, err := c.Cookie(p.cookieName); err == nil && id != "" {
		if ctrl, err := p.sessions.Get(id); err == nil {
			return ctrl
		}
	}
	id, ctrl := p.sessions.Create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(p.cookieName, id, p.cookieAge, "/", "", false, true)
	return ctrl
}

func buildPageData(view intake.View) pageData {
	var sections []sectionView
	index := make(map[string]int)
	for _, f := range intake.Fields() {
		value, _ := view.Form.Value(f.Name)
		fv := fieldView{Field: f}
		switch v := value.(type) {
		case string:
			fv.Value = v
		case bool:
			fv.Checked = v
		}
		i, ok := index[f.Section]
		if !ok {
			i = len(sections)
			index[f.Section] = i
			sections = append(sections, sectionView{Title: f.Section})
		}
		sections[i].Fields = append(sections[i].Fields, fv)
	}
	return pageData{Sections: sections, View: view}
}
