package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/risk-intake/internal/domain/intake"
	"github.com/yanqian/risk-intake/internal/domain/riskresult"
)

// StatusProber reports whether the prediction service is reachable.
type StatusProber interface {
	Status(ctx context.Context) (string, error)
}

// Handler wires the JSON API to the intake sessions.
type Handler struct {
	sessions *intake.Sessions
	prober   StatusProber
	logger   *slog.Logger
}

// NewHandler constructs the JSON API handler.
func NewHandler(sessions *intake.Sessions, prober StatusProber, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		prober:   prober,
		logger:   logger.With("component", "http.handler"),
	}
}

type sessionResponse struct {
	ID string `json:"id"`
	intake.View
}

type updateFieldsRequest struct {
	Name   string         `json:"name"`
	Value  any            `json:"value"`
	Fields map[string]any `json:"fields"`
}

// ListFields returns the form catalog.
func (h *Handler) ListFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": intake.Fields()})
}

// CreateSession starts a new form session.
func (h *Handler) CreateSession(c *gin.Context) {
	id, ctrl := h.sessions.Create()
	c.JSON(http.StatusCreated, sessionResponse{ID: id, View: ctrl.View()})
}

// GetSession returns the current state of a session.
func (h *Handler) GetSession(c *gin.Context) {
	id, ctrl, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: id, View: ctrl.View()})
}

// UpdateFields changes one field ({"name","value"}) or several ({"fields":{...}}).
func (h *Handler) UpdateFields(c *gin.Context) {
	id, ctrl, ok := h.lookup(c)
	if !ok {
		return
	}
	var req updateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	var err error
	switch {
	case strings.TrimSpace(req.Name) != "":
		err = ctrl.UpdateField(req.Name, req.Value)
	case len(req.Fields) > 0:
		err = ctrl.UpdateFields(req.Fields)
	default:
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "name or fields is required", nil))
		return
	}
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: id, View: ctrl.View()})
}

// Submit runs validation and the prediction call. Validation and service
// failures are reported in the view's error field with a 200 status.
func (h *Handler) Submit(c *gin.Context) {
	id, ctrl, ok := h.lookup(c)
	if !ok {
		return
	}
	view := ctrl.Submit(c.Request.Context())
	c.JSON(http.StatusOK, sessionResponse{ID: id, View: view})
}

// Reset restores the session's form defaults.
func (h *Handler) Reset(c *gin.Context) {
	id, ctrl, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse{ID: id, View: ctrl.Reset()})
}

// DeleteSession ends a session.
func (h *Handler) DeleteSession(c *gin.Context) {
	if !h.sessions.Delete(c.Param("id")) {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "session_not_found", "session not found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}

// Render converts a raw prediction body into display values without a session.
func (h *Handler) Render(c *gin.Context) {
	var raw riskresult.RiskResult
	if err := c.ShouldBindJSON(&raw); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, riskresult.Render(raw))
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.sessions.Len()})
}

// Ready checks the prediction service.
func (h *Handler) Ready(c *gin.Context) {
	status, err := h.prober.Status(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "predictor_unavailable", "prediction service unavailable", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "predictor": status})
}

func (h *Handler) lookup(c *gin.Context) (string, *intake.Controller, bool) {
	id := c.Param("id")
	ctrl, err := h.sessions.Get(id)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return "", nil, false
	}
	return id, ctrl, true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
