package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/risk-intake/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, page *PageHandler, limiter RateLimiter, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	logger = logger.With("component", "http.router")

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		errorHandlingMiddleware(logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/readyz", handler.Ready)

	limited := router.Group("/", rateLimitMiddleware(limiter, logger))
	{
		limited.GET("/", page.Show)
		limited.POST("/", page.Post)
	}

	api := router.Group("/api/v1", corsMiddleware(cfg.HTTP.CORSOrigins), rateLimitMiddleware(limiter, logger))
	{
		api.GET("/fields", handler.ListFields)
		api.POST("/render", handler.Render)
		api.POST("/sessions", handler.CreateSession)
		api.GET("/sessions/:id", handler.GetSession)
		api.PATCH("/sessions/:id/fields", handler.UpdateFields)
		api.POST("/sessions/:id/submit", handler.Submit)
		api.POST("/sessions/:id/reset", handler.Reset)
		api.DELETE("/sessions/:id", handler.DeleteSession)
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
