package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bulk-cleanup/internal/handler/api"
	"bulk-cleanup/internal/handler/middleware"
	"bulk-cleanup/internal/infra/metrics"
	"bulk-cleanup/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cleanup  *api.CleanupHandler
	Settings *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, logger, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	timeouts := cfg.Cleanup
	apiGroup := engine.Group("/api")
	{
		cleanup := apiGroup.Group("/cleanup")
		cleanup.Use(
			authMiddleware.RequireAuth(),
			authMiddleware.RequireCleanupCapability(),
			middleware.NewCSRFMiddleware(cfg.CSRF, logger.GetSlogLogger()),
		)
		addRoutes(cleanup, []route{
			{Method: http.MethodGet, Path: "/token", Handler: h.Cleanup.Token},
			{Method: http.MethodGet, Path: "/status", Handler: h.Cleanup.Status},
			{Method: http.MethodPost, Path: "/scan/start", Handler: h.Cleanup.StartScan,
				Mw: []gin.HandlerFunc{middleware.Deadline(timeouts.StartTimeout)}},
			{Method: http.MethodPost, Path: "/scan/batch", Handler: h.Cleanup.ScanBatch,
				Mw: []gin.HandlerFunc{middleware.Deadline(timeouts.ScanTimeout)}},
			{Method: http.MethodPost, Path: "/deletion/batch", Handler: h.Cleanup.RunDeletionBatch,
				Mw: []gin.HandlerFunc{middleware.Deadline(timeouts.DeleteTimeout)}},
			{Method: http.MethodDelete, Path: "/state", Handler: h.Cleanup.Reset},
			{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get},
			{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.Update},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers per-route middleware as gin handlers so c.Next inside
// them wraps the route handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
