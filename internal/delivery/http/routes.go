package http

import (
	"github.com/areteselect/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(Templates())

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Page routes
	router.GET("/", handler.Index)
	router.GET("/chat", handler.ChatPage)

	// Liveness check, independent of spreadsheet connectivity
	router.GET("/healthz", handler.Healthz)

	// Schema-drift diagnostics, guarded by a shared secret
	router.GET("/debug/sheets", handler.DebugSheets)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", handler.ChatMessage)
	}

	return router
}
