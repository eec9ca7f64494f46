// Package server configures the HTTP server and routes.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/config"
	"github.com/vibescout/vibescout/internal/handler"
	"github.com/vibescout/vibescout/internal/middleware"
)

// RegisterRoutes sets up all HTTP routes on the Gin engine. Each handler gets
// exactly the dependencies it needs.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps *Deps, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler()
	discoveryHandler := handler.NewDiscoveryHandler(deps.Orchestrator, logger)
	chatHandler := handler.NewChatHandler(deps.Orchestrator, deps.Speaker, logger)
	adminHandler := handler.NewAdminHandler(deps.Runs, deps.LLMCalls, logger)

	// Public endpoints (no auth)
	r.GET("/healthz", healthHandler.Healthz)

	// CORS middleware applies to the entire API group.
	api := r.Group("/api/v1")
	api.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// API endpoints: optional key auth plus per-caller rate limiting —
	// every request here fans out to paid upstream APIs.
	authed := api.Group("")
	authed.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	authed.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	{
		authed.POST("/discovery", discoveryHandler.Discover)
		authed.POST("/chat", chatHandler.Chat)
	}

	// Admin endpoints (separate auth with admin keys)
	admin := api.Group("/admin")
	admin.Use(middleware.AdminKeyAuth(cfg.Auth.AdminKeys))
	{
		admin.GET("/stats", adminHandler.Stats)
	}
}
