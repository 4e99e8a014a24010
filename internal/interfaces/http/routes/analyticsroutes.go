package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	analyticshandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/analytics"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

type AnalyticsRouteConfig struct {
	AnalyticsHandler     *analyticshandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAnalyticsRoutes(api gin.IRouter, cfg *AnalyticsRouteConfig) {
	analytics := api.Group("/analytics")
	analytics.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceAnalytics, permission.ActionRead),
	)
	{
		analytics.GET("/dashboard", cfg.AnalyticsHandler.Dashboard)
		analytics.GET("/me", cfg.AnalyticsHandler.MyStatistics)
		analytics.GET("/:section", cfg.AnalyticsHandler.Section)
	}
}
