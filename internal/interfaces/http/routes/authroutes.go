package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/auth"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *authhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(api gin.IRouter, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.RateLimiter.Limit(), cfg.AuthHandler.RefreshToken)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)

		if cfg.AuthHandler.GoogleEnabled() {
			auth.GET("/google", cfg.RateLimiter.Limit(), cfg.AuthHandler.GoogleLogin)
			auth.GET("/google/callback", cfg.AuthHandler.GoogleCallback)
		}
	}
}
