package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	userhandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/user"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user, profile and organization routes.
type UserRouteConfig struct {
	UserHandler          *userhandlers.Handler
	OrganizationHandler  *userhandlers.OrganizationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupUserRoutes(api gin.IRouter, cfg *UserRouteConfig) {
	require := cfg.PermissionMiddleware.RequirePermission

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("", require(permission.ResourceUser, permission.ActionCreate), cfg.UserHandler.Create)
		users.GET("", require(permission.ResourceUser, permission.ActionList), cfg.UserHandler.List)
		users.GET("/:id", require(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.Get)
		users.PATCH("/:id", require(permission.ResourceUser, permission.ActionUpdate), cfg.UserHandler.Update)
	}

	profile := api.Group("/profile")
	profile.Use(cfg.AuthMiddleware.RequireAuth())
	{
		profile.PATCH("", require(permission.ResourceProfile, permission.ActionUpdate), cfg.UserHandler.UpdateProfile)
		profile.POST("/password", require(permission.ResourceProfile, permission.ActionUpdate), cfg.UserHandler.ChangePassword)
	}

	org := api.Group("/organization")
	org.Use(cfg.AuthMiddleware.RequireAuth())
	{
		org.GET("/units", require(permission.ResourceOrganization, permission.ActionRead), cfg.OrganizationHandler.ListUnits)
		org.POST("/units", require(permission.ResourceOrganization, permission.ActionCreate), cfg.OrganizationHandler.CreateUnit)
		org.GET("/sectors", require(permission.ResourceOrganization, permission.ActionRead), cfg.OrganizationHandler.ListSectors)
		org.POST("/sectors", require(permission.ResourceOrganization, permission.ActionCreate), cfg.OrganizationHandler.CreateSector)
	}
}
