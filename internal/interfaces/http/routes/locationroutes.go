package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	locationhandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/location"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

// LocationRouteConfig holds dependencies for locals, equipment and motors.
type LocationRouteConfig struct {
	LocalHandler         *locationhandlers.LocalHandler
	EquipamentoHandler   *locationhandlers.EquipamentoHandler
	MotorHandler         *locationhandlers.MotorHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// crudHandler is the method set shared by the three location handlers.
type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func SetupLocationRoutes(api gin.IRouter, cfg *LocationRouteConfig) {
	for path, h := range map[string]crudHandler{
		"/locals":       cfg.LocalHandler,
		"/equipamentos": cfg.EquipamentoHandler,
		"/motors":       cfg.MotorHandler,
	} {
		setupLocationCRUD(api.Group(path), h, cfg)
	}
}

func setupLocationCRUD(group *gin.RouterGroup, h crudHandler, cfg *LocationRouteConfig) {
	require := cfg.PermissionMiddleware.RequirePermission

	group.Use(cfg.AuthMiddleware.RequireAuth())
	{
		group.POST("", require(permission.ResourceLocation, permission.ActionCreate), h.Create)
		group.GET("", require(permission.ResourceLocation, permission.ActionRead), h.List)
		group.GET("/:id", require(permission.ResourceLocation, permission.ActionRead), h.Get)
		group.PUT("/:id", require(permission.ResourceLocation, permission.ActionUpdate), h.Update)
		group.DELETE("/:id", require(permission.ResourceLocation, permission.ActionDelete), h.Delete)
	}
}
