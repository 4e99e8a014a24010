package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/routes"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"

	_ "github.com/relatorio-inc/relatorio/docs"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	r := c.engine
	h := c.hdlrs

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(c.log))
	r.Use(middleware.Recovery(c.log))
	r.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.Use(middleware.SecurityHeaders())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterValidators(v)
	}

	r.GET("/health", h.healthHandler.HealthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.Static(c.cfg.Storage.PublicPrefix, c.storage.BaseDir())

	api := r.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.loginRateLimiter,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:          h.userHandler,
		OrganizationHandler:  h.organizationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupLocationRoutes(api, &routes.LocationRouteConfig{
		LocalHandler:         h.localHandler,
		EquipamentoHandler:   h.equipamentoHandler,
		MotorHandler:         h.motorHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupReportRoutes(api, &routes.ReportRouteConfig{
		ReportHandler:        h.reportHandler,
		WorkflowHandler:      h.workflowHandler,
		CategoryHandler:      h.categoryHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	notificationCfg := &routes.NotificationRouteConfig{
		NotificationHandler:  h.notificationHandler,
		StreamHandler:        h.streamHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	}
	routes.SetupNotificationRoutes(api, notificationCfg)
	routes.SetupStreamRoutes(r, notificationCfg)

	routes.SetupAnalyticsRoutes(api, &routes.AnalyticsRouteConfig{
		AnalyticsHandler:     h.analyticsHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}
