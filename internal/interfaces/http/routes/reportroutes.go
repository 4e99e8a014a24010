package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	reporthandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/report"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for report and category routes.
type ReportRouteConfig struct {
	ReportHandler        *reporthandlers.Handler
	WorkflowHandler      *reporthandlers.WorkflowHandler
	CategoryHandler      *reporthandlers.CategoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupReportRoutes(api gin.IRouter, cfg *ReportRouteConfig) {
	require := cfg.PermissionMiddleware.RequirePermission

	reports := api.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Collection operations
		reports.POST("", require(permission.ResourceReport, permission.ActionCreate), cfg.ReportHandler.Create)
		reports.GET("", require(permission.ResourceReport, permission.ActionRead), cfg.ReportHandler.List)
		reports.POST("/bulk", require(permission.ResourceReport, permission.ActionCreate), cfg.ReportHandler.BulkCreate)
		reports.GET("/export", require(permission.ResourceReport, permission.ActionExport), cfg.ReportHandler.Export)

		// Actions on a single report
		reports.POST("/:id/progress", require(permission.ResourceReport, permission.ActionUpdate), cfg.WorkflowHandler.UpdateProgress)
		reports.GET("/:id/updates", require(permission.ResourceReport, permission.ActionRead), cfg.WorkflowHandler.ListUpdates)
		reports.POST("/:id/assign", require(permission.ResourceReport, permission.ActionAssign), cfg.WorkflowHandler.Assign)
		reports.POST("/:id/lock", require(permission.ResourceReport, permission.ActionLock), cfg.WorkflowHandler.Lock)
		reports.POST("/:id/unlock", require(permission.ResourceReport, permission.ActionLock), cfg.WorkflowHandler.Unlock)
		reports.POST("/:id/images", require(permission.ResourceReport, permission.ActionUpdate), cfg.WorkflowHandler.UploadImage)
		reports.PUT("/:id/data/:name", require(permission.ResourceReport, permission.ActionUpdate), cfg.WorkflowHandler.SetData)
		reports.DELETE("/:id/data/:name", require(permission.ResourceReport, permission.ActionUpdate), cfg.WorkflowHandler.DeleteData)

		reports.GET("/:id", require(permission.ResourceReport, permission.ActionRead), cfg.ReportHandler.Get)
		reports.PUT("/:id", require(permission.ResourceReport, permission.ActionUpdate), cfg.ReportHandler.Update)
		reports.DELETE("/:id", require(permission.ResourceReport, permission.ActionDelete), cfg.ReportHandler.Delete)
	}

	categories := api.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	{
		categories.GET("", require(permission.ResourceCategory, permission.ActionRead), cfg.CategoryHandler.List)
		categories.POST("", require(permission.ResourceCategory, permission.ActionCreate), cfg.CategoryHandler.Create)
	}
}
