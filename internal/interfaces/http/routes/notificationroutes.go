package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	notificationhandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/notification"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/ws"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for the inbox and the live stream.
type NotificationRouteConfig struct {
	NotificationHandler  *notificationhandlers.Handler
	StreamHandler        *ws.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(api gin.IRouter, cfg *NotificationRouteConfig) {
	require := cfg.PermissionMiddleware.RequirePermission
	h := cfg.NotificationHandler

	notifications := api.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", require(permission.ResourceNotification, permission.ActionRead), h.List)
		notifications.GET("/unread-count", require(permission.ResourceNotification, permission.ActionRead), h.UnreadCount)
		notifications.POST("/read-all", require(permission.ResourceNotification, permission.ActionUpdate), h.MarkAllAsRead)
		notifications.GET("/settings", require(permission.ResourceNotification, permission.ActionRead), h.GetSettings)
		notifications.PATCH("/settings", require(permission.ResourceNotification, permission.ActionUpdate), h.UpdateSettings)
		notifications.POST("/bulk", require(permission.ResourceNotification, permission.ActionSend), h.SendBulk)
		notifications.POST("/system", require(permission.ResourceNotification, permission.ActionBroadcast), h.SendSystem)

		notifications.POST("/:id/read", require(permission.ResourceNotification, permission.ActionUpdate), h.MarkAsRead)
		notifications.DELETE("/:id", require(permission.ResourceNotification, permission.ActionDelete), h.Delete)
	}
}

// SetupStreamRoutes mounts the WebSocket endpoint outside the JSON API prefix.
func SetupStreamRoutes(engine gin.IRouter, cfg *NotificationRouteConfig) {
	engine.GET("/ws/notifications",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceNotification, permission.ActionRead),
		cfg.StreamHandler.Notifications)
}
