// Package notification serves the user inbox, delivery preferences and broadcast endpoints.
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/notification/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type Handler struct {
	listUC        usecases.ListNotificationsExecutor
	countUnreadUC usecases.CountUnreadExecutor
	markReadUC    usecases.MarkAsReadExecutor
	markAllReadUC usecases.MarkAllAsReadExecutor
	deleteUC      usecases.DeleteNotificationExecutor
	getSettingsUC usecases.GetSettingsExecutor
	updateSetUC   usecases.UpdateSettingsExecutor
	sendBulkUC    usecases.SendBulkExecutor
	sendSystemUC  usecases.SendSystemExecutor
	logger        logger.Interface
}

func NewHandler(
	listUC usecases.ListNotificationsExecutor,
	countUnreadUC usecases.CountUnreadExecutor,
	markReadUC usecases.MarkAsReadExecutor,
	markAllReadUC usecases.MarkAllAsReadExecutor,
	deleteUC usecases.DeleteNotificationExecutor,
	getSettingsUC usecases.GetSettingsExecutor,
	updateSettingsUC usecases.UpdateSettingsExecutor,
	sendBulkUC usecases.SendBulkExecutor,
	sendSystemUC usecases.SendSystemExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:        listUC,
		countUnreadUC: countUnreadUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		deleteUC:      deleteUC,
		getSettingsUC: getSettingsUC,
		updateSetUC:   updateSettingsUC,
		sendBulkUC:    sendBulkUC,
		sendSystemUC:  sendSystemUC,
		logger:        logger,
	}
}

// List handles GET /notifications
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=InboxResponse}
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	unread, err := utils.ParseBoolQuery(c, "unread")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:     actor.UserID,
		UnreadOnly: unread != nil && *unread,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", InboxResponse{
		ListResponse: utils.ListResponse{
			Items:      result.Notifications,
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: utils.TotalPages(result.Total, result.PageSize),
		},
		Unread: result.Unread,
	})
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=UnreadCountResponse}
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	count, err := h.countUnreadUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", UnreadCountResponse{Unread: count})
}

// MarkAsRead handles POST /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse{data=dto.NotificationDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [post]
func (h *Handler) MarkAsRead(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkAsReadCommand{
		UserID:         actor.UserID,
		NotificationID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAllAsRead handles POST /notifications/read-all
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=MarkAllResponse}
// @Router /notifications/read-all [post]
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.markAllReadUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", MarkAllResponse{Updated: updated})
}

// Delete handles DELETE /notifications/:id
// @Summary Delete a notification
// @Tags notifications
// @Security Bearer
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteNotificationCommand{
		UserID:         actor.UserID,
		NotificationID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetSettings handles GET /notifications/settings
// @Summary Get notification preferences
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=dto.SettingsDTO}
// @Router /notifications/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSettingsUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PATCH /notifications/settings
// @Summary Update notification preferences
// @Description Omitted fields keep their current value.
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateSettingsRequest true "Preferences"
// @Success 200 {object} utils.APIResponse{data=dto.SettingsDTO}
// @Router /notifications/settings [patch]
func (h *Handler) UpdateSettings(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateSetUC.Execute(c.Request.Context(), req.ToCommand(actor.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}

// SendBulk handles POST /notifications/bulk
// @Summary Send a notification to selected users
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SendBulkRequest true "Message"
// @Success 201 {object} utils.APIResponse{data=usecases.SendResult}
// @Failure 403 {object} utils.APIResponse
// @Router /notifications/bulk [post]
func (h *Handler) SendBulk(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.sendBulkUC.Execute(c.Request.Context(), usecases.SendBulkCommand{
		TenantID:     actor.TenantID,
		SenderID:     actor.UserID,
		SenderRole:   actor.Role,
		RecipientIDs: req.RecipientIDs,
		Title:        req.Title,
		Message:      req.Message,
		Priority:     req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Notifications sent")
}

// SendSystem handles POST /notifications/system
// @Summary Broadcast a system notification to every active user
// @Tags notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SendSystemRequest true "Message"
// @Success 201 {object} utils.APIResponse{data=usecases.SendResult}
// @Failure 403 {object} utils.APIResponse
// @Router /notifications/system [post]
func (h *Handler) SendSystem(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SendSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.sendSystemUC.Execute(c.Request.Context(), usecases.SendSystemCommand{
		TenantID:   actor.TenantID,
		SenderID:   actor.UserID,
		SenderRole: actor.Role,
		Title:      req.Title,
		Message:    req.Message,
		Priority:   req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "System notification sent")
}
