package notification

import (
	"github.com/relatorio-inc/relatorio/internal/application/notification/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

// InboxResponse is a notification page plus the caller's unread total.
type InboxResponse struct {
	utils.ListResponse
	Unread int64 `json:"unread"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkAllResponse struct {
	Updated int64 `json:"updated"`
}

type UpdateSettingsRequest struct {
	EmailEnabled   *bool `json:"email_enabled"`
	BrowserEnabled *bool `json:"browser_enabled"`
	ReportCreated  *bool `json:"report_created"`
	ReportAssigned *bool `json:"report_assigned"`
	ReportProgress *bool `json:"report_progress"`
	ReportResolved *bool `json:"report_resolved"`
	SystemUpdates  *bool `json:"system_updates"`
}

func (r *UpdateSettingsRequest) ToCommand(userID uint) usecases.UpdateSettingsCommand {
	return usecases.UpdateSettingsCommand{
		UserID:         userID,
		EmailEnabled:   r.EmailEnabled,
		BrowserEnabled: r.BrowserEnabled,
		ReportCreated:  r.ReportCreated,
		ReportAssigned: r.ReportAssigned,
		ReportProgress: r.ReportProgress,
		ReportResolved: r.ReportResolved,
		SystemUpdates:  r.SystemUpdates,
	}
}

type SendBulkRequest struct {
	RecipientIDs []uint `json:"recipient_ids" binding:"required,min=1,max=500,dive,gt=0"`
	Title        string `json:"title" binding:"required,max=200"`
	Message      string `json:"message" binding:"required,max=5000"`
	Priority     string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
}

type SendSystemRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Message  string `json:"message" binding:"required,max=5000"`
	Priority string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
}
