package dto

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

type NotificationDTO struct {
	ID          uint                   `json:"id"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	Priority    string                 `json:"priority"`
	SenderID    *uint                  `json:"sender_id,omitempty"`
	ReportID    *uint                  `json:"report_id,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	IsRead      bool                   `json:"is_read"`
	ReadAt      *time.Time             `json:"read_at,omitempty"`
	SentByEmail bool                   `json:"sent_by_email"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:          n.ID(),
		Type:        n.Type().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		Priority:    n.Priority().String(),
		SenderID:    n.SenderID(),
		ReportID:    n.ReportID(),
		Metadata:    n.Metadata(),
		IsRead:      n.IsRead(),
		ReadAt:      n.ReadAt(),
		SentByEmail: n.SentByEmail(),
		CreatedAt:   n.CreatedAt(),
	}
}

func ToNotificationDTOs(items []*notification.Notification) []*NotificationDTO {
	return mapper.MapSlice(items, ToNotificationDTO)
}

type SettingsDTO struct {
	EmailEnabled   bool `json:"email_enabled"`
	BrowserEnabled bool `json:"browser_enabled"`
	ReportCreated  bool `json:"report_created"`
	ReportAssigned bool `json:"report_assigned"`
	ReportProgress bool `json:"report_progress"`
	ReportResolved bool `json:"report_resolved"`
	SystemUpdates  bool `json:"system_updates"`
}

func ToSettingsDTO(s *notification.Settings) *SettingsDTO {
	return &SettingsDTO{
		EmailEnabled:   s.EmailEnabled,
		BrowserEnabled: s.BrowserEnabled,
		ReportCreated:  s.ReportCreated,
		ReportAssigned: s.ReportAssigned,
		ReportProgress: s.ReportProgress,
		ReportResolved: s.ReportResolved,
		SystemUpdates:  s.SystemUpdates,
	}
}

// PushMessage is the frame sent to connected WebSocket clients.
type PushMessage struct {
	Event        string           `json:"event"`
	Notification *NotificationDTO `json:"notification"`
	UnreadCount  int64            `json:"unread_count"`
}
