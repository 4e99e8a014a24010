package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
)

func NotificationToEntity(m *models.NotificationModel) (*notification.Notification, error) {
	if m == nil {
		return nil, nil
	}
	var metadata map[string]interface{}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata of notification %d: %w", m.ID, err)
		}
	}
	return notification.ReconstructNotification(m.ID, m.TenantID, m.RecipientID, m.SenderID,
		m.Type, m.Title, m.Message, m.Priority, m.ReportID, metadata, m.ReadAt, m.SentByEmail, m.CreatedAt), nil
}

func NotificationToModel(n *notification.Notification) (*models.NotificationModel, error) {
	raw, err := json.Marshal(n.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification metadata: %w", err)
	}
	return &models.NotificationModel{
		ID:          n.ID(),
		TenantID:    n.TenantID(),
		RecipientID: n.RecipientID(),
		SenderID:    n.SenderID(),
		Type:        n.Type().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		Priority:    n.Priority().String(),
		ReportID:    n.ReportID(),
		Metadata:    datatypes.JSON(raw),
		ReadAt:      n.ReadAt(),
		SentByEmail: n.SentByEmail(),
		CreatedAt:   n.CreatedAt(),
	}, nil
}

func SettingsToEntity(m *models.NotificationSettingsModel) *notification.Settings {
	return &notification.Settings{
		UserID:         m.UserID,
		EmailEnabled:   m.EmailEnabled,
		BrowserEnabled: m.BrowserEnabled,
		ReportCreated:  m.ReportCreated,
		ReportAssigned: m.ReportAssigned,
		ReportProgress: m.ReportProgress,
		ReportResolved: m.ReportResolved,
		SystemUpdates:  m.SystemUpdates,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func SettingsToModel(s *notification.Settings) *models.NotificationSettingsModel {
	return &models.NotificationSettingsModel{
		UserID:         s.UserID,
		EmailEnabled:   s.EmailEnabled,
		BrowserEnabled: s.BrowserEnabled,
		ReportCreated:  s.ReportCreated,
		ReportAssigned: s.ReportAssigned,
		ReportProgress: s.ReportProgress,
		ReportResolved: s.ReportResolved,
		SystemUpdates:  s.SystemUpdates,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func DeliveryLogToModel(l *notification.DeliveryLog) *models.NotificationDeliveryLogModel {
	return &models.NotificationDeliveryLogModel{
		ID:               l.ID,
		NotificationID:   l.NotificationID,
		NotificationType: l.NotificationType.String(),
		RecipientEmail:   l.RecipientEmail,
		Title:            l.Title,
		Sent:             l.Sent,
		ErrorMessage:     l.ErrorMessage,
		CreatedAt:        l.CreatedAt,
		SentAt:           l.SentAt,
	}
}
