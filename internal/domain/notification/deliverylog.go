package notification

import (
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
)

// DeliveryLog records one e-mail delivery attempt.
type DeliveryLog struct {
	ID               uint
	NotificationID   *uint
	NotificationType vo.NotificationType
	RecipientEmail   string
	Title            string
	Sent             bool
	ErrorMessage     string
	CreatedAt        time.Time
	SentAt           *time.Time
}
