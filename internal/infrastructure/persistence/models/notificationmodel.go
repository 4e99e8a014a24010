package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/relatorio-inc/relatorio/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint `gorm:"primarykey"`
	TenantID    uint `gorm:"not null;index"`
	RecipientID uint `gorm:"not null;index:idx_notification_recipient_read"`
	SenderID    *uint
	Type        string `gorm:"not null;size:30"`
	Title       string `gorm:"not null;size:200"`
	Message     string `gorm:"type:text"`
	Priority    string `gorm:"not null;default:normal;size:20"`
	ReportID    *uint  `gorm:"index"`
	Metadata    datatypes.JSON
	ReadAt      *time.Time `gorm:"index:idx_notification_recipient_read"`
	SentByEmail bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

type NotificationSettingsModel struct {
	UserID         uint `gorm:"primarykey;autoIncrement:false"`
	EmailEnabled   bool `gorm:"not null"`
	BrowserEnabled bool `gorm:"not null"`
	ReportCreated  bool `gorm:"not null"`
	ReportAssigned bool `gorm:"not null"`
	ReportProgress bool `gorm:"not null"`
	ReportResolved bool `gorm:"not null"`
	SystemUpdates  bool `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NotificationSettingsModel) TableName() string {
	return constants.TableNotificationSettings
}

type NotificationDeliveryLogModel struct {
	ID               uint   `gorm:"primarykey"`
	NotificationID   *uint  `gorm:"index"`
	NotificationType string `gorm:"not null;size:30"`
	RecipientEmail   string `gorm:"not null;size:255"`
	Title            string `gorm:"size:200"`
	Sent             bool   `gorm:"not null"`
	ErrorMessage     string `gorm:"type:text"`
	CreatedAt        time.Time
	SentAt           *time.Time
}

func (NotificationDeliveryLogModel) TableName() string {
	return constants.TableNotificationDeliveryLog
}
