package notification

import (
	"context"
	"time"
)

type ListFilter struct {
	RecipientID uint
	UnreadOnly  bool
	Page        int
	PageSize    int
}

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// MarkAsRead sets read_at unless the notification is already read.
	MarkAsRead(ctx context.Context, id uint, at time.Time) error
	// MarkSentByEmail touches only the e-mail flag so it cannot undo a read.
	MarkSentByEmail(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
	// MarkAllAsRead returns the number of notifications that changed.
	MarkAllAsRead(ctx context.Context, recipientID uint) (int64, error)
}

type SettingsRepository interface {
	// Get returns nil, nil when the user has no stored settings yet.
	Get(ctx context.Context, userID uint) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

type DeliveryLogRepository interface {
	Create(ctx context.Context, log *DeliveryLog) error
}
