package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
)

// Pusher delivers a message to every live connection of a user.
type Pusher interface {
	Push(ctx context.Context, userID uint, msg *dto.PushMessage) error
}

type Mailer interface {
	SendNotificationEmail(to, subject, message string) error
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type CountUnreadExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type MarkAsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAsReadCommand) (*dto.NotificationDTO, error)
}

type MarkAllAsReadExecutor interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type DeleteNotificationExecutor interface {
	Execute(ctx context.Context, cmd DeleteNotificationCommand) error
}

type GetSettingsExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.SettingsDTO, error)
}

type UpdateSettingsExecutor interface {
	Execute(ctx context.Context, cmd UpdateSettingsCommand) (*dto.SettingsDTO, error)
}

type SendBulkExecutor interface {
	Execute(ctx context.Context, cmd SendBulkCommand) (*SendResult, error)
}

type SendSystemExecutor interface {
	Execute(ctx context.Context, cmd SendSystemCommand) (*SendResult, error)
}
