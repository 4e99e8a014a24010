package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO
	Total         int64
	Unread        int64
	Page          int
	PageSize      int
}

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	uc.logger.Infow("executing list notifications use case", "user_id", query.UserID, "unread_only", query.UnreadOnly)

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	items, total, err := uc.repo.List(ctx, notification.ListFilter{
		RecipientID: query.UserID,
		UnreadOnly:  query.UnreadOnly,
		Page:        query.Page,
		PageSize:    query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	unread, err := uc.repo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	return &ListNotificationsResult{
		Notifications: dto.ToNotificationDTOs(items),
		Total:         total,
		Unread:        unread,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}, nil
}

type CountUnreadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewCountUnreadUseCase(repo notification.Repository, logger logger.Interface) *CountUnreadUseCase {
	return &CountUnreadUseCase{repo: repo, logger: logger}
}

func (uc *CountUnreadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", userID, "error", err)
		return 0, errors.NewInternalError("failed to count unread notifications")
	}
	return count, nil
}

type MarkAsReadCommand struct {
	UserID         uint
	NotificationID uint
}

type MarkAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAsReadUseCase {
	return &MarkAsReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkAsReadUseCase) Execute(ctx context.Context, cmd MarkAsReadCommand) (*dto.NotificationDTO, error) {
	uc.logger.Infow("executing mark notification as read use case", "id", cmd.NotificationID, "user_id", cmd.UserID)

	n, err := loadOwned(ctx, uc.repo, uc.logger, cmd.NotificationID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if n.IsRead() {
		return dto.ToNotificationDTO(n), nil
	}

	now := biztime.NowUTC()
	if err := uc.repo.MarkAsRead(ctx, n.ID(), now); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", n.ID(), "error", err)
		return nil, errors.NewInternalError("failed to mark notification as read")
	}
	n.MarkAsRead(now)

	uc.logger.Infow("notification marked as read", "id", n.ID())
	return dto.ToNotificationDTO(n), nil
}

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{repo: repo, logger: logger}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	uc.logger.Infow("executing mark all notifications as read use case", "user_id", userID)

	count, err := uc.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return 0, errors.NewInternalError("failed to mark notifications as read")
	}
	return count, nil
}

type DeleteNotificationCommand struct {
	UserID         uint
	NotificationID uint
}

type DeleteNotificationUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewDeleteNotificationUseCase(repo notification.Repository, logger logger.Interface) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{repo: repo, logger: logger}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, cmd DeleteNotificationCommand) error {
	uc.logger.Infow("executing delete notification use case", "id", cmd.NotificationID, "user_id", cmd.UserID)

	if _, err := loadOwned(ctx, uc.repo, uc.logger, cmd.NotificationID, cmd.UserID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, cmd.NotificationID); err != nil {
		uc.logger.Errorw("failed to delete notification", "id", cmd.NotificationID, "error", err)
		return errors.NewInternalError("failed to delete notification")
	}
	return nil
}

func loadOwned(ctx context.Context, repo notification.Repository, log logger.Interface, id, userID uint) (*notification.Notification, error) {
	n, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to find notification", "id", id, "error", err)
		return nil, errors.NewInternalError("failed to get notification")
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	if !n.IsOwnedBy(userID) {
		log.Warnw("unauthorized access to notification", "id", id, "user_id", userID, "owner_id", n.RecipientID())
		return nil, errors.NewForbiddenError("you don't have permission to access this notification")
	}
	return n, nil
}
