package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/mappers"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// NotificationRepository implements notification.Repository.
type NotificationRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewNotificationRepository(gdb *gorm.DB, logger logger.Interface) *NotificationRepository {
	return &NotificationRepository{db: gdb, logger: logger}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := mappers.NotificationToModel(n)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "recipient_id", model.RecipientID, "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at.UTC())
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification as read", "id", id, "error", result.Error)
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) MarkSentByEmail(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("sent_by_email", true)
	if result.Error != nil {
		r.logger.Errorw("failed to flag notification as e-mailed", "id", id, "error", result.Error)
		return fmt.Errorf("failed to flag notification as e-mailed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return mappers.NotificationToEntity(&model)
}

func (r *NotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("recipient_id = ?", filter.RecipientID)
	if filter.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var rows []*models.NotificationModel
	if err := query.Order("created_at DESC, id DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "recipient_id", filter.RecipientID, "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]*notification.Notification, 0, len(rows))
	for _, m := range rows {
		n, err := mappers.NotificationToEntity(m)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", biztime.NowUTC())
	if result.Error != nil {
		r.logger.Errorw("failed to mark notifications as read", "recipient_id", recipientID, "error", result.Error)
		return 0, fmt.Errorf("failed to mark notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type NotificationSettingsRepository struct {
	db *gorm.DB
}

func NewNotificationSettingsRepository(gdb *gorm.DB) *NotificationSettingsRepository {
	return &NotificationSettingsRepository{db: gdb}
}

func (r *NotificationSettingsRepository) Get(ctx context.Context, userID uint) (*notification.Settings, error) {
	var model models.NotificationSettingsModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return mappers.SettingsToEntity(&model), nil
}

// Save inserts or replaces the user's settings row.
func (r *NotificationSettingsRepository) Save(ctx context.Context, s *notification.Settings) error {
	if err := db.GetTxFromContext(ctx, r.db).Save(mappers.SettingsToModel(s)).Error; err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}

type DeliveryLogRepository struct {
	db *gorm.DB
}

func NewDeliveryLogRepository(gdb *gorm.DB) *DeliveryLogRepository {
	return &DeliveryLogRepository{db: gdb}
}

func (r *DeliveryLogRepository) Create(ctx context.Context, log *notification.DeliveryLog) error {
	model := mappers.DeliveryLogToModel(log)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create delivery log: %w", err)
	}
	log.ID = model.ID
	return nil
}
