package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	vo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type SendResult struct {
	Recipients int `json:"recipients"`
	Created    int `json:"created"`
}

type SendBulkCommand struct {
	TenantID     uint
	SenderID     uint
	SenderRole   authorization.UserRole
	RecipientIDs []uint
	Title        string
	Message      string
	Priority     string
}

type SendBulkUseCase struct {
	deliverer *Deliverer
	users     user.Repository
	logger    logger.Interface
}

func NewSendBulkUseCase(deliverer *Deliverer, users user.Repository, logger logger.Interface) *SendBulkUseCase {
	return &SendBulkUseCase{deliverer: deliverer, users: users, logger: logger}
}

func (uc *SendBulkUseCase) Execute(ctx context.Context, cmd SendBulkCommand) (*SendResult, error) {
	uc.logger.Infow("executing send bulk notification use case", "sender_id", cmd.SenderID, "recipients", len(cmd.RecipientIDs))

	if !cmd.SenderRole.IsStaff() {
		return nil, errors.NewForbiddenError("only staff can send bulk notifications")
	}
	if len(cmd.RecipientIDs) == 0 {
		return nil, errors.NewValidationError("at least one recipient is required")
	}

	recipients, err := uc.users.GetByIDs(ctx, cmd.RecipientIDs)
	if err != nil {
		uc.logger.Errorw("failed to load recipients", "error", err)
		return nil, errors.NewInternalError("failed to send notifications")
	}
	ids := make([]uint, 0, len(recipients))
	for _, r := range recipients {
		if r.TenantID() == cmd.TenantID && r.IsActive() {
			ids = append(ids, r.ID())
		}
	}
	if len(ids) == 0 {
		return nil, errors.NewValidationError("no valid recipients")
	}

	return deliverDraft(ctx, uc.deliverer, uc.logger, ids, notification.Draft{
		TenantID: cmd.TenantID,
		SenderID: &cmd.SenderID,
		Type:     vo.TypeBulk,
		Title:    cmd.Title,
		Message:  cmd.Message,
		Priority: vo.Priority(cmd.Priority),
	})
}

type SendSystemCommand struct {
	TenantID   uint
	SenderID   uint
	SenderRole authorization.UserRole
	Title      string
	Message    string
	Priority   string
}

type SendSystemUseCase struct {
	deliverer *Deliverer
	users     user.Repository
	logger    logger.Interface
}

func NewSendSystemUseCase(deliverer *Deliverer, users user.Repository, logger logger.Interface) *SendSystemUseCase {
	return &SendSystemUseCase{deliverer: deliverer, users: users, logger: logger}
}

// Execute notifies every active user of the tenant.
func (uc *SendSystemUseCase) Execute(ctx context.Context, cmd SendSystemCommand) (*SendResult, error) {
	uc.logger.Infow("executing send system notification use case", "sender_id", cmd.SenderID, "tenant_id", cmd.TenantID)

	if !cmd.SenderRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can send system notifications")
	}

	ids, err := uc.users.ListActiveIDs(ctx, cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to list active users", "error", err)
		return nil, errors.NewInternalError("failed to send notifications")
	}

	return deliverDraft(ctx, uc.deliverer, uc.logger, ids, notification.Draft{
		TenantID: cmd.TenantID,
		SenderID: &cmd.SenderID,
		Type:     vo.TypeSystem,
		Title:    cmd.Title,
		Message:  cmd.Message,
		Priority: vo.Priority(cmd.Priority),
	})
}

func deliverDraft(ctx context.Context, d *Deliverer, log logger.Interface, ids []uint, draft notification.Draft) (*SendResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	created, err := d.Deliver(ctx, ids, draft)
	if err != nil {
		if len(created) == 0 {
			log.Errorw("failed to deliver notifications", "error", err)
			return nil, errors.NewInternalError("failed to send notifications")
		}
		log.Warnw("notifications partially delivered", "delivered", len(created), "error", err)
	}

	log.Infow("notifications sent", "type", draft.Type, "recipients", len(ids), "created", len(created))
	return &SendResult{Recipients: len(ids), Created: len(created)}, nil
}
