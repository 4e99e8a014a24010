package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type ChangePasswordCommand struct {
	TenantID    uint
	UserID      uint
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	if cmd.OldPassword == "" {
		return errors.NewValidationError("current password is required")
	}
	if err := validatePassword(cmd.NewPassword); err != nil {
		return err
	}
	if cmd.OldPassword == cmd.NewPassword {
		return errors.NewValidationError("new password must differ from the current one")
	}

	u, err := loadTenantUser(ctx, uc.userRepo, cmd.TenantID, cmd.UserID)
	if err != nil {
		return err
	}

	if !u.HasPassword() {
		return errors.NewValidationError("account has no password set")
	}
	if err := uc.hasher.Verify(cmd.OldPassword, u.PasswordHash()); err != nil {
		uc.logger.Warnw("incorrect current password", "user_id", u.ID())
		return errors.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to change password")
	}
	u.SetPasswordHash(hash)

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", u.ID(), "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("password changed successfully", "user_id", u.ID())
	return nil
}
