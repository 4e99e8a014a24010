package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	// bcrypt ignores everything past 72 bytes
	if len(password) > maxPasswordLength {
		return errors.NewValidationError("password cannot exceed 72 bytes")
	}
	return nil
}

// loadTenantUser returns NotFound for missing users and users of another tenant.
func loadTenantUser(ctx context.Context, repo user.Repository, tenantID, userID uint) (*user.User, error) {
	u, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil || u.TenantID() != tenantID {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

// signIn records the login time and issues a token pair for an active user.
func signIn(ctx context.Context, repo user.Repository, tokens TokenService, log logger.Interface, u *user.User) (*dto.AuthResult, error) {
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("user account is inactive")
	}

	pair, err := tokens.Generate(u.ID(), u.TenantID(), u.Role().String())
	if err != nil {
		log.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	u.RecordLogin(biztime.NowUTC())
	if err := repo.Update(ctx, u); err != nil {
		log.Warnw("failed to record last login", "user_id", u.ID(), "error", err)
	}

	return &dto.AuthResult{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
