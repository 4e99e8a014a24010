package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{userRepo: userRepo, tokens: tokens, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	claims, err := uc.tokens.ParseRefresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("invalid refresh token", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", claims.UserID, "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}
	if u == nil || u.TenantID() != claims.TenantID {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}
	if !u.IsActive() {
		return nil, errors.NewForbiddenError("user account is inactive")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.TenantID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to refresh token")
	}

	uc.logger.Infow("token refreshed", "user_id", u.ID())
	return &dto.AuthResult{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
