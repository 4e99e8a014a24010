package usecases

import (
	"context"
	"strings"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type LoginCommand struct {
	// Login is a username or an e-mail address.
	Login    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error) {
	login := strings.TrimSpace(cmd.Login)
	uc.logger.Infow("executing login use case", "login", login)

	if login == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("login and password are required")
	}

	u, err := uc.userRepo.GetByLogin(ctx, login)
	if err != nil {
		uc.logger.Errorw("failed to get user by login", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}
	if u == nil || !u.HasPassword() {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("invalid password", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	result, err := signIn(ctx, uc.userRepo, uc.tokens, uc.logger, u)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())
	return result, nil
}
