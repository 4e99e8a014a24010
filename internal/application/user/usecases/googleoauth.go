package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type InitiateGoogleLoginUseCase struct {
	client     OAuthClient
	stateStore OAuthStateStore
	logger     logger.Interface
}

func NewInitiateGoogleLoginUseCase(client OAuthClient, stateStore OAuthStateStore, logger logger.Interface) *InitiateGoogleLoginUseCase {
	return &InitiateGoogleLoginUseCase{client: client, stateStore: stateStore, logger: logger}
}

// Execute returns the Google consent URL. The state and PKCE verifier are
// stored until the callback consumes them.
func (uc *InitiateGoogleLoginUseCase) Execute(ctx context.Context) (string, error) {
	if uc.client == nil {
		return "", errors.NewBadRequestError("google sign-in is not configured")
	}

	state := uuid.NewString()
	authURL, verifier, err := uc.client.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build google auth url", "error", err)
		return "", errors.NewInternalError("failed to initiate google sign-in")
	}

	if err := uc.stateStore.Set(ctx, state, verifier); err != nil {
		uc.logger.Errorw("failed to store oauth state", "error", err)
		return "", errors.NewInternalError("failed to initiate google sign-in")
	}

	return authURL, nil
}

type GoogleCallbackCommand struct {
	Code  string
	State string
}

type HandleGoogleCallbackUseCase struct {
	client     OAuthClient
	stateStore OAuthStateStore
	userRepo   user.Repository
	tokens     TokenService
	logger     logger.Interface
}

func NewHandleGoogleCallbackUseCase(
	client OAuthClient,
	stateStore OAuthStateStore,
	userRepo user.Repository,
	tokens TokenService,
	logger logger.Interface,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		client:     client,
		stateStore: stateStore,
		userRepo:   userRepo,
		tokens:     tokens,
		logger:     logger,
	}
}

func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, cmd GoogleCallbackCommand) (*dto.AuthResult, error) {
	uc.logger.Infow("executing google callback use case")

	if uc.client == nil {
		return nil, errors.NewBadRequestError("google sign-in is not configured")
	}
	if cmd.Code == "" || cmd.State == "" {
		return nil, errors.NewValidationError("code and state are required")
	}

	verifier, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("invalid oauth state", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired state")
	}

	accessToken, err := uc.client.ExchangeCode(ctx, cmd.Code, verifier)
	if err != nil {
		uc.logger.Errorw("failed to exchange oauth code", "error", err)
		return nil, errors.NewUnauthorizedError("failed to authenticate with google")
	}

	info, err := uc.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to get google user info", "error", err)
		return nil, errors.NewUnauthorizedError("failed to authenticate with google")
	}
	if !info.EmailVerified {
		return nil, errors.NewUnauthorizedError("google e-mail is not verified")
	}

	u, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(info.Email)))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to authenticate with google")
	}
	if u == nil {
		uc.logger.Warnw("google sign-in for unknown e-mail", "email", info.Email)
		return nil, errors.NewForbiddenError("no account is registered for this e-mail")
	}

	result, err := signIn(ctx, uc.userRepo, uc.tokens, uc.logger, u)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("user signed in with google", "user_id", u.ID())
	return result, nil
}
