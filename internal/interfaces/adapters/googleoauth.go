package adapters

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
)

type googleClient interface {
	GetAuthURL(state string) (string, string, error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*auth.OAuthUserInfo, error)
}

// GoogleOAuthAdapter exposes the Google client as usecases.OAuthClient.
type GoogleOAuthAdapter struct {
	client googleClient
}

func NewGoogleOAuthAdapter(client googleClient) *GoogleOAuthAdapter {
	return &GoogleOAuthAdapter{client: client}
}

func (a *GoogleOAuthAdapter) GetAuthURL(state string) (string, string, error) {
	return a.client.GetAuthURL(state)
}

func (a *GoogleOAuthAdapter) ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error) {
	return a.client.ExchangeCode(ctx, code, codeVerifier)
}

func (a *GoogleOAuthAdapter) GetUserInfo(ctx context.Context, accessToken string) (*usecases.OAuthUserInfo, error) {
	info, err := a.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &usecases.OAuthUserInfo{
		Email:         info.Email,
		Name:          info.Name,
		EmailVerified: info.EmailVerified,
	}, nil
}
