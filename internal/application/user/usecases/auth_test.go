package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

func TestLoginUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     LoginCommand
		wantErr func(error) bool
	}{
		{name: "login by username", cmd: LoginCommand{Login: "maria", Password: "secret123"}},
		{name: "login by email", cmd: LoginCommand{Login: "maria@example.com", Password: "secret123"}},
		{name: "wrong password", cmd: LoginCommand{Login: "maria", Password: "wrong-pass"}, wantErr: errors.IsUnauthorizedError},
		{name: "unknown user", cmd: LoginCommand{Login: "ghost", Password: "secret123"}, wantErr: errors.IsUnauthorizedError},
		{name: "inactive user", cmd: LoginCommand{Login: "pedro", Password: "secret123"}, wantErr: errors.IsForbiddenError},
		{name: "empty login", cmd: LoginCommand{Password: "secret123"}, wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockUserRepository(
				testUser(2, "maria", "user", true),
				testUser(3, "pedro", "user", false),
			)
			tokens := &mockTokenService{}
			uc := NewLoginUseCase(repo, &mockHasher{}, tokens, &mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Empty(t, tokens.generatedFor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", result.AccessToken)
			assert.Equal(t, "Bearer", result.TokenType)
			require.Len(t, repo.updated, 1)
			assert.NotNil(t, repo.updated[0].LastLoginAt())
		})
	}
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		tokens  *mockTokenService
		wantErr func(error) bool
	}{
		{
			name:   "active user gets new pair",
			tokens: &mockTokenService{Claims: &TokenClaims{UserID: 2, TenantID: testTenantID}},
		},
		{
			name:    "invalid token",
			tokens:  &mockTokenService{ParseErr: stderrors.New("expired")},
			wantErr: errors.IsUnauthorizedError,
		},
		{
			name:    "deactivated since issue",
			tokens:  &mockTokenService{Claims: &TokenClaims{UserID: 3, TenantID: testTenantID}},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "tenant mismatch",
			tokens:  &mockTokenService{Claims: &TokenClaims{UserID: 2, TenantID: 7}},
			wantErr: errors.IsUnauthorizedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockUserRepository(
				testUser(2, "maria", "user", true),
				testUser(3, "pedro", "user", false),
			)
			uc := NewRefreshTokenUseCase(repo, tt.tokens, &mockLogger{})

			result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "token"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "refresh", result.RefreshToken)
			assert.Equal(t, uint(2), result.User.ID)
		})
	}
}

func TestGoogleLogin_RoundTrip(t *testing.T) {
	repo := newMockUserRepository(testUser(2, "maria", "user", true))
	client := &mockOAuthClient{Info: &OAuthUserInfo{Email: "Maria@Example.com", EmailVerified: true}}
	store := newMockStateStore()

	authURL, err := NewInitiateGoogleLoginUseCase(client, store, &mockLogger{}).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, store.states, 1)

	state := authURL[strings.Index(authURL, "state=")+len("state="):]
	callback := NewHandleGoogleCallbackUseCase(client, store, repo, &mockTokenService{}, &mockLogger{})

	result, err := callback.Execute(context.Background(), GoogleCallbackCommand{Code: "code", State: state})
	require.NoError(t, err)
	assert.Equal(t, uint(2), result.User.ID)
	assert.Equal(t, "verifier-"+state, client.gotVerifier)

	_, err = callback.Execute(context.Background(), GoogleCallbackCommand{Code: "code", State: state})
	assert.True(t, errors.IsUnauthorizedError(err), "state must be single use")
}

func TestHandleGoogleCallback_UnknownEmailIsRejected(t *testing.T) {
	repo := newMockUserRepository(testUser(2, "maria", "user", true))
	client := &mockOAuthClient{Info: &OAuthUserInfo{Email: "stranger@example.com", EmailVerified: true}}
	store := newMockStateStore()
	store.states["s1"] = "v1"
	uc := NewHandleGoogleCallbackUseCase(client, store, repo, &mockTokenService{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), GoogleCallbackCommand{Code: "code", State: "s1"})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, repo.updated)
}

func TestHandleGoogleCallback_UnverifiedEmail(t *testing.T) {
	client := &mockOAuthClient{Info: &OAuthUserInfo{Email: "maria@example.com"}}
	store := newMockStateStore()
	store.states["s1"] = "v1"
	uc := NewHandleGoogleCallbackUseCase(client, store, newMockUserRepository(), &mockTokenService{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GoogleCallbackCommand{Code: "code", State: "s1"})

	assert.True(t, errors.IsUnauthorizedError(err))
}
