package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/testutil"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

type mockLoginUC struct {
	got    usecases.LoginCommand
	result *dto.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*dto.AuthResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRefreshUC struct {
	result *dto.AuthResult
	err    error
}

func (m *mockRefreshUC) Execute(_ context.Context, _ usecases.RefreshTokenCommand) (*dto.AuthResult, error) {
	return m.result, m.err
}

type mockGetUserUC struct {
	got    usecases.GetUserQuery
	result *dto.UserDTO
	err    error
}

func (m *mockGetUserUC) Execute(_ context.Context, q usecases.GetUserQuery) (*dto.UserDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockGoogleLoginUC struct {
	url string
}

func (m *mockGoogleLoginUC) Execute(_ context.Context) (string, error) {
	return m.url, nil
}

type mockGoogleCallbackUC struct {
	got    usecases.GoogleCallbackCommand
	result *dto.AuthResult
	err    error
}

func (m *mockGoogleCallbackUC) Execute(_ context.Context, cmd usecases.GoogleCallbackCommand) (*dto.AuthResult, error) {
	m.got = cmd
	return m.result, m.err
}

func authResult() *dto.AuthResult {
	return &dto.AuthResult{
		User:         &dto.UserDTO{ID: 1, Username: "ana"},
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}
}

func TestHandler_Login_Success(t *testing.T) {
	loginUC := &mockLoginUC{result: authResult()}
	h := NewHandler(loginUC, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Login: "ana", Password: "secret123"})
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", loginUC.got.Login)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data dto.AuthResult
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "access", data.AccessToken)
}

func TestHandler_Login_InvalidBody(t *testing.T) {
	h := NewHandler(&mockLoginUC{}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", map[string]string{"login": "ana"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	loginUC := &mockLoginUC{err: errors.NewUnauthorizedError("invalid credentials")}
	h := NewHandler(loginUC, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/login", LoginRequest{Login: "ana", Password: "wrong"})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid credentials", resp.Error.Message)
}

func TestHandler_RefreshToken(t *testing.T) {
	h := NewHandler(nil, &mockRefreshUC{result: authResult()}, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "r"})
	h.RefreshToken(c)
	assert.Equal(t, http.StatusOK, w.Code)

	h = NewHandler(nil, &mockRefreshUC{err: errors.NewUnauthorizedError("invalid refresh token")}, nil, nil, nil, testutil.NewMockLogger())
	c, w = testutil.NewTestContext(http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "r"})
	h.RefreshToken(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Me(t *testing.T) {
	getUC := &mockGetUserUC{result: &dto.UserDTO{ID: 9, Username: "bia"}}
	h := NewHandler(nil, nil, getUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	h.Me(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/auth/me", nil)
	testutil.SetAuthContext(c, 9, "user")
	h.Me(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), getUC.got.UserID)
	assert.Equal(t, uint(1), getUC.got.TenantID)
}

func TestHandler_GoogleLogin(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, testutil.NewMockLogger())
	assert.False(t, h.GoogleEnabled())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/google", nil)
	h.GoogleLogin(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	h = NewHandler(nil, nil, nil, &mockGoogleLoginUC{url: "https://accounts.google.com/o/oauth2/auth?state=s"}, &mockGoogleCallbackUC{}, testutil.NewMockLogger())
	assert.True(t, h.GoogleEnabled())

	c, w = testutil.NewTestContext(http.MethodGet, "/api/auth/google", nil)
	h.GoogleLogin(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accounts.google.com")

	c, w = testutil.NewTestContext(http.MethodGet, "/api/auth/google?redirect=true", nil)
	h.GoogleLogin(c)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")
}

func TestHandler_GoogleCallback(t *testing.T) {
	cb := &mockGoogleCallbackUC{result: authResult()}
	h := NewHandler(nil, nil, nil, &mockGoogleLoginUC{}, cb, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/auth/google/callback", nil)
	h.GoogleCallback(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"code": "abc", "state": "st"})
	h.GoogleCallback(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", cb.got.Code)
	assert.Equal(t, "st", cb.got.State)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"error": "access_denied"})
	h.GoogleCallback(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
