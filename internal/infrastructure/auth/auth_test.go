package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Verify("s3cret-pass", hash))
	assert.Error(t, h.Verify("wrong", hash))
	assert.Error(t, h.Verify("s3cret-pass", ""))
	assert.Error(t, h.Verify("s3cret-pass", "not-a-hash"))
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptPasswordHasher(99)
	hash, err := h.Hash("abcdef")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("abcdef", hash))
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(42, 3, "staff")
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	uid, err := access.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), uid)
	assert.Equal(t, uint(3), access.TenantID)
	assert.Equal(t, "staff", access.Role)

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refresh.TokenType)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	pair, err := NewJWTService("one", 15, 7).Generate(1, 1, "user")
	require.NoError(t, err)

	_, err = NewJWTService("two", 15, 7).Verify(pair.AccessToken)
	assert.Error(t, err)
	_, err = NewJWTService("one", 15, 7).Verify("garbage")
	assert.Error(t, err)
}

func TestGoogleOAuthClient_GetAuthURL(t *testing.T) {
	c := NewGoogleOAuthClient(GoogleOAuthConfig{ClientID: "cid", ClientSecret: "sec", RedirectURL: "http://localhost/cb"})

	authURL, verifier, err := c.GetAuthURL("state-1")
	require.NoError(t, err)
	assert.NotEmpty(t, verifier)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Equal(t, "cid", q.Get("client_id"))

	_, _, err = c.GetAuthURL("")
	assert.Error(t, err)
}

func TestGoogleOAuthClient_GetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g-1","email":"ana@example.com","verified_email":true,"name":"Ana"}`))
	}))
	defer srv.Close()

	c := NewGoogleOAuthClient(GoogleOAuthConfig{ClientID: "cid"})
	c.userInfoURL = srv.URL

	info, err := c.GetUserInfo(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", info.Email)
	assert.True(t, info.EmailVerified)
	assert.Equal(t, "g-1", info.ProviderID)

	_, err = c.GetUserInfo(context.Background(), "bad")
	assert.Error(t, err)
}
