package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the identity carried by a verified refresh token.
type TokenClaims struct {
	UserID   uint
	TenantID uint
	Role     string
}

type TokenService interface {
	Generate(userID, tenantID uint, role string) (*TokenPair, error)
	ParseRefresh(token string) (*TokenClaims, error)
}

type OAuthUserInfo struct {
	Email         string
	Name          string
	EmailVerified bool
}

type OAuthClient interface {
	// GetAuthURL returns the provider URL and the PKCE verifier bound to state.
	GetAuthURL(state string) (string, string, error)
	ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error)
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

type OAuthStateStore interface {
	Set(ctx context.Context, state, codeVerifier string) error
	// VerifyAndGet consumes the state and returns its verifier.
	VerifyAndGet(ctx context.Context, state string) (string, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthResult, error)
}

type InitiateGoogleLoginExecutor interface {
	Execute(ctx context.Context) (string, error)
}

type HandleGoogleCallbackExecutor interface {
	Execute(ctx context.Context, cmd GoogleCallbackCommand) (*dto.AuthResult, error)
}

type CreateUnitExecutor interface {
	Execute(ctx context.Context, cmd CreateUnitCommand) (*dto.UnitDTO, error)
}

type ListUnitsExecutor interface {
	Execute(ctx context.Context, tenantID uint, activeOnly bool) ([]*dto.UnitDTO, error)
}

type CreateSectorExecutor interface {
	Execute(ctx context.Context, cmd CreateSectorCommand) (*dto.SectorDTO, error)
}

type ListSectorsExecutor interface {
	Execute(ctx context.Context, tenantID uint, unitID *uint) ([]*dto.SectorDTO, error)
}
