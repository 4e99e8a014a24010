package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type mockUserRepository struct {
	users map[uint]*user.User

	CreateFunc           func(ctx context.Context, u *user.User) error
	UpdateFunc           func(ctx context.Context, u *user.User) error
	GetByLoginFunc       func(ctx context.Context, login string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ListFunc             func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)

	updated []*user.User
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(uint(len(m.users) + 100))
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	m.updated = append(m.updated, u)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	if m.GetByLoginFunc != nil {
		return m.GetByLoginFunc(ctx, login)
	}
	for _, u := range m.users {
		if u.Username() == login || u.Email() == login {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListManagerIDs(ctx context.Context, tenantID uint) ([]uint, error) {
	return nil, nil
}

func (m *mockUserRepository) ListActiveIDs(ctx context.Context, tenantID uint) ([]uint, error) {
	return nil, nil
}

type mockUnitRepository struct {
	units map[uint]*organization.Unit

	ExistsByCodeFunc func(ctx context.Context, tenantID uint, code string) (bool, error)
	created          []*organization.Unit
}

func (m *mockUnitRepository) Create(ctx context.Context, unit *organization.Unit) error {
	m.created = append(m.created, unit)
	return unit.SetID(uint(len(m.created)))
}

func (m *mockUnitRepository) GetByID(ctx context.Context, id uint) (*organization.Unit, error) {
	return m.units[id], nil
}

func (m *mockUnitRepository) ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, tenantID, code)
	}
	return false, nil
}

func (m *mockUnitRepository) List(ctx context.Context, tenantID uint, activeOnly bool) ([]*organization.Unit, error) {
	var out []*organization.Unit
	for _, u := range m.units {
		if u.TenantID() == tenantID && (!activeOnly || u.IsActive()) {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockSectorRepository struct {
	sectors map[uint]*organization.Sector

	ExistsByCodeFunc func(ctx context.Context, tenantID uint, code string) (bool, error)
	created          []*organization.Sector
}

func (m *mockSectorRepository) Create(ctx context.Context, sector *organization.Sector) error {
	m.created = append(m.created, sector)
	return sector.SetID(uint(len(m.created)))
}

func (m *mockSectorRepository) GetByID(ctx context.Context, id uint) (*organization.Sector, error) {
	return m.sectors[id], nil
}

func (m *mockSectorRepository) ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, tenantID, code)
	}
	return false, nil
}

func (m *mockSectorRepository) List(ctx context.Context, tenantID uint, unitID *uint) ([]*organization.Sector, error) {
	return nil, nil
}

// mockHasher treats "hashed:<password>" as the hash of password.
type mockHasher struct {
	HashErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenService struct {
	GenerateErr error
	Claims      *TokenClaims
	ParseErr    error

	generatedFor []uint
}

func (m *mockTokenService) Generate(userID, tenantID uint, role string) (*TokenPair, error) {
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	m.generatedFor = append(m.generatedFor, userID)
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) ParseRefresh(token string) (*TokenClaims, error) {
	if m.ParseErr != nil {
		return nil, m.ParseErr
	}
	return m.Claims, nil
}

type mockOAuthClient struct {
	Info        *OAuthUserInfo
	ExchangeErr error

	gotVerifier string
}

func (m *mockOAuthClient) GetAuthURL(state string) (string, string, error) {
	return "https://accounts.example.com/auth?state=" + state, "verifier-" + state, nil
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error) {
	m.gotVerifier = codeVerifier
	if m.ExchangeErr != nil {
		return "", m.ExchangeErr
	}
	return "google-token", nil
}

func (m *mockOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	return m.Info, nil
}

type mockStateStore struct {
	states map[string]string
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{states: make(map[string]string)}
}

func (m *mockStateStore) Set(ctx context.Context, state, codeVerifier string) error {
	m.states[state] = codeVerifier
	return nil
}

func (m *mockStateStore) VerifyAndGet(ctx context.Context, state string) (string, error) {
	v, ok := m.states[state]
	if !ok {
		return "", errors.New("state not found")
	}
	delete(m.states, state)
	return v, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

const testTenantID uint = 1

func testUser(id uint, username, role string, active bool) *user.User {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, user.UserState{
		TenantID:     testTenantID,
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		PasswordHash: "hashed:secret123",
		Role:         role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		panic(err)
	}
	return u
}
