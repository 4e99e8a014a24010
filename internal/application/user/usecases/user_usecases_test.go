package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

func newCreateUser(repo *mockUserRepository) *CreateUserUseCase {
	return NewCreateUserUseCase(repo, &mockUnitRepository{}, &mockSectorRepository{}, &mockHasher{}, &mockLogger{})
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	base := CreateUserCommand{
		TenantID:  testTenantID,
		ActorRole: authorization.RoleAdmin,
		Username:  "joao.silva",
		Email:     "joao@example.com",
		FullName:  "joão silva",
		Password:  "secret123",
		Role:      "manager",
		IsManager: true,
	}

	t.Run("admin creates user", func(t *testing.T) {
		repo := newMockUserRepository()
		result, err := newCreateUser(repo).Execute(context.Background(), base)

		require.NoError(t, err)
		assert.Equal(t, "joao.silva", result.Username)
		assert.Equal(t, "manager", result.Role)
		assert.True(t, result.IsManager)
		assert.True(t, result.IsActive)
	})

	t.Run("missing role defaults to user", func(t *testing.T) {
		cmd := base
		cmd.Role = ""
		result, err := newCreateUser(newMockUserRepository()).Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "user", result.Role)
	})

	tests := []struct {
		name   string
		mutate func(*CreateUserCommand)
		repo   func() *mockUserRepository
		check  func(error) bool
	}{
		{
			name:   "non admin is forbidden",
			mutate: func(c *CreateUserCommand) { c.ActorRole = authorization.RoleStaff },
			check:  errors.IsForbiddenError,
		},
		{
			name:   "short password",
			mutate: func(c *CreateUserCommand) { c.Password = "short" },
			check:  errors.IsValidationError,
		},
		{
			name:   "invalid role",
			mutate: func(c *CreateUserCommand) { c.Role = "root" },
			check:  errors.IsValidationError,
		},
		{
			name: "duplicate username",
			repo: func() *mockUserRepository {
				r := newMockUserRepository()
				r.ExistsByUsernameFunc = func(ctx context.Context, username string) (bool, error) { return true, nil }
				return r
			},
			check: errors.IsConflictError,
		},
		{
			name: "duplicate email",
			repo: func() *mockUserRepository {
				r := newMockUserRepository()
				r.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) { return true, nil }
				return r
			},
			check: errors.IsConflictError,
		},
		{
			name:   "unknown unit",
			mutate: func(c *CreateUserCommand) { id := uint(9); c.UnitID = &id },
			check:  errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := base
			if tt.mutate != nil {
				tt.mutate(&cmd)
			}
			repo := newMockUserRepository()
			if tt.repo != nil {
				repo = tt.repo()
			}

			result, err := newCreateUser(repo).Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name    string
		cmd     UpdateUserCommand
		wantErr func(error) bool
		verify  func(t *testing.T, u *user.User)
	}{
		{
			name: "user edits own profile",
			cmd: UpdateUserCommand{
				ActorID: 2, ActorRole: authorization.RoleUser, UserID: 2,
				Phone: strPtr("11 99999-0000"), JobTitle: strPtr("Técnico"),
			},
			verify: func(t *testing.T, u *user.User) {
				assert.Equal(t, "11 99999-0000", u.Phone())
				assert.Equal(t, "Técnico", u.JobTitle())
			},
		},
		{
			name:    "user cannot edit another user",
			cmd:     UpdateUserCommand{ActorID: 2, ActorRole: authorization.RoleUser, UserID: 3, Phone: strPtr("1")},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "user cannot change own role",
			cmd:     UpdateUserCommand{ActorID: 2, ActorRole: authorization.RoleUser, UserID: 2, Role: strPtr("admin")},
			wantErr: errors.IsForbiddenError,
		},
		{
			name: "admin changes role and deactivates",
			cmd: UpdateUserCommand{
				ActorID: 1, ActorRole: authorization.RoleAdmin, UserID: 2,
				Role: strPtr("staff"), IsActive: boolPtr(false),
			},
			verify: func(t *testing.T, u *user.User) {
				assert.Equal(t, authorization.RoleStaff, u.Role())
				assert.False(t, u.IsActive())
			},
		},
		{
			name:    "admin cannot deactivate self",
			cmd:     UpdateUserCommand{ActorID: 1, ActorRole: authorization.RoleAdmin, UserID: 1, IsActive: boolPtr(false)},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "unknown user",
			cmd:     UpdateUserCommand{ActorID: 1, ActorRole: authorization.RoleAdmin, UserID: 99, Phone: strPtr("1")},
			wantErr: errors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockUserRepository(
				testUser(1, "admin", "admin", true),
				testUser(2, "maria", "user", true),
				testUser(3, "pedro", "user", true),
			)
			tt.cmd.TenantID = testTenantID
			uc := NewUpdateUserUseCase(repo, &mockUnitRepository{}, &mockSectorRepository{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Empty(t, repo.updated)
				return
			}
			require.NoError(t, err)
			require.Len(t, repo.updated, 1)
			tt.verify(t, repo.updated[0])
		})
	}
}

func TestGetUserUseCase_OtherTenantIsNotFound(t *testing.T) {
	repo := newMockUserRepository(testUser(5, "ana", "user", true))
	uc := NewGetUserUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetUserQuery{TenantID: 2, UserID: 5})

	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsersUseCase_ClampsPagination(t *testing.T) {
	var got user.ListFilter
	repo := newMockUserRepository()
	repo.ListFunc = func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
		got = filter
		return []*user.User{testUser(1, "ana", "user", true)}, 1, nil
	}
	uc := NewListUsersUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListUsersQuery{TenantID: testTenantID, Role: "staff", PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.PageSize)
	require.NotNil(t, got.Role)
	assert.Equal(t, "staff", *got.Role)
	assert.Len(t, result.Users, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestListUsersUseCase_InvalidRole(t *testing.T) {
	uc := NewListUsersUseCase(newMockUserRepository(), &mockLogger{})

	_, err := uc.Execute(context.Background(), ListUsersQuery{TenantID: testTenantID, Role: "owner"})

	assert.True(t, errors.IsValidationError(err))
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ChangePasswordCommand
		wantErr func(error) bool
	}{
		{name: "success", cmd: ChangePasswordCommand{OldPassword: "secret123", NewPassword: "newsecret456"}},
		{name: "wrong old password", cmd: ChangePasswordCommand{OldPassword: "nope12345", NewPassword: "newsecret456"}, wantErr: errors.IsUnauthorizedError},
		{name: "missing old password", cmd: ChangePasswordCommand{NewPassword: "newsecret456"}, wantErr: errors.IsValidationError},
		{name: "new password too short", cmd: ChangePasswordCommand{OldPassword: "secret123", NewPassword: "abc"}, wantErr: errors.IsValidationError},
		{name: "same password", cmd: ChangePasswordCommand{OldPassword: "secret123", NewPassword: "secret123"}, wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := testUser(2, "maria", "user", true)
			repo := newMockUserRepository(u)
			uc := NewChangePasswordUseCase(repo, &mockHasher{}, &mockLogger{})
			tt.cmd.TenantID = testTenantID
			tt.cmd.UserID = 2

			err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Equal(t, "hashed:secret123", u.PasswordHash())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hashed:newsecret456", u.PasswordHash())
		})
	}
}
