package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	// GetByLogin matches either the username or the e-mail address.
	GetByLogin(ctx context.Context, login string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListManagerIDs returns active users flagged as managers in the tenant.
	ListManagerIDs(ctx context.Context, tenantID uint) ([]uint, error)
	ListActiveIDs(ctx context.Context, tenantID uint) ([]uint, error)
}

type ListFilter struct {
	TenantID  uint
	Role      *string
	IsActive  *bool
	IsManager *bool
	Search    string
	Page      int
	PageSize  int
}
