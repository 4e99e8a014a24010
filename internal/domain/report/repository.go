package report

import (
	"context"
	"time"
)

type ListFilter struct {
	TenantID      uint
	Status        *string
	Priority      *string
	AssigneeID    *uint
	AuthorID      *uint
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	Search        string
	From          time.Time
	To            time.Time
	// VisibleTo limits results to reports authored by or assigned to the user.
	VisibleTo *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type Repository interface {
	Create(ctx context.Context, r *Report) error
	Update(ctx context.Context, r *Report) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Report, error)
	List(ctx context.Context, filter ListFilter) ([]*Report, int64, error)
}

type UpdateRepository interface {
	Create(ctx context.Context, u *Update) error
	ListByReport(ctx context.Context, reportID uint) ([]*Update, error)
}

type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	ListByReport(ctx context.Context, reportID uint) ([]*Image, error)
	CountByReport(ctx context.Context, reportID uint) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	ExistsByName(ctx context.Context, tenantID uint, name string) (bool, error)
	List(ctx context.Context, tenantID uint) ([]*Category, error)
}

type DataRepository interface {
	// Upsert inserts or replaces the field with the same (report, name).
	Upsert(ctx context.Context, d *Data) error
	DeleteByName(ctx context.Context, reportID uint, name string) error
	ListByReport(ctx context.Context, reportID uint) ([]*Data, error)
}
