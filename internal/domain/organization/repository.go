package organization

import "context"

type UnitRepository interface {
	Create(ctx context.Context, unit *Unit) error
	GetByID(ctx context.Context, id uint) (*Unit, error)
	ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error)
	List(ctx context.Context, tenantID uint, activeOnly bool) ([]*Unit, error)
}

type SectorRepository interface {
	Create(ctx context.Context, sector *Sector) error
	GetByID(ctx context.Context, id uint) (*Sector, error)
	ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error)
	List(ctx context.Context, tenantID uint, unitID *uint) ([]*Sector, error)
}
