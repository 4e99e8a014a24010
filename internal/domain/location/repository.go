package location

import "context"

type ListFilter struct {
	TenantID uint
	LocalID  *uint
	Type     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

type LocalRepository interface {
	Create(ctx context.Context, local *Local) error
	Update(ctx context.Context, local *Local) error
	// Delete removes the Local together with its equipment and motors.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Local, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Local, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Local, int64, error)
	EquipmentStats(ctx context.Context, localID uint) (*EquipmentStats, error)
}

type EquipamentoRepository interface {
	Create(ctx context.Context, e *Equipamento) error
	Update(ctx context.Context, e *Equipamento) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Equipamento, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Equipamento, error)
	List(ctx context.Context, filter ListFilter) ([]*Equipamento, int64, error)
}

type MotorRepository interface {
	Create(ctx context.Context, m *Motor) error
	Update(ctx context.Context, m *Motor) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Motor, error)
	List(ctx context.Context, filter ListFilter) ([]*Motor, int64, error)
}
