package location

import (
	"fmt"
	"strings"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/shared"
)

// EquipamentoData holds the editable attributes of an Equipamento.
type EquipamentoData struct {
	LocalID           uint
	Name              string
	Code              string
	Description       string
	Type              EquipmentType
	Manufacturer      string
	Model             string
	SerialNumber      string
	InstallDate       *time.Time
	OperationalStatus OperationalStatus
	Active            bool
	Priority          shared.Priority
	AcquisitionDate   *time.Time
	// AcquisitionValue is stored in cents.
	AcquisitionValue *int64
	WarrantyUntil    *time.Time
	ResponsibleID    *uint
	Notes            string
}

func (d *EquipamentoData) normalize() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Code = strings.TrimSpace(d.Code)
	if d.OperationalStatus == "" {
		d.OperationalStatus = OperationalOperando
	}
	if d.Priority == "" {
		d.Priority = shared.PriorityMedium
	}

	switch {
	case d.LocalID == 0:
		return fmt.Errorf("local is required")
	case d.Name == "":
		return fmt.Errorf("equipment name is required")
	case len(d.Name) > 100:
		return fmt.Errorf("equipment name cannot exceed 100 characters")
	case d.Code == "":
		return fmt.Errorf("equipment code is required")
	case len(d.Code) > 50:
		return fmt.Errorf("equipment code cannot exceed 50 characters")
	case !d.Type.IsValid():
		return fmt.Errorf("invalid equipment type: %s", d.Type)
	case !d.OperationalStatus.IsValid():
		return fmt.Errorf("invalid operational status: %s", d.OperationalStatus)
	case !d.Priority.IsValid():
		return fmt.Errorf("invalid priority: %s", d.Priority)
	case d.AcquisitionValue != nil && *d.AcquisitionValue < 0:
		return fmt.Errorf("acquisition value cannot be negative")
	}
	return nil
}

type Equipamento struct {
	id        uint
	tenantID  uint
	data      EquipamentoData
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipamento(tenantID uint, d EquipamentoData) (*Equipamento, error) {
	if err := d.normalize(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Equipamento{tenantID: tenantID, data: d, createdAt: now, updatedAt: now}, nil
}

func ReconstructEquipamento(id, tenantID uint, d EquipamentoData, createdAt, updatedAt time.Time) *Equipamento {
	return &Equipamento{id: id, tenantID: tenantID, data: d, createdAt: createdAt, updatedAt: updatedAt}
}

func (e *Equipamento) ID() uint                             { return e.id }
func (e *Equipamento) TenantID() uint                       { return e.tenantID }
func (e *Equipamento) LocalID() uint                        { return e.data.LocalID }
func (e *Equipamento) Name() string                         { return e.data.Name }
func (e *Equipamento) Code() string                         { return e.data.Code }
func (e *Equipamento) Type() EquipmentType                  { return e.data.Type }
func (e *Equipamento) OperationalStatus() OperationalStatus { return e.data.OperationalStatus }
func (e *Equipamento) Priority() shared.Priority            { return e.data.Priority }
func (e *Equipamento) Active() bool                         { return e.data.Active }
func (e *Equipamento) Data() EquipamentoData                { return e.data }
func (e *Equipamento) CreatedAt() time.Time                 { return e.createdAt }
func (e *Equipamento) UpdatedAt() time.Time                 { return e.updatedAt }

func (e *Equipamento) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Equipamento) Update(d EquipamentoData) error {
	if err := d.normalize(); err != nil {
		return err
	}
	e.data = d
	e.updatedAt = time.Now().UTC()
	return nil
}

// IsWarrantyValid reports whether the warranty runs through the calendar day of now.
func (e *Equipamento) IsWarrantyValid(now time.Time) bool {
	if e.data.WarrantyUntil == nil {
		return false
	}
	w := e.data.WarrantyUntil.In(now.Location())
	wy, wm, wd := w.Date()
	ny, nm, nd := now.Date()
	warrantyDay := time.Date(wy, wm, wd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return !warrantyDay.Before(today)
}
