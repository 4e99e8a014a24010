package location

import (
	"fmt"
	"strings"
	"time"
)

// MotorData holds the editable attributes of an electric motor.
type MotorData struct {
	LocalID           uint
	Name              string
	Code              string
	Type              string
	Description       string
	PowerKW           *float64
	Voltage           *float64
	Current           *float64
	RPM               *int
	Manufacturer      string
	Model             string
	SerialNumber      string
	InstallDate       *time.Time
	OperationalStatus OperationalStatus
	ResponsibleID     *uint
	Active            bool
}

func (d *MotorData) normalize() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Code = strings.TrimSpace(d.Code)
	if d.OperationalStatus == "" {
		d.OperationalStatus = OperationalOperando
	}

	switch {
	case d.LocalID == 0:
		return fmt.Errorf("local is required")
	case d.Name == "":
		return fmt.Errorf("motor name is required")
	case len(d.Name) > 100:
		return fmt.Errorf("motor name cannot exceed 100 characters")
	case d.Code == "":
		return fmt.Errorf("motor code is required")
	case len(d.Type) > 50:
		return fmt.Errorf("motor type cannot exceed 50 characters")
	case !d.OperationalStatus.IsValid():
		return fmt.Errorf("invalid operational status: %s", d.OperationalStatus)
	case d.PowerKW != nil && *d.PowerKW < 0:
		return fmt.Errorf("power cannot be negative")
	case d.Voltage != nil && *d.Voltage < 0:
		return fmt.Errorf("voltage cannot be negative")
	case d.Current != nil && *d.Current < 0:
		return fmt.Errorf("current cannot be negative")
	case d.RPM != nil && *d.RPM < 0:
		return fmt.Errorf("rpm cannot be negative")
	}
	return nil
}

type Motor struct {
	id        uint
	tenantID  uint
	data      MotorData
	createdAt time.Time
	updatedAt time.Time
}

func NewMotor(tenantID uint, d MotorData) (*Motor, error) {
	if err := d.normalize(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Motor{tenantID: tenantID, data: d, createdAt: now, updatedAt: now}, nil
}

func ReconstructMotor(id, tenantID uint, d MotorData, createdAt, updatedAt time.Time) *Motor {
	return &Motor{id: id, tenantID: tenantID, data: d, createdAt: createdAt, updatedAt: updatedAt}
}

func (m *Motor) ID() uint             { return m.id }
func (m *Motor) TenantID() uint       { return m.tenantID }
func (m *Motor) LocalID() uint        { return m.data.LocalID }
func (m *Motor) Name() string         { return m.data.Name }
func (m *Motor) Code() string         { return m.data.Code }
func (m *Motor) Data() MotorData      { return m.data }
func (m *Motor) CreatedAt() time.Time { return m.createdAt }
func (m *Motor) UpdatedAt() time.Time { return m.updatedAt }

func (m *Motor) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("motor ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("motor ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Motor) Update(d MotorData) error {
	if err := d.normalize(); err != nil {
		return err
	}
	m.data = d
	m.updatedAt = time.Now().UTC()
	return nil
}
