package location

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var cepRegex = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// LocalData holds the editable attributes of a Local.
type LocalData struct {
	Name          string
	Code          string
	Type          LocalType
	Address       string
	City          string
	State         string
	CEP           string
	Phone         string
	Email         string
	ResponsibleID *uint
	Status        LocalStatus
	Notes         string
}

func (d *LocalData) normalize() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Code = strings.TrimSpace(d.Code)
	d.State = strings.ToUpper(strings.TrimSpace(d.State))
	if d.Status == "" {
		d.Status = LocalStatusAtivo
	}

	switch {
	case d.Name == "":
		return fmt.Errorf("local name is required")
	case len(d.Name) > 200:
		return fmt.Errorf("local name cannot exceed 200 characters")
	case d.Code == "":
		return fmt.Errorf("local code is required")
	case len(d.Code) > 50:
		return fmt.Errorf("local code cannot exceed 50 characters")
	case !d.Type.IsValid():
		return fmt.Errorf("invalid local type: %s", d.Type)
	case !d.Status.IsValid():
		return fmt.Errorf("invalid local status: %s", d.Status)
	case d.City == "":
		return fmt.Errorf("city is required")
	case len(d.State) != 2:
		return fmt.Errorf("state must be a two-letter code")
	case d.CEP != "" && !cepRegex.MatchString(d.CEP):
		return fmt.Errorf("invalid CEP: %s", d.CEP)
	}
	return nil
}

type Local struct {
	id        uint
	tenantID  uint
	data      LocalData
	createdAt time.Time
	updatedAt time.Time
}

func NewLocal(tenantID uint, d LocalData) (*Local, error) {
	if err := d.normalize(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Local{tenantID: tenantID, data: d, createdAt: now, updatedAt: now}, nil
}

func ReconstructLocal(id, tenantID uint, d LocalData, createdAt, updatedAt time.Time) *Local {
	return &Local{id: id, tenantID: tenantID, data: d, createdAt: createdAt, updatedAt: updatedAt}
}

func (l *Local) ID() uint                { return l.id }
func (l *Local) TenantID() uint          { return l.tenantID }
func (l *Local) Name() string            { return l.data.Name }
func (l *Local) Code() string            { return l.data.Code }
func (l *Local) Type() LocalType         { return l.data.Type }
func (l *Local) Address() string         { return l.data.Address }
func (l *Local) City() string            { return l.data.City }
func (l *Local) State() string           { return l.data.State }
func (l *Local) CEP() string             { return l.data.CEP }
func (l *Local) Phone() string           { return l.data.Phone }
func (l *Local) Email() string           { return l.data.Email }
func (l *Local) ResponsibleID() *uint    { return l.data.ResponsibleID }
func (l *Local) Status() LocalStatus     { return l.data.Status }
func (l *Local) Notes() string           { return l.data.Notes }
func (l *Local) Data() LocalData         { return l.data }
func (l *Local) CreatedAt() time.Time    { return l.createdAt }
func (l *Local) UpdatedAt() time.Time    { return l.updatedAt }
func (l *Local) DisplayName() string     { return fmt.Sprintf("%s (%s)", l.data.Name, l.data.Code) }

func (l *Local) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("local ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("local ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Local) Update(d LocalData) error {
	if err := d.normalize(); err != nil {
		return err
	}
	l.data = d
	l.updatedAt = time.Now().UTC()
	return nil
}

// EquipmentStats summarizes the equipment of a Local by operational status.
type EquipmentStats struct {
	Total      int64
	Operando   int64
	Manutencao int64
	Inativo    int64
}
