package organization

import (
	"fmt"
	"strings"
	"time"
)

// SectorName is one of the fixed maintenance areas.
type SectorName string

const (
	SectorEletrica     SectorName = "M_ELETRICA"
	SectorMecanica     SectorName = "M_MECANICA"
	SectorRefrigeracao SectorName = "REFRIGERACAO"
	SectorProducao     SectorName = "PRODUCAO"
	SectorQualidade    SectorName = "C_QUALIDADE"
	SectorTerceiro     SectorName = "TERCEIRO"
)

var sectorLabels = map[SectorName]string{
	SectorEletrica:     "Manutenção Elétrica",
	SectorMecanica:     "Manutenção Mecânica",
	SectorRefrigeracao: "Refrigeração",
	SectorProducao:     "Produção",
	SectorQualidade:    "Controle de Qualidade",
	SectorTerceiro:     "Terceiro",
}

func (s SectorName) IsValid() bool {
	_, ok := sectorLabels[s]
	return ok
}

func (s SectorName) Label() string {
	return sectorLabels[s]
}

type Sector struct {
	id        uint
	tenantID  uint
	code      string
	name      SectorName
	unitID    *uint
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSector(tenantID uint, code string, name SectorName, unitID *uint) (*Sector, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("sector code is required")
	}
	if len(code) > 15 {
		return nil, fmt.Errorf("sector code cannot exceed 15 characters")
	}
	if !name.IsValid() {
		return nil, fmt.Errorf("invalid sector name: %s", name)
	}
	now := time.Now().UTC()
	return &Sector{
		tenantID:  tenantID,
		code:      code,
		name:      name,
		unitID:    unitID,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSector(id, tenantID uint, code string, name SectorName, unitID *uint, isActive bool, createdAt, updatedAt time.Time) *Sector {
	return &Sector{
		id:        id,
		tenantID:  tenantID,
		code:      code,
		name:      name,
		unitID:    unitID,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Sector) ID() uint             { return s.id }
func (s *Sector) TenantID() uint       { return s.tenantID }
func (s *Sector) Code() string         { return s.code }
func (s *Sector) Name() SectorName     { return s.name }
func (s *Sector) UnitID() *uint        { return s.unitID }
func (s *Sector) IsActive() bool       { return s.isActive }
func (s *Sector) CreatedAt() time.Time { return s.createdAt }
func (s *Sector) UpdatedAt() time.Time { return s.updatedAt }

func (s *Sector) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sector ID is already set")
	}
	s.id = id
	return nil
}
