package mappers

import (
	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
)

func UnitToEntity(m *models.UnitModel) *organization.Unit {
	if m == nil {
		return nil
	}
	return organization.ReconstructUnit(m.ID, m.TenantID, m.Code, m.Name, m.Description, m.IsActive, m.CreatedAt, m.UpdatedAt)
}

func UnitToModel(u *organization.Unit) *models.UnitModel {
	return &models.UnitModel{
		ID:          u.ID(),
		TenantID:    u.TenantID(),
		Code:        u.Code(),
		Name:        u.Name(),
		Description: u.Description(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func SectorToEntity(m *models.SectorModel) *organization.Sector {
	if m == nil {
		return nil
	}
	return organization.ReconstructSector(m.ID, m.TenantID, m.Code, organization.SectorName(m.Name), m.UnitID, m.IsActive, m.CreatedAt, m.UpdatedAt)
}

func SectorToModel(s *organization.Sector) *models.SectorModel {
	return &models.SectorModel{
		ID:        s.ID(),
		TenantID:  s.TenantID(),
		Code:      s.Code(),
		Name:      string(s.Name()),
		UnitID:    s.UnitID(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}
