package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/mappers"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type UnitRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUnitRepository(gdb *gorm.DB, logger logger.Interface) *UnitRepository {
	return &UnitRepository{db: gdb, logger: logger}
}

func (r *UnitRepository) Create(ctx context.Context, unit *organization.Unit) error {
	model := mappers.UnitToModel(unit)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create unit", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return unit.SetID(model.ID)
}

func (r *UnitRepository) GetByID(ctx context.Context, id uint) (*organization.Unit, error) {
	var model models.UnitModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return mappers.UnitToEntity(&model), nil
}

func (r *UnitRepository) ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.UnitModel{}).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unit code: %w", err)
	}
	return count > 0, nil
}

func (r *UnitRepository) List(ctx context.Context, tenantID uint, activeOnly bool) ([]*organization.Unit, error) {
	query := db.GetTxFromContext(ctx, r.db).Scopes(db.ByTenant(tenantID))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var rows []*models.UnitModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list units", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	out := make([]*organization.Unit, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.UnitToEntity(m))
	}
	return out, nil
}

type SectorRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSectorRepository(gdb *gorm.DB, logger logger.Interface) *SectorRepository {
	return &SectorRepository{db: gdb, logger: logger}
}

func (r *SectorRepository) Create(ctx context.Context, sector *organization.Sector) error {
	model := mappers.SectorToModel(sector)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create sector", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create sector: %w", err)
	}
	return sector.SetID(model.ID)
}

func (r *SectorRepository) GetByID(ctx context.Context, id uint) (*organization.Sector, error) {
	var model models.SectorModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sector: %w", err)
	}
	return mappers.SectorToEntity(&model), nil
}

func (r *SectorRepository) ExistsByCode(ctx context.Context, tenantID uint, code string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SectorModel{}).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check sector code: %w", err)
	}
	return count > 0, nil
}

func (r *SectorRepository) List(ctx context.Context, tenantID uint, unitID *uint) ([]*organization.Sector, error) {
	query := db.GetTxFromContext(ctx, r.db).Scopes(db.ByTenant(tenantID))
	if unitID != nil {
		query = query.Where("unit_id = ?", *unitID)
	}
	var rows []*models.SectorModel
	if err := query.Order("name").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list sectors", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	out := make([]*organization.Sector, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.SectorToEntity(m))
	}
	return out, nil
}
