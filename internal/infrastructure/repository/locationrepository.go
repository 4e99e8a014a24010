package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/mappers"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// LocalRepository implements location.LocalRepository.
type LocalRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLocalRepository(gdb *gorm.DB, logger logger.Interface) *LocalRepository {
	return &LocalRepository{db: gdb, logger: logger}
}

func (r *LocalRepository) Create(ctx context.Context, local *location.Local) error {
	model := mappers.LocalToModel(local)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create local", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create local: %w", err)
	}
	return local.SetID(model.ID)
}

func (r *LocalRepository) Update(ctx context.Context, local *location.Local) error {
	model := mappers.LocalToModel(local)
	if err := saveColumns(db.GetTxFromContext(ctx, r.db), &models.LocalModel{}, model.ID, model); err != nil {
		r.logger.Errorw("failed to update local", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update local: %w", err)
	}
	return nil
}

// Delete removes the local, its equipment and motors, and detaches reports
// that referenced any of them.
func (r *LocalRepository) Delete(ctx context.Context, id uint) error {
	run := func(tx *gorm.DB) error {
		equipment := tx.Model(&models.EquipamentoModel{}).Select("id").Where("local_id = ?", id)
		if err := tx.Model(&models.ReportModel{}).
			Where("equipamento_id IN (?)", equipment).
			Update("equipamento_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ReportModel{}).Where("local_id = ?", id).Update("local_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("local_id = ?", id).Delete(&models.EquipamentoModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("local_id = ?", id).Delete(&models.MotorModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.LocalModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("local not found")
		}
		return nil
	}

	var err error
	if db.InTransaction(ctx) {
		err = run(db.GetTxFromContext(ctx, r.db))
	} else {
		err = r.db.WithContext(ctx).Transaction(run)
	}
	if err != nil {
		r.logger.Errorw("failed to delete local", "id", id, "error", err)
		return fmt.Errorf("failed to delete local: %w", err)
	}
	r.logger.Infow("local deleted", "id", id)
	return nil
}

func (r *LocalRepository) GetByID(ctx context.Context, id uint) (*location.Local, error) {
	var model models.LocalModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get local: %w", err)
	}
	return mappers.LocalToEntity(&model), nil
}

func (r *LocalRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Local, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []*models.LocalModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get locals: %w", err)
	}
	out := make([]*location.Local, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.LocalToEntity(m))
	}
	return out, nil
}

func (r *LocalRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.LocalModel{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check local code: %w", err)
	}
	return count > 0, nil
}

func (r *LocalRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Local, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.LocalModel{}).Scopes(db.ByTenant(filter.TenantID))
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = query.Scopes(searchNameCode(filter.Search, "city"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count locals: %w", err)
	}
	var rows []*models.LocalModel
	if err := query.Order("name").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list locals", "error", err)
		return nil, 0, fmt.Errorf("failed to list locals: %w", err)
	}
	out := make([]*location.Local, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.LocalToEntity(m))
	}
	return out, total, nil
}

func (r *LocalRepository) EquipmentStats(ctx context.Context, localID uint) (*location.EquipmentStats, error) {
	var rows []struct {
		OperationalStatus string
		Count             int64
	}
	err := db.GetTxFromContext(ctx, r.db).Model(&models.EquipamentoModel{}).
		Select("operational_status, COUNT(*) AS count").
		Where("local_id = ?", localID).
		Group("operational_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate equipment: %w", err)
	}

	stats := &location.EquipmentStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch location.OperationalStatus(row.OperationalStatus) {
		case location.OperationalOperando:
			stats.Operando += row.Count
		case location.OperationalManutencao:
			stats.Manutencao += row.Count
		case location.OperationalInativo:
			stats.Inativo += row.Count
		}
	}
	return stats, nil
}

// EquipamentoRepository implements location.EquipamentoRepository.
type EquipamentoRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEquipamentoRepository(gdb *gorm.DB, logger logger.Interface) *EquipamentoRepository {
	return &EquipamentoRepository{db: gdb, logger: logger}
}

func (r *EquipamentoRepository) Create(ctx context.Context, e *location.Equipamento) error {
	model := mappers.EquipamentoToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create equipamento", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create equipamento: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EquipamentoRepository) Update(ctx context.Context, e *location.Equipamento) error {
	model := mappers.EquipamentoToModel(e)
	if err := saveColumns(db.GetTxFromContext(ctx, r.db), &models.EquipamentoModel{}, model.ID, model); err != nil {
		r.logger.Errorw("failed to update equipamento", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update equipamento: %w", err)
	}
	return nil
}

// Delete detaches reports that referenced the equipment before removing it.
func (r *EquipamentoRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ReportModel{}).Where("equipamento_id = ?", id).Update("equipamento_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach reports: %w", err)
	}
	result := tx.Delete(&models.EquipamentoModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete equipamento", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete equipamento: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("equipamento not found")
	}
	return nil
}

func (r *EquipamentoRepository) GetByID(ctx context.Context, id uint) (*location.Equipamento, error) {
	var model models.EquipamentoModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get equipamento: %w", err)
	}
	return mappers.EquipamentoToEntity(&model), nil
}

func (r *EquipamentoRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Equipamento, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []*models.EquipamentoModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get equipamentos: %w", err)
	}
	out := make([]*location.Equipamento, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.EquipamentoToEntity(m))
	}
	return out, nil
}

func (r *EquipamentoRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Equipamento, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.EquipamentoModel{}).Scopes(db.ByTenant(filter.TenantID))
	if filter.LocalID != nil {
		query = query.Where("local_id = ?", *filter.LocalID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("operational_status = ?", filter.Status)
	}
	query = query.Scopes(searchNameCode(filter.Search, "serial_number"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count equipamentos: %w", err)
	}
	var rows []*models.EquipamentoModel
	if err := query.Order("name").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list equipamentos", "error", err)
		return nil, 0, fmt.Errorf("failed to list equipamentos: %w", err)
	}
	out := make([]*location.Equipamento, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.EquipamentoToEntity(m))
	}
	return out, total, nil
}

// MotorRepository implements location.MotorRepository.
type MotorRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMotorRepository(gdb *gorm.DB, logger logger.Interface) *MotorRepository {
	return &MotorRepository{db: gdb, logger: logger}
}

func (r *MotorRepository) Create(ctx context.Context, m *location.Motor) error {
	model := mappers.MotorToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create motor", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create motor: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MotorRepository) Update(ctx context.Context, m *location.Motor) error {
	model := mappers.MotorToModel(m)
	if err := saveColumns(db.GetTxFromContext(ctx, r.db), &models.MotorModel{}, model.ID, model); err != nil {
		r.logger.Errorw("failed to update motor", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update motor: %w", err)
	}
	return nil
}

func (r *MotorRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MotorModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete motor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("motor not found")
	}
	return nil
}

func (r *MotorRepository) GetByID(ctx context.Context, id uint) (*location.Motor, error) {
	var model models.MotorModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get motor: %w", err)
	}
	return mappers.MotorToEntity(&model), nil
}

func (r *MotorRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Motor, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MotorModel{}).Scopes(db.ByTenant(filter.TenantID))
	if filter.LocalID != nil {
		query = query.Where("local_id = ?", *filter.LocalID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("operational_status = ?", filter.Status)
	}
	query = query.Scopes(searchNameCode(filter.Search, "serial_number"))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count motors: %w", err)
	}
	var rows []*models.MotorModel
	if err := query.Order("name").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list motors", "error", err)
		return nil, 0, fmt.Errorf("failed to list motors: %w", err)
	}
	out := make([]*location.Motor, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.MotorToEntity(m))
	}
	return out, total, nil
}

// searchNameCode matches the term against name, code and one extra column.
func searchNameCode(term, extra string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" {
			return q
		}
		like := "%" + term + "%"
		return q.Where("name LIKE ? OR code LIKE ? OR "+extra+" LIKE ?", like, like, like)
	}
}

// saveColumns writes every column of model except id and created_at.
func saveColumns(tx *gorm.DB, table interface{}, id uint, model interface{}) error {
	result := tx.Model(table).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("record %d not found", id)
	}
	return nil
}
