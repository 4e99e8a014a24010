package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/mappers"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	apperrors "github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// priorityRank orders priorities by severity instead of alphabetically.
const priorityRank = "CASE priority WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END"

// ReportRepository implements report.Repository.
type ReportRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
	logger logger.Interface
}

func NewReportRepository(gdb *gorm.DB, logger logger.Interface) *ReportRepository {
	return &ReportRepository{
		db:     gdb,
		mapper: mappers.NewReportMapper(),
		logger: logger,
	}
}

func (r *ReportRepository) Create(ctx context.Context, entity *report.Report) error {
	model := r.mapper.ToModel(entity)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create report", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set report ID: %w", err)
	}
	return nil
}

// Update writes the report only if the stored version is the one it was
// loaded with. The entity has already bumped its version for this change.
func (r *ReportRepository) Update(ctx context.Context, entity *report.Report) error {
	model := r.mapper.ToModel(entity)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update report", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("report update lost optimistic lock", "id", model.ID, "version", model.Version)
		return apperrors.NewConflictError("report was modified by another request, reload it and try again")
	}
	return nil
}

// Delete removes the report with its history, images and custom fields.
func (r *ReportRepository) Delete(ctx context.Context, id uint) error {
	run := func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.ReportUpdateModel{}, &models.ReportImageModel{}, &models.ReportDataModel{}} {
			if err := tx.Where("report_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.ReportModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("report not found")
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
		r.logger.Errorw("failed to delete report", "id", id, "error", err)
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*report.Report, error) {
	var model models.ReportModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get report", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ReportRepository) List(ctx context.Context, filter report.ListFilter) ([]*report.Report, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Scopes(db.ByTenant(filter.TenantID), db.CreatedBetween(filter.From, filter.To))

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.LocalID != nil {
		query = query.Where("local_id = ?", *filter.LocalID)
	}
	if filter.EquipamentoID != nil {
		query = query.Where("equipamento_id = ?", *filter.EquipamentoID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.VisibleTo != nil {
		query = query.Where("(author_id = ? OR assignee_id = ?)", *filter.VisibleTo, *filter.VisibleTo)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		query = query.Where("(title LIKE ? OR description LIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count reports", "error", err)
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var rows []*models.ReportModel
	err := query.Order(reportOrder(filter.SortBy, filter.SortOrder)).
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list reports", "error", err)
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func reportOrder(sortBy, sortOrder string) clause.OrderBy {
	var expr string
	switch sortBy {
	case "updated_at", "progress":
		expr = sortBy
	case "priority":
		expr = priorityRank
	default:
		expr = "created_at"
	}
	if strings.EqualFold(sortOrder, "asc") {
		expr += " ASC"
	} else {
		expr += " DESC"
	}
	return clause.OrderBy{Expression: clause.Expr{SQL: expr}}
}

// ReportUpdateRepository stores the append-only progress history.
type ReportUpdateRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
	logger logger.Interface
}

func NewReportUpdateRepository(gdb *gorm.DB, logger logger.Interface) *ReportUpdateRepository {
	return &ReportUpdateRepository{db: gdb, mapper: mappers.NewReportMapper(), logger: logger}
}

func (r *ReportUpdateRepository) Create(ctx context.Context, u *report.Update) error {
	model, err := r.mapper.UpdateToModel(u)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create report update", "report_id", model.ReportID, "error", err)
		return fmt.Errorf("failed to create report update: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *ReportUpdateRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Update, error) {
	var rows []*models.ReportUpdateModel
	if err := db.GetTxFromContext(ctx, r.db).Where("report_id = ?", reportID).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list report updates: %w", err)
	}
	out := make([]*report.Update, 0, len(rows))
	for _, m := range rows {
		u, err := r.mapper.UpdateToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

type ReportImageRepository struct {
	db *gorm.DB
}

func NewReportImageRepository(gdb *gorm.DB) *ReportImageRepository {
	return &ReportImageRepository{db: gdb}
}

func (r *ReportImageRepository) Create(ctx context.Context, img *report.Image) error {
	model := &models.ReportImageModel{
		ReportID:   img.ReportID(),
		Path:       img.Path(),
		Caption:    img.Caption(),
		Position:   img.Position(),
		UploadedAt: img.UploadedAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create report image: %w", err)
	}
	return img.SetID(model.ID)
}

func (r *ReportImageRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Image, error) {
	var rows []*models.ReportImageModel
	if err := db.GetTxFromContext(ctx, r.db).Where("report_id = ?", reportID).Order("position, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list report images: %w", err)
	}
	out := make([]*report.Image, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.ImageToEntity(m))
	}
	return out, nil
}

func (r *ReportImageRepository) CountByReport(ctx context.Context, reportID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ReportImageModel{}).Where("report_id = ?", reportID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count report images: %w", err)
	}
	return count, nil
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(gdb *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: gdb}
}

func (r *CategoryRepository) Create(ctx context.Context, c *report.Category) error {
	model := &models.ReportCategoryModel{
		TenantID:    c.TenantID(),
		Name:        c.Name(),
		Description: c.Description(),
		Color:       c.Color(),
		CreatedAt:   c.CreatedAt(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*report.Category, error) {
	var model models.ReportCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToEntity(&model), nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, tenantID uint, name string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ReportCategoryModel{}).
		Where("tenant_id = ? AND LOWER(name) = ?", tenantID, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) List(ctx context.Context, tenantID uint) ([]*report.Category, error) {
	var rows []*models.ReportCategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.ByTenant(tenantID)).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]*report.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.CategoryToEntity(m))
	}
	return out, nil
}

type ReportDataRepository struct {
	db *gorm.DB
}

func NewReportDataRepository(gdb *gorm.DB) *ReportDataRepository {
	return &ReportDataRepository{db: gdb}
}

func (r *ReportDataRepository) Upsert(ctx context.Context, d *report.Data) error {
	model := &models.ReportDataModel{
		ReportID:  d.ReportID(),
		Name:      d.Name(),
		Value:     d.Value(),
		DataType:  d.DataType().String(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "data_type", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save report data: %w", err)
	}
	if model.ID == 0 {
		var stored models.ReportDataModel
		if err := db.GetTxFromContext(ctx, r.db).
			Where("report_id = ? AND name = ?", model.ReportID, model.Name).
			First(&stored).Error; err != nil {
			return fmt.Errorf("failed to reload report data: %w", err)
		}
		model.ID = stored.ID
	}
	d.SetID(model.ID)
	return nil
}

func (r *ReportDataRepository) DeleteByName(ctx context.Context, reportID uint, name string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("report_id = ? AND name = ?", reportID, name).Delete(&models.ReportDataModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete report data: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("report data not found", name)
	}
	return nil
}

func (r *ReportDataRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Data, error) {
	var rows []*models.ReportDataModel
	if err := db.GetTxFromContext(ctx, r.db).Where("report_id = ?", reportID).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list report data: %w", err)
	}
	out := make([]*report.Data, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.DataToEntity(m))
	}
	return out, nil
}
