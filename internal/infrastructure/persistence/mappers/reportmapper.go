package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

// ReportMapper converts reports and their update history.
type ReportMapper interface {
	ToEntity(model *models.ReportModel) (*report.Report, error)
	ToModel(entity *report.Report) *models.ReportModel
	ToEntities(models []*models.ReportModel) ([]*report.Report, error)
	UpdateToEntity(model *models.ReportUpdateModel) (*report.Update, error)
	UpdateToModel(entity *report.Update) (*models.ReportUpdateModel, error)
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToEntity(model *models.ReportModel) (*report.Report, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := report.ReconstructReport(model.ID, report.State{
		TenantID:      model.TenantID,
		AuthorID:      model.AuthorID,
		AssigneeID:    model.AssigneeID,
		LocalID:       model.LocalID,
		EquipamentoID: model.EquipamentoID,
		CategoryID:    model.CategoryID,
		OccurredAt:    model.OccurredAt,
		Title:         model.Title,
		Description:   model.Description,
		Status:        model.Status,
		Priority:      model.Priority,
		Progress:      model.Progress,
		Editable:      model.Editable,
		MainImage:     model.MainImage,
		ResolvedAt:    model.ResolvedAt,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct report %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *ReportMapperImpl) ToModel(entity *report.Report) *models.ReportModel {
	if entity == nil {
		return nil
	}
	return &models.ReportModel{
		ID:            entity.ID(),
		TenantID:      entity.TenantID(),
		AuthorID:      entity.AuthorID(),
		AssigneeID:    entity.AssigneeID(),
		LocalID:       entity.LocalID(),
		EquipamentoID: entity.EquipamentoID(),
		CategoryID:    entity.CategoryID(),
		OccurredAt:    entity.OccurredAt(),
		Title:         entity.Title(),
		Description:   entity.Description(),
		Status:        entity.Status().String(),
		Priority:      string(entity.Priority()),
		Progress:      entity.Progress(),
		Editable:      entity.Editable(),
		MainImage:     entity.MainImage(),
		ResolvedAt:    entity.ResolvedAt(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *ReportMapperImpl) ToEntities(modelList []*models.ReportModel) ([]*report.Report, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}

func (m *ReportMapperImpl) UpdateToEntity(model *models.ReportUpdateModel) (*report.Update, error) {
	var images []report.UpdateImage
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to decode images of update %d: %w", model.ID, err)
		}
	}
	return report.ReconstructUpdate(model.ID, model.ReportID, model.AuthorID,
		model.PreviousProgress, model.NewProgress, model.PreviousStatus, model.NewStatus,
		model.Note, images, model.CreatedAt), nil
}

func (m *ReportMapperImpl) UpdateToModel(entity *report.Update) (*models.ReportUpdateModel, error) {
	images := entity.Images()
	if images == nil {
		images = []report.UpdateImage{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update images: %w", err)
	}
	return &models.ReportUpdateModel{
		ID:               entity.ID(),
		ReportID:         entity.ReportID(),
		AuthorID:         entity.AuthorID(),
		PreviousProgress: entity.PreviousProgress(),
		NewProgress:      entity.NewProgress(),
		PreviousStatus:   entity.PreviousStatus().String(),
		NewStatus:        entity.NewStatus().String(),
		Note:             entity.Note(),
		Images:           datatypes.JSON(raw),
		CreatedAt:        entity.CreatedAt(),
	}, nil
}

func ImageToEntity(m *models.ReportImageModel) *report.Image {
	return report.ReconstructImage(m.ID, m.ReportID, m.Path, m.Caption, m.Position, m.UploadedAt)
}

func CategoryToEntity(m *models.ReportCategoryModel) *report.Category {
	return report.ReconstructCategory(m.ID, m.TenantID, m.Name, m.Description, m.Color, m.CreatedAt)
}

func DataToEntity(m *models.ReportDataModel) *report.Data {
	return report.ReconstructData(m.ID, m.ReportID, m.Name, m.Value, m.DataType, m.CreatedAt, m.UpdatedAt)
}
