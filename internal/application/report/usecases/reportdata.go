package usecases

import (
	"context"
	"strings"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type SetReportDataCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
	Name     string
	Value    string
	DataType string
}

// SetReportDataUseCase creates or replaces a typed custom field.
type SetReportDataUseCase struct {
	reportRepo report.Repository
	dataRepo   report.DataRepository
	logger     logger.Interface
}

func NewSetReportDataUseCase(reportRepo report.Repository, dataRepo report.DataRepository, logger logger.Interface) *SetReportDataUseCase {
	return &SetReportDataUseCase{
		reportRepo: reportRepo,
		dataRepo:   dataRepo,
		logger:     logger,
	}
}

func (uc *SetReportDataUseCase) Execute(ctx context.Context, cmd SetReportDataCommand) (*dto.DataDTO, error) {
	uc.logger.Infow("executing set report data use case", "report_id", cmd.ReportID, "name", cmd.Name)

	dataType := vo.DataType(cmd.DataType)
	if cmd.DataType != "" && !dataType.IsValid() {
		return nil, errors.NewValidationError("invalid data type: " + cmd.DataType)
	}

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !r.CanEdit(cmd.Actor) {
		return nil, toAppError(report.ErrNotAllowed)
	}

	d, err := report.NewData(r.ID(), cmd.Name, cmd.Value, dataType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.dataRepo.Upsert(ctx, d); err != nil {
		uc.logger.Errorw("failed to save report data", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save report data")
	}

	result := dto.ToDataDTO(d)
	return &result, nil
}

type DeleteReportDataCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
	Name     string
}

type DeleteReportDataUseCase struct {
	reportRepo report.Repository
	dataRepo   report.DataRepository
	logger     logger.Interface
}

func NewDeleteReportDataUseCase(reportRepo report.Repository, dataRepo report.DataRepository, logger logger.Interface) *DeleteReportDataUseCase {
	return &DeleteReportDataUseCase{
		reportRepo: reportRepo,
		dataRepo:   dataRepo,
		logger:     logger,
	}
}

func (uc *DeleteReportDataUseCase) Execute(ctx context.Context, cmd DeleteReportDataCommand) error {
	uc.logger.Infow("executing delete report data use case", "report_id", cmd.ReportID, "name", cmd.Name)

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return errors.NewValidationError("field name is required")
	}

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return err
	}
	if !r.CanEdit(cmd.Actor) {
		return toAppError(report.ErrNotAllowed)
	}

	if err := uc.dataRepo.DeleteByName(ctx, r.ID(), name); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete report data", "report_id", r.ID(), "error", err)
		return errors.NewInternalError("failed to delete report data")
	}
	return nil
}
