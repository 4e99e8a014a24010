package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type ListReportUpdatesQuery struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
}

type ListReportUpdatesUseCase struct {
	reportRepo report.Repository
	updateRepo report.UpdateRepository
	logger     logger.Interface
}

func NewListReportUpdatesUseCase(
	reportRepo report.Repository,
	updateRepo report.UpdateRepository,
	logger logger.Interface,
) *ListReportUpdatesUseCase {
	return &ListReportUpdatesUseCase{
		reportRepo: reportRepo,
		updateRepo: updateRepo,
		logger:     logger,
	}
}

func (uc *ListReportUpdatesUseCase) Execute(ctx context.Context, query ListReportUpdatesQuery) ([]dto.UpdateDTO, error) {
	r, err := loadReport(ctx, uc.reportRepo, query.TenantID, query.ReportID, query.Actor)
	if err != nil {
		return nil, err
	}

	updates, err := uc.updateRepo.ListByReport(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to list report updates", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to list report updates")
	}

	out := make([]dto.UpdateDTO, 0, len(updates))
	for _, u := range updates {
		out = append(out, dto.ToUpdateDTO(u))
	}
	return out, nil
}
