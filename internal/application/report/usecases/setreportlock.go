package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// SetReportLockCommand locks (Locked=true) or unlocks a report for author edits.
type SetReportLockCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
	Locked   bool
}

type SetReportLockUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewSetReportLockUseCase(reportRepo report.Repository, logger logger.Interface) *SetReportLockUseCase {
	return &SetReportLockUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *SetReportLockUseCase) Execute(ctx context.Context, cmd SetReportLockCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing set report lock use case", "report_id", cmd.ReportID, "locked", cmd.Locked)

	if !cmd.Actor.Staff {
		return nil, errors.NewForbiddenError("only staff can lock or unlock reports")
	}

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	if !r.SetEditable(!cmd.Locked) {
		return dto.ToReportDTO(r), nil
	}
	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update report", "report_id", cmd.ReportID, "error", err)
		return nil, persistError(err, "failed to update report")
	}
	return dto.ToReportDTO(r), nil
}
