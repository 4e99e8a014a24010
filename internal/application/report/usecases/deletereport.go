package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type DeleteReportCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
}

type DeleteReportUseCase struct {
	reportRepo report.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewDeleteReportUseCase(reportRepo report.Repository, publisher events.EventPublisher, logger logger.Interface) *DeleteReportUseCase {
	return &DeleteReportUseCase{
		reportRepo: reportRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *DeleteReportUseCase) Execute(ctx context.Context, cmd DeleteReportCommand) error {
	uc.logger.Infow("executing delete report use case", "report_id", cmd.ReportID, "user_id", cmd.Actor.UserID)

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return err
	}

	if !r.CanEdit(cmd.Actor) {
		uc.logger.Warnw("user cannot delete report", "report_id", cmd.ReportID, "user_id", cmd.Actor.UserID)
		if r.AuthorID() == cmd.Actor.UserID {
			return toAppError(report.ErrReportLocked)
		}
		return toAppError(report.ErrNotAllowed)
	}

	if err := uc.reportRepo.Delete(ctx, r.ID()); err != nil {
		uc.logger.Errorw("failed to delete report", "report_id", cmd.ReportID, "error", err)
		return errors.NewInternalError("failed to delete report")
	}

	if err := uc.publisher.Publish(report.NewReportDeletedEvent(r, cmd.Actor.UserID)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	uc.logger.Infow("report deleted successfully", "report_id", cmd.ReportID)
	return nil
}
