package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type UpdateProgressCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
	Progress int
	Note     string
	Images   []report.UpdateImage
}

type UpdateProgressResult struct {
	Report *dto.ReportDTO `json:"report"`
	Update dto.UpdateDTO  `json:"update"`
}

// UpdateProgressUseCase runs the progress transition and stores the history
// entry and the new report state together.
type UpdateProgressUseCase struct {
	reportRepo report.Repository
	updateRepo report.UpdateRepository
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateProgressUseCase(
	reportRepo report.Repository,
	updateRepo report.UpdateRepository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{
		reportRepo: reportRepo,
		updateRepo: updateRepo,
		txMgr:      txMgr,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateProgressUseCase) Execute(ctx context.Context, cmd UpdateProgressCommand) (*UpdateProgressResult, error) {
	uc.logger.Infow("executing update progress use case",
		"report_id", cmd.ReportID,
		"user_id", cmd.Actor.UserID,
		"progress", cmd.Progress)

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	wasResolved := r.IsResolved()
	upd, err := r.ApplyProgress(cmd.Actor, cmd.Progress, cmd.Note, cmd.Images)
	if err != nil {
		uc.logger.Warnw("progress update rejected",
			"report_id", cmd.ReportID,
			"user_id", cmd.Actor.UserID,
			"error", err)
		return nil, toAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.updateRepo.Create(txCtx, upd); err != nil {
			return err
		}
		return uc.reportRepo.Update(txCtx, r)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist progress update", "report_id", cmd.ReportID, "error", err)
		return nil, persistError(err, "failed to update progress")
	}

	evts := []events.DomainEvent{report.NewReportProgressUpdatedEvent(r, upd)}
	if r.IsResolved() && !wasResolved {
		evts = append(evts, report.NewReportResolvedEvent(r, cmd.Actor.UserID))
	}
	if err := uc.publisher.PublishAll(evts); err != nil {
		uc.logger.Warnw("failed to dispatch progress events", "report_id", r.ID(), "error", err)
	}

	uc.logger.Infow("report progress updated",
		"report_id", r.ID(),
		"previous_progress", upd.PreviousProgress(),
		"new_progress", upd.NewProgress(),
		"status", r.Status())

	return &UpdateProgressResult{
		Report: dto.ToReportDTO(r),
		Update: dto.ToUpdateDTO(upd),
	}, nil
}
