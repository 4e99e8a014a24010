package usecases

import (
	"context"
	"time"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// UpdateReportCommand edits descriptive fields. Progress has its own use case.
type UpdateReportCommand struct {
	TenantID      uint
	ReportID      uint
	Actor         report.Actor
	Title         string
	Description   string
	Priority      string
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	OccurredAt    *time.Time
}

type UpdateReportUseCase struct {
	reportRepo report.Repository
	refs       *referenceValidator
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewUpdateReportUseCase(
	reportRepo report.Repository,
	localRepo location.LocalRepository,
	equipamentoRepo location.EquipamentoRepository,
	categoryRepo report.CategoryRepository,
	userRepo user.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *UpdateReportUseCase {
	return &UpdateReportUseCase{
		reportRepo: reportRepo,
		refs: &referenceValidator{
			locals:     localRepo,
			equipment:  equipamentoRepo,
			categories: categoryRepo,
			users:      userRepo,
		},
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *UpdateReportUseCase) Execute(ctx context.Context, cmd UpdateReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing update report use case", "report_id", cmd.ReportID, "user_id", cmd.Actor.UserID)

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	var priority shared.Priority
	if cmd.Priority != "" {
		if priority, err = shared.ParsePriority(cmd.Priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := r.ApplyEdit(cmd.Actor, report.Edit{
		Title:         cmd.Title,
		Description:   cmd.Description,
		Priority:      priority,
		LocalID:       cmd.LocalID,
		EquipamentoID: cmd.EquipamentoID,
		CategoryID:    cmd.CategoryID,
		OccurredAt:    cmd.OccurredAt,
	}); err != nil {
		uc.logger.Warnw("report edit rejected", "report_id", cmd.ReportID, "error", err)
		return nil, toAppError(err)
	}

	if err := uc.refs.validate(ctx, cmd.TenantID, references{
		LocalID:       cmd.LocalID,
		EquipamentoID: cmd.EquipamentoID,
		CategoryID:    cmd.CategoryID,
	}); err != nil {
		return nil, err
	}

	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update report", "report_id", cmd.ReportID, "error", err)
		return nil, persistError(err, "failed to update report")
	}

	if err := uc.publisher.Publish(report.NewReportUpdatedEvent(r, cmd.Actor.UserID)); err != nil {
		uc.logger.Warnw("failed to dispatch event", "error", err)
	}

	uc.logger.Infow("report updated successfully", "report_id", r.ID())
	return dto.ToReportDTO(r), nil
}
