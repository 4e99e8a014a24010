package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// AssignReportCommand assigns the report, or clears the assignee when
// AssigneeID is zero.
type AssignReportCommand struct {
	TenantID   uint
	ReportID   uint
	Actor      report.Actor
	AssigneeID uint
}

type AssignReportUseCase struct {
	reportRepo report.Repository
	userRepo   user.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAssignReportUseCase(
	reportRepo report.Repository,
	userRepo user.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignReportUseCase {
	return &AssignReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *AssignReportUseCase) Execute(ctx context.Context, cmd AssignReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing assign report use case",
		"report_id", cmd.ReportID,
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.Actor.UserID)

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	if !r.CanAssign(cmd.Actor) {
		uc.logger.Warnw("user cannot assign report", "report_id", cmd.ReportID, "user_id", cmd.Actor.UserID)
		return nil, toAppError(report.ErrNotAllowed)
	}

	if cmd.AssigneeID == 0 {
		r.Unassign()
	} else {
		if _, err := activeUser(ctx, uc.userRepo, cmd.TenantID, cmd.AssigneeID); err != nil {
			uc.logger.Warnw("invalid assignee", "assignee_id", cmd.AssigneeID, "error", err)
			return nil, err
		}
		if err := r.AssignTo(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.reportRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update report", "report_id", cmd.ReportID, "error", err)
		return nil, persistError(err, "failed to assign report")
	}

	if cmd.AssigneeID != 0 {
		if err := uc.publisher.Publish(report.NewReportAssignedEvent(r, cmd.Actor.UserID)); err != nil {
			uc.logger.Warnw("failed to dispatch event", "error", err)
		}
	}

	uc.logger.Infow("report assigned successfully", "report_id", r.ID(), "assignee_id", cmd.AssigneeID)
	return dto.ToReportDTO(r), nil
}
