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

// ReportInput is the payload of one report, shared by single and bulk creation.
type ReportInput struct {
	Title         string
	Description   string
	Priority      string
	Progress      int
	AssigneeID    *uint
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	OccurredAt    *time.Time
}

func (in ReportInput) draft() (report.Draft, error) {
	priority, err := shared.ParsePriority(in.Priority)
	if err != nil {
		return report.Draft{}, err
	}
	return report.Draft{
		Title:         in.Title,
		Description:   in.Description,
		Priority:      priority,
		Progress:      in.Progress,
		AssigneeID:    in.AssigneeID,
		LocalID:       in.LocalID,
		EquipamentoID: in.EquipamentoID,
		CategoryID:    in.CategoryID,
		OccurredAt:    in.OccurredAt,
	}, nil
}

func (in ReportInput) refs() references {
	return references{
		LocalID:       in.LocalID,
		EquipamentoID: in.EquipamentoID,
		CategoryID:    in.CategoryID,
		AssigneeID:    in.AssigneeID,
	}
}

type CreateReportCommand struct {
	TenantID uint
	AuthorID uint
	ReportInput
}

type CreateReportUseCase struct {
	reportRepo report.Repository
	refs       *referenceValidator
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCreateReportUseCase(
	reportRepo report.Repository,
	localRepo location.LocalRepository,
	equipamentoRepo location.EquipamentoRepository,
	categoryRepo report.CategoryRepository,
	userRepo user.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateReportUseCase {
	return &CreateReportUseCase{
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

func (uc *CreateReportUseCase) Execute(ctx context.Context, cmd CreateReportCommand) (*dto.ReportDTO, error) {
	uc.logger.Infow("executing create report use case", "author_id", cmd.AuthorID, "tenant_id", cmd.TenantID)

	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	draft, err := cmd.draft()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.refs.validate(ctx, cmd.TenantID, cmd.refs()); err != nil {
		uc.logger.Warnw("invalid report references", "error", err)
		return nil, err
	}

	r, err := report.NewReport(cmd.TenantID, cmd.AuthorID, draft)
	if err != nil {
		uc.logger.Errorw("failed to build report", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reportRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to save report", "error", err)
		return nil, errors.NewInternalError("failed to save report")
	}

	publishCreated(uc.publisher, uc.logger, r)

	uc.logger.Infow("report created successfully", "report_id", r.ID(), "status", r.Status())
	return dto.ToReportDTO(r), nil
}

// publishCreated announces a new report, and its assignment when it was
// created with an assignee.
func publishCreated(publisher events.EventPublisher, log logger.Interface, r *report.Report) {
	evts := []events.DomainEvent{report.NewReportCreatedEvent(r)}
	if r.AssigneeID() != nil {
		evts = append(evts, report.NewReportAssignedEvent(r, r.AuthorID()))
	}
	if err := publisher.PublishAll(evts); err != nil {
		log.Warnw("failed to dispatch report events", "report_id", r.ID(), "error", err)
	}
}
