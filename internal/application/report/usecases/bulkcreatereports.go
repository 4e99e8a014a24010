package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type BulkCreateReportsCommand struct {
	TenantID uint
	AuthorID uint
	Items    []ReportInput
}

type BulkCreateReportsResult struct {
	Created int              `json:"created"`
	Reports []*dto.ReportDTO `json:"reports"`
}

// BulkCreateReportsUseCase inserts every item or none of them.
type BulkCreateReportsUseCase struct {
	reportRepo report.Repository
	refs       *referenceValidator
	txMgr      db.Transactor
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewBulkCreateReportsUseCase(
	reportRepo report.Repository,
	localRepo location.LocalRepository,
	equipamentoRepo location.EquipamentoRepository,
	categoryRepo report.CategoryRepository,
	userRepo user.Repository,
	txMgr db.Transactor,
	publisher events.EventPublisher,
	logger logger.Interface,
) *BulkCreateReportsUseCase {
	return &BulkCreateReportsUseCase{
		reportRepo: reportRepo,
		refs: &referenceValidator{
			locals:     localRepo,
			equipment:  equipamentoRepo,
			categories: categoryRepo,
			users:      userRepo,
		},
		txMgr:     txMgr,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *BulkCreateReportsUseCase) Execute(ctx context.Context, cmd BulkCreateReportsCommand) (*BulkCreateReportsResult, error) {
	uc.logger.Infow("executing bulk create reports use case",
		"author_id", cmd.AuthorID,
		"count", len(cmd.Items))

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid bulk create command", "error", err)
		return nil, err
	}

	reports := make([]*report.Report, 0, len(cmd.Items))
	var details []string
	for i, item := range cmd.Items {
		r, err := uc.build(ctx, cmd, item)
		if err != nil {
			details = append(details, fmt.Sprintf("item %d: %s", i+1, errorMessage(err)))
			continue
		}
		reports = append(reports, r)
	}
	if len(details) > 0 {
		uc.logger.Warnw("bulk create rejected", "invalid_items", len(details))
		return nil, errors.NewValidationError("one or more reports are invalid", strings.Join(details, "; "))
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, r := range reports {
			if err := uc.reportRepo.Create(txCtx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("bulk create transaction failed", "error", err)
		return nil, errors.NewInternalError("failed to save reports")
	}

	for _, r := range reports {
		publishCreated(uc.publisher, uc.logger, r)
	}

	uc.logger.Infow("reports created in bulk", "count", len(reports))
	return &BulkCreateReportsResult{
		Created: len(reports),
		Reports: dto.ToReportDTOs(reports),
	}, nil
}

func (uc *BulkCreateReportsUseCase) build(ctx context.Context, cmd BulkCreateReportsCommand, item ReportInput) (*report.Report, error) {
	draft, err := item.draft()
	if err != nil {
		return nil, err
	}
	if err := uc.refs.validate(ctx, cmd.TenantID, item.refs()); err != nil {
		return nil, err
	}
	return report.NewReport(cmd.TenantID, cmd.AuthorID, draft)
}

func (uc *BulkCreateReportsUseCase) validateCommand(cmd BulkCreateReportsCommand) error {
	if cmd.AuthorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	if len(cmd.Items) == 0 {
		return errors.NewValidationError("at least one report is required")
	}
	if len(cmd.Items) > constants.MaxBulkReports {
		return errors.NewValidationError(fmt.Sprintf("at most %d reports can be created at once", constants.MaxBulkReports))
	}
	return nil
}

func errorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
