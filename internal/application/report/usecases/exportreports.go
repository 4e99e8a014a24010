package usecases

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// MaxExportRows bounds a single CSV export.
const MaxExportRows = 10000

var exportHeader = []string{
	"id", "title", "status", "priority", "progress",
	"author_id", "assignee_id", "local_id", "equipamento_id", "category_id",
	"occurred_at", "created_at", "updated_at", "resolved_at",
}

// ExportReportsUseCase writes the filtered report list as CSV. Pagination in
// the query is ignored and every matching row up to MaxExportRows is written.
type ExportReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewExportReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ExportReportsUseCase {
	return &ExportReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *ExportReportsUseCase) Execute(ctx context.Context, query ListReportsQuery, w io.Writer) (int, error) {
	uc.logger.Infow("executing export reports use case", "user_id", query.Actor.UserID)

	filter, err := query.toFilter()
	if err != nil {
		return 0, err
	}
	filter.PageSize = constants.MaxPageSize

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, errors.NewInternalError("failed to write export")
	}

	written := 0
	for page := 1; written < MaxExportRows; page++ {
		filter.Page = page
		reports, total, err := uc.reportRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Errorw("failed to list reports for export", "page", page, "error", err)
			return written, errors.NewInternalError("failed to export reports")
		}
		for _, r := range reports {
			if written >= MaxExportRows {
				break
			}
			if err := cw.Write(exportRow(r)); err != nil {
				return written, errors.NewInternalError("failed to write export")
			}
			written++
		}
		if len(reports) < filter.PageSize || int64(page*filter.PageSize) >= total {
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		uc.logger.Errorw("failed to flush export", "error", err)
		return written, errors.NewInternalError("failed to write export")
	}

	uc.logger.Infow("reports exported", "rows", written)
	return written, nil
}

func exportRow(r *report.Report) []string {
	return []string{
		strconv.FormatUint(uint64(r.ID()), 10),
		r.Title(),
		r.Status().String(),
		r.Priority().String(),
		strconv.Itoa(r.Progress()),
		strconv.FormatUint(uint64(r.AuthorID()), 10),
		optionalID(r.AssigneeID()),
		optionalID(r.LocalID()),
		optionalID(r.EquipamentoID()),
		optionalID(r.CategoryID()),
		formatTime(r.OccurredAt()),
		formatTime(r.CreatedAt()),
		formatTime(r.UpdatedAt()),
		optionalTime(r.ResolvedAt()),
	}
}

func optionalID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return biztime.FormatInBizTimezone(t, "2006-01-02 15:04:05")
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
