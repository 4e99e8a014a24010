package usecases

import (
	"context"
	"time"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type ListReportsQuery struct {
	TenantID      uint
	Actor         report.Actor
	Status        string
	Priority      string
	AssigneeID    *uint
	AuthorID      *uint
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	Search        string
	From          time.Time
	To            time.Time
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListReportsResult struct {
	Reports  []*dto.ReportDTO `json:"reports"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

var sortableReportFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"priority":   true,
	"progress":   true,
}

// toFilter validates the query and scopes it to what the actor may see.
func (q ListReportsQuery) toFilter() (report.ListFilter, error) {
	filter := report.ListFilter{
		TenantID:      q.TenantID,
		AssigneeID:    q.AssigneeID,
		AuthorID:      q.AuthorID,
		LocalID:       q.LocalID,
		EquipamentoID: q.EquipamentoID,
		CategoryID:    q.CategoryID,
		Search:        q.Search,
		From:          q.From,
		To:            q.To,
		Page:          q.Page,
		PageSize:      q.PageSize,
		SortOrder:     q.SortOrder,
	}
	if q.Status != "" {
		if !vo.Status(q.Status).IsValid() {
			return filter, errors.NewValidationError("invalid status filter: " + q.Status)
		}
		filter.Status = &q.Status
	}
	if q.Priority != "" {
		if !shared.Priority(q.Priority).IsValid() {
			return filter, errors.NewValidationError("invalid priority filter: " + q.Priority)
		}
		filter.Priority = &q.Priority
	}
	if q.SortBy != "" {
		if !sortableReportFields[q.SortBy] {
			return filter, errors.NewValidationError("invalid sort field: " + q.SortBy)
		}
		filter.SortBy = q.SortBy
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return filter, errors.NewValidationError("end date must not be before start date")
	}
	if !q.Actor.Staff {
		visible := q.Actor.UserID
		filter.VisibleTo = &visible
	}
	return filter, nil
}

type ListReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error) {
	uc.logger.Infow("executing list reports use case", "user_id", query.Actor.UserID, "page", query.Page)

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultReportPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}

	reports, total, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list reports", "error", err)
		return nil, errors.NewInternalError("failed to list reports")
	}

	return &ListReportsResult{
		Reports:  dto.ToReportDTOs(reports),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
