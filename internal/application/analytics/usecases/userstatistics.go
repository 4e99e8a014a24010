package usecases

import (
	"context"

	reportdto "github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const recentReportsLimit = 10

type UserStatisticsQuery struct {
	TenantID uint
	UserID   uint
}

type UserStatistics struct {
	Overview      analytics.Overview     `json:"overview"`
	Authored      int                    `json:"authored"`
	Assigned      int                    `json:"assigned"`
	RecentReports []*reportdto.ReportDTO `json:"recent_reports"`
}

type GetUserStatisticsUseCase struct {
	facts   analytics.FactRepository
	reports report.Repository
	logger  logger.Interface
}

func NewGetUserStatisticsUseCase(facts analytics.FactRepository, reports report.Repository, logger logger.Interface) *GetUserStatisticsUseCase {
	return &GetUserStatisticsUseCase{facts: facts, reports: reports, logger: logger}
}

// Execute covers every report the user authored or is assigned to, with no
// date limit.
func (uc *GetUserStatisticsUseCase) Execute(ctx context.Context, query UserStatisticsQuery) (*UserStatistics, error) {
	uc.logger.Infow("executing get user statistics use case", "user_id", query.UserID)

	userID := query.UserID
	facts, err := uc.facts.ReportFacts(ctx, analytics.Scope{TenantID: query.TenantID, VisibleTo: &userID})
	if err != nil {
		uc.logger.Errorw("failed to load report facts", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load statistics")
	}

	stats := &UserStatistics{Overview: analytics.ComputeOverview(facts)}
	for _, f := range facts {
		if f.AuthorID == userID {
			stats.Authored++
		}
		if f.AssigneeID != nil && *f.AssigneeID == userID {
			stats.Assigned++
		}
	}

	recent, _, err := uc.reports.List(ctx, report.ListFilter{
		TenantID:  query.TenantID,
		VisibleTo: &userID,
		Page:      1,
		PageSize:  recentReportsLimit,
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	if err != nil {
		uc.logger.Errorw("failed to load recent reports", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load statistics")
	}
	stats.RecentReports = reportdto.ToReportDTOs(recent)

	return stats, nil
}
