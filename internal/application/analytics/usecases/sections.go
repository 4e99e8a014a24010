package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

const (
	SectionOverview     = "overview"
	SectionPriority     = "priority"
	SectionLocations    = "locations"
	SectionUsers        = "users"
	SectionTimeline     = "timeline"
	SectionEquipment    = "equipment"
	SectionResponseTime = "response-time"
	SectionTrends       = "trends"
	SectionProductivity = "productivity"
)

type SectionQuery struct {
	DashboardQuery
	Section string
}

// GetSectionUseCase serves one dashboard section. Sections share the cached
// dashboard so a page that loads them one by one computes it once.
type GetSectionUseCase struct {
	dashboard GetDashboardExecutor
}

func NewGetSectionUseCase(dashboard GetDashboardExecutor) *GetSectionUseCase {
	return &GetSectionUseCase{dashboard: dashboard}
}

func (uc *GetSectionUseCase) Execute(ctx context.Context, query SectionQuery) (interface{}, error) {
	if !isSection(query.Section) {
		return nil, errors.NewNotFoundError("unknown analytics section", query.Section)
	}

	d, err := uc.dashboard.Execute(ctx, query.DashboardQuery)
	if err != nil {
		return nil, err
	}

	switch query.Section {
	case SectionOverview:
		return d.Overview, nil
	case SectionPriority:
		return d.PriorityDistribution, nil
	case SectionLocations:
		return d.LocationPerformance, nil
	case SectionUsers:
		return d.UserPerformance, nil
	case SectionTimeline:
		return d.Timeline, nil
	case SectionEquipment:
		return d.EquipmentIssues, nil
	case SectionResponseTime:
		return d.ResponseTime, nil
	case SectionTrends:
		return d.Trends, nil
	default:
		return d.Productivity, nil
	}
}

func isSection(s string) bool {
	switch s {
	case SectionOverview, SectionPriority, SectionLocations, SectionUsers, SectionTimeline,
		SectionEquipment, SectionResponseTime, SectionTrends, SectionProductivity:
		return true
	}
	return false
}
