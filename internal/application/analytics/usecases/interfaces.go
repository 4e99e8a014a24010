package usecases

import (
	"context"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
)

// DashboardCache stores computed dashboards keyed by tenant, scope and period.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*analytics.Dashboard, error)
	Set(ctx context.Context, key string, d *analytics.Dashboard, ttl time.Duration) error
	InvalidateTenant(ctx context.Context, tenantID uint) error
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query DashboardQuery) (*analytics.Dashboard, error)
}

type GetSectionExecutor interface {
	Execute(ctx context.Context, query SectionQuery) (interface{}, error)
}

type GetUserStatisticsExecutor interface {
	Execute(ctx context.Context, query UserStatisticsQuery) (*UserStatistics, error)
}
