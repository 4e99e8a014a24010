package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// CacheInvalidator drops a tenant's cached dashboards whenever one of its
// reports changes.
type CacheInvalidator struct {
	cache  DashboardCache
	logger logger.Interface
}

func NewCacheInvalidator(cache DashboardCache, logger logger.Interface) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, logger: logger}
}

func (h *CacheInvalidator) EventTypes() []string {
	return []string{
		report.EventReportCreated,
		report.EventReportAssigned,
		report.EventReportProgressUpdated,
		report.EventReportResolved,
		report.EventReportUpdated,
		report.EventReportDeleted,
	}
}

func (h *CacheInvalidator) CanHandle(eventType string) bool {
	for _, t := range h.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *CacheInvalidator) Handle(event events.DomainEvent) error {
	var tenantID uint
	switch e := event.(type) {
	case report.ReportCreatedEvent:
		tenantID = e.TenantID
	case report.ReportAssignedEvent:
		tenantID = e.TenantID
	case report.ReportProgressUpdatedEvent:
		tenantID = e.TenantID
	case report.ReportResolvedEvent:
		tenantID = e.TenantID
	case report.ReportChangedEvent:
		tenantID = e.TenantID
	default:
		return nil
	}

	if err := h.cache.InvalidateTenant(context.Background(), tenantID); err != nil {
		h.logger.Warnw("failed to invalidate dashboard cache", "tenant_id", tenantID, "error", err)
		return err
	}
	return nil
}
