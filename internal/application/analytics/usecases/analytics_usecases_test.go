package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

const tenantID uint = 1

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func sampleFacts() []analytics.ReportFact {
	day := func(d int) time.Time { return fixedNow.AddDate(0, 0, -d) }
	resolvedAt := day(1)
	return []analytics.ReportFact{
		{ID: 1, Status: "resolved", Priority: "high", Progress: 100, AuthorID: 10, AssigneeID: uintPtr(20),
			LocalID: uintPtr(5), EquipamentoID: uintPtr(7), CreatedAt: day(3), UpdatedAt: day(1), ResolvedAt: &resolvedAt},
		{ID: 2, Status: "in_progress", Priority: "critical", Progress: 50, AuthorID: 10, LocalID: uintPtr(5),
			EquipamentoID: uintPtr(7), CreatedAt: day(2), UpdatedAt: day(2)},
		{ID: 3, Status: "pending", Priority: "low", AuthorID: 11, CreatedAt: day(5), UpdatedAt: day(5)},
		{ID: 4, Status: "pending", Priority: "medium", AuthorID: 11, CreatedAt: day(40), UpdatedAt: day(40)},
	}
}

func newDashboardUseCase(facts *mockFactRepository, cache DashboardCache) *GetDashboardUseCase {
	now := time.Now()
	local := location.ReconstructLocal(5, tenantID, location.LocalData{Name: "Fábrica Norte", Code: "FN"}, now, now)
	equip := location.ReconstructEquipamento(7, tenantID, location.EquipamentoData{LocalID: 5, Name: "Compressor", Code: "CP-1"}, now, now)
	author, _ := user.ReconstructUser(10, user.UserState{TenantID: tenantID, Username: "ana", Email: "ana@example.com", FullName: "Ana Souza"})

	uc := NewGetDashboardUseCase(
		facts,
		&mockLocalRepository{locals: []*location.Local{local}},
		&mockEquipamentoRepository{items: []*location.Equipamento{equip}},
		&mockUserRepository{users: []*user.User{author}},
		cache,
		5*time.Minute,
		&mockLogger{},
	)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	prev := biztime.Location()
	t.Cleanup(func() { _ = biztime.Init(prev.String()) })
	require.NoError(t, biztime.Init("UTC"))

	facts := &mockFactRepository{reports: sampleFacts()}
	uc := newDashboardUseCase(facts, newMockCache())

	d, err := uc.Execute(context.Background(), DashboardQuery{
		TenantID: tenantID,
		Actor:    report.Actor{UserID: 1, Staff: true},
		Period:   "30d",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, d.Overview.Total, "the 40 day old report falls outside the window")
	assert.Equal(t, 1, d.Overview.Resolved)
	assert.Equal(t, 33.3, d.Overview.ResolutionRate)
	assert.Len(t, d.Timeline, 31, "both ends of the window are bucketed")

	require.NotEmpty(t, d.LocationPerformance)
	assert.Equal(t, "Fábrica Norte", d.LocationPerformance[0].LocalName)
	require.NotEmpty(t, d.EquipmentIssues)
	assert.Equal(t, "Compressor", d.EquipmentIssues[0].Name)
	assert.Equal(t, "Fábrica Norte", d.EquipmentIssues[0].LocalName)
	assert.Equal(t, 1, d.EquipmentIssues[0].Critical)
	require.NotEmpty(t, d.UserPerformance.Authors)
	assert.Equal(t, "Ana Souza", d.UserPerformance.Authors[0].Name)

	require.Len(t, facts.scopes, 2, "current and previous windows")
	assert.Nil(t, facts.scopes[0].VisibleTo)
	assert.Equal(t, facts.scopes[0].From, facts.scopes[1].To)
}

func TestGetDashboardUseCase_NonStaffIsScoped(t *testing.T) {
	facts := &mockFactRepository{reports: sampleFacts()}
	uc := newDashboardUseCase(facts, nil)

	d, err := uc.Execute(context.Background(), DashboardQuery{
		TenantID: tenantID,
		Actor:    report.Actor{UserID: 20},
		Period:   "7d",
	})

	require.NoError(t, err)
	require.NotNil(t, facts.scopes[0].VisibleTo)
	assert.Equal(t, uint(20), *facts.scopes[0].VisibleTo)
	assert.Equal(t, 1, d.Overview.Total)
}

func TestGetDashboardUseCase_UsesCacheUntilInvalidated(t *testing.T) {
	cache := newMockCache()
	facts := &mockFactRepository{reports: sampleFacts()}
	uc := newDashboardUseCase(facts, cache)
	query := DashboardQuery{TenantID: tenantID, Actor: report.Actor{UserID: 1, Staff: true}, Period: "30d"}

	_, err := uc.Execute(context.Background(), query)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, facts.scopes, 2, "second call is served from cache")

	invalidator := NewCacheInvalidator(cache, &mockLogger{})
	require.NoError(t, invalidator.Handle(report.ReportCreatedEvent{
		BaseEvent: events.NewBaseEvent("9", report.EventReportCreated),
		TenantID:  tenantID,
	}))
	assert.Equal(t, []uint{tenantID}, cache.invalidated)

	_, err = uc.Execute(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, facts.scopes, 4)
}

func TestCacheInvalidator_EditAndDeleteDropTenantDashboards(t *testing.T) {
	cache := newMockCache()
	invalidator := NewCacheInvalidator(cache, &mockLogger{})

	assert.True(t, invalidator.CanHandle(report.EventReportUpdated))
	assert.True(t, invalidator.CanHandle(report.EventReportDeleted))

	require.NoError(t, invalidator.Handle(report.ReportChangedEvent{
		BaseEvent: events.NewBaseEvent("9", report.EventReportUpdated),
		ReportID:  9,
		TenantID:  tenantID,
	}))
	require.NoError(t, invalidator.Handle(report.ReportChangedEvent{
		BaseEvent: events.NewBaseEvent("9", report.EventReportDeleted),
		ReportID:  9,
		TenantID:  tenantID + 1,
	}))
	assert.Equal(t, []uint{tenantID, tenantID + 1}, cache.invalidated)
}

func TestGetDashboardUseCase_InvalidInput(t *testing.T) {
	uc := newDashboardUseCase(&mockFactRepository{}, nil)

	_, err := uc.Execute(context.Background(), DashboardQuery{TenantID: tenantID, Period: "14d"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), DashboardQuery{TenantID: tenantID, Period: "30d", Granularity: "hour"})
	assert.True(t, errors.IsValidationError(err))
}

func TestDefaultGranularity(t *testing.T) {
	assert.Equal(t, biztime.GranularityDay, defaultGranularity(analytics.Period7d))
	assert.Equal(t, biztime.GranularityDay, defaultGranularity(analytics.Period30d))
	assert.Equal(t, biztime.GranularityWeek, defaultGranularity(analytics.Period90d))
	assert.Equal(t, biztime.GranularityMonth, defaultGranularity(analytics.Period365d))
}

func TestGetSectionUseCase_Execute(t *testing.T) {
	uc := NewGetSectionUseCase(newDashboardUseCase(&mockFactRepository{reports: sampleFacts()}, nil))
	base := DashboardQuery{TenantID: tenantID, Actor: report.Actor{UserID: 1, Staff: true}, Period: "30d"}

	got, err := uc.Execute(context.Background(), SectionQuery{DashboardQuery: base, Section: SectionOverview})
	require.NoError(t, err)
	overview, ok := got.(analytics.Overview)
	require.True(t, ok)
	assert.Equal(t, 3, overview.Total)

	got, err = uc.Execute(context.Background(), SectionQuery{DashboardQuery: base, Section: SectionTrends})
	require.NoError(t, err)
	assert.IsType(t, map[string]analytics.TrendMetric{}, got)

	_, err = uc.Execute(context.Background(), SectionQuery{DashboardQuery: base, Section: "weather"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetUserStatisticsUseCase_Execute(t *testing.T) {
	facts := &mockFactRepository{reports: sampleFacts()}
	reports := &mockReportRepository{}
	uc := NewGetUserStatisticsUseCase(facts, reports, &mockLogger{})

	stats, err := uc.Execute(context.Background(), UserStatisticsQuery{TenantID: tenantID, UserID: 11})

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Overview.Total, "no date limit applies")
	assert.Equal(t, 2, stats.Overview.Pending)
	assert.Equal(t, 2, stats.Authored)
	assert.Equal(t, 0, stats.Assigned)
	require.NotNil(t, reports.filter.VisibleTo)
	assert.Equal(t, uint(11), *reports.filter.VisibleTo)
	assert.Equal(t, 10, reports.filter.PageSize)
	assert.Equal(t, "desc", reports.filter.SortOrder)
}
