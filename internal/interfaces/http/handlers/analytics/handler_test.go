package analytics

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/application/analytics/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/testutil"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

type mockDashboardUC struct {
	got usecases.DashboardQuery
	err error
}

func (m *mockDashboardUC) Execute(_ context.Context, q usecases.DashboardQuery) (*analytics.Dashboard, error) {
	m.got = q
	if m.err != nil {
		return nil, m.err
	}
	return &analytics.Dashboard{}, nil
}

type mockSectionUC struct {
	got usecases.SectionQuery
}

func (m *mockSectionUC) Execute(_ context.Context, q usecases.SectionQuery) (interface{}, error) {
	m.got = q
	if q.Section != "overview" {
		return nil, errors.NewNotFoundError("unknown analytics section", q.Section)
	}
	return analytics.Overview{Total: 4}, nil
}

type mockUserStatsUC struct {
	got usecases.UserStatisticsQuery
}

func (m *mockUserStatsUC) Execute(_ context.Context, q usecases.UserStatisticsQuery) (*usecases.UserStatistics, error) {
	m.got = q
	return &usecases.UserStatistics{Authored: 2}, nil
}

func TestHandler_Dashboard_DefaultsPeriod(t *testing.T) {
	uc := &mockDashboardUC{}
	h := NewHandler(uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/dashboard", nil)
	testutil.SetAuthContext(c, 7, "user")
	h.Dashboard(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "30d", uc.got.Period)
	assert.False(t, uc.got.Actor.Staff)
	assert.Equal(t, uint(7), uc.got.Actor.UserID)
}

func TestHandler_Dashboard_InvalidPeriod(t *testing.T) {
	uc := &mockDashboardUC{err: errors.NewValidationError("invalid period", "2w")}
	h := NewHandler(uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/dashboard", nil)
	testutil.SetQueryParams(c, map[string]string{"period": "2w", "granularity": "week"})
	testutil.SetAuthContext(c, 2, "manager")
	h.Dashboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "2w", uc.got.Period)
	assert.Equal(t, "week", uc.got.Granularity)
}

func TestHandler_Section(t *testing.T) {
	uc := &mockSectionUC{}
	h := NewHandler(nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/overview", nil)
	testutil.SetURLParam(c, "section", "overview")
	testutil.SetAuthContext(c, 2, "admin")
	h.Section(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.got.Actor.Staff)
}

func TestHandler_Section_Unknown(t *testing.T) {
	h := NewHandler(nil, &mockSectionUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/weather", nil)
	testutil.SetURLParam(c, "section", "weather")
	testutil.SetAuthContext(c, 2, "admin")
	h.Section(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MyStatistics(t *testing.T) {
	uc := &mockUserStatsUC{}
	h := NewHandler(nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/me", nil)
	testutil.SetAuthContext(c, 7, "user")
	h.MyStatistics(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.UserStatisticsQuery{TenantID: 1, UserID: 7}, uc.got)
}
