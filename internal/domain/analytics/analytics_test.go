package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
)

func uptr(v uint) *uint { return &v }

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fact(id uint, status, priority string, progress int) ReportFact {
	return ReportFact{
		ID:        id,
		Status:    status,
		Priority:  priority,
		Progress:  progress,
		AuthorID:  1,
		CreatedAt: base,
		UpdatedAt: base,
	}
}

func resolvedFact(id uint, priority string, after time.Duration) ReportFact {
	f := fact(id, StatusResolved, priority, 100)
	at := base.Add(after)
	f.ResolvedAt = &at
	f.UpdatedAt = at
	return f
}

func TestComputeOverview(t *testing.T) {
	facts := []ReportFact{
		fact(1, StatusPending, PriorityLow, 0),
		fact(2, StatusInProgress, PriorityMedium, 50),
		resolvedFact(3, PriorityHigh, 48*time.Hour),
	}

	o := ComputeOverview(facts)

	assert.Equal(t, 3, o.Total)
	assert.Equal(t, 1, o.Pending)
	assert.Equal(t, 1, o.InProgress)
	assert.Equal(t, 1, o.Resolved)
	assert.Equal(t, 33.3, o.ResolutionRate)
	assert.Equal(t, 50.0, o.AverageProgress)
	assert.Equal(t, 2.0, o.AverageResolutionDays)
}

func TestComputeOverview_Empty(t *testing.T) {
	o := ComputeOverview(nil)
	assert.Equal(t, Overview{}, o)
}

func TestResolutionDuration_FallsBackToUpdatedAt(t *testing.T) {
	f := fact(1, StatusResolved, PriorityLow, 100)
	f.UpdatedAt = base.Add(24 * time.Hour)

	assert.Equal(t, 24*time.Hour, f.resolutionDuration())
}

func TestComputePriorityDistribution(t *testing.T) {
	facts := []ReportFact{
		fact(1, StatusPending, PriorityHigh, 0),
		resolvedFact(2, PriorityHigh, time.Hour),
		fact(3, StatusInProgress, PriorityLow, 20),
		fact(4, StatusPending, PriorityLow, 0),
	}

	buckets := ComputePriorityDistribution(facts)

	require.Len(t, buckets, 4)
	assert.Equal(t, PriorityLow, buckets[0].Priority)
	assert.Equal(t, 2, buckets[0].Count)
	assert.Equal(t, 50.0, buckets[0].Percentage)
	assert.Equal(t, 0.0, buckets[0].ResolutionRate)

	assert.Equal(t, PriorityMedium, buckets[1].Priority)
	assert.Equal(t, 0, buckets[1].Count)

	assert.Equal(t, PriorityHigh, buckets[2].Priority)
	assert.Equal(t, 2, buckets[2].Count)
	assert.Equal(t, 1, buckets[2].Resolved)
	assert.Equal(t, 50.0, buckets[2].ResolutionRate)
	assert.Equal(t, 50.0, buckets[2].AverageProgress)
}

func TestComputeLocationPerformance(t *testing.T) {
	a := fact(1, StatusPending, PriorityLow, 0)
	a.LocalID = uptr(7)
	b := resolvedFact(2, PriorityLow, time.Hour)
	b.LocalID = uptr(9)
	c := fact(3, StatusInProgress, PriorityLow, 40)
	c.LocalID = uptr(9)
	noLocal := fact(4, StatusPending, PriorityLow, 0)

	rows := ComputeLocationPerformance([]ReportFact{a, b, c, noLocal}, Names{Locals: map[uint]string{9: "Fábrica"}})

	require.Len(t, rows, 2)
	assert.Equal(t, uint(9), rows[0].LocalID)
	assert.Equal(t, "Fábrica", rows[0].LocalName)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, 50.0, rows[0].ResolutionRate)
	assert.Equal(t, 70.0, rows[0].AverageProgress)
	assert.Equal(t, uint(7), rows[1].LocalID)
	assert.Empty(t, rows[1].LocalName)
}

func TestComputeUserPerformance(t *testing.T) {
	var facts []ReportFact
	for i := uint(1); i <= 12; i++ {
		f := fact(i, StatusPending, PriorityLow, 0)
		f.AuthorID = i
		facts = append(facts, f)
	}
	extra := resolvedFact(13, PriorityLow, time.Hour)
	extra.AuthorID = 5
	extra.AssigneeID = uptr(3)
	facts = append(facts, extra)

	up := ComputeUserPerformance(facts, Names{Users: map[uint]string{5: "Ana", 3: "Bruno"}})

	require.Len(t, up.Authors, 10)
	assert.Equal(t, uint(5), up.Authors[0].UserID)
	assert.Equal(t, "Ana", up.Authors[0].Name)
	assert.Equal(t, 2, up.Authors[0].Created)
	assert.Equal(t, 50.0, up.Authors[0].ResolutionRate)
	assert.Equal(t, uint(1), up.Authors[1].UserID)

	require.Len(t, up.Assignees, 1)
	assert.Equal(t, "Bruno", up.Assignees[0].Name)
	assert.Equal(t, 100.0, up.Assignees[0].ResolutionRate)
}

func TestComputeTimeline_ZeroFills(t *testing.T) {
	prev := biztime.Location()
	t.Cleanup(func() { _ = biztime.Init(prev.String()) })
	require.NoError(t, biztime.Init("UTC"))

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 4, 23, 0, 0, 0, time.UTC)
	a := fact(1, StatusPending, PriorityLow, 0)
	a.CreatedAt = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	b := resolvedFact(2, PriorityLow, time.Hour)
	b.CreatedAt = time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)

	points := ComputeTimeline([]ReportFact{a, b}, from, to, biztime.GranularityDay)

	require.Len(t, points, 4)
	assert.Equal(t, "2025-03-01", points[0].Period)
	assert.Equal(t, 0, points[0].Total)
	assert.Equal(t, "2025-03-02", points[1].Period)
	assert.Equal(t, 2, points[1].Total)
	assert.Equal(t, 1, points[1].Resolved)
	assert.Equal(t, "2025-03-04", points[3].Period)
}

func TestComputeTimeline_Month(t *testing.T) {
	prev := biztime.Location()
	t.Cleanup(func() { _ = biztime.Init(prev.String()) })
	require.NoError(t, biztime.Init("UTC"))

	from := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	f := fact(1, StatusPending, PriorityLow, 0)
	f.CreatedAt = time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)

	points := ComputeTimeline([]ReportFact{f}, from, to, biztime.GranularityMonth)

	require.Len(t, points, 3)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, []string{points[0].Period, points[1].Period, points[2].Period})
	assert.Equal(t, 1, points[1].Total)
}

func TestComputeEquipmentIssues(t *testing.T) {
	a := fact(1, StatusPending, PriorityCritical, 0)
	a.EquipamentoID = uptr(4)
	b := resolvedFact(2, PriorityLow, time.Hour)
	b.EquipamentoID = uptr(4)
	c := fact(3, StatusPending, PriorityLow, 0)
	c.EquipamentoID = uptr(8)

	rows := ComputeEquipmentIssues([]ReportFact{a, b, c}, Names{
		Equipment: map[uint]EquipmentInfo{4: {Name: "Compressor", Code: "CP-01", LocalName: "Galpão"}},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, uint(4), rows[0].EquipamentoID)
	assert.Equal(t, "Compressor", rows[0].Name)
	assert.Equal(t, "CP-01", rows[0].Code)
	assert.Equal(t, 2, rows[0].Total)
	assert.Equal(t, 1, rows[0].Open)
	assert.Equal(t, 1, rows[0].Critical)
	assert.Equal(t, uint(8), rows[1].EquipamentoID)
}

func TestComputeResponseTime(t *testing.T) {
	a := fact(1, StatusInProgress, PriorityHigh, 30)
	b := fact(2, StatusInProgress, PriorityLow, 30)
	c := fact(3, StatusPending, PriorityLow, 0)
	updates := []UpdateFact{
		{ReportID: 1, PreviousProgress: 0, CreatedAt: base.Add(4 * time.Hour)},
		{ReportID: 1, PreviousProgress: 0, CreatedAt: base.Add(2 * time.Hour)},
		{ReportID: 1, PreviousProgress: 30, CreatedAt: base.Add(time.Hour)},
		{ReportID: 2, PreviousProgress: 0, CreatedAt: base.Add(6 * time.Hour)},
		{ReportID: 99, PreviousProgress: 0, CreatedAt: base.Add(time.Hour)},
	}

	rt := ComputeResponseTime([]ReportFact{a, b, c}, updates)

	assert.Equal(t, 2, rt.Overall.Count)
	assert.Equal(t, 4.0, rt.Overall.AverageHours)
	assert.Equal(t, 2.0, rt.Overall.MinHours)
	assert.Equal(t, 6.0, rt.Overall.MaxHours)
	assert.Equal(t, 2.0, rt.ByPriority[PriorityHigh].AverageHours)
	assert.Equal(t, 6.0, rt.ByPriority[PriorityLow].AverageHours)
}

func TestVariation(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"growth", 15, 10, 50},
		{"drop", 5, 10, -50},
		{"no previous with current", 3, 0, 100},
		{"nothing at all", 0, 0, 0},
		{"one third", 4, 3, 33.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Variation(tt.current, tt.previous))
		})
	}
}

func TestComputeTrends(t *testing.T) {
	current := []ReportFact{
		fact(1, StatusPending, PriorityCritical, 0),
		fact(2, StatusPending, PriorityHigh, 0),
	}
	previous := []ReportFact{
		fact(3, StatusPending, PriorityHigh, 0),
		fact(4, StatusPending, PriorityHigh, 0),
		resolvedFact(5, PriorityLow, time.Hour),
		resolvedFact(6, PriorityLow, time.Hour),
	}

	trends := ComputeTrends(current, previous)

	require.Len(t, trends, 6)
	assert.Equal(t, TrendMetric{Current: 2, Previous: 4, Variation: -50, Trend: "down"}, trends[TrendTotal])
	assert.Equal(t, "up", trends[TrendCritical].Trend)
	assert.Equal(t, "stable", trends[TrendPending].Trend)
	assert.Equal(t, -100.0, trends[TrendResolved].Variation)
	assert.Equal(t, "stable", trends[TrendInProgress].Trend)
}

func TestComputeProductivity(t *testing.T) {
	from := base.AddDate(0, 0, -10)
	facts := []ReportFact{
		resolvedFact(1, PriorityHigh, 10*time.Hour),
		resolvedFact(2, PriorityHigh, 20*time.Hour),
		fact(3, StatusPending, PriorityLow, 0),
		fact(4, StatusPending, PriorityLow, 0),
		fact(5, StatusPending, PriorityLow, 0),
	}

	p := ComputeProductivity(facts, 7, from, base)

	assert.Equal(t, 0.5, p.ReportsPerDay)
	assert.Equal(t, 40.0, p.CompletionRate)
	assert.Equal(t, 15.0, p.ResolutionHoursByPriority[PriorityHigh])
	assert.Equal(t, 0.0, p.ResolutionHoursByPriority[PriorityCritical])
	assert.Len(t, p.ResolutionHoursByPriority, 4)
	assert.Equal(t, 7, p.TotalUpdates)
}

func TestComputeProductivity_ShortWindow(t *testing.T) {
	p := ComputeProductivity([]ReportFact{fact(1, StatusPending, PriorityLow, 0)}, 0, base, base.Add(time.Hour))
	assert.Equal(t, 1.0, p.ReportsPerDay)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period30d, p)

	p, err = ParsePeriod("7d")
	require.NoError(t, err)
	from, to := p.Range(base)
	assert.Equal(t, base.AddDate(0, 0, -7), from)
	assert.Equal(t, base, to)

	pf, pt := PreviousWindow(from, to)
	assert.Equal(t, base.AddDate(0, 0, -14), pf)
	assert.Equal(t, from, pt)

	_, err = ParsePeriod("2w")
	assert.Error(t, err)
}

func TestBuildDashboard(t *testing.T) {
	from, to := Period7d.Range(base)
	d := BuildDashboard(DashboardInput{
		Period:      Period7d,
		From:        from,
		To:          to,
		Granularity: biztime.GranularityDay,
		Current:     []ReportFact{fact(1, StatusPending, PriorityLow, 0)},
		Now:         base,
	})

	assert.Equal(t, "7d", d.Period)
	assert.Equal(t, 1, d.Overview.Total)
	assert.Len(t, d.PriorityDistribution, 4)
	assert.NotEmpty(t, d.Timeline)
	assert.Equal(t, base, d.GeneratedAt)
}
