package analytics

import (
	"sort"
	"time"

	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
)

const topN = 10

type counter struct {
	total, pending, inProgress, resolved int
	progressSum                          int
	resolutionSum                        time.Duration
}

func (c *counter) add(f ReportFact) {
	c.total++
	c.progressSum += f.Progress
	switch f.Status {
	case StatusPending:
		c.pending++
	case StatusInProgress:
		c.inProgress++
	case StatusResolved:
		c.resolved++
		c.resolutionSum += f.resolutionDuration()
	}
}

func (c *counter) avgProgress() float64 {
	if c.total == 0 {
		return 0
	}
	return round1(float64(c.progressSum) / float64(c.total))
}

func (c *counter) avgResolutionDays() float64 {
	if c.resolved == 0 {
		return 0
	}
	return round1(c.resolutionSum.Hours() / 24 / float64(c.resolved))
}

func ComputeOverview(facts []ReportFact) Overview {
	var c counter
	for _, f := range facts {
		c.add(f)
	}
	return Overview{
		Total:                 c.total,
		Pending:               c.pending,
		InProgress:            c.inProgress,
		Resolved:              c.resolved,
		ResolutionRate:        percent(c.resolved, c.total),
		AverageProgress:       c.avgProgress(),
		AverageResolutionDays: c.avgResolutionDays(),
	}
}

// ComputePriorityDistribution always returns the four priorities, low first.
func ComputePriorityDistribution(facts []ReportFact) []PriorityBucket {
	counters := make(map[string]*counter, len(priorities))
	for _, p := range priorities {
		counters[p] = &counter{}
	}
	for _, f := range facts {
		if c, ok := counters[f.Priority]; ok {
			c.add(f)
		}
	}

	out := make([]PriorityBucket, 0, len(priorities))
	for _, p := range priorities {
		c := counters[p]
		out = append(out, PriorityBucket{
			Priority:        p,
			Count:           c.total,
			Resolved:        c.resolved,
			AverageProgress: c.avgProgress(),
			Percentage:      percent(c.total, len(facts)),
			ResolutionRate:  percent(c.resolved, c.total),
		})
	}
	return out
}

// ComputeLocationPerformance groups reports with a local, busiest first.
func ComputeLocationPerformance(facts []ReportFact, names Names) []LocationPerformance {
	counters := map[uint]*counter{}
	for _, f := range facts {
		if f.LocalID == nil {
			continue
		}
		c, ok := counters[*f.LocalID]
		if !ok {
			c = &counter{}
			counters[*f.LocalID] = c
		}
		c.add(f)
	}

	out := make([]LocationPerformance, 0, len(counters))
	for id, c := range counters {
		out = append(out, LocationPerformance{
			LocalID:               id,
			LocalName:             names.Locals[id],
			Total:                 c.total,
			Pending:               c.pending,
			InProgress:            c.inProgress,
			Resolved:              c.resolved,
			AverageProgress:       c.avgProgress(),
			ResolutionRate:        percent(c.resolved, c.total),
			AverageResolutionDays: c.avgResolutionDays(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].LocalID < out[j].LocalID
	})
	return out
}

func ComputeUserPerformance(facts []ReportFact, names Names) UserPerformance {
	authors := map[uint]*counter{}
	assignees := map[uint]*counter{}
	for _, f := range facts {
		a, ok := authors[f.AuthorID]
		if !ok {
			a = &counter{}
			authors[f.AuthorID] = a
		}
		a.add(f)

		if f.AssigneeID != nil {
			s, ok := assignees[*f.AssigneeID]
			if !ok {
				s = &counter{}
				assignees[*f.AssigneeID] = s
			}
			s.add(f)
		}
	}

	authorRows := make([]AuthorPerformance, 0, len(authors))
	for id, c := range authors {
		authorRows = append(authorRows, AuthorPerformance{
			UserID:         id,
			Name:           names.Users[id],
			Created:        c.total,
			Resolved:       c.resolved,
			ResolutionRate: percent(c.resolved, c.total),
		})
	}
	sort.Slice(authorRows, func(i, j int) bool {
		if authorRows[i].Created != authorRows[j].Created {
			return authorRows[i].Created > authorRows[j].Created
		}
		return authorRows[i].UserID < authorRows[j].UserID
	})

	assigneeRows := make([]AssigneePerformance, 0, len(assignees))
	for id, c := range assignees {
		assigneeRows = append(assigneeRows, AssigneePerformance{
			UserID:          id,
			Name:            names.Users[id],
			Assigned:        c.total,
			Resolved:        c.resolved,
			AverageProgress: c.avgProgress(),
			ResolutionRate:  percent(c.resolved, c.total),
		})
	}
	sort.Slice(assigneeRows, func(i, j int) bool {
		if assigneeRows[i].Assigned != assigneeRows[j].Assigned {
			return assigneeRows[i].Assigned > assigneeRows[j].Assigned
		}
		return assigneeRows[i].UserID < assigneeRows[j].UserID
	})

	return UserPerformance{
		Authors:   truncate(authorRows, topN),
		Assignees: truncate(assigneeRows, topN),
	}
}

// ComputeTimeline buckets creations in the business timezone. Every bucket
// between from and to is present, empty ones with zero counts.
func ComputeTimeline(facts []ReportFact, from, to time.Time, g biztime.Granularity) []TimelinePoint {
	if !g.IsValid() {
		g = biztime.GranularityDay
	}
	type agg struct {
		start           time.Time
		total, resolved int
	}
	byStart := map[int64]*agg{}
	for _, f := range facts {
		start := biztime.BucketStart(f.CreatedAt, g)
		a, ok := byStart[start.Unix()]
		if !ok {
			a = &agg{start: start}
			byStart[start.Unix()] = a
		}
		a.total++
		if f.resolved() {
			a.resolved++
		}
	}

	var out []TimelinePoint
	if !from.IsZero() && !to.IsZero() && !to.Before(from) {
		for start := biztime.BucketStart(from, g); !start.After(to); start = biztime.NextBucket(start, g) {
			p := TimelinePoint{Period: biztime.BucketLabel(start, g), Start: start}
			if a, ok := byStart[start.Unix()]; ok {
				p.Total, p.Resolved = a.total, a.resolved
				delete(byStart, start.Unix())
			}
			out = append(out, p)
		}
	}
	// Facts outside the window still show up rather than being dropped.
	for _, a := range byStart {
		out = append(out, TimelinePoint{Period: biztime.BucketLabel(a.start, g), Start: a.start, Total: a.total, Resolved: a.resolved})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func ComputeEquipmentIssues(facts []ReportFact, names Names) []EquipmentIssue {
	type agg struct {
		counter
		critical int
	}
	byID := map[uint]*agg{}
	for _, f := range facts {
		if f.EquipamentoID == nil {
			continue
		}
		a, ok := byID[*f.EquipamentoID]
		if !ok {
			a = &agg{}
			byID[*f.EquipamentoID] = a
		}
		a.add(f)
		if f.Priority == PriorityCritical {
			a.critical++
		}
	}

	out := make([]EquipmentIssue, 0, len(byID))
	for id, a := range byID {
		info := names.Equipment[id]
		out = append(out, EquipmentIssue{
			EquipamentoID:   id,
			Name:            info.Name,
			Code:            info.Code,
			LocalName:       info.LocalName,
			Total:           a.total,
			Open:            a.total - a.resolved,
			Critical:        a.critical,
			Resolved:        a.resolved,
			AverageProgress: a.avgProgress(),
			ResolutionRate:  percent(a.resolved, a.total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].EquipamentoID < out[j].EquipamentoID
	})
	return truncate(out, topN)
}

// ComputeResponseTime measures creation to the earliest update that moved the
// report off zero progress.
func ComputeResponseTime(facts []ReportFact, updates []UpdateFact) ResponseTime {
	reports := make(map[uint]ReportFact, len(facts))
	for _, f := range facts {
		reports[f.ID] = f
	}
	first := map[uint]time.Time{}
	for _, u := range updates {
		if u.PreviousProgress != 0 {
			continue
		}
		if _, ok := reports[u.ReportID]; !ok {
			continue
		}
		if t, ok := first[u.ReportID]; !ok || u.CreatedAt.Before(t) {
			first[u.ReportID] = u.CreatedAt
		}
	}

	var overall []float64
	byPriority := map[string][]float64{}
	for id, t := range first {
		f := reports[id]
		hours := t.Sub(f.CreatedAt).Hours()
		if hours < 0 {
			hours = 0
		}
		overall = append(overall, hours)
		byPriority[f.Priority] = append(byPriority[f.Priority], hours)
	}

	res := ResponseTime{
		Overall:    responseStats(overall),
		ByPriority: make(map[string]ResponseStats, len(byPriority)),
	}
	for p, hs := range byPriority {
		res.ByPriority[p] = responseStats(hs)
	}
	return res
}

func responseStats(hours []float64) ResponseStats {
	if len(hours) == 0 {
		return ResponseStats{}
	}
	minH, maxH, sum := hours[0], hours[0], 0.0
	for _, h := range hours {
		sum += h
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
	}
	return ResponseStats{
		AverageHours: round1(sum / float64(len(hours))),
		MinHours:     round1(minH),
		MaxHours:     round1(maxH),
		Count:        len(hours),
	}
}

// Trend keys returned by ComputeTrends.
const (
	TrendTotal      = "total"
	TrendResolved   = "resolved"
	TrendInProgress = "in_progress"
	TrendPending    = "pending"
	TrendCritical   = "critical"
	TrendHigh       = "high"
)

func periodCounts(facts []ReportFact) map[string]int {
	m := map[string]int{
		TrendTotal: len(facts), TrendResolved: 0, TrendInProgress: 0,
		TrendPending: 0, TrendCritical: 0, TrendHigh: 0,
	}
	for _, f := range facts {
		switch f.Status {
		case StatusResolved:
			m[TrendResolved]++
		case StatusInProgress:
			m[TrendInProgress]++
		case StatusPending:
			m[TrendPending]++
		}
		switch f.Priority {
		case PriorityCritical:
			m[TrendCritical]++
		case PriorityHigh:
			m[TrendHigh]++
		}
	}
	return m
}

// Variation is (cur-prev)/prev*100. With no previous value it is 100 when
// anything happened now and 0 otherwise.
func Variation(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1(float64(current-previous) / float64(previous) * 100)
}

func trendOf(variation float64) string {
	switch {
	case variation > 0:
		return "up"
	case variation < 0:
		return "down"
	default:
		return "stable"
	}
}

func ComputeTrends(current, previous []ReportFact) map[string]TrendMetric {
	cur := periodCounts(current)
	prev := periodCounts(previous)
	out := make(map[string]TrendMetric, len(cur))
	for k, c := range cur {
		v := Variation(c, prev[k])
		out[k] = TrendMetric{Current: c, Previous: prev[k], Variation: v, Trend: trendOf(v)}
	}
	return out
}

func ComputeProductivity(facts []ReportFact, totalUpdates int, from, to time.Time) Productivity {
	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		days = 1
	}

	resolved := 0
	sums := map[string]time.Duration{}
	counts := map[string]int{}
	for _, f := range facts {
		if !f.resolved() {
			continue
		}
		resolved++
		sums[f.Priority] += f.resolutionDuration()
		counts[f.Priority]++
	}

	byPriority := make(map[string]float64, len(priorities))
	for _, p := range priorities {
		if counts[p] == 0 {
			byPriority[p] = 0
			continue
		}
		byPriority[p] = round1(sums[p].Hours() / float64(counts[p]))
	}

	return Productivity{
		ReportsPerDay:             round1(float64(len(facts)) / float64(days)),
		CompletionRate:            percent(resolved, len(facts)),
		ResolutionHoursByPriority: byPriority,
		TotalUpdates:              totalUpdates,
	}
}

func truncate[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// DashboardInput carries everything BuildDashboard aggregates.
type DashboardInput struct {
	Period      Period
	From, To    time.Time
	Granularity biztime.Granularity
	Current     []ReportFact
	Previous    []ReportFact
	Updates     []UpdateFact
	Names       Names
	Now         time.Time
}

func BuildDashboard(in DashboardInput) Dashboard {
	return Dashboard{
		Period:               string(in.Period),
		From:                 in.From,
		To:                   in.To,
		Overview:             ComputeOverview(in.Current),
		PriorityDistribution: ComputePriorityDistribution(in.Current),
		LocationPerformance:  ComputeLocationPerformance(in.Current, in.Names),
		UserPerformance:      ComputeUserPerformance(in.Current, in.Names),
		Timeline:             ComputeTimeline(in.Current, in.From, in.To, in.Granularity),
		EquipmentIssues:      ComputeEquipmentIssues(in.Current, in.Names),
		ResponseTime:         ComputeResponseTime(in.Current, in.Updates),
		Trends:               ComputeTrends(in.Current, in.Previous),
		Productivity:         ComputeProductivity(in.Current, len(in.Updates), in.From, in.To),
		GeneratedAt:          in.Now,
	}
}
