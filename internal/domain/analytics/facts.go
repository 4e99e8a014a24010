// Package analytics aggregates report facts into dashboard read models.
// Every calculation runs in memory over facts loaded for one scope.
package analytics

import (
	"fmt"
	"math"
	"time"
)

// ReportFact is the projection of a report the calculations need.
type ReportFact struct {
	ID            uint
	Status        string
	Priority      string
	Progress      int
	AuthorID      uint
	AssigneeID    *uint
	LocalID       *uint
	EquipamentoID *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ResolvedAt    *time.Time
}

func (f ReportFact) resolved() bool { return f.Status == StatusResolved }

// resolutionDuration uses resolved-at, falling back to updated-at for rows
// resolved before resolved-at was tracked.
func (f ReportFact) resolutionDuration() time.Duration {
	end := f.UpdatedAt
	if f.ResolvedAt != nil {
		end = *f.ResolvedAt
	}
	if end.Before(f.CreatedAt) {
		return 0
	}
	return end.Sub(f.CreatedAt)
}

// UpdateFact is the projection of a progress update.
type UpdateFact struct {
	ReportID         uint
	PreviousProgress int
	CreatedAt        time.Time
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

var priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Scope selects the facts an aggregation runs over.
type Scope struct {
	TenantID uint
	// VisibleTo restricts to reports the user authored or is assigned to.
	VisibleTo *uint
	From      time.Time
	To        time.Time
}

// Period is a named look-back window.
type Period string

const (
	Period7d   Period = "7d"
	Period30d  Period = "30d"
	Period90d  Period = "90d"
	Period365d Period = "365d"
)

var periodDays = map[Period]int{Period7d: 7, Period30d: 30, Period90d: 90, Period365d: 365}

// ParsePeriod defaults an empty value to 30d.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return Period30d, nil
	}
	p := Period(s)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("invalid period %q, expected one of 7d, 30d, 90d, 365d", s)
	}
	return p, nil
}

func (p Period) Days() int {
	return periodDays[p]
}

// Range returns [now-days, now].
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -p.Days()), now
}

// PreviousWindow returns the window of equal length that ends at from.
func PreviousWindow(from, to time.Time) (time.Time, time.Time) {
	return from.Add(-to.Sub(from)), from
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}
