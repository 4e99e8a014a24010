// Package biztime converts between UTC storage time and the business timezone.
// Everything is persisted in UTC. The business timezone only decides where a
// day, week, month or year starts, for range filters and timeline buckets.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone, initializing the default lazily.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		// tzdata missing: fall back to a fixed UTC-3 offset.
		mu.Lock()
		bizLocation = time.FixedZone("BRT", -3*60*60)
		loc = bizLocation
		mu.Unlock()
		return loc
	}
	return Location()
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns business-day midnight for t, expressed in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the last nanosecond of t's business day, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).In(Location()).AddDate(0, 0, 1).Add(-time.Nanosecond).UTC()
}

// StartOfWeekUTC returns the Monday midnight of t's business week, in UTC.
func StartOfWeekUTC(t time.Time) time.Time {
	b := t.In(Location())
	offset := (int(b.Weekday()) + 6) % 7
	monday := time.Date(b.Year(), b.Month(), b.Day()-offset, 0, 0, 0, 0, Location())
	return monday.UTC()
}

func StartOfMonthUTC(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, Location()).UTC()
}

func StartOfYearUTC(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, Location()).UTC()
}

func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// ParseDateInBizTimezone parses YYYY-MM-DD as business midnight and returns it in UTC.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Granularity selects the bucket size of a timeline.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// BucketStart truncates t to the start of its business-time bucket, in UTC.
// Unknown granularities bucket by day.
func BucketStart(t time.Time, g Granularity) time.Time {
	b := t.In(Location())
	switch g {
	case GranularityWeek:
		return StartOfWeekUTC(t)
	case GranularityMonth:
		return StartOfMonthUTC(b.Year(), b.Month())
	case GranularityYear:
		return StartOfYearUTC(b.Year())
	default:
		return StartOfDayUTC(t)
	}
}

// BucketLabel formats a bucket start for display: 2006-01-02 for day and
// week, 2006-01 for month, 2006 for year.
func BucketLabel(start time.Time, g Granularity) string {
	switch g {
	case GranularityMonth:
		return FormatInBizTimezone(start, "2006-01")
	case GranularityYear:
		return FormatInBizTimezone(start, "2006")
	default:
		return FormatInBizTimezone(start, "2006-01-02")
	}
}

// NextBucket advances a bucket start by one bucket.
func NextBucket(start time.Time, g Granularity) time.Time {
	b := start.In(Location())
	switch g {
	case GranularityWeek:
		return b.AddDate(0, 0, 7).UTC()
	case GranularityMonth:
		return b.AddDate(0, 1, 0).UTC()
	case GranularityYear:
		return b.AddDate(1, 0, 0).UTC()
	default:
		return b.AddDate(0, 0, 1).UTC()
	}
}
