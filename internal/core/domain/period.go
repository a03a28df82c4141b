package domain

import (
	"fmt"
	"time"
)

// PeriodKind selects the date-range predicate applied to records.
type PeriodKind string

const (
	PeriodToday   PeriodKind = "today"
	PeriodWeek    PeriodKind = "week"
	PeriodMonth   PeriodKind = "month"
	PeriodYear    PeriodKind = "year"
	PeriodAll     PeriodKind = "all"
	PeriodByMonth PeriodKind = "byMonth"
)

var periodLabels = map[PeriodKind]string{
	PeriodToday: "Today",
	PeriodWeek:  "This Week",
	PeriodMonth: "This Month",
	PeriodYear:  "This Year",
	PeriodAll:   "All Time",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Period is a fully specified period selector. Month is 0-based (January is
// 0, as the browser UI submits it) and only meaningful for PeriodByMonth.
type Period struct {
	Kind  PeriodKind
	Month int
	Year  int
}

// ParsePeriodKind validates a raw period selector string.
func ParsePeriodKind(s string) (PeriodKind, bool) {
	switch PeriodKind(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll, PeriodByMonth:
		return PeriodKind(s), true
	}
	return "", false
}

// Label returns the human-readable period label used in report headers.
func (p Period) Label() string {
	if p.Kind == PeriodByMonth {
		if p.Month >= 0 && p.Month < len(monthNames) {
			return fmt.Sprintf("%s %d", monthNames[p.Month], p.Year)
		}
		return fmt.Sprintf("Month %d %d", p.Month, p.Year)
	}
	return periodLabels[p.Kind]
}

// Slug returns the period token encoded into exported report filenames.
func (p Period) Slug() string {
	return string(p.Kind)
}

// Matches reports whether a record dated dateStr falls within the period,
// evaluated against now. A date string that does not parse as day-month-year
// fails every period, including All; such records are skipped silently.
func (p Period) Matches(dateStr string, now time.Time) bool {
	d, ok := ParseDMY(dateStr)
	if !ok {
		return false
	}
	switch p.Kind {
	case PeriodToday:
		// Exact string match against the canonical format, not calendar
		// equality. Producers write through FormatDMY.
		return dateStr == FormatDMY(now)
	case PeriodWeek:
		start := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
		return !d.Before(start) && !d.After(end)
	case PeriodMonth:
		return d.Month() == now.Month() && d.Year() == now.Year()
	case PeriodYear:
		return d.Year() == now.Year()
	case PeriodByMonth:
		return int(d.Month())-1 == p.Month && d.Year() == p.Year
	case PeriodAll:
		return true
	}
	return false
}

// Dated is any record carrying a day-month-year date string.
type Dated interface {
	RecordDate() string
}

// FilterByPeriod returns the subset of records whose date falls within the
// period, preserving input order. It is a pure function; records with
// unparseable dates are excluded, never reported as errors.
func FilterByPeriod[T Dated](records []T, p Period, now time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if p.Matches(r.RecordDate(), now) {
			out = append(out, r)
		}
	}
	return out
}
