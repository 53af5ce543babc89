package service

import (
	"time"

	"github.com/sangkips/receipts-api/pkg/apperror"
)

// Period selects the reporting bucket. Buckets are lower-bounded windows in
// server-local time; each wider bucket is a superset of the narrower ones.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod validates a period query value. Empty defaults to day.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodDay, nil
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s), nil
	default:
		return "", apperror.NewBadRequestError("Invalid period: must be day, week, month or all")
	}
}

// Label returns the human-readable period name used on exports.
func (p Period) Label() string {
	switch p {
	case PeriodDay:
		return "Today"
	case PeriodWeek:
		return "This Week"
	case PeriodMonth:
		return "This Month"
	default:
		return "All Time"
	}
}

// Start returns the bucket's inclusive lower bound relative to now.
// ok is false for the all-time bucket, which has no bound.
func (p Period) Start(now time.Time) (start time.Time, ok bool) {
	switch p {
	case PeriodDay:
		return startOfDay(now), true
	case PeriodWeek:
		// The week starts on the most recent Sunday at local midnight.
		return startOfDay(now).AddDate(0, 0, -int(now.Weekday())), true
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameCalendarDay reports whether two instants fall on the same local
// calendar day.
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
