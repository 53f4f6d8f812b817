// Package calendar holds the pure date arithmetic behind week and month
// views: window bounds, weekday classification and slot keys. Nothing here
// touches storage.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// DateLayout is the storage and CLI format for calendar dates.
const DateLayout = "2006-01-02"

// DateOnly strips the time component, returning midnight UTC of the same
// calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekBounds returns the first and last day (inclusive) of the 7-day week
// containing ref. startOnMonday selects Monday-first weeks; otherwise weeks
// run Sunday through Saturday.
func WeekBounds(ref time.Time, startOnMonday bool) (time.Time, time.Time) {
	ref = DateOnly(ref)
	var offset int
	if startOnMonday {
		// time.Weekday has Sunday == 0; shift so Monday == 0.
		offset = (int(ref.Weekday()) + 6) % 7
	} else {
		offset = int(ref.Weekday())
	}
	start := ref.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day (inclusive) of the given month.
// Month length and leap years fall out of time.AddDate normalization.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayName returns the lowercase weekday name of t ("monday" .. "sunday").
func DayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// SlotKey builds the bulk-planner assignment key for a date and meal type,
// e.g. "monday_dinner".
func SlotKey(t time.Time, m domain.MealType) string {
	return fmt.Sprintf("%s_%s", DayName(t), m)
}

// ISOWeek returns the ISO 8601 week number of t.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
