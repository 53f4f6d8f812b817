package cli

import (
	"fmt"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/calendar"
)

// parseDateArg accepts "2006-01-02" plus the conveniences "today",
// "tomorrow" and "yesterday".
func parseDateArg(s string) (time.Time, error) {
	switch s {
	case "today":
		return calendar.DateOnly(time.Now()), nil
	case "tomorrow":
		return calendar.DateOnly(time.Now()).AddDate(0, 0, 1), nil
	case "yesterday":
		return calendar.DateOnly(time.Now()).AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(calendar.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today, tomorrow or yesterday)", s)
	}
	return t, nil
}

// parseRangeFlags resolves a start/end flag pair, defaulting end to start.
func parseRangeFlags(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := parseDateArg(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endStr == "" {
		return start, start, nil
	}
	end, err := parseDateArg(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			end.Format(calendar.DateLayout), start.Format(calendar.DateLayout))
	}
	return start, end, nil
}
