package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// mealTypeRank orders meal_type columns in the canonical breakfast, lunch,
// dinner, snack sequence. Alphabetical ordering would put dinner before
// lunch.
const mealTypeRank = `CASE meal_type
		WHEN 'breakfast' THEN 0
		WHEN 'lunch' THEN 1
		WHEN 'dinner' THEN 2
		ELSE 3
	END`

// nullableIntToValue converts a *int to a SQLite argument, mapping nil to
// SQL NULL.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// parseNullableInt converts a scanned sql.NullInt64 back to a *int.
func parseNullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite 0/1 integer to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// parseDate parses a stored date column, already normalized to midnight UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
