package domain

import "strings"

// MealType identifies one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes returns all meal types in canonical display and sort order.
// The order is fixed (breakfast, lunch, dinner, snack), not alphabetical.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

// Order returns the canonical sort rank of the meal type. Unknown values
// sort last.
func (m MealType) Order() int {
	switch m {
	case MealBreakfast:
		return 0
	case MealLunch:
		return 1
	case MealDinner:
		return 2
	case MealSnack:
		return 3
	}
	return 4
}

// Valid reports whether m is one of the four known meal types.
func (m MealType) Valid() bool {
	return m.Order() < 4
}

// ParseMealType converts a user-supplied string into a MealType.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", &InvalidMealTypeError{Value: s}
	}
	return m, nil
}
