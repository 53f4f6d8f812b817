package domain

import (
	"fmt"
	"time"
)

// RecipeNotFoundError reports a plan operation referencing a recipe that
// does not exist.
type RecipeNotFoundError struct {
	RecipeID int64
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe with ID %d not found", e.RecipeID)
}

// SchedulingConflictError reports an occupied (date, meal type) slot when no
// conflict override was requested.
type SchedulingConflictError struct {
	Date     time.Time
	MealType MealType
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("a %s is already scheduled for %s; use --allow-conflicts to override",
		e.MealType, e.Date.Format("2006-01-02"))
}

// InvalidMealTypeError reports a string that does not name any meal type.
type InvalidMealTypeError struct {
	Value string
}

func (e *InvalidMealTypeError) Error() string {
	return fmt.Sprintf("invalid meal type %q (valid: breakfast, lunch, dinner, snack)", e.Value)
}
