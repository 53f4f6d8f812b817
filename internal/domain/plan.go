package domain

import "time"

// Plan is a single scheduled meal entry binding a date, a meal slot and a
// recipe. Instances returned by repositories and services are plain
// snapshots with no tie to any live database session.
type Plan struct {
	ID        int64
	Date      time.Time // date-only, normalized to midnight UTC
	MealType  MealType
	RecipeID  int64
	Servings  int
	Notes     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
