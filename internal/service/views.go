package service

import (
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// RecipeSummary is the display subset of a recipe embedded in detailed
// calendar views.
type RecipeSummary struct {
	Title        string
	Cuisine      string
	PrepTimeMin  *int
	CookTimeMin  *int
	TotalTimeMin *int
}

// PlanEntry is one scheduled meal inside a calendar bucket. Recipe is nil
// unless the view was built with Detailed.
type PlanEntry struct {
	ID        int64
	RecipeID  int64
	Servings  int
	Notes     string
	Completed bool
	Recipe    *RecipeSummary
}

// DayView is one date bucket of a week view. Meals holds entries per meal
// type in canonical order; types with no plans map to empty slices.
type DayView struct {
	Date           time.Time
	DayName        string
	IsToday        bool
	IsWeekend      bool
	Meals          map[domain.MealType][]PlanEntry
	TotalMeals     int
	CompletedMeals int
}

// WeekView is a 7-day calendar projection.
type WeekView struct {
	StartDate  time.Time
	EndDate    time.Time
	WeekNumber int
	Days       []DayView
}

// MonthDayView is one date bucket of a month view. Meals is populated only
// for detailed views; MealCounts is always present.
type MonthDayView struct {
	Date           time.Time
	Day            int
	DayName        string
	IsToday        bool
	IsWeekend      bool
	TotalMeals     int
	CompletedMeals int
	MealCounts     map[domain.MealType]int
	Meals          map[domain.MealType][]PlanEntry
}

// MonthView is a whole-month calendar projection. StartWeekday supports grid
// layout by the consumer.
type MonthView struct {
	Year         int
	Month        time.Month
	MonthName    string
	StartDate    time.Time
	EndDate      time.Time
	StartWeekday time.Weekday
	Days         []MonthDayView
}

// RecipeFrequency ranks a recipe by how often it appears in a range.
type RecipeFrequency struct {
	RecipeID int64
	Title    string
	Count    int
}

// RangeSummary aggregates a date range for the summary command.
type RangeSummary struct {
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	TotalMeals     int
	DaysWithMeals  int
	AvgMealsPerDay float64
	MealTypeCounts map[domain.MealType]int
	CompletedMeals int
	CompletionRate float64
	UniqueRecipes  int
	MostFrequent   []RecipeFrequency
}

// FreeSlot is an unoccupied (date, meal type) combination.
type FreeSlot struct {
	Date      time.Time
	MealType  domain.MealType
	DayName   string
	IsWeekend bool
}

// RecipeCount is one entry of the most-planned ranking.
type RecipeCount struct {
	RecipeID int64
	Count    int
}

// Statistics aggregates plans over a date range. MostPlanned holds at most
// five entries, sorted by count descending with recipe id ascending as the
// tie-break.
type Statistics struct {
	TotalPlans     int
	CompletedPlans int
	CompletionRate float64
	MealTypeCounts map[domain.MealType]int
	MostPlanned    []RecipeCount
}
