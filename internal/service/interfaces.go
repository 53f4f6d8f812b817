package service

import (
	"context"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// ScheduleRequest carries the fields needed to put a recipe on a slot.
type ScheduleRequest struct {
	Date           time.Time
	MealType       domain.MealType
	RecipeID       int64
	Servings       int // defaults to 1 when <= 0
	Notes          string
	AllowConflicts bool
}

// PlanPatch is a partial update of a plan. Nil fields are left untouched.
// MealType is the raw user string; it is case-folded and validated before
// any field is applied.
type PlanPatch struct {
	Date      *time.Time
	MealType  *string
	RecipeID  *int64
	Servings  *int
	Notes     *string
	Completed *bool
}

// SlotFailure records one bulk-planner assignment that could not be
// scheduled.
type SlotFailure struct {
	Slot     string
	RecipeID int64
	Reason   string
}

// WeekPlanResult is the outcome of a week planning call: the plans that were
// created plus every assignment that failed, so callers see partial failure
// instead of silently losing slots.
type WeekPlanResult struct {
	Created  []*domain.Plan
	Failures []SlotFailure
}

// PlannerService is the single entry point for mutating the meal schedule.
type PlannerService interface {
	// Schedule validates the recipe reference and the slot conflict policy,
	// then persists a new plan. Returns *domain.RecipeNotFoundError or
	// *domain.SchedulingConflictError on validation failure.
	Schedule(ctx context.Context, req ScheduleRequest) (*domain.Plan, error)
	// Get returns (nil, nil) when no plan has the given id.
	Get(ctx context.Context, id int64) (*domain.Plan, error)
	// Update applies a patch to an existing plan. Returns (nil, nil) when
	// the plan does not exist and *domain.InvalidMealTypeError when the
	// patch carries an unrecognized meal-type string (no field is applied
	// in that case).
	Update(ctx context.Context, id int64, patch PlanPatch) (*domain.Plan, error)
	// Delete reports whether a plan was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// Complete toggles only the completed flag.
	Complete(ctx context.Context, id int64, completed bool) (*domain.Plan, error)
	PlansForDate(ctx context.Context, date time.Time) ([]*domain.Plan, error)
	PlansForRange(ctx context.Context, start, end time.Time) ([]*domain.Plan, error)
	// ClearSchedule deletes every plan in [start, end], optionally filtered
	// to one meal type, and returns the count deleted.
	ClearSchedule(ctx context.Context, start, end time.Time, mealType *domain.MealType) (int, error)
	// PlanWeek schedules assignments keyed "<weekday>_<mealtype>" over the
	// 7-day window starting at start. Individual failures never abort the
	// batch; they are collected in the result.
	PlanWeek(ctx context.Context, start time.Time, assignments map[string]int64, clearExisting bool) (*WeekPlanResult, error)
}

// CalendarOptions controls calendar view construction.
type CalendarOptions struct {
	StartOnMonday bool
	// Detailed embeds recipe summaries into each plan entry.
	Detailed bool
}

// CalendarService builds read-only projections of the schedule. It never
// mutates state.
type CalendarService interface {
	Week(ctx context.Context, ref time.Time, opts CalendarOptions) (*WeekView, error)
	Month(ctx context.Context, year int, month time.Month, opts CalendarOptions) (*MonthView, error)
	Summary(ctx context.Context, start, end time.Time) (*RangeSummary, error)
	// FreeSlots lists (date, meal type) combinations with no plan. An empty
	// mealTypes slice means all four.
	FreeSlots(ctx context.Context, start, end time.Time, mealTypes []domain.MealType) ([]FreeSlot, error)
}

// StatsService aggregates plans over a date range.
type StatsService interface {
	Statistics(ctx context.Context, start, end time.Time) (*Statistics, error)
}

// RecipeService is the minimal recipe store surface the CLI exposes.
type RecipeService interface {
	Add(ctx context.Context, r *domain.Recipe) error
	// Get returns (nil, nil) when no recipe has the given id.
	Get(ctx context.Context, id int64) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
}
