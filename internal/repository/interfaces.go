package repository

import (
	"context"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// PlanRepo persists meal-plan entries. Lookups return (nil, nil) when no row
// matches; absence is an expected outcome, not an error.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	// GetBySlot returns the earliest-created plan occupying (date, meal type),
	// or nil when the slot is free.
	GetBySlot(ctx context.Context, date time.Time, mealType domain.MealType) (*domain.Plan, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Plan, error)
	// ListByRange returns plans with start <= date <= end, ordered by date
	// then canonical meal-type order.
	ListByRange(ctx context.Context, start, end time.Time) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteRange removes every plan in [start, end], optionally restricted
	// to one meal type, and returns the number of rows removed.
	DeleteRange(ctx context.Context, start, end time.Time, mealType *domain.MealType) (int, error)
}

// RecipeRepo is the lookup surface the scheduler and calendar need from the
// recipe store.
type RecipeRepo interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	// GetByIDs fetches several recipes in one query, keyed by ID. Missing
	// IDs are simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
}
