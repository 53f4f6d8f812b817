package testutil

import (
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
)

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithCuisine(c string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Cuisine = c
	}
}

func WithPrepTime(min int) RecipeOption {
	return func(r *domain.Recipe) {
		r.PrepTimeMin = &min
	}
}

func WithCookTime(min int) RecipeOption {
	return func(r *domain.Recipe) {
		r.CookTimeMin = &min
	}
}

func WithRecipeServings(n int) RecipeOption {
	return func(r *domain.Recipe) {
		r.Servings = n
	}
}

// NewTestRecipe builds a recipe ready for repository Create; the ID is
// assigned on insert.
func NewTestRecipe(title string, opts ...RecipeOption) *domain.Recipe {
	now := time.Now().UTC()
	r := &domain.Recipe{
		Title:     title,
		Servings:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan options
type PlanOption func(*domain.Plan)

func WithServings(n int) PlanOption {
	return func(p *domain.Plan) {
		p.Servings = n
	}
}

func WithNotes(notes string) PlanOption {
	return func(p *domain.Plan) {
		p.Notes = notes
	}
}

func WithCompleted() PlanOption {
	return func(p *domain.Plan) {
		p.Completed = true
	}
}

// NewTestPlan builds a plan for the given recipe and slot, ready for
// repository Create.
func NewTestPlan(recipeID int64, date time.Time, mealType domain.MealType, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		MealType:  mealType,
		RecipeID:  recipeID,
		Servings:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Date is shorthand for a midnight-UTC calendar date in tests.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
