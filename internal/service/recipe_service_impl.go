package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
)

type recipeService struct {
	recipes  repository.RecipeRepo
	observer UseCaseObserver
}

// NewRecipeService creates the minimal recipe store surface.
func NewRecipeService(recipes repository.RecipeRepo, observers ...UseCaseObserver) RecipeService {
	return &recipeService{recipes: recipes, observer: useCaseObserverOrNoop(observers)}
}

func (s *recipeService) Add(ctx context.Context, r *domain.Recipe) error {
	startedAt := time.Now()

	if r.Title == "" {
		return fmt.Errorf("recipe title is required")
	}
	if r.Servings <= 0 {
		r.Servings = 1
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	err := s.recipes.Create(ctx, r)
	observe(ctx, s.observer, "add_recipe", startedAt, err, map[string]any{"title": r.Title})
	return err
}

func (s *recipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.List(ctx)
}
