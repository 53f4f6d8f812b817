package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/calendar"
	"github.com/SivaK1-Turing/mealplanner/internal/db"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
)

type plannerService struct {
	plans    repository.PlanRepo
	recipes  repository.RecipeRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewPlannerService creates the scheduling service. Reads go through the
// given repositories; mutations run inside the UnitOfWork with tx-scoped
// repositories.
func NewPlannerService(plans repository.PlanRepo, recipes repository.RecipeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PlannerService {
	return &plannerService{
		plans:    plans,
		recipes:  recipes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) Schedule(ctx context.Context, req ScheduleRequest) (*domain.Plan, error) {
	startedAt := time.Now()

	if !req.MealType.Valid() {
		return nil, &domain.InvalidMealTypeError{Value: string(req.MealType)}
	}
	if req.Servings <= 0 {
		req.Servings = 1
	}
	date := calendar.DateOnly(req.Date)

	var plan *domain.Plan
	var recipeTitle string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txRecipes := repository.NewSQLiteRecipeRepo(tx)

		recipe, err := txRecipes.GetByID(ctx, req.RecipeID)
		if err != nil {
			return err
		}
		if recipe == nil {
			return &domain.RecipeNotFoundError{RecipeID: req.RecipeID}
		}
		recipeTitle = recipe.Title

		if !req.AllowConflicts {
			existing, err := txPlans.GetBySlot(ctx, date, req.MealType)
			if err != nil {
				return err
			}
			if existing != nil {
				return &domain.SchedulingConflictError{Date: date, MealType: req.MealType}
			}
		}

		now := time.Now().UTC()
		plan = &domain.Plan{
			Date:      date,
			MealType:  req.MealType,
			RecipeID:  req.RecipeID,
			Servings:  req.Servings,
			Notes:     req.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return txPlans.Create(ctx, plan)
	})

	observe(ctx, s.observer, "schedule_meal", startedAt, err, map[string]any{
		"recipe":    recipeTitle,
		"meal_type": string(req.MealType),
		"date":      date.Format(calendar.DateLayout),
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *plannerService) Get(ctx context.Context, id int64) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *plannerService) Update(ctx context.Context, id int64, patch PlanPatch) (*domain.Plan, error) {
	startedAt := time.Now()

	// A bad meal-type string rejects the whole patch; partially applying an
	// update would leave the caller with a plan that disagrees with their
	// request.
	var mealType *domain.MealType
	if patch.MealType != nil {
		parsed, err := domain.ParseMealType(*patch.MealType)
		if err != nil {
			return nil, err
		}
		mealType = &parsed
	}
	if patch.Servings != nil && *patch.Servings <= 0 {
		return nil, fmt.Errorf("servings must be positive, got %d", *patch.Servings)
	}

	var updated *domain.Plan
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txRecipes := repository.NewSQLiteRecipeRepo(tx)

		plan, err := txPlans.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if plan == nil {
			return nil
		}

		if patch.Date != nil {
			plan.Date = calendar.DateOnly(*patch.Date)
		}
		if mealType != nil {
			plan.MealType = *mealType
		}
		if patch.RecipeID != nil {
			recipe, err := txRecipes.GetByID(ctx, *patch.RecipeID)
			if err != nil {
				return err
			}
			if recipe == nil {
				return &domain.RecipeNotFoundError{RecipeID: *patch.RecipeID}
			}
			plan.RecipeID = *patch.RecipeID
		}
		if patch.Servings != nil {
			plan.Servings = *patch.Servings
		}
		if patch.Notes != nil {
			plan.Notes = *patch.Notes
		}
		if patch.Completed != nil {
			plan.Completed = *patch.Completed
		}
		plan.UpdatedAt = time.Now().UTC()

		if err := txPlans.Update(ctx, plan); err != nil {
			return err
		}
		updated = plan
		return nil
	})

	observe(ctx, s.observer, "update_meal_plan", startedAt, err, map[string]any{
		"plan_id": id,
		"found":   updated != nil,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *plannerService) Delete(ctx context.Context, id int64) (bool, error) {
	startedAt := time.Now()

	var deleted bool
	fields := map[string]any{"plan_id": id}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		plan, err := txPlans.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if plan == nil {
			return nil
		}
		fields["meal_type"] = string(plan.MealType)
		fields["date"] = plan.Date.Format(calendar.DateLayout)

		deleted, err = txPlans.Delete(ctx, id)
		return err
	})

	observe(ctx, s.observer, "delete_meal_plan", startedAt, err, fields)
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *plannerService) Complete(ctx context.Context, id int64, completed bool) (*domain.Plan, error) {
	return s.Update(ctx, id, PlanPatch{Completed: &completed})
}

func (s *plannerService) PlansForDate(ctx context.Context, date time.Time) ([]*domain.Plan, error) {
	return s.plans.ListByDate(ctx, calendar.DateOnly(date))
}

func (s *plannerService) PlansForRange(ctx context.Context, start, end time.Time) ([]*domain.Plan, error) {
	return s.plans.ListByRange(ctx, calendar.DateOnly(start), calendar.DateOnly(end))
}

func (s *plannerService) ClearSchedule(ctx context.Context, start, end time.Time, mealType *domain.MealType) (int, error) {
	startedAt := time.Now()
	start = calendar.DateOnly(start)
	end = calendar.DateOnly(end)

	var count int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		var err error
		count, err = txPlans.DeleteRange(ctx, start, end, mealType)
		return err
	})

	observe(ctx, s.observer, "clear_schedule", startedAt, err, map[string]any{
		"deleted": count,
		"start":   start.Format(calendar.DateLayout),
		"end":     end.Format(calendar.DateLayout),
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *plannerService) PlanWeek(ctx context.Context, start time.Time, assignments map[string]int64, clearExisting bool) (*WeekPlanResult, error) {
	startedAt := time.Now()
	start = calendar.DateOnly(start)
	end := start.AddDate(0, 0, 6)

	if clearExisting {
		if _, err := s.ClearSchedule(ctx, start, end, nil); err != nil {
			return nil, err
		}
	}

	// Slot keys name each date's actual weekday, so a week starting
	// mid-calendar still matches "monday_dinner" on its Monday.
	result := &WeekPlanResult{}
	for offset := 0; offset < 7; offset++ {
		day := start.AddDate(0, 0, offset)
		for _, mealType := range domain.MealTypes() {
			key := calendar.SlotKey(day, mealType)
			recipeID, ok := assignments[key]
			if !ok {
				continue
			}

			plan, err := s.Schedule(ctx, ScheduleRequest{
				Date:           day,
				MealType:       mealType,
				RecipeID:       recipeID,
				AllowConflicts: true,
			})
			if err != nil {
				result.Failures = append(result.Failures, SlotFailure{
					Slot:     key,
					RecipeID: recipeID,
					Reason:   err.Error(),
				})
				continue
			}
			result.Created = append(result.Created, plan)
		}
	}

	observe(ctx, s.observer, "plan_week", startedAt, nil, map[string]any{
		"start":   start.Format(calendar.DateLayout),
		"created": len(result.Created),
		"failed":  len(result.Failures),
	})
	return result, nil
}
