package service

import (
	"context"
	"time"

	"github.com/SivaK1-Turing/mealplanner/internal/calendar"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
)

type statsService struct {
	plans repository.PlanRepo
}

// NewStatsService creates the statistics aggregator.
func NewStatsService(plans repository.PlanRepo) StatsService {
	return &statsService{plans: plans}
}

func (s *statsService) Statistics(ctx context.Context, start, end time.Time) (*Statistics, error) {
	plans, err := s.plans.ListByRange(ctx, calendar.DateOnly(start), calendar.DateOnly(end))
	if err != nil {
		return nil, err
	}

	mealTypeCounts := make(map[domain.MealType]int, 4)
	for _, mealType := range domain.MealTypes() {
		mealTypeCounts[mealType] = 0
	}
	recipeCounts := make(map[int64]int)
	completed := 0
	for _, p := range plans {
		mealTypeCounts[p.MealType]++
		recipeCounts[p.RecipeID]++
		if p.Completed {
			completed++
		}
	}

	// Guard the empty range; 0/0 is reported as a zero rate.
	completionRate := 0.0
	if len(plans) > 0 {
		completionRate = round1(float64(completed) / float64(len(plans)) * 100)
	}

	return &Statistics{
		TotalPlans:     len(plans),
		CompletedPlans: completed,
		CompletionRate: completionRate,
		MealTypeCounts: mealTypeCounts,
		MostPlanned:    rankRecipes(recipeCounts, 5),
	}, nil
}
