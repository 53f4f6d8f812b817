package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/repository"
	"github.com/SivaK1-Turing/mealplanner/internal/testutil"
)

func TestStatistics_EmptyRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	stats := NewStatsService(repository.NewSQLitePlanRepo(database))

	got, err := stats.Statistics(context.Background(), testutil.Date(2025, 6, 1), testutil.Date(2025, 6, 30))
	require.NoError(t, err)
	assert.Zero(t, got.TotalPlans)
	assert.Zero(t, got.CompletedPlans)
	assert.Zero(t, got.CompletionRate)
	assert.Empty(t, got.MostPlanned)
	for _, mt := range domain.MealTypes() {
		count, ok := got.MealTypeCounts[mt]
		assert.True(t, ok, "meal type %s must be zero-filled", mt)
		assert.Zero(t, count)
	}
}

func TestStatistics_Aggregates(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	recipes := repository.NewSQLiteRecipeRepo(database)
	stats := NewStatsService(plans)
	ctx := context.Background()

	pasta := testutil.NewTestRecipe("Pasta")
	soup := testutil.NewTestRecipe("Soup")
	require.NoError(t, recipes.Create(ctx, pasta))
	require.NoError(t, recipes.Create(ctx, soup))

	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(pasta.ID, testutil.Date(2025, 6, 16), domain.MealDinner, testutil.WithCompleted())))
	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(pasta.ID, testutil.Date(2025, 6, 17), domain.MealDinner, testutil.WithCompleted())))
	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(soup.ID, testutil.Date(2025, 6, 17), domain.MealLunch)))
	// Outside the queried range; must not count.
	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(soup.ID, testutil.Date(2025, 7, 1), domain.MealLunch)))

	got, err := stats.Statistics(ctx, testutil.Date(2025, 6, 16), testutil.Date(2025, 6, 22))
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalPlans)
	assert.Equal(t, 2, got.CompletedPlans)
	assert.InDelta(t, 66.7, got.CompletionRate, 0.001)
	assert.Equal(t, 2, got.MealTypeCounts[domain.MealDinner])
	assert.Equal(t, 1, got.MealTypeCounts[domain.MealLunch])

	require.Len(t, got.MostPlanned, 2)
	assert.Equal(t, pasta.ID, got.MostPlanned[0].RecipeID)
	assert.Equal(t, 2, got.MostPlanned[0].Count)
}

func TestStatistics_TieBreakByRecipeID(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	recipes := repository.NewSQLiteRecipeRepo(database)
	stats := NewStatsService(plans)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"A", "B", "C"} {
		r := testutil.NewTestRecipe(title)
		require.NoError(t, recipes.Create(ctx, r))
		ids = append(ids, r.ID)
	}
	// One plan each; ranking order must fall back to ascending recipe id.
	for i, id := range ids {
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(id, testutil.Date(2025, 6, 16+i), domain.MealDinner)))
	}

	got, err := stats.Statistics(ctx, testutil.Date(2025, 6, 16), testutil.Date(2025, 6, 22))
	require.NoError(t, err)
	require.Len(t, got.MostPlanned, 3)
	assert.Equal(t, ids[0], got.MostPlanned[0].RecipeID)
	assert.Equal(t, ids[1], got.MostPlanned[1].RecipeID)
	assert.Equal(t, ids[2], got.MostPlanned[2].RecipeID)
}

func TestStatistics_LimitsMostPlannedToFive(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	recipes := repository.NewSQLiteRecipeRepo(database)
	stats := NewStatsService(plans)
	ctx := context.Background()

	for day := 1; day <= 7; day++ {
		r := testutil.NewTestRecipe("Recipe")
		require.NoError(t, recipes.Create(ctx, r))
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(r.ID, testutil.Date(2025, 6, day), domain.MealDinner)))
	}

	got, err := stats.Statistics(ctx, testutil.Date(2025, 6, 1), testutil.Date(2025, 6, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalPlans)
	assert.Len(t, got.MostPlanned, 5)
}
