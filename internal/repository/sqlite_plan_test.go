package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/SivaK1-Turing/mealplanner/internal/testutil"
)

func seedRecipe(t *testing.T, repo *SQLiteRecipeRepo, title string) int64 {
	t.Helper()
	r := testutil.NewTestRecipe(title)
	require.NoError(t, repo.Create(context.Background(), r))
	return r.ID
}

func TestPlanRepo_CreateAndGetByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Pasta Carbonara")
	plan := testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, 20), domain.MealDinner,
		testutil.WithServings(2), testutil.WithNotes("double batch"))
	require.NoError(t, plans.Create(ctx, plan))
	require.NotZero(t, plan.ID)

	got, err := plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, testutil.Date(2025, 6, 20), got.Date)
	assert.Equal(t, domain.MealDinner, got.MealType)
	assert.Equal(t, recipeID, got.RecipeID)
	assert.Equal(t, 2, got.Servings)
	assert.Equal(t, "double batch", got.Notes)
	assert.False(t, got.Completed)
}

func TestPlanRepo_GetByID_Missing(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := NewSQLitePlanRepo(database)

	got, err := plans.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlanRepo_GetBySlot(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Omelette")
	date := testutil.Date(2025, 6, 20)
	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(recipeID, date, domain.MealBreakfast)))

	got, err := plans.GetBySlot(ctx, date, domain.MealBreakfast)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.MealBreakfast, got.MealType)

	empty, err := plans.GetBySlot(ctx, date, domain.MealLunch)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestPlanRepo_ListByDate_CanonicalMealOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Stir Fry")
	date := testutil.Date(2025, 6, 20)
	// Insert out of order; lexical sorting would yield breakfast, dinner,
	// lunch, snack which is wrong.
	for _, mt := range []domain.MealType{domain.MealSnack, domain.MealDinner, domain.MealBreakfast, domain.MealLunch} {
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(recipeID, date, mt)))
	}

	got, err := plans.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, got, 4)

	var order []domain.MealType
	for _, p := range got {
		order = append(order, p.MealType)
	}
	assert.Equal(t, []domain.MealType{domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack}, order)
}

func TestPlanRepo_ListByRange_InclusiveBounds(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Chili")
	for day := 14; day <= 18; day++ {
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, day), domain.MealDinner)))
	}

	got, err := plans.ListByRange(ctx, testutil.Date(2025, 6, 15), testutil.Date(2025, 6, 17))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, testutil.Date(2025, 6, 15), got[0].Date)
	assert.Equal(t, testutil.Date(2025, 6, 17), got[2].Date)
}

func TestPlanRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Tacos")
	plan := testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, 20), domain.MealLunch)
	require.NoError(t, plans.Create(ctx, plan))

	plan.Servings = 6
	plan.Notes = "for guests"
	plan.Completed = true
	require.NoError(t, plans.Update(ctx, plan))

	got, err := plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6, got.Servings)
	assert.Equal(t, "for guests", got.Notes)
	assert.True(t, got.Completed)
}

func TestPlanRepo_Delete_Idempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Salad")
	plan := testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, 20), domain.MealLunch)
	require.NoError(t, plans.Create(ctx, plan))

	deleted, err := plans.Delete(ctx, plan.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = plans.Delete(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPlanRepo_DeleteRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	recipes := NewSQLiteRecipeRepo(database)
	plans := NewSQLitePlanRepo(database)
	ctx := context.Background()

	recipeID := seedRecipe(t, recipes, "Curry")
	for day := 16; day <= 19; day++ {
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, day), domain.MealDinner)))
		require.NoError(t, plans.Create(ctx, testutil.NewTestPlan(recipeID, testutil.Date(2025, 6, day), domain.MealLunch)))
	}

	t.Run("all meal types", func(t *testing.T) {
		n, err := plans.DeleteRange(ctx, testutil.Date(2025, 6, 16), testutil.Date(2025, 6, 17), nil)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("filtered by meal type", func(t *testing.T) {
		dinner := domain.MealDinner
		n, err := plans.DeleteRange(ctx, testutil.Date(2025, 6, 18), testutil.Date(2025, 6, 19), &dinner)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		remaining, err := plans.ListByRange(ctx, testutil.Date(2025, 6, 18), testutil.Date(2025, 6, 19))
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		for _, p := range remaining {
			assert.Equal(t, domain.MealLunch, p.MealType)
		}
	})
}
