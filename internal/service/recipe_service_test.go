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

func TestRecipeService_Add(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRecipeService(repository.NewSQLiteRecipeRepo(database))
	ctx := context.Background()

	r := &domain.Recipe{Title: "Pasta Carbonara", Cuisine: "italian"}
	require.NoError(t, svc.Add(ctx, r))
	assert.NotZero(t, r.ID)
	assert.Equal(t, 1, r.Servings, "servings default to 1")
	assert.False(t, r.CreatedAt.IsZero())

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pasta Carbonara", got.Title)
}

func TestRecipeService_Add_RequiresTitle(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRecipeService(repository.NewSQLiteRecipeRepo(database))

	err := svc.Add(context.Background(), &domain.Recipe{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	recipes, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, recipes)
}

func TestRecipeService_Get_Missing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewRecipeService(repository.NewSQLiteRecipeRepo(database))

	got, err := svc.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}
