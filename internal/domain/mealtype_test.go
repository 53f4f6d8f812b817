package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealType_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"dinner", "DINNER", "Dinner", "  dinner  "} {
		mt, err := ParseMealType(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, MealDinner, mt)
	}
}

func TestParseMealType_Invalid(t *testing.T) {
	_, err := ParseMealType("brunch")
	require.Error(t, err)

	var invalidErr *InvalidMealTypeError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, "brunch", invalidErr.Value)
}

func TestMealTypes_CanonicalOrder(t *testing.T) {
	// Display order is breakfast, lunch, dinner, snack, not alphabetical.
	expected := []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
	assert.Equal(t, expected, MealTypes())

	for i, mt := range MealTypes() {
		assert.Equal(t, i, mt.Order())
	}
}

func TestMealType_Valid(t *testing.T) {
	assert.True(t, MealSnack.Valid())
	assert.False(t, MealType("supper").Valid())
}
