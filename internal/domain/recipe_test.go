package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRecipe_TotalTimeMin(t *testing.T) {
	tests := []struct {
		name string
		prep *int
		cook *int
		want *int
	}{
		{"both set", intPtr(15), intPtr(30), intPtr(45)},
		{"prep only", intPtr(10), nil, intPtr(10)},
		{"cook only", nil, intPtr(25), intPtr(25)},
		{"neither", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Recipe{Title: "Test", PrepTimeMin: tt.prep, CookTimeMin: tt.cook}
			got := r.TotalTimeMin()
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
