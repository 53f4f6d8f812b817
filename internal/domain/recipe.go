package domain

import "time"

// Recipe holds the recipe fields this subsystem reads. Recipes are created
// once and treated as read-mostly; plans reference them by ID.
type Recipe struct {
	ID          int64
	Title       string
	Description string
	Cuisine     string
	PrepTimeMin *int
	CookTimeMin *int
	Servings    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalTimeMin returns prep plus cook time when both are known, whichever is
// known when only one is, and nil when neither is set.
func (r *Recipe) TotalTimeMin() *int {
	switch {
	case r.PrepTimeMin != nil && r.CookTimeMin != nil:
		total := *r.PrepTimeMin + *r.CookTimeMin
		return &total
	case r.PrepTimeMin != nil:
		return r.PrepTimeMin
	case r.CookTimeMin != nil:
		return r.CookTimeMin
	}
	return nil
}
