// internal/recommender/profiles_test.go
package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"menu-recommender/internal/models"
)

func order(names ...string) models.Order {
	o := models.Order{}
	for _, n := range names {
		o.Items = append(o.Items, models.LineItem{Name: n})
	}
	return o
}

func TestBuildProfiles(t *testing.T) {
	tests := []struct {
		name     string
		history  models.OrderHistory
		expected map[string][]string
	}{
		{
			name: "single user single order",
			history: models.OrderHistory{
				"u1": {order("Burger", "Fries")},
			},
			expected: map[string][]string{
				"u1": {"Burger", "Fries"},
			},
		},
		{
			name: "duplicates across orders are preserved",
			history: models.OrderHistory{
				"u1": {order("Burger"), order("Burger", "Soda")},
			},
			expected: map[string][]string{
				"u1": {"Burger", "Burger", "Soda"},
			},
		},
		{
			name: "names are trimmed, case preserved",
			history: models.OrderHistory{
				"u1": {order("  Paneer Tikka ", "Cola")},
			},
			expected: map[string][]string{
				"u1": {"Paneer Tikka", "Cola"},
			},
		},
		{
			name: "blank names are skipped",
			history: models.OrderHistory{
				"u1": {order("   ", "Fries")},
			},
			expected: map[string][]string{
				"u1": {"Fries"},
			},
		},
		{
			name: "user with no usable purchases is omitted",
			history: models.OrderHistory{
				"u1": {order("Burger")},
				"u2": {},
			},
			expected: map[string][]string{
				"u1": {"Burger"},
			},
		},
		{
			name:     "empty history",
			history:  models.OrderHistory{},
			expected: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildProfiles(tt.history))
		})
	}
}

func TestOwnedItems(t *testing.T) {
	profiles := map[string][]string{
		"u1": {"Burger", "Fries", "Burger"},
	}

	owned := OwnedItems(profiles, "u1")
	assert.Equal(t, map[string]bool{"Burger": true, "Fries": true}, owned)

	// Unknown user gets an empty set, not nil panics downstream.
	assert.Empty(t, OwnedItems(profiles, "ghost"))
}
