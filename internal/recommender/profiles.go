// internal/recommender/profiles.go
package recommender

import (
	"strings"

	"menu-recommender/internal/models"
)

// BuildProfiles flattens the order history into a per-user list of purchased
// item names. Names are trimmed but keep their original case for display;
// duplicates are preserved (the popularity fallback counts raw occurrences,
// the matrix only cares about presence). A user with no usable purchases is
// simply absent, which downstream treats the same as an empty profile.
func BuildProfiles(history models.OrderHistory) map[string][]string {
	profiles := make(map[string][]string, len(history))
	for userID, orders := range history {
		var items []string
		for _, order := range orders {
			for _, item := range order.Items {
				name := strings.TrimSpace(item.Name)
				if name == "" {
					continue
				}
				items = append(items, name)
			}
		}
		if len(items) > 0 {
			profiles[userID] = items
		}
	}
	return profiles
}

// OwnedItems returns the set of trimmed item names a user has purchased.
func OwnedItems(profiles map[string][]string, userID string) map[string]bool {
	owned := make(map[string]bool)
	for _, name := range profiles[userID] {
		owned[name] = true
	}
	return owned
}
