// internal/recommender/popularity.go
package recommender

// PopularItems ranks items by raw purchase frequency across every user's
// profile: a user who bought the same item three times counts three times.
// Used whenever personalization produces nothing. An empty profile map yields
// an empty list, which is a legitimate answer, not an error.
func PopularItems(profiles map[string][]string, limit int) []string {
	counts := make(map[string]float64)
	for _, items := range profiles {
		for _, name := range items {
			counts[name]++
		}
	}
	return topNames(counts, limit)
}
