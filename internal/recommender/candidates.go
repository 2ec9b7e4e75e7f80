// internal/recommender/candidates.go
package recommender

import "sort"

// AggregateCandidates accumulates similarity-weighted scores for every item a
// similar user bought that the target has not. Neighbors with similarity <= 0
// contribute nothing; the zero check also guards the (impossible on a binary
// matrix, but cheap to keep) negative case. Items the target already owns are
// never candidates. The result is the top-N item names by score, ties broken
// by name ascending.
func AggregateCandidates(neighbors []UserSimilarity, owned map[string]bool, profiles map[string][]string, limit int) []string {
	scores := make(map[string]float64)
	for _, neighbor := range neighbors {
		if neighbor.Score <= 0 {
			continue
		}
		seen := make(map[string]bool)
		for _, name := range profiles[neighbor.UserID] {
			if owned[name] || seen[name] {
				continue
			}
			seen[name] = true
			scores[name] += neighbor.Score
		}
	}
	return topNames(scores, limit)
}

// topNames ranks a score map descending with a name-ascending tie-break.
func topNames(scores map[string]float64, limit int) []string {
	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, scored{name: name, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.name
	}
	return names
}
