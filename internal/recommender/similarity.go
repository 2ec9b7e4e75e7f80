// internal/recommender/similarity.go
package recommender

import (
	"math"
	"sort"
)

// UserSimilarity pairs another user with their cosine similarity to the target.
type UserSimilarity struct {
	UserID string
	Score  float64
}

// Cosine computes cosine similarity between two purchase vectors. A zero
// vector on either side yields 0; on a binary non-negative matrix the result
// is always within [0, 1].
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarUsers ranks every other user by cosine similarity to the target,
// most similar first, ties broken by ascending user id so the ordering is
// deterministic. It returns nil when the target has no row or an all-zero
// row; the pipeline then falls back to popularity.
func SimilarUsers(m *Matrix, targetID string) []UserSimilarity {
	if m == nil {
		return nil
	}
	target, ok := m.Row(targetID)
	if !ok || rowSum(target) == 0 {
		return nil
	}

	ranked := make([]UserSimilarity, 0, len(m.Users)-1)
	for _, userID := range m.Users {
		if userID == targetID {
			continue
		}
		row, _ := m.Row(userID)
		ranked = append(ranked, UserSimilarity{
			UserID: userID,
			Score:  Cosine(target, row),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	return ranked
}

func rowSum(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}
	return sum
}
