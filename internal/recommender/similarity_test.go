// internal/recommender/similarity_test.go
package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical vectors", []float64{1, 1, 0}, []float64{1, 1, 0}, 1},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosine_Symmetric(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 1, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	}
	for i := range vectors {
		for j := range vectors {
			assert.InDelta(t, Cosine(vectors[i], vectors[j]), Cosine(vectors[j], vectors[i]), 1e-12)
		}
	}
}

func TestSimilarUsers(t *testing.T) {
	profiles := map[string][]string{
		"u1": {"burger"},
		"u2": {"burger", "soda"},
		"u3": {"salad"},
	}
	m := BuildMatrix(profiles)
	require.NotNil(t, m)

	ranked := SimilarUsers(m, "u1")
	require.Len(t, ranked, 2)

	assert.Equal(t, "u2", ranked[0].UserID)
	assert.InDelta(t, 0.7071, ranked[0].Score, 1e-3)
	assert.Equal(t, "u3", ranked[1].UserID)
	assert.InDelta(t, 0, ranked[1].Score, 1e-9)
}

func TestSimilarUsers_TieBreakByUserID(t *testing.T) {
	// Both neighbors purchased exactly the same basket, so their similarity
	// to the target is identical; ordering must still be stable.
	profiles := map[string][]string{
		"target": {"burger"},
		"zeta":   {"burger", "fries"},
		"alpha":  {"burger", "fries"},
	}
	m := BuildMatrix(profiles)
	require.NotNil(t, m)

	ranked := SimilarUsers(m, "target")
	require.Len(t, ranked, 2)
	assert.Equal(t, "alpha", ranked[0].UserID)
	assert.Equal(t, "zeta", ranked[1].UserID)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
}

func TestSimilarUsers_TargetMissing(t *testing.T) {
	m := BuildMatrix(map[string][]string{"u1": {"burger"}})
	require.NotNil(t, m)

	assert.Nil(t, SimilarUsers(m, "ghost"))
	assert.Nil(t, SimilarUsers(nil, "u1"))
}
