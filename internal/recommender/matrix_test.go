// internal/recommender/matrix_test.go
package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrix(t *testing.T) {
	profiles := map[string][]string{
		"u2": {"Soda", "Burger"},
		"u1": {"Burger", "Fries", "Burger"},
	}

	m := BuildMatrix(profiles)
	require.NotNil(t, m)

	// Deterministic ordering: users and items sorted lexicographically.
	assert.Equal(t, []string{"u1", "u2"}, m.Users)
	assert.Equal(t, []string{"Burger", "Fries", "Soda"}, m.Items)

	row1, ok := m.Row("u1")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 1, 0}, row1, "duplicates collapse to presence")

	row2, ok := m.Row("u2")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 1}, row2)

	_, ok = m.Row("ghost")
	assert.False(t, ok)
}

func TestBuildMatrix_NoItems(t *testing.T) {
	assert.Nil(t, BuildMatrix(map[string][]string{}))
	assert.Nil(t, BuildMatrix(map[string][]string{"u1": {}}))
}

func TestBuildMatrix_Deterministic(t *testing.T) {
	profiles := map[string][]string{
		"a": {"x", "y"},
		"b": {"y", "z"},
		"c": {"z", "x"},
	}

	first := BuildMatrix(profiles)
	for i := 0; i < 10; i++ {
		again := BuildMatrix(profiles)
		assert.Equal(t, first.Users, again.Users)
		assert.Equal(t, first.Items, again.Items)
	}
}
