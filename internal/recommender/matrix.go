// internal/recommender/matrix.go
package recommender

import "sort"

// Matrix is the binary user x item interaction matrix. Rows are users with at
// least one purchase; columns are the sorted distinct item names, so repeated
// runs over identical input produce identical matrices.
type Matrix struct {
	Users []string
	Items []string
	rows  map[string][]float64
}

// BuildMatrix constructs the interaction matrix from per-user profiles.
// It returns nil when there are no distinct items at all, which callers must
// treat as "skip straight to the popularity fallback".
func BuildMatrix(profiles map[string][]string) *Matrix {
	itemSet := make(map[string]int)
	for _, items := range profiles {
		for _, name := range items {
			itemSet[name] = 0
		}
	}
	if len(itemSet) == 0 {
		return nil
	}

	items := make([]string, 0, len(itemSet))
	for name := range itemSet {
		items = append(items, name)
	}
	sort.Strings(items)
	for i, name := range items {
		itemSet[name] = i
	}

	users := make([]string, 0, len(profiles))
	for userID := range profiles {
		users = append(users, userID)
	}
	sort.Strings(users)

	rows := make(map[string][]float64, len(users))
	for _, userID := range users {
		row := make([]float64, len(items))
		for _, name := range profiles[userID] {
			row[itemSet[name]] = 1
		}
		rows[userID] = row
	}

	return &Matrix{Users: users, Items: items, rows: rows}
}

// Row returns a user's purchase vector and whether the user has a row at all.
func (m *Matrix) Row(userID string) ([]float64, bool) {
	row, ok := m.rows[userID]
	return row, ok
}
