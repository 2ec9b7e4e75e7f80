package models

// Recommendation is one enriched entry returned to the caller. Pointer fields
// serialize as JSON null when the catalog had nothing to offer for them.
type Recommendation struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}
