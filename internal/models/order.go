package models

// LineItem is one purchased item inside an order. PriceSet distinguishes a
// genuine zero price from an absent one.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price,omitempty"`
	PriceSet bool    `json:"-"`
	Quantity int     `json:"quantity,omitempty"`
}

// Order is a single placed order after boundary normalization.
type Order struct {
	ID        string     `json:"id,omitempty"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

// OrderHistory maps a user identifier to that user's orders. A user missing
// from the map and a user with zero orders are treated identically downstream.
type OrderHistory map[string][]Order
