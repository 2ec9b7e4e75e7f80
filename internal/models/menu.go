package models

// MenuItem is one catalog entry. Price is a pointer so an entry without a
// listed price stays distinguishable from a free item.
type MenuItem struct {
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Price       *float64 `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Catalog is the normalized menu. The upstream store serves two shapes: a
// flat mapping of item name to entry, and a mapping of category to a list of
// entries. Both are decoded at the store boundary; the resolver consults Flat
// entries before Grouped ones.
type Catalog struct {
	Flat    []MenuItem
	Grouped []MenuItem
}

// Empty reports whether the catalog holds no entries at all.
func (c Catalog) Empty() bool {
	return len(c.Flat) == 0 && len(c.Grouped) == 0
}

// All returns every catalog entry, flat entries first.
func (c Catalog) All() []MenuItem {
	out := make([]MenuItem, 0, len(c.Flat)+len(c.Grouped))
	out = append(out, c.Flat...)
	out = append(out, c.Grouped...)
	return out
}
