// internal/store/document.go
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"menu-recommender/internal/models"
)

// The upstream document store is loosely typed: per-user orders arrive either
// keyed directly by an opaque order id, or nested one level under a "history"
// sub-key; an order's item list may be a JSON array or an object of arbitrary
// keys; the catalog is either a flat name->entry mapping or category->[entry].
// Everything is normalized here, once, so the pipeline never branches on shape.
// A malformed record is skipped; it never aborts decoding of its siblings.

// DecodeOrderHistory decodes the full order-history document, a mapping from
// user id to that user's raw order tree.
func DecodeOrderHistory(raw []byte) (models.OrderHistory, error) {
	if len(raw) == 0 {
		return models.OrderHistory{}, nil
	}

	var tree map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("order history is not a JSON object: %w", err)
	}

	history := models.OrderHistory{}
	for userID, sub := range tree {
		orders, err := DecodeUserOrders(sub)
		if err != nil {
			// One user's corrupt subtree must not sink everyone else's.
			continue
		}
		history[userID] = orders
	}
	return history, nil
}

// DecodeUserOrders decodes a single user's order subtree.
func DecodeUserOrders(raw []byte) ([]models.Order, error) {
	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("user orders are not a JSON object: %w", err)
	}
	return decodeOrderTree(tree), nil
}

func decodeOrderTree(tree map[string]interface{}) []models.Order {
	// Nested shape: everything lives one level down under "history". The
	// "latest" sibling duplicates the newest history entry, so it is ignored
	// when history exists and treated as one more order otherwise.
	if sub, ok := tree["history"].(map[string]interface{}); ok {
		return decodeOrderMap(sub)
	}
	return decodeOrderMap(tree)
}

func decodeOrderMap(entries map[string]interface{}) []models.Order {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var orders []models.Order
	for _, id := range ids {
		entry, ok := entries[id].(map[string]interface{})
		if !ok {
			continue
		}
		order, ok := decodeOrder(id, entry)
		if !ok {
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

func decodeOrder(id string, entry map[string]interface{}) (models.Order, bool) {
	rawItems, ok := entry["items"]
	if !ok {
		return models.Order{}, false
	}

	var itemEntries []interface{}
	switch v := rawItems.(type) {
	case []interface{}:
		itemEntries = v
	case map[string]interface{}:
		// Object-of-items shape: keys are arbitrary, only values matter.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			itemEntries = append(itemEntries, v[k])
		}
	default:
		return models.Order{}, false
	}

	order := models.Order{ID: id}
	for _, raw := range itemEntries {
		item, ok := decodeLineItem(raw)
		if !ok {
			continue
		}
		order.Items = append(order.Items, item)
	}

	if total, ok := asFloat(entry["total"]); ok {
		order.Total = total
	}
	if ts, ok := entry["timestamp"].(string); ok {
		order.Timestamp = ts
	}
	return order, true
}

func decodeLineItem(raw interface{}) (models.LineItem, bool) {
	entry, ok := raw.(map[string]interface{})
	if !ok {
		return models.LineItem{}, false
	}

	name, ok := entry["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return models.LineItem{}, false
	}

	item := models.LineItem{Name: name}
	if price, ok := asFloat(entry["price"]); ok {
		item.Price = price
		item.PriceSet = true
	}
	if qty, ok := asFloat(entry["quantity"]); ok {
		item.Quantity = int(qty)
	}
	return item, true
}

// DecodeCatalog decodes the menu document, accepting both catalog shapes.
func DecodeCatalog(raw []byte) (models.Catalog, error) {
	if len(raw) == 0 {
		return models.Catalog{}, nil
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return models.Catalog{}, fmt.Errorf("catalog is not a JSON object: %w", err)
	}

	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var catalog models.Catalog
	for _, key := range keys {
		switch v := tree[key].(type) {
		case map[string]interface{}:
			// Flat shape: the key is the item name unless the entry carries
			// its own.
			item := decodeMenuItem(v)
			if strings.TrimSpace(item.Name) == "" {
				item.Name = key
			}
			catalog.Flat = append(catalog.Flat, item)
		case []interface{}:
			// Grouped shape: the key is a category.
			for _, raw := range v {
				entry, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				item := decodeMenuItem(entry)
				if strings.TrimSpace(item.Name) == "" {
					continue
				}
				item.Category = key
				catalog.Grouped = append(catalog.Grouped, item)
			}
		}
	}
	return catalog, nil
}

func decodeMenuItem(entry map[string]interface{}) models.MenuItem {
	var item models.MenuItem
	if name, ok := entry["name"].(string); ok {
		item.Name = name
	}
	if price, ok := asFloat(entry["price"]); ok {
		item.Price = &price
	}
	if desc, ok := entry["description"].(string); ok {
		item.Description = desc
	}
	if img, ok := entry["image"].(string); ok {
		item.Image = img
	}
	return item
}

// asFloat coerces the numeric encodings seen in store documents: JSON
// numbers and numeric strings.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
