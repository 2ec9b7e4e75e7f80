// internal/recommender/resolver.go
package recommender

import (
	"strings"

	"menu-recommender/internal/models"
)

// ResolveItem maps a recommended item name to a catalog entry. The catalog is
// hand-edited upstream, so the lookup is deliberately forgiving. Policies are
// tried in order, first match wins:
//
//  1. exact match against a flat-catalog entry,
//  2. exact match against a category-grouped entry,
//  3. substring match in either direction,
//  4. a synthesized placeholder with null price/description/image.
//
// "Exact" means equal after lower-casing and stripping all whitespace.
// Resolution never fails: every recommended name yields some entry.
func ResolveItem(name string, catalog models.Catalog) models.Recommendation {
	key := normalizeName(name)

	for _, item := range catalog.Flat {
		if normalizeName(item.Name) == key {
			return enrich(item)
		}
	}

	for _, item := range catalog.Grouped {
		if normalizeName(item.Name) == key {
			return enrich(item)
		}
	}

	if key != "" {
		for _, item := range catalog.All() {
			candidate := normalizeName(item.Name)
			if candidate == "" {
				continue
			}
			if strings.Contains(candidate, key) || strings.Contains(key, candidate) {
				return enrich(item)
			}
		}
	}

	// Placeholder: keep the recommendation's own (trimmed) casing.
	return models.Recommendation{Name: strings.TrimSpace(name)}
}

// ResolveAll enriches every recommended name, preserving rank order.
func ResolveAll(names []string, catalog models.Catalog) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(names))
	for _, name := range names {
		out = append(out, ResolveItem(name, catalog))
	}
	return out
}

// enrich converts a catalog entry into a response entry, keeping the
// catalog's display casing.
func enrich(item models.MenuItem) models.Recommendation {
	rec := models.Recommendation{
		Name:  item.Name,
		Price: item.Price,
	}
	if item.Description != "" {
		desc := item.Description
		rec.Description = &desc
	}
	if item.Image != "" {
		img := item.Image
		rec.Image = &img
	}
	return rec
}

// normalizeName lower-cases and strips all whitespace for matching.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
