// internal/recommender/resolver_test.go
package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-recommender/internal/models"
)

func price(v float64) *float64 {
	return &v
}

func testCatalog() models.Catalog {
	return models.Catalog{
		Flat: []models.MenuItem{
			{Name: "Veg Burger", Price: price(5.5), Description: "House classic"},
			{Name: "French Fries", Price: price(2)},
		},
		Grouped: []models.MenuItem{
			{Name: "Cola", Category: "Drinks", Price: price(2)},
			{Name: "Masala Chai", Category: "Drinks", Price: price(1.5)},
		},
	}
}

func TestResolveItem(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name     string
		query    string
		validate func(t *testing.T, rec models.Recommendation)
	}{
		{
			name:  "exact flat match ignores case and whitespace",
			query: "  veg  burger ",
			validate: func(t *testing.T, rec models.Recommendation) {
				assert.Equal(t, "Veg Burger", rec.Name, "catalog casing wins")
				require.NotNil(t, rec.Price)
				assert.Equal(t, 5.5, *rec.Price)
				require.NotNil(t, rec.Description)
				assert.Equal(t, "House classic", *rec.Description)
			},
		},
		{
			name:  "exact grouped match ignores case",
			query: "cola",
			validate: func(t *testing.T, rec models.Recommendation) {
				assert.Equal(t, "Cola", rec.Name)
				require.NotNil(t, rec.Price)
				assert.Equal(t, 2.0, *rec.Price)
			},
		},
		{
			name:  "substring match recommendation inside catalog name",
			query: "chai",
			validate: func(t *testing.T, rec models.Recommendation) {
				assert.Equal(t, "Masala Chai", rec.Name)
			},
		},
		{
			name:  "substring match catalog name inside recommendation",
			query: "Large French Fries",
			validate: func(t *testing.T, rec models.Recommendation) {
				assert.Equal(t, "French Fries", rec.Name)
			},
		},
		{
			name:  "placeholder for a miss",
			query: " Mystery Dish ",
			validate: func(t *testing.T, rec models.Recommendation) {
				assert.Equal(t, "Mystery Dish", rec.Name, "recommendation casing, trimmed")
				assert.Nil(t, rec.Price)
				assert.Nil(t, rec.Description)
				assert.Nil(t, rec.Image)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ResolveItem(tt.query, catalog)
			tt.validate(t, rec)
		})
	}
}

func TestResolveItem_FlatBeforeGrouped(t *testing.T) {
	catalog := models.Catalog{
		Flat:    []models.MenuItem{{Name: "Cola", Price: price(3)}},
		Grouped: []models.MenuItem{{Name: "Cola", Category: "Drinks", Price: price(2)}},
	}

	rec := ResolveItem("cola", catalog)
	require.NotNil(t, rec.Price)
	assert.Equal(t, 3.0, *rec.Price)
}

func TestResolveItem_EmptyCatalog(t *testing.T) {
	rec := ResolveItem("Anything", models.Catalog{})
	assert.Equal(t, "Anything", rec.Name)
	assert.Nil(t, rec.Price)
}

func TestResolveAll_PreservesOrder(t *testing.T) {
	catalog := testCatalog()

	recs := ResolveAll([]string{"cola", "veg burger", "unknown"}, catalog)
	require.Len(t, recs, 3)
	assert.Equal(t, "Cola", recs[0].Name)
	assert.Equal(t, "Veg Burger", recs[1].Name)
	assert.Equal(t, "unknown", recs[2].Name)
}
