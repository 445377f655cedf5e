package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  Filters
	}{
		{"empty", "", DefaultFilters()},
		{"category only", "category=Painting", Filters{Category: "Painting", Page: 1}},
		{"full set", "category=Sculpture&minPrice=100&maxPrice=5000&page=3",
			Filters{Category: "Sculpture", MinPrice: "100", MaxPrice: "5000", Page: 3}},
		{"bad page", "page=zero", DefaultFilters()},
		{"negative page", "page=-2", DefaultFilters()},
		{"unknown params ignored", "sort=newest&category=Prints", Filters{Category: "Prints", Page: 1}},
		{"malformed query", "category=%zz", DefaultFilters()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseFilters(tt.query))
		})
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", DefaultFilters().Encode())
	f := Filters{Category: "Painting", MinPrice: "100", Page: 2}
	assert.Equal(t, "category=Painting&minPrice=100&page=2", f.Encode())
}

func TestFiltersRoundTrip(t *testing.T) {
	t.Parallel()

	orig := Filters{Category: "Digital Art", MinPrice: "50", MaxPrice: "200", Page: 4}
	assert.Equal(t, orig, ParseFilters(orig.Encode()))
}

func TestMutationsResetPage(t *testing.T) {
	t.Parallel()

	f := DefaultFilters().WithPage(5)
	assert.Equal(t, 5, f.Page)

	assert.Equal(t, 1, f.WithCategory("Painting").Page)
	assert.Equal(t, 1, f.WithPriceRange("10", "99").Page)

	// Paging itself keeps the other filters.
	g := f.WithCategory("Painting").WithPage(2)
	assert.Equal(t, "Painting", g.Category)
	assert.Equal(t, 2, g.Page)
	assert.Equal(t, 1, g.WithPage(0).Page)
}

func TestWithCategoryEmptyMeansAll(t *testing.T) {
	t.Parallel()

	f := DefaultFilters().WithCategory("")
	assert.Equal(t, AllCategories, f.Category)
	assert.True(t, f.IsDefault())
}

func TestQueryMapping(t *testing.T) {
	t.Parallel()

	q := DefaultFilters().Query()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, PageSize, q.Limit)
	assert.Empty(t, q.Category, "the All sentinel never reaches the wire")

	q = Filters{Category: "Prints", MinPrice: "100", Page: 2}.Query()
	assert.Equal(t, "Prints", q.Category)
	assert.Equal(t, "100", q.MinPrice)
	assert.Equal(t, 2, q.Page)
}
