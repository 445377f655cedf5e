// Package catalog implements the artwork browse controller: declarative
// filters that round-trip through a query string, and a fetch cycle guarded
// against out-of-order responses.
package catalog

import (
	"net/url"
	"strconv"

	"artdistrict/internal/api"
)

// PageSize is the fixed browse page length.
const PageSize = 12

// AllCategories is the sentinel meaning no category restriction. It is a
// display value only and never appears on the wire.
const AllCategories = "All"

// Categories offered by the browse filter bar.
var Categories = []string{
	AllCategories, "Painting", "Sculpture", "Photography",
	"Digital Art", "Mixed Media", "Prints", "Drawing",
}

// Filters is the complete browse state. The encoded query string is the
// source of truth; a Filters value is just its parsed form.
type Filters struct {
	Category string
	MinPrice string // raw user input, forwarded verbatim when non-empty
	MaxPrice string
	Page     int
}

// DefaultFilters is the unfiltered first page.
func DefaultFilters() Filters {
	return Filters{Category: AllCategories, Page: 1}
}

// ParseFilters reconstructs filters from a query string. Unknown parameters
// are ignored; a missing or malformed page means page one.
func ParseFilters(rawQuery string) Filters {
	f := DefaultFilters()
	v, err := url.ParseQuery(rawQuery)
	if err != nil {
		return f
	}
	if c := v.Get("category"); c != "" {
		f.Category = c
	}
	f.MinPrice = v.Get("minPrice")
	f.MaxPrice = v.Get("maxPrice")
	if p, err := strconv.Atoi(v.Get("page")); err == nil && p >= 1 {
		f.Page = p
	}
	return f
}

// Encode renders the filters as a canonical query string. Defaults are
// omitted so an unfiltered first page encodes to the empty string.
func (f Filters) Encode() string {
	v := url.Values{}
	if f.Category != "" && f.Category != AllCategories {
		v.Set("category", f.Category)
	}
	if f.MinPrice != "" {
		v.Set("minPrice", f.MinPrice)
	}
	if f.MaxPrice != "" {
		v.Set("maxPrice", f.MaxPrice)
	}
	if f.Page > 1 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v.Encode()
}

// IsDefault reports whether no filter deviates from the defaults.
func (f Filters) IsDefault() bool {
	return f == DefaultFilters()
}

// WithCategory returns the filters narrowed to a category, back on page one.
func (f Filters) WithCategory(c string) Filters {
	f.Category = c
	if f.Category == "" {
		f.Category = AllCategories
	}
	f.Page = 1
	return f
}

// WithPriceRange returns the filters with new price bounds, back on page one.
func (f Filters) WithPriceRange(min, max string) Filters {
	f.MinPrice = min
	f.MaxPrice = max
	f.Page = 1
	return f
}

// WithPage returns the filters on the given page, clamped to at least one.
func (f Filters) WithPage(p int) Filters {
	if p < 1 {
		p = 1
	}
	f.Page = p
	return f
}

// Query maps the filters to the listing request.
func (f Filters) Query() api.ListQuery {
	q := api.ListQuery{
		Page:     f.Page,
		Limit:    PageSize,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
	}
	if f.Category != AllCategories {
		q.Category = f.Category
	}
	return q
}
