package catalog

import (
	"context"

	"artdistrict/internal/api"
	"artdistrict/internal/logging"
)

// Lister is the catalog slice of the API client.
type Lister interface {
	ListArtworks(ctx context.Context, q api.ListQuery) (*api.ArtworkPage, error)
}

// Controller owns the browse state. Fetches run in three beats so the UI
// event loop can do the network call off-loop:
//
//	gen, q := c.Begin(filters)          // on the loop: new state, bump generation
//	page, err := c.Fetch(ctx, gen, q)   // off the loop
//	c.Resolve(gen, page, err)           // on the loop: applied only if current
//
// A response whose generation is no longer current belongs to a superseded
// filter state and is discarded without touching anything. Not safe for
// concurrent use; mutation happens on the owning loop only.
type Controller struct {
	lister Lister

	filters    Filters
	generation uint64
	loading    bool
	results    []api.Artwork
	pagination api.Pagination
}

// NewController creates a browse controller with default filters. No fetch
// happens until Begin is called.
func NewController(lister Lister) *Controller {
	return &Controller{lister: lister, filters: DefaultFilters()}
}

// NewControllerFromQuery restores a controller from an encoded filter state,
// the deep-link entry path.
func NewControllerFromQuery(lister Lister, rawQuery string) *Controller {
	return &Controller{lister: lister, filters: ParseFilters(rawQuery)}
}

// Filters returns the current filter state.
func (c *Controller) Filters() Filters { return c.filters }

// Results returns the current page of artworks.
func (c *Controller) Results() []api.Artwork { return c.results }

// Pagination returns the pagination of the last applied response.
func (c *Controller) Pagination() api.Pagination { return c.pagination }

// Loading reports whether a fetch for the current generation is pending.
func (c *Controller) Loading() bool { return c.loading }

// Empty reports the settled no-results state. A pending fetch is never
// empty; the distinction drives the "clear filters" affordance.
func (c *Controller) Empty() bool {
	return !c.loading && len(c.results) == 0
}

// Begin installs a new filter state and opens a fetch generation. Every
// call supersedes all earlier generations, even for identical filters. The
// returned query is a snapshot; Fetch must use it rather than reading the
// controller again off-loop.
func (c *Controller) Begin(f Filters) (uint64, api.ListQuery) {
	c.filters = f
	c.generation++
	c.loading = true
	logging.Browse("fetch gen=%d filters=%q", c.generation, f.Encode())
	return c.generation, f.Query()
}

// Refresh reopens a fetch for the current filters.
func (c *Controller) Refresh() (uint64, api.ListQuery) {
	return c.Begin(c.filters)
}

// Fetch performs the listing request for a generation. It touches no
// controller state and is safe to run off the owning loop.
func (c *Controller) Fetch(ctx context.Context, gen uint64, q api.ListQuery) (*api.ArtworkPage, error) {
	page, err := c.lister.ListArtworks(ctx, q)
	if err != nil {
		logging.BrowseError("fetch gen=%d failed: %v", gen, err)
		return nil, err
	}
	return page, nil
}

// Resolve applies a completed fetch, reporting whether it was current. A
// stale generation is dropped wholesale. A failed current fetch settles to
// empty results rather than leaving stale ones on screen.
func (c *Controller) Resolve(gen uint64, page *api.ArtworkPage, err error) bool {
	if gen != c.generation {
		logging.Browse("dropping stale response gen=%d current=%d", gen, c.generation)
		return false
	}
	c.loading = false
	if err != nil || page == nil {
		c.results = nil
		c.pagination = api.Pagination{Page: c.filters.Page, Limit: PageSize}
		return true
	}
	// Results and pagination apply together; they are never mixed across
	// responses.
	c.results = page.Data
	c.pagination = page.Pagination
	return true
}

// SetCategory narrows to a category and opens a fetch.
func (c *Controller) SetCategory(cat string) (uint64, api.ListQuery) {
	return c.Begin(c.filters.WithCategory(cat))
}

// SetPriceRange applies price bounds and opens a fetch.
func (c *Controller) SetPriceRange(min, max string) (uint64, api.ListQuery) {
	return c.Begin(c.filters.WithPriceRange(min, max))
}

// SetPage jumps to a page and opens a fetch.
func (c *Controller) SetPage(p int) (uint64, api.ListQuery) {
	return c.Begin(c.filters.WithPage(p))
}

// ClearFilters resets to the unfiltered first page and opens a fetch.
func (c *Controller) ClearFilters() (uint64, api.ListQuery) {
	return c.Begin(DefaultFilters())
}

// CanNextPage reports whether a later page exists.
func (c *Controller) CanNextPage() bool {
	return c.filters.Page < c.pagination.TotalPages
}

// CanPrevPage reports whether an earlier page exists.
func (c *Controller) CanPrevPage() bool {
	return c.filters.Page > 1
}
