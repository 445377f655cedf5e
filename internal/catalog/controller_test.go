package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdistrict/internal/api"
)

// fakeLister serves canned pages keyed by category.
type fakeLister struct {
	calls []api.ListQuery
	pages map[string]*api.ArtworkPage
	err   error
}

func (l *fakeLister) ListArtworks(_ context.Context, q api.ListQuery) (*api.ArtworkPage, error) {
	l.calls = append(l.calls, q)
	if l.err != nil {
		return nil, l.err
	}
	if p, ok := l.pages[q.Category]; ok {
		return p, nil
	}
	return &api.ArtworkPage{Pagination: api.Pagination{Page: q.Page, Limit: q.Limit}}, nil
}

func page(category string, n int) *api.ArtworkPage {
	p := &api.ArtworkPage{
		Pagination: api.Pagination{Total: n, Page: 1, Limit: PageSize, TotalPages: (n + PageSize - 1) / PageSize},
	}
	for i := 0; i < n && i < PageSize; i++ {
		p.Data = append(p.Data, api.Artwork{
			ID:       fmt.Sprintf("%s-%d", category, i),
			Title:    fmt.Sprintf("%s #%d", category, i),
			Category: category,
		})
	}
	return p
}

func TestFetchCycle(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{pages: map[string]*api.ArtworkPage{"Painting": page("Painting", 3)}}
	c := NewController(lister)
	assert.False(t, c.Loading())

	gen, q := c.SetCategory("Painting")
	assert.True(t, c.Loading())
	assert.False(t, c.Empty(), "pending fetch is not the empty state")

	p, err := c.Fetch(context.Background(), gen, q)
	require.NoError(t, err)
	assert.True(t, c.Resolve(gen, p, nil))

	assert.False(t, c.Loading())
	assert.Len(t, c.Results(), 3)
	assert.Equal(t, 3, c.Pagination().Total)
	require.Len(t, lister.calls, 1)
	assert.Equal(t, "Painting", lister.calls[0].Category)
	assert.Equal(t, PageSize, lister.calls[0].Limit)
}

func TestStaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{pages: map[string]*api.ArtworkPage{
		"Painting":  page("Painting", 5),
		"Sculpture": page("Sculpture", 2),
	}}
	c := NewController(lister)

	// Two rapid filter changes: the first response arrives after the second.
	gen1, q1 := c.SetCategory("Painting")
	gen2, q2 := c.SetCategory("Sculpture")

	p2, err := c.Fetch(context.Background(), gen2, q2)
	require.NoError(t, err)
	require.True(t, c.Resolve(gen2, p2, nil))
	assert.Len(t, c.Results(), 2)

	p1, err := c.Fetch(context.Background(), gen1, q1)
	require.NoError(t, err)
	assert.False(t, c.Resolve(gen1, p1, nil), "superseded generation must be dropped")

	// The late response touched nothing.
	assert.Len(t, c.Results(), 2)
	assert.Equal(t, "Sculpture-0", c.Results()[0].ID)
	assert.Equal(t, 2, c.Pagination().Total)
	assert.False(t, c.Loading())
}

func TestIdenticalFiltersStillSupersede(t *testing.T) {
	t.Parallel()

	c := NewController(&fakeLister{})
	gen1, _ := c.Refresh()
	gen2, _ := c.Refresh()
	assert.NotEqual(t, gen1, gen2)
	assert.False(t, c.Resolve(gen1, page("x", 1), nil))
	assert.True(t, c.Resolve(gen2, page("x", 1), nil))
}

func TestFailedFetchSettlesEmpty(t *testing.T) {
	t.Parallel()

	lister := &fakeLister{pages: map[string]*api.ArtworkPage{"Painting": page("Painting", 5)}}
	c := NewController(lister)

	gen, q := c.SetCategory("Painting")
	p, err := c.Fetch(context.Background(), gen, q)
	require.NoError(t, err)
	require.True(t, c.Resolve(gen, p, nil))
	require.Len(t, c.Results(), 5)

	// A failing refresh clears the stale page instead of leaving it up.
	lister.err = errors.New("gateway timeout")
	gen, q = c.Refresh()
	_, err = c.Fetch(context.Background(), gen, q)
	require.Error(t, err)
	assert.True(t, c.Resolve(gen, nil, err))

	assert.Empty(t, c.Results())
	assert.True(t, c.Empty())
	assert.False(t, c.Loading())
}

func TestDeepLinkRestore(t *testing.T) {
	t.Parallel()

	c := NewControllerFromQuery(&fakeLister{}, "category=Prints&page=2&minPrice=100")
	f := c.Filters()
	assert.Equal(t, "Prints", f.Category)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, "100", f.MinPrice)
}

func TestPaging(t *testing.T) {
	t.Parallel()

	c := NewController(&fakeLister{})
	gen, _ := c.SetPage(2)
	pg := &api.ArtworkPage{
		Data:       []api.Artwork{{ID: "a"}},
		Pagination: api.Pagination{Total: 30, Page: 2, Limit: PageSize, TotalPages: 3},
	}
	require.True(t, c.Resolve(gen, pg, nil))

	assert.True(t, c.CanNextPage())
	assert.True(t, c.CanPrevPage())

	gen, _ = c.SetPage(3)
	pg.Pagination.Page = 3
	require.True(t, c.Resolve(gen, pg, nil))
	assert.False(t, c.CanNextPage())

	// Clearing filters resets everything including the page.
	gen, q := c.ClearFilters()
	assert.True(t, c.Filters().IsDefault())
	assert.Equal(t, 1, q.Page)
	_ = gen
}
