package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadArtworkMultipart(t *testing.T) {
	var (
		gotFields map[string][]string
		gotFiles  []struct {
			name string
			data string
		}
	)
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/artist/artworks", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotFields = r.MultipartForm.Value
		for _, fh := range r.MultipartForm.File["images"] {
			f, err := fh.Open()
			require.NoError(t, err)
			data, err := io.ReadAll(f)
			f.Close()
			require.NoError(t, err)
			gotFiles = append(gotFiles, struct {
				name string
				data string
			}{fh.Filename, string(data)})
		}
		json.NewEncoder(w).Encode(Artwork{ID: "art-9", Title: "Dawn"})
	})

	up := ArtworkUpload{
		Title:      "Dawn",
		PriceUSD:   950.50,
		Medium:     "oil",
		Year:       2025,
		Width:      24,
		Height:     36,
		Categories: []string{"Painting", "Landscape"},
		Tags:       []string{"dawn", "coastal"},
	}
	images := []ImageFile{
		{Name: "front.jpg", Data: []byte("front-bytes")},
		{Name: "detail.jpg", Data: []byte("detail-bytes")},
	}
	art, err := c.UploadArtwork(context.Background(), up, images)
	require.NoError(t, err)
	assert.Equal(t, "art-9", art.ID)

	assert.Equal(t, []string{"Dawn"}, gotFields["title"])
	assert.Equal(t, []string{"950.5"}, gotFields["priceUsd"])
	assert.Equal(t, []string{"2025"}, gotFields["year"])

	// List fields travel as JSON-encoded strings.
	assert.Equal(t, []string{`["Painting","Landscape"]`}, gotFields["categories"])
	assert.Equal(t, []string{`["dawn","coastal"]`}, gotFields["tags"])

	// Zero dimensions are omitted entirely.
	assert.NotContains(t, gotFields, "depth")

	require.Len(t, gotFiles, 2)
	assert.Equal(t, "front.jpg", gotFiles[0].name)
	assert.Equal(t, "front-bytes", gotFiles[0].data)
	assert.Equal(t, "detail.jpg", gotFiles[1].name)
}

func TestUploadArtworkServerError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Artwork limit reached for your plan"}`))
	})
	_, err := c.UploadArtwork(context.Background(), ArtworkUpload{Title: "x", PriceUSD: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Artwork limit reached for your plan")
}

func TestPrimaryImageURL(t *testing.T) {
	t.Parallel()

	a := Artwork{Images: []Image{
		{ID: "1", ThumbURL: "one.jpg"},
		{ID: "2", ThumbURL: "two.jpg", IsPrimary: true},
	}}
	assert.Equal(t, "two.jpg", a.PrimaryImageURL())

	a.Images[1].IsPrimary = false
	assert.Equal(t, "one.jpg", a.PrimaryImageURL())

	assert.Empty(t, Artwork{}.PrimaryImageURL())
}
