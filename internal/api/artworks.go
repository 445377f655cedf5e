package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// ListQuery selects a page of the public catalog. Zero values are omitted
// from the request; Category "All" is the unfiltered sentinel and is likewise
// omitted.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	MinPrice string
	MaxPrice string
	ArtistID string
}

// Values encodes the query as URL parameters.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" && q.Category != "All" {
		v.Set("category", q.Category)
	}
	if q.MinPrice != "" {
		v.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		v.Set("maxPrice", q.MaxPrice)
	}
	if q.ArtistID != "" {
		v.Set("artistId", q.ArtistID)
	}
	return v
}

// ListArtworks fetches a page of the public catalog.
func (c *Client) ListArtworks(ctx context.Context, q ListQuery) (*ArtworkPage, error) {
	var out ArtworkPage
	if err := c.doJSON(ctx, http.MethodGet, "/artworks", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArtwork fetches a single listing by id.
func (c *Client) GetArtwork(ctx context.Context, id string) (*Artwork, error) {
	var out Artwork
	if err := c.doJSON(ctx, http.MethodGet, "/artworks/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyArtworks lists the authenticated artist's own artworks.
func (c *Client) MyArtworks(ctx context.Context) ([]Artwork, error) {
	var out []Artwork
	if err := c.doJSON(ctx, http.MethodGet, "/artist/artworks", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ImageFile is one image to attach to an upload.
type ImageFile struct {
	Name string
	Data []byte
}

// UploadArtwork posts a new artwork as multipart form data. Scalar fields go
// in as plain form values; categories and tags are JSON-encoded strings, the
// convention the backend expects.
func (c *Client) UploadArtwork(ctx context.Context, up ArtworkUpload, images []ImageFile) (*Artwork, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       up.Title,
		"description": up.Description,
		"priceUsd":    strconv.FormatFloat(up.PriceUSD, 'f', -1, 64),
	}
	if up.Medium != "" {
		fields["medium"] = up.Medium
	}
	if up.Year > 0 {
		fields["year"] = strconv.Itoa(up.Year)
	}
	if up.Width > 0 {
		fields["width"] = strconv.FormatFloat(up.Width, 'f', -1, 64)
	}
	if up.Height > 0 {
		fields["height"] = strconv.FormatFloat(up.Height, 'f', -1, 64)
	}
	if up.Depth > 0 {
		fields["depth"] = strconv.FormatFloat(up.Depth, 'f', -1, 64)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", k, err)
		}
	}

	for _, key := range []struct {
		name   string
		values []string
	}{
		{"categories", up.Categories},
		{"tags", up.Tags},
	} {
		if len(key.values) == 0 {
			continue
		}
		encoded, err := json.Marshal(key.values)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key.name, err)
		}
		if err := w.WriteField(key.name, string(encoded)); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key.name, err)
		}
	}

	for _, img := range images {
		part, err := w.CreateFormFile("images", img.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, fmt.Errorf("failed to write image %s: %w", img.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/artist/artworks", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out Artwork
	if err := c.do(req, &out, "Failed to upload artwork. Please try again."); err != nil {
		return nil, err
	}
	return &out, nil
}
