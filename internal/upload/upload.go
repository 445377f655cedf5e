// Package upload prepares and submits new artwork listings: metadata
// validation, concurrent image loading, and the AI-assisted description and
// tag helpers.
package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"artdistrict/internal/api"
	"artdistrict/internal/logging"
)

// MaxImages caps the number of images per artwork.
const MaxImages = 20

// Validation errors.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrPriceRequired = errors.New("price must be greater than zero")
	ErrNoImages      = errors.New("at least one image is required")
	ErrTooManyImages = fmt.Errorf("at most %d images are allowed", MaxImages)
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// Service is the slice of the API the uploader depends on.
type Service interface {
	UploadArtwork(ctx context.Context, up api.ArtworkUpload, images []api.ImageFile) (*api.Artwork, error)
	EnhanceDescription(ctx context.Context, req api.EnhanceDescriptionRequest) (string, error)
	SuggestTags(ctx context.Context, req api.SuggestTagsRequest) ([]string, error)
}

// Form collects the fields of a new listing before submission.
type Form struct {
	Title       string
	Description string
	PriceUSD    float64
	Medium      string
	Style       string
	Year        int
	Width       float64
	Height      float64
	Depth       float64
	Categories  []string
	Tags        []string
	ImagePaths  []string
}

// Validate checks the form for submission.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	if f.PriceUSD <= 0 {
		return ErrPriceRequired
	}
	if len(f.ImagePaths) == 0 {
		return ErrNoImages
	}
	if len(f.ImagePaths) > MaxImages {
		return ErrTooManyImages
	}
	for _, p := range f.ImagePaths {
		ext := strings.ToLower(filepath.Ext(p))
		if !imageExtensions[ext] {
			return fmt.Errorf("unsupported image type %q", ext)
		}
	}
	return nil
}

// dimensions renders the size string for the AI helpers, e.g. 24x36x2.
func (f *Form) dimensions() string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	s := fmt.Sprintf("%gx%g", f.Width, f.Height)
	if f.Depth > 0 {
		s += fmt.Sprintf("x%g", f.Depth)
	}
	return s
}

// Uploader drives one artwork submission.
type Uploader struct {
	svc Service
}

// NewUploader creates an uploader over the API service.
func NewUploader(svc Service) *Uploader {
	return &Uploader{svc: svc}
}

// loadImages reads all image files concurrently. Order is preserved so the
// first path stays the primary image. Any read failure aborts the whole
// batch.
func loadImages(ctx context.Context, paths []string) ([]api.ImageFile, error) {
	images := make([]api.ImageFile, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("failed to read image %s: %w", p, err)
			}
			images[i] = api.ImageFile{Name: filepath.Base(p), Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// Submit validates the form, loads its images and posts the listing.
func (u *Uploader) Submit(ctx context.Context, f *Form) (*api.Artwork, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	images, err := loadImages(ctx, f.ImagePaths)
	if err != nil {
		return nil, err
	}

	up := api.ArtworkUpload{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		PriceUSD:    f.PriceUSD,
		Medium:      f.Medium,
		Year:        f.Year,
		Width:       f.Width,
		Height:      f.Height,
		Depth:       f.Depth,
		Categories:  f.Categories,
		Tags:        f.Tags,
	}
	art, err := u.svc.UploadArtwork(ctx, up, images)
	if err != nil {
		return nil, err
	}
	logging.Upload("uploaded artwork id=%s title=%q images=%d", art.ID, art.Title, len(images))
	return art, nil
}

// EnhanceDescription rewrites the description via the AI service. The form
// is only updated on success.
func (u *Uploader) EnhanceDescription(ctx context.Context, f *Form) error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	enhanced, err := u.svc.EnhanceDescription(ctx, api.EnhanceDescriptionRequest{
		Title:          f.Title,
		Medium:         f.Medium,
		RawDescription: f.Description,
		Style:          f.Style,
		Dimensions:     f.dimensions(),
	})
	if err != nil {
		return err
	}
	f.Description = enhanced
	return nil
}

// SuggestTags asks the AI service for tags, merging new ones into the form
// without duplicating existing tags.
func (u *Uploader) SuggestTags(ctx context.Context, f *Form) ([]string, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, ErrTitleRequired
	}
	tags, err := u.svc.SuggestTags(ctx, api.SuggestTagsRequest{
		Title:       f.Title,
		Description: f.Description,
		Medium:      f.Medium,
		Style:       f.Style,
	})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(f.Tags))
	for _, t := range f.Tags {
		seen[strings.ToLower(t)] = true
	}
	for _, t := range tags {
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		f.Tags = append(f.Tags, t)
	}
	return tags, nil
}
