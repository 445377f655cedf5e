package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"artdistrict/internal/api"
	"artdistrict/internal/catalog"
	"artdistrict/internal/upload"
)

var (
	listCategory string
	listMinPrice string
	listMaxPrice string
	listPage     int

	uploadForm    upload.Form
	uploadEnhance bool
	uploadSuggest bool
)

// artworkCmd groups the non-interactive catalog operations
var artworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "List, inspect and upload artworks",
}

var artworkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the public catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		f := catalog.DefaultFilters().
			WithCategory(listCategory).
			WithPriceRange(listMinPrice, listMaxPrice).
			WithPage(listPage)
		page, err := newClient().ListArtworks(ctx, f.Query())
		if err != nil {
			return err
		}
		printArtworks(cmd, page.Data)
		p := page.Pagination
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d artworks)\n", p.Page, p.TotalPages, p.Total)
		return nil
	},
}

var artworkShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		art, err := newClient().GetArtwork(ctx, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", art.Title)
		fmt.Fprintf(out, "Artist:    %s\n", art.Artist.Name)
		fmt.Fprintf(out, "Category:  %s\n", art.Category)
		fmt.Fprintf(out, "Price:     $%.2f\n", art.PriceUSD)
		if art.Description != "" {
			fmt.Fprintf(out, "\n%s\n", art.Description)
		}
		if u := art.PrimaryImageURL(); u != "" {
			fmt.Fprintf(out, "\nImage: %s\n", u)
		}
		return nil
	},
}

var artworkMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own artworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout())
		defer cancel()

		arts, err := newClient().MyArtworks(ctx)
		if err != nil {
			return err
		}
		if len(arts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No artworks yet. Upload one with 'artdistrict artwork upload'.")
			return nil
		}
		printArtworks(cmd, arts)
		return nil
	},
}

var artworkUploadCmd = &cobra.Command{
	Use:   "upload [image files...]",
	Short: "Upload a new artwork listing",
	Long: `Uploads a new artwork with one or more images. The first image becomes
the primary listing image.

Example:
  artdistrict artwork upload front.jpg detail.jpg \
    --title "Sunset Over Biscayne" --price 1200 --medium oil \
    --category Painting --tag sunset --tag coastal`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		uploadForm.ImagePaths = args

		// Image uploads need more headroom than a JSON call.
		ctx, cancel := context.WithTimeout(cmd.Context(), 3*cmdTimeout())
		defer cancel()

		u := upload.NewUploader(api.NewClient(cfg.APIBaseURL,
			api.WithTimeout(3*cfg.RequestTimeout()),
			api.WithTokenSource(sessions),
		))
		if uploadEnhance {
			if err := u.EnhanceDescription(ctx, &uploadForm); err != nil {
				return fmt.Errorf("enhance description: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enhanced description:\n%s\n\n", uploadForm.Description)
		}
		if uploadSuggest {
			if _, err := u.SuggestTags(ctx, &uploadForm); err != nil {
				return fmt.Errorf("suggest tags: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tags: %s\n\n", strings.Join(uploadForm.Tags, ", "))
		}

		art, err := u.Submit(ctx, &uploadForm)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %q (id %s)\n", art.Title, art.ID)
		return nil
	},
}

func printArtworks(cmd *cobra.Command, arts []api.Artwork) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tARTIST\tCATEGORY\tPRICE")
	for _, a := range arts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\n",
			a.ID, truncate(a.Title, 32), a.Artist.Name, a.Category, a.PriceUSD)
	}
	w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

func init() {
	artworkListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	artworkListCmd.Flags().StringVar(&listMinPrice, "min-price", "", "minimum price")
	artworkListCmd.Flags().StringVar(&listMaxPrice, "max-price", "", "maximum price")
	artworkListCmd.Flags().IntVar(&listPage, "page", 1, "page number")

	uf := artworkUploadCmd.Flags()
	uf.StringVar(&uploadForm.Title, "title", "", "artwork title (required)")
	uf.StringVar(&uploadForm.Description, "description", "", "artwork description")
	uf.Float64Var(&uploadForm.PriceUSD, "price", 0, "price in USD (required)")
	uf.StringVar(&uploadForm.Medium, "medium", "", "medium, e.g. oil, acrylic")
	uf.StringVar(&uploadForm.Style, "style", "", "style, e.g. abstract, realism")
	uf.IntVar(&uploadForm.Year, "year", 0, "year created")
	uf.Float64Var(&uploadForm.Width, "width", 0, "width in inches")
	uf.Float64Var(&uploadForm.Height, "height", 0, "height in inches")
	uf.Float64Var(&uploadForm.Depth, "depth", 0, "depth in inches")
	uf.StringArrayVar(&uploadForm.Categories, "category", nil, "category (repeatable)")
	uf.StringArrayVar(&uploadForm.Tags, "tag", nil, "tag (repeatable)")
	uf.BoolVar(&uploadEnhance, "enhance", false, "polish the description with AI before uploading")
	uf.BoolVar(&uploadSuggest, "suggest-tags", false, "merge AI-suggested tags before uploading")

	artworkCmd.AddCommand(artworkListCmd)
	artworkCmd.AddCommand(artworkShowCmd)
	artworkCmd.AddCommand(artworkMineCmd)
	artworkCmd.AddCommand(artworkUploadCmd)
}
