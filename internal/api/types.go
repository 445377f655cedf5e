package api

// =============================================================================
// MARKETPLACE API TYPES
// =============================================================================
// Wire types for the ArtDistrictUSA REST API. All of these are external
// entities: the client consumes them read-only and never invents fields the
// backend does not document.

// Image is one image attached to an artwork.
type Image struct {
	ID          string `json:"id"`
	OriginalURL string `json:"originalUrl"`
	ThumbURL    string `json:"thumbUrl"`
	IsPrimary   bool   `json:"isPrimary"`
}

// Artist is the public artist summary embedded in artwork listings.
type Artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Slug      string `json:"slug,omitempty"`
}

// Artwork is a catalog listing.
type Artwork struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PriceUSD    float64 `json:"priceUsd"`
	Category    string  `json:"category"`
	Images      []Image `json:"images"`
	Artist      Artist  `json:"artist"`
	CreatedAt   string  `json:"createdAt"`
}

// PrimaryImageURL returns the thumb URL of the primary image, falling back to
// the first image, then the empty string.
func (a Artwork) PrimaryImageURL() string {
	for _, img := range a.Images {
		if img.IsPrimary {
			return img.ThumbURL
		}
	}
	if len(a.Images) > 0 {
		return a.Images[0].ThumbURL
	}
	return ""
}

// Pagination describes a page of results.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ArtworkPage is the paginated listing response from GET /artworks.
type ArtworkPage struct {
	Data       []Artwork  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// User is the authenticated account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	IsArtist  bool   `json:"isArtist"`
}

// Tokens is the auth token pair returned by login/refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is the login response.
type AuthResponse struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// BecomeArtistRequest is the profile-submission payload for
// POST /auth/become-artist. This is the complete contract: wizard fields not
// listed here (tax ID, street address, phone, dimension and pricing
// preferences) are intentionally never sent to this endpoint.
type BecomeArtistRequest struct {
	ArtistName       string   `json:"artistName"`
	Bio              string   `json:"bio"`
	Website          string   `json:"website"`
	Instagram        string   `json:"instagram"`
	Facebook         string   `json:"facebook"`
	Twitter          string   `json:"twitter"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Country          string   `json:"country"`
	Languages        []string `json:"languages"`
	SubscriptionTier string   `json:"subscriptionTier"`
}

// GenerateBioRequest is the payload for POST /ai/generate-bio.
type GenerateBioRequest struct {
	Style          string `json:"style"`
	Medium         string `json:"medium"`
	Location       string `json:"location,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// EnhanceDescriptionRequest is the payload for POST /ai/enhance-description.
type EnhanceDescriptionRequest struct {
	Title          string `json:"title"`
	Medium         string `json:"medium"`
	RawDescription string `json:"rawDescription"`
	Style          string `json:"style,omitempty"`
	Dimensions     string `json:"dimensions,omitempty"`
}

// SuggestTagsRequest is the payload for POST /ai/suggest-tags.
type SuggestTagsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Medium      string `json:"medium"`
	Style       string `json:"style,omitempty"`
}

// StripeConnectStatus reports the artist's payout account state.
type StripeConnectStatus struct {
	HasAccount       bool `json:"hasAccount"`
	DetailsSubmitted bool `json:"detailsSubmitted"`
	ChargesEnabled   bool `json:"chargesEnabled"`
	PayoutsEnabled   bool `json:"payoutsEnabled"`
}

// ArtworkUpload is the metadata half of a multipart artwork upload.
type ArtworkUpload struct {
	Title       string
	Description string
	PriceUSD    float64
	Medium      string
	Year        int
	Width       float64
	Height      float64
	Depth       float64
	Categories  []string
	Tags        []string
}
