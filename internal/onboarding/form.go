// Package onboarding implements the artist onboarding wizard: a six-step
// form state machine with per-step validation gates, consent-gated draft
// autosave, and a two-phase completion transaction (profile submission plus
// user-deferrable payout linking).
package onboarding

import "strings"

// Plan identifies a membership tier.
type Plan string

const (
	PlanStarter      Plan = "starter"
	PlanSuperior     Plan = "superior"
	PlanDeluxe       Plan = "deluxe"
	PlanProfessional Plan = "professional"
	PlanTopTier      Plan = "toptier"
)

// DefaultPlan is preselected when the wizard opens.
const DefaultPlan = PlanDeluxe

// PlanInfo describes one membership tier.
type PlanInfo struct {
	ID           Plan
	Name         string
	MonthlyUSD   int
	YearlyUSD    int
	ArtworkLimit int
	ImagesPer    int
}

// Plans is the fixed tier catalog, cheapest first.
var Plans = []PlanInfo{
	{ID: PlanStarter, Name: "Free", MonthlyUSD: 0, YearlyUSD: 0, ArtworkLimit: 10, ImagesPer: 3},
	{ID: PlanSuperior, Name: "Superior", MonthlyUSD: 9, YearlyUSD: 90, ArtworkLimit: 100, ImagesPer: 8},
	{ID: PlanDeluxe, Name: "DeLuxe", MonthlyUSD: 19, YearlyUSD: 190, ArtworkLimit: 200, ImagesPer: 12},
	{ID: PlanProfessional, Name: "Professional", MonthlyUSD: 29, YearlyUSD: 290, ArtworkLimit: 500, ImagesPer: 15},
	{ID: PlanTopTier, Name: "TopTier", MonthlyUSD: 49, YearlyUSD: 490, ArtworkLimit: 1000, ImagesPer: 20},
}

// PlanByID looks up a tier, reporting whether it exists.
func PlanByID(id Plan) (PlanInfo, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return PlanInfo{}, false
}

// BillingPeriod is monthly or yearly.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// TaxIDType distinguishes individual from business tax identifiers.
type TaxIDType string

const (
	TaxIDSSN TaxIDType = "ssn" // XXX-XX-XXXX, individuals
	TaxIDEIN TaxIDType = "ein" // XX-XXXXXXX, businesses and LLCs
)

// Languages the profile form offers.
var Languages = []string{
	"English", "German", "Spanish", "French",
	"Italian", "Portuguese", "Chinese", "Japanese",
}

// ArtStyles the profile step offers.
var ArtStyles = []string{
	"abstract", "realism", "impressionism", "expressionism", "surrealism",
	"contemporary", "modern", "minimalism", "pop-art", "street-art",
	"figurative", "landscape", "other",
}

// Mediums the profile step offers.
var Mediums = []string{
	"oil", "acrylic", "watercolor", "mixed-media", "digital", "photography",
	"sculpture", "ceramics", "printmaking", "drawing", "collage", "textile",
	"installation", "other",
}

// Form is the flat record of wizard fields. All fields are independently
// editable; none is partially structured.
type Form struct {
	// Step 1: personal
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DisplayName   string `json:"displayName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`

	Languages []string `json:"languages"`

	// Step 2: plan billing
	BillingPeriod BillingPeriod `json:"billingPeriod"`

	// Step 4: tax verification
	TaxIDType TaxIDType `json:"taxIdType"`
	TaxID     string    `json:"taxId"`
	LegalName string    `json:"legalName"`
	Verified  bool      `json:"verified"`

	// Step 5: art profile and story
	ArtStyle           string `json:"artStyle"`
	Medium             string `json:"medium"`
	Bio                string `json:"bio"`
	Experience         string `json:"experience"`
	WidthRange         string `json:"widthRange"`
	HeightRange        string `json:"heightRange"`
	PriceRange         string `json:"priceRange"`
	AcceptsCommissions string `json:"acceptsCommissions"`

	// Step 6: social and web
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	TikTok    string `json:"tiktok"`

	// DisplayNameCustom is set the first time the display-name field receives
	// direct input and is never reset for the session. While false,
	// DisplayName tracks "First Last".
	DisplayNameCustom bool `json:"displayNameCustom"`
}

// NewForm returns a form with the original defaults.
func NewForm() *Form {
	return &Form{
		Country:       "United States",
		Languages:     []string{"English"},
		BillingPeriod: BillingMonthly,
		TaxIDType:     TaxIDSSN,
	}
}

// derivedDisplayName is the auto-generated artist name.
func (f *Form) derivedDisplayName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// SetFirstName updates the first name, re-deriving the display name unless
// the user has taken it over.
func (f *Form) SetFirstName(v string) {
	f.FirstName = v
	if !f.DisplayNameCustom {
		f.DisplayName = f.derivedDisplayName()
	}
}

// SetLastName updates the last name, re-deriving the display name unless the
// user has taken it over.
func (f *Form) SetLastName(v string) {
	f.LastName = v
	if !f.DisplayNameCustom {
		f.DisplayName = f.derivedDisplayName()
	}
}

// SetDisplayName records a direct edit of the artist name. From this point
// the field is decoupled from first/last name for good.
func (f *Form) SetDisplayName(v string) {
	f.DisplayName = v
	f.DisplayNameCustom = true
}

// ArtistName is the name submitted to the backend: the display name when set,
// else the derived full name.
func (f *Form) ArtistName() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	return f.derivedDisplayName()
}

// ToggleLanguage adds or removes a language from the selection.
func (f *Form) ToggleLanguage(lang string) {
	for i, l := range f.Languages {
		if l == lang {
			f.Languages = append(f.Languages[:i], f.Languages[i+1:]...)
			return
		}
	}
	f.Languages = append(f.Languages, lang)
}

// HasLanguage reports whether a language is selected.
func (f *Form) HasLanguage(lang string) bool {
	for _, l := range f.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
