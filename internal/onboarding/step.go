package onboarding

import "errors"

// Step identifies one wizard page. Steps are ordered; navigation only moves
// one step at a time.
type Step int

const (
	StepPersonal Step = iota + 1 // identity, address, languages, consent
	StepPlan                     // membership tier selection
	StepPayment                  // subscription and payout-account setup
	StepTax                      // tax-ID verification
	StepProfile                  // art profile and story
	StepSocial                   // social links, final review
)

// FirstStep and LastStep bound the navigable range.
const (
	FirstStep = StepPersonal
	LastStep  = StepSocial
)

// stepDescriptor drives one wizard page. Adding a step means adding a table
// entry, not renumbering conditionals.
type stepDescriptor struct {
	ID       Step
	Title    string
	Subtitle string
	// Validate gates the Next action. nil means the step is always passable.
	Validate func(f *Form) error
}

// Validation error messages, matching the storefront's wording.
var (
	ErrPersonalIncomplete = errors.New("First name, last name, email, phone, city and country are required")
	ErrConsentRequired    = errors.New("Data saving consent is required to continue")
	ErrTaxFieldsRequired  = errors.New("Tax ID and Legal Name are required")
	ErrInvalidSSN         = errors.New("Please enter a valid SSN (format: XXX-XX-XXXX)")
	ErrInvalidEIN         = errors.New("Please enter a valid EIN (format: XX-XXXXXXX)")
)

var steps = []stepDescriptor{
	{
		ID:       StepPersonal,
		Title:    "Personal Information",
		Subtitle: "Let's start with the basics. This info appears on your public artist profile.",
		Validate: validatePersonal,
	},
	{
		ID:       StepPlan,
		Title:    "Choose Your Membership Plan",
		Subtitle: "All plans include 0% commission. You can upgrade or downgrade anytime.",
	},
	{
		ID:       StepPayment,
		Title:    "Payment & Payout",
		Subtitle: "Complete your subscription and set up payouts.",
	},
	{
		ID:       StepTax,
		Title:    "Tax Verification",
		Subtitle: "Required for invoice generation and payouts.",
		Validate: validateTax,
	},
	{
		ID:       StepProfile,
		Title:    "Your Profile",
		Subtitle: "Tell us about your art and your story.",
	},
	{
		ID:       StepSocial,
		Title:    "Social & Web Presence",
		Subtitle: "Connect your online presence to build credibility.",
	},
}

// descriptor returns the table entry for a step.
func descriptor(s Step) stepDescriptor {
	for _, d := range steps {
		if d.ID == s {
			return d
		}
	}
	return stepDescriptor{ID: s}
}

// StepTitle returns the display title for a step.
func StepTitle(s Step) string { return descriptor(s).Title }

// StepSubtitle returns the display subtitle for a step.
func StepSubtitle(s Step) string { return descriptor(s).Subtitle }

func validatePersonal(f *Form) error {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" ||
		f.Phone == "" || f.City == "" || f.Country == "" {
		return ErrPersonalIncomplete
	}
	return nil
}

func validateTax(f *Form) error {
	if f.TaxID == "" || f.LegalName == "" {
		return ErrTaxFieldsRequired
	}
	switch f.TaxIDType {
	case TaxIDEIN:
		if !ValidTaxID(f.TaxID, TaxIDEIN) {
			return ErrInvalidEIN
		}
	default:
		if !ValidTaxID(f.TaxID, TaxIDSSN) {
			return ErrInvalidSSN
		}
	}
	return nil
}
