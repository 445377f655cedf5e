package onboard

import (
	"fmt"
	"strings"

	"artdistrict/internal/onboarding"
)

// field is one prompt within a wizard step.
type field struct {
	Label string
	Hint  string
	Get   func(w *onboarding.Wizard) string
	Set   func(w *onboarding.Wizard, v string)
}

func formField(label, hint string, get func(*onboarding.Form) string, set func(*onboarding.Form, string)) field {
	return field{
		Label: label,
		Hint:  hint,
		Get:   func(w *onboarding.Wizard) string { return get(w.Form) },
		Set:   func(w *onboarding.Wizard, v string) { set(w.Form, v) },
	}
}

var personalFields = []field{
	formField("First name", "",
		func(f *onboarding.Form) string { return f.FirstName },
		func(f *onboarding.Form, v string) { f.SetFirstName(v) }),
	formField("Last name", "",
		func(f *onboarding.Form) string { return f.LastName },
		func(f *onboarding.Form, v string) { f.SetLastName(v) }),
	formField("Artist display name", "(Enter keeps the suggested name)",
		func(f *onboarding.Form) string { return f.DisplayName },
		func(f *onboarding.Form, v string) { f.SetDisplayName(v) }),
	formField("Email", "",
		func(f *onboarding.Form) string { return f.Email },
		func(f *onboarding.Form, v string) { f.Email = v }),
	formField("Phone", "",
		func(f *onboarding.Form) string { return f.Phone },
		func(f *onboarding.Form, v string) { f.Phone = v }),
	formField("Street address", "(optional)",
		func(f *onboarding.Form) string { return f.StreetAddress },
		func(f *onboarding.Form, v string) { f.StreetAddress = v }),
	formField("City", "",
		func(f *onboarding.Form) string { return f.City },
		func(f *onboarding.Form, v string) { f.City = v }),
	formField("State", "(optional)",
		func(f *onboarding.Form) string { return f.State },
		func(f *onboarding.Form, v string) { f.State = v }),
	formField("Zip code", "(optional)",
		func(f *onboarding.Form) string { return f.ZipCode },
		func(f *onboarding.Form, v string) { f.ZipCode = v }),
	formField("Country", "",
		func(f *onboarding.Form) string { return f.Country },
		func(f *onboarding.Form, v string) { f.Country = v }),
}

var taxFields = []field{
	formField("Legal name", "(as it appears on tax documents)",
		func(f *onboarding.Form) string { return f.LegalName },
		func(f *onboarding.Form, v string) { f.LegalName = v }),
	{
		Label: "Tax ID",
		Hint:  "(SSN XXX-XX-XXXX, switch with /type ein)",
		Get:   func(w *onboarding.Wizard) string { return w.Form.TaxID },
		Set:   func(w *onboarding.Wizard, v string) { w.SetTaxID(v) },
	},
}

var profileFields = []field{
	formField("Art style", "(e.g. abstract, realism, contemporary)",
		func(f *onboarding.Form) string { return f.ArtStyle },
		func(f *onboarding.Form, v string) { f.ArtStyle = strings.ToLower(v) }),
	formField("Primary medium", "(e.g. oil, acrylic, photography)",
		func(f *onboarding.Form) string { return f.Medium },
		func(f *onboarding.Form, v string) { f.Medium = strings.ToLower(v) }),
	formField("Artistic experience", "(a sentence about your background)",
		func(f *onboarding.Form) string { return f.Experience },
		func(f *onboarding.Form, v string) { f.Experience = v }),
	formField("Typical price range", "(e.g. 500-2000)",
		func(f *onboarding.Form) string { return f.PriceRange },
		func(f *onboarding.Form, v string) { f.PriceRange = v }),
	formField("Bio", "(or /generate-bio to draft one for you)",
		func(f *onboarding.Form) string { return f.Bio },
		func(f *onboarding.Form, v string) { f.Bio = v }),
	formField("Do you accept commissions", "(yes/no)",
		func(f *onboarding.Form) string { return f.AcceptsCommissions },
		func(f *onboarding.Form, v string) { f.AcceptsCommissions = strings.ToLower(v) }),
}

var socialFields = []field{
	formField("Website", "(optional)",
		func(f *onboarding.Form) string { return f.Website },
		func(f *onboarding.Form, v string) { f.Website = v }),
	formField("Instagram", "(optional)",
		func(f *onboarding.Form) string { return f.Instagram },
		func(f *onboarding.Form, v string) { f.Instagram = v }),
	formField("Facebook", "(optional)",
		func(f *onboarding.Form) string { return f.Facebook },
		func(f *onboarding.Form, v string) { f.Facebook = v }),
	formField("Twitter", "(optional)",
		func(f *onboarding.Form) string { return f.Twitter },
		func(f *onboarding.Form, v string) { f.Twitter = v }),
	formField("TikTok", "(optional)",
		func(f *onboarding.Form) string { return f.TikTok },
		func(f *onboarding.Form, v string) { f.TikTok = v }),
}

// stepFields returns the prompts for a step. Plan and payment steps are
// command-driven and have none.
func stepFields(s onboarding.Step) []field {
	switch s {
	case onboarding.StepPersonal:
		return personalFields
	case onboarding.StepTax:
		return taxFields
	case onboarding.StepProfile:
		return profileFields
	case onboarding.StepSocial:
		return socialFields
	default:
		return nil
	}
}

// stepIntro renders step-specific guidance shown under the header.
func stepIntro(w *onboarding.Wizard) string {
	switch w.Step {
	case onboarding.StepPersonal:
		var b strings.Builder
		b.WriteString(mutedStyle.Render("Toggle profile languages with /lang <name>; grant draft saving with /consent."))
		return b.String()
	case onboarding.StepPlan:
		var b strings.Builder
		for _, p := range onboarding.Plans {
			marker := "  "
			if p.ID == w.Plan {
				marker = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-14s $%d/mo or $%d/yr, %d artworks, %d images each\n",
				marker, p.Name, p.MonthlyUSD, p.YearlyUSD, p.ArtworkLimit, p.ImagesPer))
		}
		b.WriteString(mutedStyle.Render("Pick with /plan <starter|superior|deluxe|professional|toptier>, billing with /billing <monthly|yearly>."))
		return b.String()
	case onboarding.StepPayment:
		return mutedStyle.Render("Set up your payout account with /connect, or /later to defer it.\nYour subscription is charged when the application is completed.")
	case onboarding.StepSocial:
		return mutedStyle.Render("When you are done, /complete submits your application.")
	default:
		return ""
	}
}
