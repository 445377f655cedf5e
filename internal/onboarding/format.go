package onboarding

import "regexp"

var (
	ssnPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	einPattern = regexp.MustCompile(`^\d{2}-\d{7}$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

// FormatTaxID normalizes raw tax-ID input into positional punctuation. All
// non-digit characters are stripped, digits are capped at nine, and dashes
// are inserted as digits accumulate: after the 3rd and 5th digit for SSN
// (XXX-XX-XXXX), after the 2nd for EIN (XX-XXXXXXX). The transform runs on
// every keystroke and is idempotent over its own output.
func FormatTaxID(raw string, typ TaxIDType) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 9 {
		digits = digits[:9]
	}

	if typ == TaxIDEIN {
		if len(digits) <= 2 {
			return digits
		}
		return digits[:2] + "-" + digits[2:]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 5:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:5] + "-" + digits[5:]
	}
}

// ValidTaxID reports whether a formatted tax ID is complete for its type.
func ValidTaxID(formatted string, typ TaxIDType) bool {
	if typ == TaxIDEIN {
		return einPattern.MatchString(formatted)
	}
	return ssnPattern.MatchString(formatted)
}
