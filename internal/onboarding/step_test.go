package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completePersonal(f *Form) {
	f.SetFirstName("Maria")
	f.SetLastName("Santos")
	f.Email = "maria@example.com"
	f.Phone = "+1 555 0100"
	f.City = "Miami"
}

func TestValidatePersonal(t *testing.T) {
	t.Parallel()

	f := NewForm()
	assert.ErrorIs(t, validatePersonal(f), ErrPersonalIncomplete)

	completePersonal(f)
	assert.NoError(t, validatePersonal(f))

	// Any single missing field fails the gate; street, state and zip do not
	// participate.
	f.Phone = ""
	assert.ErrorIs(t, validatePersonal(f), ErrPersonalIncomplete)
	f.Phone = "+1 555 0100"
	f.StreetAddress = ""
	f.State = ""
	f.ZipCode = ""
	assert.NoError(t, validatePersonal(f))
}

func TestValidateTax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		taxID     string
		legalName string
		typ       TaxIDType
		wantErr   error
	}{
		{"missing both", "", "", TaxIDSSN, ErrTaxFieldsRequired},
		{"missing legal name", "123-45-6789", "", TaxIDSSN, ErrTaxFieldsRequired},
		{"missing tax id", "", "Maria Santos", TaxIDSSN, ErrTaxFieldsRequired},
		{"partial ssn", "123-45", "Maria Santos", TaxIDSSN, ErrInvalidSSN},
		{"valid ssn", "123-45-6789", "Maria Santos", TaxIDSSN, nil},
		{"ssn shaped ein", "123-45-6789", "Santos LLC", TaxIDEIN, ErrInvalidEIN},
		{"valid ein", "12-3456789", "Santos LLC", TaxIDEIN, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := NewForm()
			f.TaxID = tt.taxID
			f.LegalName = tt.legalName
			f.TaxIDType = tt.typ
			err := validateTax(f)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStepDescriptors(t *testing.T) {
	t.Parallel()

	for s := FirstStep; s <= LastStep; s++ {
		assert.NotEmpty(t, StepTitle(s), "step %d has no title", s)
		assert.NotEmpty(t, StepSubtitle(s), "step %d has no subtitle", s)
	}
	assert.Equal(t, "Tax Verification", StepTitle(StepTax))

	// Only the personal and tax steps carry gates.
	for s := FirstStep; s <= LastStep; s++ {
		gated := s == StepPersonal || s == StepTax
		assert.Equal(t, gated, descriptor(s).Validate != nil, "step %d", s)
	}
}
