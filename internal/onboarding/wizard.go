package onboarding

import (
	"context"
	"errors"
	"fmt"

	"artdistrict/internal/api"
	"artdistrict/internal/logging"
)

// Service is the slice of the marketplace API the wizard depends on.
// *api.Client satisfies it; tests inject fakes.
type Service interface {
	BecomeArtist(ctx context.Context, req api.BecomeArtistRequest) (*api.User, error)
	GenerateBio(ctx context.Context, req api.GenerateBioRequest) (string, error)
	PayoutOnboardingLink(ctx context.Context) (string, error)
	PayoutStatus(ctx context.Context) (*api.StripeConnectStatus, error)
}

// Phase is the wizard's lifecycle state outside normal step editing.
type Phase int

const (
	PhaseEditing    Phase = iota // stepping through the form
	PhaseSubmitting              // completion transaction in flight
	PhaseCompleted               // profile committed, caller redirects
	PhaseFailed                  // submission rejected, retry available
)

// Errors produced by wizard actions.
var (
	ErrAlreadySubmitting = errors.New("submission already in progress")
	ErrNotOnFinalStep    = errors.New("completion is only available on the final step")
	ErrBioPrerequisites  = errors.New("Please fill in your artistic experience and location first")
)

// Wizard drives a user through the onboarding steps. It is not safe for
// concurrent use; the TUI event loop owns it and external calls happen in
// commands whose results are applied back on the loop.
type Wizard struct {
	svc    Service
	drafts DraftStore

	Step        Step
	Form        *Form
	Plan        Plan
	DataConsent bool

	phase   Phase
	failMsg string
}

// NewWizard creates a wizard on its first step with default form values.
func NewWizard(svc Service, drafts DraftStore) *Wizard {
	return &Wizard{
		svc:    svc,
		drafts: drafts,
		Step:   FirstStep,
		Form:   NewForm(),
		Plan:   DefaultPlan,
	}
}

// Restore rehydrates a previously saved draft. Drafts are only ever written
// with consent, so a present draft implies consent was granted.
func (w *Wizard) Restore() bool {
	if w.drafts == nil {
		return false
	}
	d, err := w.drafts.Load()
	if err != nil {
		logging.WizardError("draft load failed: %v", err)
		return false
	}
	if d == nil || d.Form == nil {
		return false
	}
	w.Step = d.Step
	if w.Step < FirstStep || w.Step > LastStep {
		w.Step = FirstStep
	}
	w.Form = d.Form
	if _, ok := PlanByID(d.Plan); ok {
		w.Plan = d.Plan
	}
	w.DataConsent = true
	logging.Wizard("draft restored at step %d", w.Step)
	return true
}

// Phase returns the wizard lifecycle phase.
func (w *Wizard) Phase() Phase { return w.phase }

// FailureMessage returns the inline error from a failed submission.
func (w *Wizard) FailureMessage() string { return w.failMsg }

// CanProgress reports whether the current step's gate passes. Step 1
// additionally requires data-saving consent.
func (w *Wizard) CanProgress() bool {
	return w.gate() == nil
}

func (w *Wizard) gate() error {
	if w.Step == StepPersonal && !w.DataConsent {
		if err := validatePersonal(w.Form); err != nil {
			return err
		}
		return ErrConsentRequired
	}
	if v := descriptor(w.Step).Validate; v != nil {
		return v(w.Form)
	}
	return nil
}

// Next validates the current step and advances. On the tax step a passing
// gate marks the form verified; verification is never unset afterwards. The
// draft is saved if and only if consent is granted.
func (w *Wizard) Next() error {
	if err := w.gate(); err != nil {
		return err
	}
	if w.Step == StepTax {
		w.Form.Verified = true
	}
	if w.Step < LastStep {
		w.Step++
		logging.Wizard("advanced to step %d", w.Step)
	}
	// Persist after advancing so a restored session resumes on the next
	// unfinished step rather than replaying the one just passed.
	w.saveDraft()
	return nil
}

// Back moves one step backwards. No validation, no persistence.
func (w *Wizard) Back() {
	if w.Step > FirstStep {
		w.Step--
	}
}

// SelectPlan switches the membership tier, ignoring unknown identifiers.
func (w *Wizard) SelectPlan(p Plan) {
	if _, ok := PlanByID(p); ok {
		w.Plan = p
	}
}

// SetConsent flips the data-saving consent gate. Revoking consent suppresses
// all future autosave; already-saved drafts are left alone.
func (w *Wizard) SetConsent(v bool) {
	w.DataConsent = v
}

// SetTaxID normalizes raw keystrokes into the positional format for the
// current tax-ID type.
func (w *Wizard) SetTaxID(raw string) {
	w.Form.TaxID = FormatTaxID(raw, w.Form.TaxIDType)
}

// SetTaxIDType switches between SSN and EIN, re-punctuating the digits
// already entered.
func (w *Wizard) SetTaxIDType(t TaxIDType) {
	w.Form.TaxIDType = t
	w.Form.TaxID = FormatTaxID(w.Form.TaxID, t)
}

func (w *Wizard) saveDraft() {
	if !w.DataConsent || w.drafts == nil {
		return
	}
	d := &Draft{Step: w.Step, Form: w.Form, Plan: w.Plan}
	if err := w.drafts.Save(d); err != nil {
		// Autosave is best effort; losing it never blocks progression.
		logging.WizardError("draft save failed: %v", err)
	}
}

// BioRequest builds the bio-generation payload, enforcing the prerequisite
// that experience and city are filled in.
func (w *Wizard) BioRequest() (api.GenerateBioRequest, error) {
	f := w.Form
	if f.Experience == "" || f.City == "" {
		return api.GenerateBioRequest{}, ErrBioPrerequisites
	}
	medium := f.PriceRange
	if medium == "" {
		medium = "Mixed Media"
	}
	region := f.State
	if region == "" {
		region = f.Country
	}
	return api.GenerateBioRequest{
		Style:          f.Experience,
		Medium:         medium,
		Location:       fmt.Sprintf("%s, %s", f.City, region),
		AdditionalInfo: f.Experience,
	}, nil
}

// FinishBio settles a bio generation started with BioRequest. Success
// overwrites the bio wholesale; failure changes no field.
func (w *Wizard) FinishBio(bio string, err error) error {
	if err != nil {
		logging.WizardError("bio generation failed: %v", err)
		return err
	}
	w.Form.Bio = bio
	return nil
}

// PayoutLink requests a Stripe Connect onboarding URL. Deferring this step
// is always valid; its failure never affects the profile submission.
func (w *Wizard) PayoutLink(ctx context.Context) (string, error) {
	return w.svc.PayoutOnboardingLink(ctx)
}

// PayoutState reports whether a Stripe Connect account exists and can
// receive payouts. The payment step shows it on demand.
func (w *Wizard) PayoutState(ctx context.Context) (*api.StripeConnectStatus, error) {
	return w.svc.PayoutStatus(ctx)
}

// Payload maps the form to the become-artist contract. Fields outside the
// contract (tax ID, street address, phone, dimension and pricing
// preferences) are deliberately excluded.
func (w *Wizard) Payload() api.BecomeArtistRequest {
	f := w.Form
	return api.BecomeArtistRequest{
		ArtistName:       f.ArtistName(),
		Bio:              f.Bio,
		Website:          f.Website,
		Instagram:        f.Instagram,
		Facebook:         f.Facebook,
		Twitter:          f.Twitter,
		City:             f.City,
		State:            f.State,
		Country:          f.Country,
		Languages:        f.Languages,
		SubscriptionTier: string(w.Plan),
	}
}

// BeginCompletion transitions into the submitting phase. Only valid from the
// final step and excluded while a submission is already in flight.
func (w *Wizard) BeginCompletion() error {
	if w.Step != LastStep {
		return ErrNotOnFinalStep
	}
	if w.phase == PhaseSubmitting {
		return ErrAlreadySubmitting
	}
	w.phase = PhaseSubmitting
	w.failMsg = ""
	return nil
}

// FinishCompletion settles the completion transaction. On failure the wizard
// stays on the final step with the form untouched so the user can retry; on
// success the draft is cleared.
func (w *Wizard) FinishCompletion(err error) {
	if err != nil {
		w.phase = PhaseFailed
		w.failMsg = err.Error()
		logging.WizardError("completion failed: %v", err)
		return
	}
	w.phase = PhaseCompleted
	w.failMsg = ""
	if w.drafts != nil {
		if cerr := w.drafts.Clear(); cerr != nil {
			logging.WizardError("draft clear failed: %v", cerr)
		}
	}
	logging.Wizard("onboarding completed, plan=%s", w.Plan)
}
