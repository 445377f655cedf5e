package draft

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdistrict/internal/onboarding"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmpty(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	d, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	form := onboarding.NewForm()
	form.SetFirstName("Maria")
	form.SetLastName("Santos")
	form.Email = "maria@example.com"
	form.ToggleLanguage("Spanish")

	require.NoError(t, s.Save(&onboarding.Draft{
		Step: onboarding.StepTax,
		Form: form,
		Plan: onboarding.PlanProfessional,
	}))

	d, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, onboarding.StepTax, d.Step)
	assert.Equal(t, onboarding.PlanProfessional, d.Plan)
	assert.Equal(t, "Maria Santos", d.Form.DisplayName)
	assert.Equal(t, []string{"English", "Spanish"}, d.Form.Languages)
}

func TestSaveReplacesPrevious(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	f1 := onboarding.NewForm()
	f1.SetFirstName("First")
	require.NoError(t, s.Save(&onboarding.Draft{Step: onboarding.StepPersonal, Form: f1, Plan: onboarding.PlanStarter}))

	f2 := onboarding.NewForm()
	f2.SetFirstName("Second")
	require.NoError(t, s.Save(&onboarding.Draft{Step: onboarding.StepPlan, Form: f2, Plan: onboarding.PlanDeluxe}))

	d, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, onboarding.StepPlan, d.Step)
	assert.Equal(t, "Second", d.Form.FirstName)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	require.NoError(t, s.Save(&onboarding.Draft{Step: onboarding.StepPersonal, Form: onboarding.NewForm(), Plan: onboarding.PlanStarter}))
	require.NoError(t, s.Clear())

	d, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, d)

	// Clearing twice is harmless.
	require.NoError(t, s.Clear())
}

func TestPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "drafts.db")
	s, err := Open(path)
	require.NoError(t, err)
	form := onboarding.NewForm()
	form.SetFirstName("Maria")
	require.NoError(t, s.Save(&onboarding.Draft{Step: onboarding.StepProfile, Form: form, Plan: onboarding.PlanDeluxe}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	d, err := s2.Load()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, onboarding.StepProfile, d.Step)
	assert.Equal(t, "Maria", d.Form.FirstName)
}
