package onboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"artdistrict/internal/onboarding"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " " + m.busyLabel + "...\n")
	} else {
		b.WriteString(m.textarea.View() + "\n")
	}
	b.WriteString(mutedStyle.Render("Enter to answer · /next /back /help · Esc to exit"))
	return b.String()
}

// headerLine renders the step progress bar.
func (m Model) headerLine() string {
	var parts []string
	for s := onboarding.FirstStep; s <= onboarding.LastStep; s++ {
		marker := "○"
		if s < m.wizard.Step {
			marker = "●"
		} else if s == m.wizard.Step {
			marker = "◉"
		}
		parts = append(parts, marker)
	}
	title := headerStyle.Render("Artist Onboarding")
	return fmt.Sprintf("%s  %s  %s", title, strings.Join(parts, " "),
		mutedStyle.Render(onboarding.StepTitle(m.wizard.Step)))
}

const welcomeMarkdown = `# Become an ArtDistrictUSA Artist

Six quick steps: personal info, membership plan, payment, tax
verification, your art profile, and your web presence.

- Answer each prompt and press **Enter**; an empty answer skips a prompt.
- Slash commands drive everything else: ` + "`/next`" + `, ` + "`/back`" + `, ` + "`/help`" + `.
- Grant ` + "`/consent`" + ` and your progress is saved after every step.

All plans keep **0% commission** on sales.`

// welcomeText renders the welcome banner, falling back to plain markdown if
// the terminal renderer fails.
func welcomeText() string {
	out, err := glamour.Render(welcomeMarkdown, "dark")
	if err != nil {
		return welcomeMarkdown
	}
	return strings.TrimRight(out, "\n")
}

func helpText() string {
	return mutedStyle.Render(strings.TrimSpace(`
Navigation      /next  /back  /status  /quit
Personal        /lang <name>      toggle a profile language
                /consent          toggle draft autosave
Plan            /plan <id>        starter, superior, deluxe, professional, toptier
                /billing <period> monthly or yearly
Payment         /connect          open Stripe payout setup
                /payout-status    check your Stripe account state
                /later            defer payout setup
Tax             /type <ssn|ein>   switch tax ID kind
Profile         /generate-bio     draft a bio from your details
Finish          /complete         submit the application (final step)
`))
}

// statusText summarizes the application so far.
func (m Model) statusText() string {
	f := m.wizard.Form
	plan, _ := onboarding.PlanByID(m.wizard.Plan)
	var b strings.Builder
	b.WriteString(headerStyle.Render("Application status") + "\n")
	b.WriteString(fmt.Sprintf("  Artist name:  %s\n", orDash(f.ArtistName())))
	b.WriteString(fmt.Sprintf("  Email:        %s\n", orDash(f.Email)))
	b.WriteString(fmt.Sprintf("  Location:     %s\n", orDash(strings.TrimSuffix(f.City+", "+f.State, ", "))))
	b.WriteString(fmt.Sprintf("  Languages:    %s\n", strings.Join(f.Languages, ", ")))
	b.WriteString(fmt.Sprintf("  Plan:         %s (%s)\n", plan.Name, f.BillingPeriod))
	b.WriteString(fmt.Sprintf("  Tax verified: %v\n", f.Verified))
	b.WriteString(fmt.Sprintf("  Consent:      %v\n", m.wizard.DataConsent))
	if m.wizard.Phase() == onboarding.PhaseFailed {
		b.WriteString(errorStyle.Render("  Last submit:  "+m.wizard.FailureMessage()) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func orDash(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
