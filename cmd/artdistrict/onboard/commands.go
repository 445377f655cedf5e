package onboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"artdistrict/internal/onboarding"
)

// handleCommand routes slash commands.
func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/next":
		if err := m.wizard.Next(); err != nil {
			m.say(errorStyle.Render(err.Error()))
			if err == onboarding.ErrConsentRequired {
				m.say(mutedStyle.Render("Grant consent with /consent. Your progress is then saved automatically."))
			}
			return m, nil
		}
		m.announceStep()
		return m, nil

	case "/back":
		m.wizard.Back()
		m.announceStep()
		return m, nil

	case "/consent":
		m.wizard.SetConsent(!m.wizard.DataConsent)
		if m.wizard.DataConsent {
			m.say(successStyle.Render("Draft saving enabled. Progress is stored after each step."))
		} else {
			m.say(mutedStyle.Render("Draft saving disabled."))
		}
		return m, nil

	case "/plan":
		if len(args) == 0 {
			m.say(errorStyle.Render("Usage: /plan <starter|superior|deluxe|professional|toptier>"))
			return m, nil
		}
		id := onboarding.Plan(strings.ToLower(args[0]))
		if _, ok := onboarding.PlanByID(id); !ok {
			m.say(errorStyle.Render(fmt.Sprintf("Unknown plan %q", args[0])))
			return m, nil
		}
		m.wizard.SelectPlan(id)
		info, _ := onboarding.PlanByID(id)
		m.say(successStyle.Render(fmt.Sprintf("Selected the %s plan.", info.Name)))
		return m, nil

	case "/billing":
		if len(args) == 0 || (args[0] != "monthly" && args[0] != "yearly") {
			m.say(errorStyle.Render("Usage: /billing <monthly|yearly>"))
			return m, nil
		}
		m.wizard.Form.BillingPeriod = onboarding.BillingPeriod(args[0])
		m.say(successStyle.Render("Billing set to " + args[0] + "."))
		return m, nil

	case "/lang":
		if len(args) == 0 {
			m.say(mutedStyle.Render("Languages: " + strings.Join(onboarding.Languages, ", ")))
			m.say(mutedStyle.Render("Selected: " + strings.Join(m.wizard.Form.Languages, ", ")))
			return m, nil
		}
		lang := strings.ToLower(args[0])
		lang = strings.ToUpper(lang[:1]) + lang[1:]
		m.wizard.Form.ToggleLanguage(lang)
		m.say(successStyle.Render("Languages: " + strings.Join(m.wizard.Form.Languages, ", ")))
		return m, nil

	case "/type":
		if len(args) == 0 || (args[0] != "ssn" && args[0] != "ein") {
			m.say(errorStyle.Render("Usage: /type <ssn|ein>"))
			return m, nil
		}
		m.wizard.SetTaxIDType(onboarding.TaxIDType(args[0]))
		m.say(successStyle.Render("Tax ID type set to " + strings.ToUpper(args[0]) + "."))
		return m, nil

	case "/generate-bio":
		req, err := m.wizard.BioRequest()
		if err != nil {
			m.say(errorStyle.Render(err.Error()))
			return m, nil
		}
		m.busy = true
		m.busyLabel = "Generating bio"
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			defer cancel()
			bio, err := m.svc.GenerateBio(ctx, req)
			return bioMsg{bio: bio, err: err}
		})

	case "/connect":
		m.busy = true
		m.busyLabel = "Requesting payout link"
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			defer cancel()
			url, err := m.svc.PayoutOnboardingLink(ctx)
			return payoutMsg{url: url, err: err}
		})

	case "/payout-status":
		m.busy = true
		m.busyLabel = "Checking payout status"
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			defer cancel()
			status, err := m.wizard.PayoutState(ctx)
			return payoutStatusMsg{status: status, err: err}
		})

	case "/later":
		m.say(mutedStyle.Render("Payout setup deferred. You can finish it any time from your dashboard."))
		return m, nil

	case "/complete":
		if err := m.wizard.BeginCompletion(); err != nil {
			m.say(errorStyle.Render(err.Error()))
			return m, nil
		}
		payload := m.wizard.Payload()
		m.busy = true
		m.busyLabel = "Submitting your application"
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			defer cancel()
			user, err := m.svc.BecomeArtist(ctx, payload)
			return completedMsg{user: user, err: err}
		})

	case "/status":
		m.say(m.statusText())
		return m, nil

	case "/help":
		m.say(helpText())
		return m, nil

	case "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit

	default:
		m.say(errorStyle.Render(fmt.Sprintf("Unknown command %s. Try /help.", cmd)))
		return m, nil
	}
}
