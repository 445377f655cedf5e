// Package onboard is the interactive artist onboarding interface. It walks
// the six wizard steps as a prompt-driven dialogue:
//   - model.go: types, Init, Update loop
//   - fields.go: per-step field prompts
//   - view.go: rendering
package onboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artdistrict/internal/api"
	"artdistrict/internal/onboarding"
)

// Config wires the dependencies of the onboarding interface.
type Config struct {
	Service onboarding.Service
	Drafts  onboarding.DraftStore
	Timeout time.Duration
}

// Model is the bubbletea model for the onboarding wizard.
type Model struct {
	wizard  *onboarding.Wizard
	svc     onboarding.Service
	timeout time.Duration

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	transcript []string
	fieldIdx   int
	busy       bool
	busyLabel  string
	width      int
	height     int
	ready      bool
	quitting   bool
}

// Async results delivered back to the update loop.
type bioMsg struct {
	bio string
	err error
}

type payoutMsg struct {
	url string
	err error
}

type payoutStatusMsg struct {
	status *api.StripeConnectStatus
	err    error
}

type completedMsg struct {
	user *api.User
	err  error
}

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

// New creates the onboarding model, restoring a saved draft when one exists.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Type an answer, or /help for commands"
	ta.Focus()
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	w := onboarding.NewWizard(cfg.Service, cfg.Drafts)
	restored := w.Restore()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	m := Model{
		wizard:   w,
		svc:      cfg.Service,
		timeout:  timeout,
		textarea: ta,
		spinner:  sp,
	}
	if restored {
		m.say(successStyle.Render("Welcome back! Your application was restored where you left off."))
	} else {
		m.transcript = append(m.transcript, welcomeText())
	}
	m.announceStep()
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(msg.Width - 2)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			return m.handleInput(input)
		}

	case bioMsg:
		m.busy = false
		if err := m.wizard.FinishBio(msg.bio, msg.err); err != nil {
			m.say(errorStyle.Render("Bio generation failed: " + apiMessage(err)))
			return m, nil
		}
		m.say(successStyle.Render("Generated bio:"))
		m.say(msg.bio)
		m.say(mutedStyle.Render("Edit it any time by answering the bio prompt again."))
		return m, nil

	case payoutMsg:
		m.busy = false
		if msg.err != nil {
			m.say(errorStyle.Render("Could not create a payout link: " + apiMessage(msg.err)))
			m.say(mutedStyle.Render("You can set up payouts later with /later."))
			return m, nil
		}
		m.say(successStyle.Render("Open this link in your browser to finish payout setup:"))
		m.say(msg.url)
		return m, nil

	case payoutStatusMsg:
		m.busy = false
		if msg.err != nil {
			m.say(errorStyle.Render("Could not check payout status: " + apiMessage(msg.err)))
			return m, nil
		}
		switch {
		case !msg.status.HasAccount:
			m.say("No payout account yet. Use /connect to start Stripe onboarding.")
		case !msg.status.PayoutsEnabled:
			m.say("Payout account created but not finished. Use /connect to resume.")
		default:
			m.say(successStyle.Render("Payouts are enabled. You're all set."))
		}
		return m, nil

	case completedMsg:
		m.busy = false
		m.wizard.FinishCompletion(msg.err)
		if msg.err != nil {
			m.say(errorStyle.Render("Submission failed: " + apiMessage(msg.err)))
			m.say(mutedStyle.Render("Nothing was lost. Fix the problem and /complete to retry."))
			return m, nil
		}
		m.say(successStyle.Render("🎨 Welcome to ArtDistrictUSA! Your artist profile is live."))
		m.say(mutedStyle.Render("Upload your first artwork with 'artdistrict artwork upload'."))
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

// handleInput routes one submitted line: either a /command or an answer to
// the current field prompt.
func (m Model) handleInput(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		m.skipField()
		return m, nil
	}
	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	fields := stepFields(m.wizard.Step)
	if m.fieldIdx >= len(fields) {
		m.say(mutedStyle.Render("All prompts on this step are answered. /next to continue or /help for commands."))
		return m, nil
	}
	f := fields[m.fieldIdx]
	f.Set(m.wizard, input)
	m.say(mutedStyle.Render(f.Label+": ") + input)
	m.advanceField()
	return m, nil
}

func (m *Model) skipField() {
	fields := stepFields(m.wizard.Step)
	if m.fieldIdx < len(fields) {
		m.say(mutedStyle.Render("(skipped " + fields[m.fieldIdx].Label + ")"))
		m.advanceField()
	} else {
		m.say(mutedStyle.Render("/next to continue."))
	}
}

func (m *Model) advanceField() {
	m.fieldIdx++
	fields := stepFields(m.wizard.Step)
	if m.fieldIdx < len(fields) {
		m.promptField(fields[m.fieldIdx])
	} else {
		m.say(mutedStyle.Render("Step complete. /next to continue, /back to revisit."))
	}
}

func (m *Model) promptField(f field) {
	prompt := promptStyle.Render(f.Label + "?")
	if cur := f.Get(m.wizard); cur != "" {
		prompt += mutedStyle.Render(fmt.Sprintf("  (current: %s, Enter keeps it)", cur))
	} else if f.Hint != "" {
		prompt += mutedStyle.Render("  " + f.Hint)
	}
	m.say(prompt)
}

// announceStep prints the step header and the first field prompt.
func (m *Model) announceStep() {
	m.fieldIdx = 0
	s := m.wizard.Step
	m.say("")
	m.say(headerStyle.Render(fmt.Sprintf("Step %d of %d: %s", s, onboarding.LastStep, onboarding.StepTitle(s))))
	m.say(mutedStyle.Render(onboarding.StepSubtitle(s)))
	if extra := stepIntro(m.wizard); extra != "" {
		m.say(extra)
	}
	if fields := stepFields(s); len(fields) > 0 {
		m.promptField(fields[0])
	}
}

func (m *Model) say(line string) {
	m.transcript = append(m.transcript, line)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// apiMessage prefers the server-supplied message over the error chain dump.
func apiMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
