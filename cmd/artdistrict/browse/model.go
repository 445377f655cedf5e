// Package browse is the interactive catalog browser. Filter state lives in
// an internal/catalog controller; this model only renders it and forwards
// intent. Responses for superseded filter states never reach the screen.
package browse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artdistrict/internal/api"
	"artdistrict/internal/catalog"
)

// Config wires the dependencies of the browser.
type Config struct {
	Lister  catalog.Lister
	Query   string // initial filter state, encoded
	Timeout time.Duration
}

// artworkItem adapts an artwork for the results list.
type artworkItem struct {
	art api.Artwork
}

func (i artworkItem) Title() string {
	return fmt.Sprintf("%s  $%.0f", i.art.Title, i.art.PriceUSD)
}

func (i artworkItem) Description() string {
	return fmt.Sprintf("%s · %s", i.art.Artist.Name, i.art.Category)
}

func (i artworkItem) FilterValue() string {
	return i.art.Title + " " + i.art.Artist.Name
}

// artworksMsg is a completed fetch, tagged with its generation.
type artworksMsg struct {
	gen  uint64
	page *api.ArtworkPage
	err  error
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(1, 2)
)

// Model is the bubbletea model for the catalog browser.
type Model struct {
	ctrl    *catalog.Controller
	timeout time.Duration

	list    list.Model
	input   textinput.Model
	spinner spinner.Model

	typing   bool // command input focused
	errMsg   string
	width    int
	height   int
	quitting bool

	initCmd tea.Cmd
}

// New creates the browser. The first fetch runs from Init.
func New(cfg Config) Model {
	ctrl := catalog.NewControllerFromQuery(cfg.Lister, cfg.Query)

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "ArtDistrictUSA"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "/category Painting · /price 100 500 · /clear"
	ti.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	m := Model{ctrl: ctrl, timeout: timeout, list: l, input: ti, spinner: sp}
	gen, q := ctrl.Refresh()
	m.initCmd = tea.Batch(sp.Tick, m.fetchCmd(gen, q))
	return m
}

// fetchCmd runs one generation's fetch off the update loop.
func (m Model) fetchCmd(gen uint64, q api.ListQuery) tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		page, err := ctrl.Fetch(ctx, gen, q)
		return artworksMsg{gen: gen, page: page, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		m.input.Width = msg.Width - 4
		return m, nil

	case artworksMsg:
		if !m.ctrl.Resolve(msg.gen, msg.page, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = "Could not load artworks. Adjust filters or try again."
		} else {
			m.errMsg = ""
		}
		items := make([]list.Item, 0, len(m.ctrl.Results()))
		for _, a := range m.ctrl.Results() {
			items = append(items, artworkItem{art: a})
		}
		m.list.SetItems(items)
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.typing = true
			m.input.Focus()
			return m, textinput.Blink
		case "n", "right":
			if m.ctrl.CanNextPage() {
				return m.beginFetch(m.ctrl.SetPage(m.ctrl.Filters().Page + 1))
			}
			return m, nil
		case "p", "left":
			if m.ctrl.CanPrevPage() {
				return m.beginFetch(m.ctrl.SetPage(m.ctrl.Filters().Page - 1))
			}
			return m, nil
		case "c":
			return m.beginFetch(m.ctrl.SetCategory(nextCategory(m.ctrl.Filters().Category)))
		case "x":
			if !m.ctrl.Filters().IsDefault() {
				return m.beginFetch(m.ctrl.ClearFilters())
			}
			return m, nil
		case "r":
			return m.beginFetch(m.ctrl.Refresh())
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) beginFetch(gen uint64, q api.ListQuery) (tea.Model, tea.Cmd) {
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(gen, q))
}

// updateTyping handles keys while the command input is focused.
func (m Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.typing = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.typing = false
		m.input.Reset()
		m.input.Blur()
		return m.runCommand(line)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand applies a typed filter command.
func (m Model) runCommand(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		return m, nil
	}
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "/category":
		cat := catalog.AllCategories
		if len(parts) > 1 {
			cat = strings.Join(parts[1:], " ")
		}
		return m.beginFetch(m.ctrl.SetCategory(cat))
	case "/price":
		var min, max string
		if len(parts) > 1 {
			min = parts[1]
		}
		if len(parts) > 2 {
			max = parts[2]
		}
		return m.beginFetch(m.ctrl.SetPriceRange(min, max))
	case "/page":
		if len(parts) > 1 {
			var p int
			if _, err := fmt.Sscanf(parts[1], "%d", &p); err == nil {
				return m.beginFetch(m.ctrl.SetPage(p))
			}
		}
		m.errMsg = "Usage: /page <number>"
		return m, nil
	case "/clear":
		return m.beginFetch(m.ctrl.ClearFilters())
	default:
		m.errMsg = fmt.Sprintf("Unknown command %s", parts[0])
		return m, nil
	}
}

// nextCategory cycles through the category bar.
func nextCategory(current string) string {
	for i, c := range catalog.Categories {
		if c == current {
			return catalog.Categories[(i+1)%len(catalog.Categories)]
		}
	}
	return catalog.Categories[0]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.ctrl.Loading() {
		b.WriteString(m.spinner.View() + " Loading artworks...\n")
	} else if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	} else if m.ctrl.Empty() {
		b.WriteString(emptyStyle.Render("No artworks match these filters.\nPress x to clear filters and see everything.") + "\n")
	} else {
		b.WriteString(m.list.View() + "\n")
	}

	if m.typing {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString(statusStyle.Render(m.statusLine()))
	return b.String()
}

// statusLine shows the active filters and pagination.
func (m Model) statusLine() string {
	f := m.ctrl.Filters()
	pg := m.ctrl.Pagination()
	var parts []string
	parts = append(parts, "Category: "+f.Category)
	if f.MinPrice != "" || f.MaxPrice != "" {
		parts = append(parts, fmt.Sprintf("Price: %s-%s", f.MinPrice, f.MaxPrice))
	}
	if pg.TotalPages > 0 {
		parts = append(parts, fmt.Sprintf("Page %d/%d (%d works)", f.Page, pg.TotalPages, pg.Total))
	}
	parts = append(parts, "/ filter · c category · n/p page · x clear · q quit")
	return strings.Join(parts, " · ")
}
