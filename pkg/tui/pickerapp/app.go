// Package pickerapp hosts the year picker component in a standalone Bubble
// Tea program: it routes keys, applies committed selections to the shared
// selection model, and surfaces picker events in a status line.
package pickerapp

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/yearpick/pkg/dates"
	"tableflip.dev/yearpick/pkg/events"
	"tableflip.dev/yearpick/pkg/selection"
	"tableflip.dev/yearpick/pkg/yearview"
)

// Options configures the hosted picker.
type Options struct {
	Adapter dates.Adapter
	MinDate any
	MaxDate any
	RTL     bool
}

// Model composes the picker with a jump-to-date entry and a status bar.
type Model struct {
	picker *yearview.Model
	sel    *selection.Single

	input    textinput.Model
	entering bool

	status string

	width  int
	height int
}

// New constructs the host model. The adapter is required; construction fails
// without it.
func New(opts Options) (*Model, error) {
	sel := selection.NewSingle()
	picker, err := yearview.New(yearview.Options{
		ID:        events.ComponentID("yearpick"),
		Adapter:   opts.Adapter,
		Selection: sel,
		MinDate:   opts.MinDate,
		MaxDate:   opts.MaxDate,
		RTL:       opts.RTL,
	})
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "2028 or 2028-06-01"

	return &Model{
		picker: picker,
		sel:    sel,
		input:  ti,
		status: "arrows move, pgup/pgdn page, enter selects, / jumps, q quits",
	}, nil
}

// Run launches the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.picker.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes messages between the entry field and the picker.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.entering {
			return m.updateEntry(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.picker.Close()
			return m, tea.Quit
		case "/":
			m.entering = true
			m.input.SetValue("")
			return m, tea.Batch(m.input.Focus(), textinput.Blink)
		}
		cmd, consumed := m.picker.HandleKey(msg.String())
		if !consumed {
			return m, nil
		}
		return m, cmd

	case events.SelectionMsg:
		// The picker only emits; writing the selection back is the host's
		// job so sibling views share one source of truth.
		m.sel.Add(msg.Date)

	case events.FocusCellMsg:
		// The grid highlights the active cell itself; keep the status on
		// the last navigation or commit event.
		return m, nil
	}
	if s := describeMsg(msg); s != "" {
		m.status = s
	}
	return m, nil
}

func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	return ""
}

func (m *Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.entering = false
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		m.picker.SetActiveDate(value)
		m.status = "jumped to " + m.picker.ActiveDate().Format("2006-01-02")
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the picker with the status or entry line below it.
func (m *Model) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("yearpick")

	bottom := lipgloss.NewStyle().Faint(true).Render(m.status)
	if m.entering {
		bottom = "jump to: " + m.input.View()
	}

	return strings.Join([]string{title, "", m.picker.View(), "", bottom}, "\n")
}
