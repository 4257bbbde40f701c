package yearview

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/yearpick/pkg/dates"
	"tableflip.dev/yearpick/pkg/events"
	"tableflip.dev/yearpick/pkg/selection"
)

// ErrNoAdapter is returned by New when no calendar adapter is supplied.
// Every other irregular input is absorbed by fallback or clamping; a missing
// adapter is the one configuration error construction cannot survive.
var ErrNoAdapter = errors.New("yearview: calendar adapter is required")

// Options configures a Model.
type Options struct {
	ID      events.ComponentID
	Adapter dates.Adapter

	// Selection is the model shared with sibling views. Optional; without
	// it no year is highlighted as selected.
	Selection selection.Model

	// MinDate and MaxDate bound the navigable range. Any date-like value
	// accepted by the adapter works; invalid values mean "unbounded".
	MinDate any
	MaxDate any

	// DateFilter optionally restricts selectable dates.
	DateFilter DateFilter

	// RTL flips horizontal navigation for right-to-left locales.
	RTL bool

	// Styles overrides the default rendering styles.
	Styles *Styles
}

// Model owns the active date and turns keyboard input into page navigation.
// All methods must be called from the hosting program's update loop; the
// model holds no locks of its own.
type Model struct {
	id        events.ComponentID
	adapter   dates.Adapter
	selection selection.Model
	styles    Styles
	rtl       bool

	active time.Time
	min    *time.Time
	max    *time.Time
	filter DateFilter

	page         Page
	selectedYear *int
	todayYear    int

	unsubscribe func()

	width  int
	height int
}

// New constructs a model with the active date on today, clamped into the
// configured bounds. It subscribes to the selection model; callers must
// Close the model to release the subscription.
func New(opts Options) (*Model, error) {
	if opts.Adapter == nil {
		return nil, ErrNoAdapter
	}

	m := &Model{
		id:        opts.ID,
		adapter:   opts.Adapter,
		selection: opts.Selection,
		rtl:       opts.RTL,
		filter:    opts.DateFilter,
		styles:    DefaultStyles(),
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	}
	m.min = m.validOrNil(opts.MinDate)
	m.max = m.validOrNil(opts.MaxDate)
	m.active = m.adapter.Clamp(m.adapter.Today(), m.min, m.max)
	m.initPage()

	if m.selection != nil {
		m.unsubscribe = m.selection.Subscribe(m.refreshSelectedYear)
	}
	return m, nil
}

// Close releases the selection subscription. Safe to call more than once.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// ID returns the component identity used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles keyboard input and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		cmd, _ = m.HandleKey(msg.String())
	}
	return m, cmd
}

// HandleKey interprets one key. The second return reports whether the key
// was consumed; hosts should let unconsumed keys fall through to their own
// handling.
func (m *Model) HandleKey(key string) (tea.Cmd, bool) {
	c := lookupKey(key, m.rtl)
	switch c {
	case cmdNone:
		return nil, false
	case cmdCommit:
		return m.commitYear(m.adapter.Year(m.active)), true
	}

	oldYear := m.adapter.Year(m.active)
	delta := yearDelta(c, oldYear)
	m.setActive(m.adapter.AddYears(m.active, delta))

	var cmds []tea.Cmd
	if m.adapter.Year(m.active) != oldYear {
		cmds = append(cmds, events.ActiveDateCmd(m.id, m.active))
	}
	cmds = append(cmds, events.FocusCellCmd(m.id, m.adapter.Year(m.active)))
	return tea.Batch(cmds...), true
}

// SetActiveDate assigns the active date from any date-like value. Invalid
// values fall back to today; the result is clamped into the bounds. Crossing
// a page boundary regenerates the page. Property assignment emits no events.
func (m *Model) SetActiveDate(value any) {
	t, ok := m.adapter.Parse(value)
	if !ok {
		t = m.adapter.Today()
	}
	m.setActive(t)
}

// SetMinDate assigns the lower bound; invalid values clear it. The active
// date re-clamps and the page regenerates with fresh enablement.
func (m *Model) SetMinDate(value any) {
	m.min = m.validOrNil(value)
	m.active = m.adapter.Clamp(m.active, m.min, m.max)
	m.initPage()
}

// SetMaxDate assigns the upper bound; invalid values clear it.
func (m *Model) SetMaxDate(value any) {
	m.max = m.validOrNil(value)
	m.active = m.adapter.Clamp(m.active, m.min, m.max)
	m.initPage()
}

// SetDateFilter swaps the per-date predicate and regenerates the page.
func (m *Model) SetDateFilter(filter DateFilter) {
	m.filter = filter
	m.initPage()
}

// SetRTL flips horizontal navigation direction.
func (m *Model) SetRTL(rtl bool) {
	m.rtl = rtl
}

// SetSelected writes a selection through the shared model. Invalid values
// clear the selection.
func (m *Model) SetSelected(value any) {
	if m.selection == nil {
		return
	}
	if t, ok := m.adapter.Parse(value); ok {
		m.selection.Add(t)
		return
	}
	m.selection.Clear()
}

// SetSize records the host-assigned size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ActiveDate returns the current active date.
func (m *Model) ActiveDate() time.Time { return m.active }

// Page returns the current computed page.
func (m *Model) Page() Page { return m.page }

// SelectedYear returns the highlighted year, if any date is selected.
func (m *Model) SelectedYear() (int, bool) {
	if m.selectedYear == nil {
		return 0, false
	}
	return *m.selectedYear, true
}

// TodayYear returns the year of "today" as of the last page init.
func (m *Model) TodayYear() int { return m.todayYear }

// Items exposes the page cells through the list item contract.
func (m *Model) Items() []list.Item {
	items := make([]list.Item, 0, len(m.page.Cells))
	for _, cell := range m.page.Cells {
		items = append(items, CellItem{Cell: cell})
	}
	return items
}

// setActive clamps and stores a new active date, regenerating the page when
// the 24-year window changed.
func (m *Model) setActive(t time.Time) {
	if !m.adapter.Valid(t) {
		t = m.adapter.Today()
	}
	t = m.adapter.Clamp(t, m.min, m.max)

	prevStart := m.page.Start
	hadPage := len(m.page.Cells) > 0
	m.active = t
	if !hadPage || PageStart(m.adapter.Year(t)) != prevStart {
		m.initPage()
	}
}

// initPage recomputes the page wholesale along with the derived today and
// selected years. No incremental patching: rebuilding all 24 cells keeps
// the invariants trivial.
func (m *Model) initPage() {
	m.page = ComputePage(m.adapter, m.active, m.min, m.max, m.filter)
	m.todayYear = m.adapter.Year(m.adapter.Today())
	m.refreshSelectedYear()
}

// refreshSelectedYear re-derives the highlighted year from the selection
// model's first date. Runs on page init and on selection change
// notifications.
func (m *Model) refreshSelectedYear() {
	if m.selection == nil {
		m.selectedYear = nil
		return
	}
	d, ok := m.selection.First()
	if !ok {
		m.selectedYear = nil
		return
	}
	year := m.adapter.Year(d)
	m.selectedYear = &year
}

// commitYear finalizes the given year without moving the active date. The
// year activation carries January 1; the full-date selection carries the
// active date's month and day, with the day clamped to the target month's
// length.
func (m *Model) commitYear(year int) tea.Cmd {
	activated := m.adapter.Date(year, time.January, 1)

	month := m.adapter.Month(m.active)
	day := m.adapter.Day(m.active)
	if max := m.adapter.DaysInMonth(m.adapter.Date(year, month, 1)); day > max {
		day = max
	}
	selected := m.adapter.Date(year, month, day)

	return tea.Batch(
		events.YearActivatedCmd(m.id, activated),
		events.SelectionCmd(m.id, selected),
	)
}

// validOrNil deserializes an optional bound. Values the adapter rejects
// become nil rather than errors.
func (m *Model) validOrNil(value any) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := m.adapter.Parse(value)
	if !ok {
		return nil
	}
	return &t
}
