package yearview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// cellWidth is the rendered width of one year cell.
const cellWidth = 6

// Styles controls grid rendering.
type Styles struct {
	Title     lipgloss.Style
	Cell      lipgloss.Style
	Disabled  lipgloss.Style
	Today     lipgloss.Style
	Selected  lipgloss.Style
	Active    lipgloss.Style
	ShowTitle bool
}

// DefaultStyles returns the styling used for the year grid.
func DefaultStyles() Styles {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	disabled := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	active := lipgloss.NewStyle().Reverse(true)
	return Styles{
		Title:     title,
		Cell:      cell,
		Disabled:  disabled,
		Today:     today,
		Selected:  selected,
		Active:    active,
		ShowTitle: true,
	}
}

// View renders the current page as a 6x4 grid.
func (m *Model) View() string {
	if len(m.page.Cells) == 0 {
		return ""
	}

	activeYear := m.adapter.Year(m.active)
	selectedYear, hasSelected := 0, false
	if m.selectedYear != nil {
		selectedYear, hasSelected = *m.selectedYear, true
	}

	var lines []string
	if m.styles.ShowTitle {
		first := m.page.Cells[0].Label
		last := m.page.Cells[len(m.page.Cells)-1].Label
		lines = append(lines, m.styles.Title.Render(fmt.Sprintf("%s to %s", first, last)))
	}

	for _, row := range m.page.Rows() {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, m.renderCell(cell, activeYear, selectedYear, hasSelected))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(cell Cell, activeYear, selectedYear int, hasSelected bool) string {
	text := fmt.Sprintf("%*s", cellWidth, cell.Label)

	style := m.styles.Cell
	if !cell.Enabled {
		style = m.styles.Disabled
	}
	if cell.Year == m.todayYear {
		style = style.Inherit(m.styles.Today)
	}
	if hasSelected && cell.Year == selectedYear {
		style = style.Inherit(m.styles.Selected)
	}
	if cell.Year == activeYear {
		style = style.Inherit(m.styles.Active)
	}
	return style.Render(text)
}
