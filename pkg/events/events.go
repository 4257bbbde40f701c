// Package events defines the typed messages picker components emit toward
// their host, plus tea.Cmd constructors for emitting them from Update.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ActiveDateMsg is emitted when keyboard navigation moves the active date to
// a different year. It signals navigation only; nothing was selected.
type ActiveDateMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe renders the event in a human-friendly format for logs.
func (m ActiveDateMsg) Describe() string {
	return fmt.Sprintf("active:%q", m.Date.Format("2006-01-02"))
}

// YearActivatedMsg is emitted when the user commits a year. The date carries
// January 1 of the chosen year; it asserts a year choice, not a full date.
type YearActivatedMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe renders the event for logs.
func (m YearActivatedMsg) Describe() string {
	return fmt.Sprintf("year:%d", m.Date.Year())
}

// SelectionMsg carries a full-date commit: the chosen year with the active
// date's month and day carried over (day clamped to the target month).
type SelectionMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe renders the event for logs.
func (m SelectionMsg) Describe() string {
	return fmt.Sprintf("selected:%q", m.Date.Format("2006-01-02"))
}

// FocusCellMsg asks the host to move focus to the cell for a year once the
// triggering update has rendered.
type FocusCellMsg struct {
	Component ComponentID
	Year      int
}

// Describe renders the event for logs.
func (m FocusCellMsg) Describe() string {
	return fmt.Sprintf("focus:%d", m.Year)
}

// ActiveDateCmd wraps ActiveDateMsg into a tea.Cmd.
func ActiveDateCmd(component ComponentID, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return ActiveDateMsg{Component: component, Date: date}
	}
}

// YearActivatedCmd wraps YearActivatedMsg into a tea.Cmd.
func YearActivatedCmd(component ComponentID, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return YearActivatedMsg{Component: component, Date: date}
	}
}

// SelectionCmd wraps SelectionMsg into a tea.Cmd.
func SelectionCmd(component ComponentID, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{Component: component, Date: date}
	}
}

// FocusCellCmd wraps FocusCellMsg into a tea.Cmd. Commands returned from
// Update run after the update is applied, which gives the "after render
// settles" ordering focus requests need.
func FocusCellCmd(component ComponentID, year int) tea.Cmd {
	return func() tea.Msg {
		return FocusCellMsg{Component: component, Year: year}
	}
}
