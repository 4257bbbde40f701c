// Package yearview implements a keyboard-driven picker over a fixed 24-year
// grid: an active date anchors the visible page, arrow and paging keys move
// it, and committing a year carries the active date's month and day forward.
package yearview

import (
	"fmt"
	"time"
)

// Cell describes one selectable year in a page. It is immutable once built.
type Cell struct {
	// Year is the underlying year number.
	Year int

	// Label is the locale display text; LongLabel is the long-form variant
	// used where more room exists (status bars, filtering). They are
	// typically identical.
	Label     string
	LongLabel string

	// Enabled reports whether the year may be committed, after bound and
	// filter checks.
	Enabled bool

	// RangeStart and RangeEnd are January 1 and December 31 of the year,
	// for consumers with range semantics.
	RangeStart time.Time
	RangeEnd   time.Time
}

// CellItem adapts a Cell to the bubbles list item contract so generic list
// renderers can consume a page.
type CellItem struct {
	Cell Cell
}

// Title renders the cell label.
func (ci CellItem) Title() string { return ci.Cell.Label }

// Description renders the cell's date range.
func (ci CellItem) Description() string {
	return fmt.Sprintf("%s to %s",
		ci.Cell.RangeStart.Format("2006-01-02"),
		ci.Cell.RangeEnd.Format("2006-01-02"))
}

// FilterValue exposes the long label for filtering.
func (ci CellItem) FilterValue() string { return ci.Cell.LongLabel }
