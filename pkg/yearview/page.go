package yearview

import (
	"time"

	"tableflip.dev/yearpick/pkg/dates"
)

const (
	// YearsPerPage is the fixed page size. Pages are aligned to multiples
	// of this span anchored at year 0, not centered on the active year.
	YearsPerPage = 24

	// YearsPerRow is the grid width, giving six rows per page.
	YearsPerRow = 4
)

// DateFilter decides whether an individual date may be selected. A year is
// enabled when at least one of its days passes.
type DateFilter func(time.Time) bool

// Page is the computed grid for one 24-year window.
type Page struct {
	// Start is the first year on the page.
	Start int

	// Cells holds exactly YearsPerPage cells in strictly ascending year
	// order.
	Cells []Cell
}

// PageStart returns the first year of the page containing year. Go's %
// truncates toward zero, so for negative years the offset is negative and
// the result can lie outside the page; that quirk is intentional and pinned
// by tests.
func PageStart(year int) int {
	return year - year%YearsPerPage
}

// SamePage reports whether two years fall on the same page.
func SamePage(a, b int) bool {
	return PageStart(a) == PageStart(b)
}

// ComputePage builds the page containing active. It is a pure function of
// its inputs; the caller schedules any view refresh.
func ComputePage(ad dates.Adapter, active time.Time, min, max *time.Time, filter DateFilter) Page {
	activeYear := ad.Year(active)
	start := PageStart(activeYear)

	page := Page{Start: start, Cells: make([]Cell, 0, YearsPerPage)}
	for i := 0; i < YearsPerPage; i++ {
		year := start + i
		jan1 := ad.Date(year, time.January, 1)
		label := ad.YearName(jan1)
		page.Cells = append(page.Cells, Cell{
			Year:       year,
			Label:      label,
			LongLabel:  label,
			Enabled:    yearEnabled(ad, year, min, max, filter),
			RangeStart: jan1,
			RangeEnd:   ad.Date(year, time.December, 31),
		})
	}
	return page
}

// Rows partitions the cells into rows of YearsPerRow, row-major in
// generation order.
func (p Page) Rows() [][]Cell {
	rows := make([][]Cell, 0, YearsPerPage/YearsPerRow)
	for i := 0; i < len(p.Cells); i += YearsPerRow {
		end := i + YearsPerRow
		if end > len(p.Cells) {
			end = len(p.Cells)
		}
		rows = append(rows, p.Cells[i:end])
	}
	return rows
}

// Contains reports whether year falls on this page.
func (p Page) Contains(year int) bool {
	return year >= p.Start && year < p.Start+YearsPerPage
}

// Index returns the cell index for year, or -1 when off-page.
func (p Page) Index(year int) int {
	if !p.Contains(year) {
		return -1
	}
	return year - p.Start
}

// Cell returns the cell for year, if it is on this page.
func (p Page) Cell(year int) (Cell, bool) {
	idx := p.Index(year)
	if idx < 0 || idx >= len(p.Cells) {
		return Cell{}, false
	}
	return p.Cells[idx], true
}

// yearEnabled applies the bound checks and, if configured, the per-date
// filter. The filter scan walks the year day by day from January 1 and
// short-circuits on the first hit; results are not cached, so the worst
// case is one full year of predicate calls per check.
func yearEnabled(ad dates.Adapter, year int, min, max *time.Time, filter DateFilter) bool {
	if max != nil && year > ad.Year(*max) {
		return false
	}
	if min != nil && year < ad.Year(*min) {
		return false
	}
	if filter == nil {
		return true
	}
	for d := ad.Date(year, time.January, 1); ad.Year(d) == year; d = ad.AddDays(d, 1) {
		if filter(d) {
			return true
		}
	}
	return false
}
