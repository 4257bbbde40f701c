package yearview

import (
	"testing"
	"time"

	"tableflip.dev/yearpick/pkg/dates"
)

func testAdapter() *dates.Gregorian {
	return dates.NewGregorian("en").WithNow(func() time.Time {
		return time.Date(2023, time.August, 15, 12, 30, 0, 0, time.Local)
	})
}

func TestComputePageSizeAndOrder(t *testing.T) {
	ad := testAdapter()
	active := ad.Date(2023, time.August, 15)

	page := ComputePage(ad, active, nil, nil, nil)
	if len(page.Cells) != YearsPerPage {
		t.Fatalf("expected %d cells, got %d", YearsPerPage, len(page.Cells))
	}
	if page.Start != 2016 {
		t.Fatalf("expected page start 2016, got %d", page.Start)
	}
	for i, cell := range page.Cells {
		if cell.Year != 2016+i {
			t.Fatalf("cell %d: expected year %d, got %d", i, 2016+i, cell.Year)
		}
	}

	rows := page.Rows()
	if len(rows) != YearsPerPage/YearsPerRow {
		t.Fatalf("expected %d rows, got %d", YearsPerPage/YearsPerRow, len(rows))
	}
	for i, row := range rows {
		if len(row) != YearsPerRow {
			t.Fatalf("row %d: expected %d cells, got %d", i, YearsPerRow, len(row))
		}
	}

	// 2023 sits at row 1, column 3 (0-indexed).
	if rows[1][3].Year != 2023 {
		t.Fatalf("expected 2023 at row 1 col 3, got %d", rows[1][3].Year)
	}
}

func TestCellRanges(t *testing.T) {
	ad := testAdapter()
	page := ComputePage(ad, ad.Date(2023, time.August, 15), nil, nil, nil)

	cell, ok := page.Cell(2020)
	if !ok {
		t.Fatalf("expected 2020 on page")
	}
	if !cell.RangeStart.Equal(ad.Date(2020, time.January, 1)) {
		t.Fatalf("expected range start Jan 1 2020, got %v", cell.RangeStart)
	}
	if !cell.RangeEnd.Equal(ad.Date(2020, time.December, 31)) {
		t.Fatalf("expected range end Dec 31 2020, got %v", cell.RangeEnd)
	}
	if cell.Label != "2020" || cell.LongLabel != "2020" {
		t.Fatalf("unexpected labels %q / %q", cell.Label, cell.LongLabel)
	}
}

func TestSamePageAlignment(t *testing.T) {
	for year := 2016; year < 2040; year++ {
		if !SamePage(2023, year) {
			t.Fatalf("expected %d on the same page as 2023", year)
		}
	}
	if SamePage(2023, 2015) {
		t.Fatalf("2015 must not share a page with 2023")
	}
	if SamePage(2023, 2040) {
		t.Fatalf("2040 must not share a page with 2023")
	}
}

func TestEnablementBounds(t *testing.T) {
	ad := testAdapter()
	min := ad.Date(2020, time.March, 5)
	max := ad.Date(2025, time.October, 9)

	page := ComputePage(ad, ad.Date(2023, time.August, 15), &min, &max, nil)
	for _, cell := range page.Cells {
		want := cell.Year >= 2020 && cell.Year <= 2025
		if cell.Enabled != want {
			t.Fatalf("year %d: expected enabled=%v, got %v", cell.Year, want, cell.Enabled)
		}
	}
}

func TestFilterSingleDateEnablesOneYear(t *testing.T) {
	ad := testAdapter()
	target := ad.Date(2021, time.June, 15)
	filter := func(d time.Time) bool { return d.Equal(target) }

	page := ComputePage(ad, ad.Date(2023, time.August, 15), nil, nil, filter)
	for _, cell := range page.Cells {
		want := cell.Year == 2021
		if cell.Enabled != want {
			t.Fatalf("year %d: expected enabled=%v, got %v", cell.Year, want, cell.Enabled)
		}
	}
}

func TestFilterScanShortCircuits(t *testing.T) {
	ad := testAdapter()
	calls := 0
	filter := func(d time.Time) bool {
		calls++
		return d.Month() == time.January && d.Day() == 1
	}

	ComputePage(ad, ad.Date(2023, time.August, 15), nil, nil, filter)
	if calls != YearsPerPage {
		t.Fatalf("expected one predicate call per year, got %d", calls)
	}
}

func TestFilterDoesNotRunOutsideBounds(t *testing.T) {
	ad := testAdapter()
	min := ad.Date(2020, time.January, 1)
	max := ad.Date(2025, time.December, 31)
	years := map[int]bool{}
	filter := func(d time.Time) bool {
		years[d.Year()] = true
		return true
	}

	ComputePage(ad, ad.Date(2023, time.August, 15), &min, &max, filter)
	for year := range years {
		if year < 2020 || year > 2025 {
			t.Fatalf("filter ran for out-of-bounds year %d", year)
		}
	}
}

// Negative active years keep truncated-modulo semantics: the offset follows
// the dividend's sign, so the computed window can exclude the active year.
// That mirrors the paging arithmetic exactly rather than fixing it.
func TestPageStartNegativeYearQuirk(t *testing.T) {
	if got := PageStart(-3); got != 0 {
		t.Fatalf("expected PageStart(-3) == 0 under truncated modulo, got %d", got)
	}
	ad := testAdapter()
	page := ComputePage(ad, ad.Date(-3, time.June, 1), nil, nil, nil)
	if page.Contains(-3) {
		t.Fatalf("expected year -3 to fall outside its computed page")
	}
	if page.Start != 0 {
		t.Fatalf("expected page start 0, got %d", page.Start)
	}
}

func TestPageIndexAndContains(t *testing.T) {
	ad := testAdapter()
	page := ComputePage(ad, ad.Date(2047, time.January, 1), nil, nil, nil)
	if page.Start != 2040 {
		t.Fatalf("expected page start 2040, got %d", page.Start)
	}
	if idx := page.Index(2047); idx != 7 {
		t.Fatalf("expected index 7 for 2047, got %d", idx)
	}
	if idx := page.Index(2039); idx != -1 {
		t.Fatalf("expected -1 for off-page year, got %d", idx)
	}
}
