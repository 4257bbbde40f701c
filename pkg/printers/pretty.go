// Package printers renders computed year pages for non-interactive output.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/yearpick/pkg/yearview"
)

type PrettyPrint struct {
	// ShowLegend appends a line explaining the cell markers.
	ShowLegend bool
}

// Page prints the year grid with the active, selected, and today's years
// marked. Pass selectedYear < 0 when nothing is selected.
func (pp *PrettyPrint) Page(page yearview.Page, activeYear, selectedYear, todayYear int) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintf(color.Output, "%d to %d\n", page.Start, page.Start+yearview.YearsPerPage-1)

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, row := range page.Rows() {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, pp.renderCell(cell, activeYear, selectedYear, todayYear))
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	if pp.ShowLegend {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, "[active]  *today  +selected  (disabled)")
	}
}

func (pp *PrettyPrint) renderCell(cell yearview.Cell, activeYear, selectedYear, todayYear int) string {
	text := cell.Label
	if cell.Year == todayYear {
		text = "*" + text
	}
	if cell.Year == selectedYear {
		text = "+" + text
	}

	switch {
	case cell.Year == activeYear:
		return color.New(color.Bold, color.FgHiWhite).Sprintf("[%s]", text)
	case !cell.Enabled:
		return color.New(color.Faint).Sprintf("(%s)", text)
	default:
		return color.New(color.FgWhite).Sprint(text)
	}
}
