package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/yearpick/pkg/commands/options"
	"tableflip.dev/yearpick/pkg/dates"
	"tableflip.dev/yearpick/pkg/printers"
	"tableflip.dev/yearpick/pkg/yearview"
)

// pageJSON is the --json shape for a rendered page.
type pageJSON struct {
	Start  int        `json:"start"`
	Active int        `json:"active"`
	Cells  []cellJSON `json:"cells"`
}

type cellJSON struct {
	Year       int    `json:"year"`
	Label      string `json:"label"`
	Enabled    bool   `json:"enabled"`
	RangeStart string `json:"rangeStart"`
	RangeEnd   string `json:"rangeEnd"`
}

func addShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	vo := &options.ViewOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print the 24-year page containing a date",
		Example: `
yearpick show
yearpick show --on=2047-03-01
yearpick show --min=2020-01-01 --max=2025-12-31 --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}

			locale := vo.Locale
			if locale == "" {
				locale = cfg.Locale
			}
			ad := dates.NewGregorian(locale)

			active := ad.Today()
			if do.OnString != "" {
				t, ok := ad.Parse(do.OnString)
				if !ok {
					return oo.HandleError(fmt.Errorf("invalid --on date: %q", do.OnString))
				}
				active = t
			}

			min, err := datePtr(ad, do.MinString, cfg.Min, "min")
			if err != nil {
				return oo.HandleError(err)
			}
			max, err := datePtr(ad, do.MaxString, cfg.Max, "max")
			if err != nil {
				return oo.HandleError(err)
			}

			active = ad.Clamp(active, min, max)
			page := yearview.ComputePage(ad, active, min, max, nil)

			if oo.JSON {
				return oo.PrintJSON(toPageJSON(page, ad.Year(active)))
			}

			pp := printers.PrettyPrint{ShowLegend: true}
			pp.Page(page, ad.Year(active), -1, ad.Year(ad.Today()))
			return nil
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddViewArgs(cmd, vo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func datePtr(ad dates.Adapter, flag, fallback, name string) (*time.Time, error) {
	v, err := boundValue(ad, flag, fallback, name)
	if err != nil || v == nil {
		return nil, err
	}
	t := v.(time.Time)
	return &t, nil
}

func toPageJSON(page yearview.Page, activeYear int) pageJSON {
	out := pageJSON{Start: page.Start, Active: activeYear, Cells: make([]cellJSON, 0, len(page.Cells))}
	for _, c := range page.Cells {
		out.Cells = append(out.Cells, cellJSON{
			Year:       c.Year,
			Label:      c.Label,
			Enabled:    c.Enabled,
			RangeStart: c.RangeStart.Format("2006-01-02"),
			RangeEnd:   c.RangeEnd.Format("2006-01-02"),
		})
	}
	return out
}
