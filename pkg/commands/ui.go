package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/yearpick/pkg/commands/options"
	"tableflip.dev/yearpick/pkg/dates"
	"tableflip.dev/yearpick/pkg/tui/pickerapp"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive year picker",
		Example: `
yearpick ui
yearpick ui --min=2000-01-01 --max=2040-12-31
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			locale := vo.Locale
			if locale == "" {
				locale = cfg.Locale
			}
			ad := dates.NewGregorian(locale)

			min, err := boundValue(ad, do.MinString, cfg.Min, "min")
			if err != nil {
				return err
			}
			max, err := boundValue(ad, do.MaxString, cfg.Max, "max")
			if err != nil {
				return err
			}

			return pickerapp.Run(pickerapp.Options{
				Adapter: ad,
				MinDate: min,
				MaxDate: max,
				RTL:     vo.RTL || cfg.RTL,
			})
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddViewArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}

// boundValue resolves a bound from its flag, falling back to the config
// default. Bounds typed at the CLI must parse; a bad value is reported, not
// silently dropped.
func boundValue(ad dates.Adapter, flag, fallback, name string) (any, error) {
	raw := flag
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		return nil, nil
	}
	t, ok := ad.Parse(raw)
	if !ok {
		return nil, fmt.Errorf("invalid --%s date: %q", name, raw)
	}
	return t, nil
}
