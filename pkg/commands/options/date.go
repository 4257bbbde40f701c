package options

import (
	"github.com/spf13/cobra"
)

// DateOptions carries the raw date flags. Parsing happens through the
// calendar adapter so the CLI and the picker accept the same formats.
type DateOptions struct {
	OnString  string
	MinString string
	MaxString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Anchor date for the page, example: --on="2028-06-01" or --on="2028". Defaults to today.`)
	cmd.Flags().StringVar(&o.MinString, "min", "",
		"Earliest selectable date.")
	cmd.Flags().StringVar(&o.MaxString, "max", "",
		"Latest selectable date.")
}
