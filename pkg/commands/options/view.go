package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions carries presentation flags shared by the ui and show commands.
type ViewOptions struct {
	RTL    bool
	Locale string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.RTL, "rtl", false,
		"Flip horizontal navigation for right-to-left locales.")
	cmd.Flags().StringVar(&o.Locale, "locale", "",
		`Locale for year display names, example: --locale="de".`)
}
