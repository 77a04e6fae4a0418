package output

import "github.com/spf13/cobra"

// AddFlags registers the common output flags on a command.
func AddFlags(cmd *cobra.Command, o *OutputOptions, defaultFormat OutputFormat) {
	o.Format = defaultFormat
	cmd.Flags().StringVar((*string)(&o.Format), "output", string(defaultFormat),
		"output format: table, csv, json or yaml")
	cmd.Flags().BoolVar(&o.Pretty, "pretty", false, "pretty-print json output")
	cmd.Flags().BoolVar(&o.HideHeader, "hide-header", false, "do not print the table header")
	cmd.Flags().BoolVar(&o.NoStyle, "no-style", false, "plain table output")
}
