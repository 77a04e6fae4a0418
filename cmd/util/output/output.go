package output

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type OutputFormat string

const (
	TableFormat OutputFormat = "table"
	CSVFormat   OutputFormat = "csv"
	JSONFormat  OutputFormat = "json"
	YAMLFormat  OutputFormat = "yaml"
)

var AllFormats = []OutputFormat{TableFormat, CSVFormat, JSONFormat, YAMLFormat}

var noStyle = table.Style{
	Name:   "StyleDefault",
	Box:    table.StyleBoxDefault,
	Color:  table.ColorOptionsDefault,
	Format: table.FormatOptionsDefault,
	HTML:   table.DefaultHTMLOptions,
	Options: table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  false,
		SeparateRows:    false,
	},
	Title: table.TitleOptionsDefault,
}

type OutputOptions struct {
	Format     OutputFormat // how to render the items
	Pretty     bool         // indent JSON output
	HideHeader bool         // hide the column headers
	NoStyle    bool         // remove all styling from table output
}

type TableColumn[T any] struct {
	table.ColumnConfig
	Value func(T) string
}

// Output writes the items in the selected format.
func Output[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, items []T) error {
	switch options.Format {
	case TableFormat, CSVFormat:
		outputTable(cmd, columns, options, items)
		return nil
	case JSONFormat, "":
		return outputJSON(cmd, options, items)
	case YAMLFormat:
		return outputYAML(cmd, items)
	default:
		return fmt.Errorf("unsupported output format %q", options.Format)
	}
}

// OutputOne writes a single item in the selected non-tabular format.
func OutputOne(cmd *cobra.Command, options OutputOptions, item any) error {
	switch options.Format {
	case YAMLFormat:
		return outputYAML(cmd, item)
	default:
		return outputJSON(cmd, options, item)
	}
}

func outputTable[T any](cmd *cobra.Command, columns []TableColumn[T], options OutputOptions, items []T) {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	if !options.HideHeader {
		tw.AppendHeader(lo.Map(columns, func(c TableColumn[T], _ int) any {
			return c.Name
		}))
	}
	tw.SetColumnConfigs(lo.Map(columns, func(c TableColumn[T], _ int) table.ColumnConfig {
		return c.ColumnConfig
	}))
	for _, item := range items {
		tw.AppendRow(lo.Map(columns, func(c TableColumn[T], _ int) any {
			return c.Value(item)
		}))
	}
	if options.NoStyle {
		tw.SetStyle(noStyle)
	}
	if options.Format == CSVFormat {
		tw.RenderCSV()
	} else {
		tw.Render()
	}
}

func outputJSON(cmd *cobra.Command, options OutputOptions, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	if options.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

func outputYAML(cmd *cobra.Command, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
