package search

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util/output"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/client"
)

// SearchOptions is a struct to support the search command
type SearchOptions struct {
	Providers  []string
	Fields     []string
	Keyword    bool
	FreeText   bool
	PSize      int
	Offset     int
	OutputOpts output.OutputOptions
}

func NewCmd() *cobra.Command {
	o := &SearchOptions{}
	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Query the archive's search providers.",
		Args:  cobra.ExactArgs(1),
		RunE:  o.run,
	}
	searchCmd.Flags().StringSliceVar(&o.Providers, "provider", nil, "query providers to use")
	searchCmd.Flags().StringSliceVar(&o.Fields, "field", nil, "result attributes to return")
	searchCmd.Flags().BoolVar(&o.Keyword, "keyword", false, "force keyword (field:value) query syntax")
	searchCmd.Flags().BoolVar(&o.FreeText, "free-text", false, "force free text query syntax")
	searchCmd.Flags().IntVar(&o.PSize, "psize", 0, "page size")
	searchCmd.Flags().IntVar(&o.Offset, "offset", 0, "page offset")
	output.AddFlags(searchCmd, &o.OutputOpts, output.TableFormat)
	return searchCmd
}

var searchColumns = []output.TableColumn[apimodels.SearchResult]{
	{
		ColumnConfig: table.ColumnConfig{Name: "URI", WidthMax: 80},
		Value:        func(r apimodels.SearchResult) string { return r.URI },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Modality"},
		Value:        func(r apimodels.SearchResult) string { return fieldString(r, "Modality") },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "PatientID"},
		Value:        func(r apimodels.SearchResult) string { return fieldString(r, "PatientID") },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "StudyDate"},
		Value:        func(r apimodels.SearchResult) string { return fieldString(r, "StudyDate") },
	},
}

func fieldString(r apimodels.SearchResult, name string) string {
	if v, ok := r.Fields[name]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

func (o *SearchOptions) run(cmd *cobra.Command, args []string) error {
	c, err := util.GetAPIClient(cmd)
	if err != nil {
		return err
	}

	opts := client.SearchOptions{
		Providers: o.Providers,
		Fields:    o.Fields,
		PSize:     o.PSize,
		Offset:    o.Offset,
	}
	// leave Keyword nil unless one of the forcing flags was used
	if o.Keyword {
		t := true
		opts.Keyword = &t
	} else if o.FreeText {
		f := false
		opts.Keyword = &f
	}

	resp, err := c.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}
	if err := output.Output(cmd, searchColumns, o.OutputOpts, resp.Results); err != nil {
		return err
	}
	cmd.Printf("%d results in %d ms\n", len(resp.Results), resp.ElapsedTimeMs)
	return nil
}
