package dump

import (
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util/output"
)

// DumpOptions is a struct to support the dump command
type DumpOptions struct {
	Providers  []string
	OutputOpts output.OutputOptions
}

func NewCmd() *cobra.Command {
	o := &DumpOptions{}
	dumpCmd := &cobra.Command{
		Use:   "dump [uid]",
		Short: "Fetch every attribute of one item by SOP instance UID.",
		Args:  cobra.ExactArgs(1),
		RunE:  o.run,
	}
	dumpCmd.Flags().StringSliceVar(&o.Providers, "provider", nil, "query providers to ask")
	output.AddFlags(dumpCmd, &o.OutputOpts, output.JSONFormat)
	return dumpCmd
}

func (o *DumpOptions) run(cmd *cobra.Command, args []string) error {
	c, err := util.GetAPIClient(cmd)
	if err != nil {
		return err
	}
	resp, err := c.Dump(cmd.Context(), args[0], o.Providers...)
	if err != nil {
		return err
	}
	return output.OutputOne(cmd, o.OutputOpts, resp.Results)
}
