package providers

import (
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
)

func NewCmd() *cobra.Command {
	var providerType string
	providersCmd := &cobra.Command{
		Use:   "providers",
		Short: "List the server's plugins of a given type.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			names, err := c.GetProviders(cmd.Context(), providerType)
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
	providersCmd.Flags().StringVar(&providerType, "type", "query", "plugin type: query, index or storage")
	return providersCmd
}
