package index

import (
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
)

func NewIndexCmd() *cobra.Command {
	var provider string
	indexCmd := &cobra.Command{
		Use:   "index [uri]...",
		Short: "Start an indexing task over the given item URIs.",
		Long: "Start an indexing task over the given item URIs. The command returns once " +
			"the task is accepted; watch its progress with 'dicoogle tasks list'.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Index(cmd.Context(), args, provider)
		},
	}
	indexCmd.Flags().StringVar(&provider, "provider", "", "index provider to target")
	return indexCmd
}

func NewUnindexCmd() *cobra.Command {
	var provider string
	unindexCmd := &cobra.Command{
		Use:   "unindex [uri]...",
		Short: "Remove the given items from the index, leaving their files in place.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Unindex(cmd.Context(), args, provider)
		},
	}
	unindexCmd.Flags().StringVar(&provider, "provider", "", "index provider to target")
	return unindexCmd
}

func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [uri]...",
		Short: "Delete the files behind the given items.",
		Long: "Delete the files behind the given items. Indices are NOT updated: unindex " +
			"the items separately if you want the index to stay consistent.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Remove(cmd.Context(), args)
		},
	}
}
