package version

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/version"
)

func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version and, when reachable, the server version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("Client %s\n", version.Get().GitVersion)

			c, err := util.GetAPIClient(cmd)
			if err != nil {
				// no server configured is fine for the client half
				log.Debug().Err(err).Msg("skipping server version")
				return nil
			}
			resp, err := c.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Server %s\n", resp.Version)
			return nil
		},
	}
}
