package cli

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/auth"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/dump"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/index"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/providers"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/search"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/tasks"
	version2 "github.com/bioinformatics-ua/dicoogle-client-go/cmd/cli/version"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/logger"
)

// NewRootCmd builds the dicoogle CLI. Connection settings come from flags,
// DICOOGLE_* environment variables or a .env file, in that order of
// precedence.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dicoogle",
		Short: "Interact with a Dicoogle archive",
		Long:  "Query, index and administer a Dicoogle medical imaging archive over its REST API.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.ConfigureLogging()
		},
		SilenceUsage: true,
	}

	// a .env file is a convenience for credentials; absence is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringP("url", "u", "", "base URL of the Dicoogle server (env DICOOGLE_URL)")
	rootCmd.PersistentFlags().String("token", "", "session token to use instead of logging in (env DICOOGLE_TOKEN)")

	viper.SetEnvPrefix("dicoogle")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.AddCommand(auth.NewLoginCmd())
	rootCmd.AddCommand(auth.NewLogoutCmd())
	rootCmd.AddCommand(search.NewCmd())
	rootCmd.AddCommand(dump.NewCmd())
	rootCmd.AddCommand(providers.NewCmd())
	rootCmd.AddCommand(index.NewIndexCmd())
	rootCmd.AddCommand(index.NewUnindexCmd())
	rootCmd.AddCommand(index.NewRemoveCmd())
	rootCmd.AddCommand(tasks.NewCmd())
	rootCmd.AddCommand(version2.NewCmd())

	return rootCmd
}
