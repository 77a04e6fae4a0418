package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/client"
)

// LoginOptions is a struct to support the login command
type LoginOptions struct {
	Username string
	Password string
}

func NewLoginCmd() *cobra.Command {
	o := &LoginOptions{}
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a session token.",
		Args:  cobra.NoArgs,
		RunE:  o.run,
	}
	loginCmd.Flags().StringVar(&o.Username, "username", "", "account name (env DICOOGLE_USER)")
	loginCmd.Flags().StringVar(&o.Password, "password", "", "account password (env DICOOGLE_PASSWORD)")
	return loginCmd
}

func (o *LoginOptions) run(cmd *cobra.Command, _ []string) error {
	endpoint := viper.GetString("url")
	if endpoint == "" {
		return fmt.Errorf("no server URL: pass --url or set DICOOGLE_URL")
	}
	c, err := client.New(endpoint)
	if err != nil {
		return err
	}

	username := o.Username
	if username == "" {
		username = viper.GetString("user")
	}
	password := o.Password
	if password == "" {
		password = viper.GetString("password")
	}
	if username == "" {
		return fmt.Errorf("no username: pass --username or set DICOOGLE_USER")
	}

	resp, err := c.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}
	cmd.Printf("%s\n", resp.Token)
	return nil
}

func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the current session token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Logout(cmd.Context())
		},
	}
}
