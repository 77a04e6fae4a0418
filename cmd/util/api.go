package util

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/client"
)

// GetAPIClient builds a client from the command's connection settings and,
// when credentials are available, establishes a session: an explicit token
// wins over username/password.
func GetAPIClient(cmd *cobra.Command) (*client.Client, error) {
	endpoint := viper.GetString("url")
	if endpoint == "" {
		return nil, errors.New("no server URL: pass --url or set DICOOGLE_URL")
	}

	c, err := client.New(endpoint)
	if err != nil {
		return nil, err
	}

	if token := viper.GetString("token"); token != "" {
		c.SetToken(token)
		return c, nil
	}

	username := viper.GetString("user")
	password := viper.GetString("password")
	if username != "" {
		if _, err := c.Login(cmd.Context(), username, password); err != nil {
			return nil, errors.Wrap(err, "logging in")
		}
	}
	return c, nil
}
