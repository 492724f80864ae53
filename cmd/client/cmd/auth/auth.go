package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"notestash/cmd/client/cmd/types"
	"notestash/internal/app/client"
)

// AuthCmd groups account commands: register, login, logout, whoami.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Register, log in, log out and inspect the current session.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}
