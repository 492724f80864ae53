package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		fmt.Println("Logged out.")
		return nil
	},
}

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		profile, err := app.Profile(cmd.Context())
		if err != nil {
			return fmt.Errorf("not logged in: %w", err)
		}

		fmt.Printf("Username:   %s\n", profile.Username)
		fmt.Printf("Registered: %s\n", profile.CreatedAt.Format(time.RFC3339))
		if profile.LastLogin != nil {
			fmt.Printf("Last login: %s\n", profile.LastLogin.Format(time.RFC3339))
		}

		return nil
	},
}
