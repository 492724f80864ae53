package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notestash/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the NoteStash server",
	Long: `Authenticates against the server. The returned token is stored
locally and used for subsequent commands until it expires or you log out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		result, err := app.Login(cmd.Context(), client.Credentials{
			Username: username,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		color.Green("%s", result.Message)
		return nil
	},
}
