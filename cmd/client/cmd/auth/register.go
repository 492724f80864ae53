package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notestash/internal/app/client"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Creates an account on the NoteStash server.

The username must be 3-50 characters of letters, digits, dots,
underscores or hyphens. The password must be at least 8 characters
and contain an uppercase letter, a lowercase letter, a digit and a
special character.`,
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

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		result, err := app.Register(cmd.Context(), client.Credentials{
			Username: username,
			Password: string(password),
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println()
		color.Green("%s", result.Message)
		fmt.Printf("Logged in as %s. Create your first note: notestash note create\n", result.Username)

		return nil
	},
}
