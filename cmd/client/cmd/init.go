package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notestash/cmd/client/cmd/auth"
	"notestash/cmd/client/cmd/note"
	"notestash/cmd/client/cmd/types"
	"notestash/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection and session status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("client is not initialized")
		}

		if err := app.CheckConnection(); err != nil {
			color.Red("Server: unreachable (%v)", err)
		} else {
			color.Green("Server: ok")
		}

		if app.IsAuthenticated() {
			profile, err := app.Profile(cmd.Context())
			if err != nil {
				color.Yellow("Session: token present but rejected (%v)", err)
				return nil
			}
			color.Green("Session: logged in as %s", profile.Username)
		} else {
			fmt.Println("Session: not logged in")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.GetCmd)
	note.NoteCmd.AddCommand(note.UpdateCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)
	note.NoteCmd.AddCommand(note.VersionsCmd)

	rootCmd.AddCommand(statusCmd)
}
