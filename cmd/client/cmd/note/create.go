package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notestash/internal/app/client"
)

var (
	createTitle   string
	createContent string
	createExpiry  string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long: `Creates a note on the server.

An optional expiry can be given as a duration from now (24h, 30m) or as
an RFC3339 timestamp. Expired notes disappear from every listing and are
eventually removed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if createTitle == "" {
			fmt.Print("Title: ")
			_, _ = fmt.Scanln(&createTitle)
		}
		if createContent == "" {
			fmt.Print("Content: ")
			_, _ = fmt.Scanln(&createContent)
		}

		expiry, err := parseExpiry(createExpiry)
		if err != nil {
			return err
		}

		note, err := app.CreateNote(cmd.Context(), client.NoteDraft{
			Title:      createTitle,
			Content:    createContent,
			ExpiryTime: expiry,
		})
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}

		color.Green("Note %d created", note.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "note title")
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "note content")
	CreateCmd.Flags().StringVarP(&createExpiry, "expiry", "e", "", "expiry as duration (24h) or RFC3339 timestamp")
}
