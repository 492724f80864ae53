package note

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notestash/internal/app/client"
)

var (
	updateTitle   string
	updateContent string
	updateExpiry  string
	clearExpiry   bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a note",
	Long: `Replaces the note's title, content and expiry.

The previous state is kept on the server as a version; see
notestash note versions. Flags left out keep the current value,
--clear-expiry removes the expiry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		current, err := app.GetNote(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch note: %w", err)
		}

		draft := client.NoteDraft{
			Title:      current.Title,
			Content:    current.Content,
			ExpiryTime: current.ExpiryTime,
		}

		if cmd.Flags().Changed("title") {
			draft.Title = updateTitle
		}
		if cmd.Flags().Changed("content") {
			draft.Content = updateContent
		}
		if clearExpiry {
			draft.ExpiryTime = nil
		} else if cmd.Flags().Changed("expiry") {
			expiry, err := parseExpiry(updateExpiry)
			if err != nil {
				return err
			}
			draft.ExpiryTime = expiry
		}

		note, err := app.UpdateNote(cmd.Context(), id, draft)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		color.Green("Note %d updated to version %d", note.ID, note.Version)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	UpdateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "new content")
	UpdateCmd.Flags().StringVarP(&updateExpiry, "expiry", "e", "", "new expiry as duration or RFC3339 timestamp")
	UpdateCmd.Flags().BoolVar(&clearExpiry, "clear-expiry", false, "remove the expiry")
}
