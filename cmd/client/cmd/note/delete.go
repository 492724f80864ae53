package note

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Long:  `Deletes a note and its version history from the server permanently.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		if !deleteForce {
			fmt.Printf("Delete note %d and its history? [y/N]: ", id)
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(answer) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.DeleteNote(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Printf("Note %d deleted.\n", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation")
}
