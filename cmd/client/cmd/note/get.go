package note

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notestash/internal/app/client"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a note",
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

		note, err := app.GetNote(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch note: %w", err)
		}

		if getFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(note)
		}

		printNote(note)
		return nil
	},
}

func printNote(n *client.Note) {
	color.Cyan("%s", n.Title)
	fmt.Printf("ID: %d | Version: %d\n", n.ID, n.Version)
	fmt.Printf("Created: %s | Updated: %s\n",
		n.CreatedAt.Format(time.RFC3339),
		n.UpdatedAt.Format(time.RFC3339))
	if n.ExpiryTime != nil {
		color.Yellow("Expires: %s", n.ExpiryTime.Format(time.RFC3339))
	}
	fmt.Println()
	fmt.Println(n.Content)
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "text", "output format (text, json)")
}
