package note

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"notestash/internal/app/client"
)

var (
	listPage   int
	listSize   int
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `Lists your unexpired notes, newest first.

Pagination is zero based: --page 0 is the first page. When the server is
unreachable the local cache is shown instead.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		page, err := app.ListNotes(cmd.Context(), listPage, listSize)
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		switch listFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(page)
		default:
			return printNotesTable(page)
		}
	},
}

func printNotesTable(page *client.NotePage) error {
	if len(page.Content) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTitle\tVersion\tCreated\tExpires\t\n")

	for _, n := range page.Content {
		expires := "-"
		if n.ExpiryTime != nil {
			expires = n.ExpiryTime.Format(time.RFC3339)
		}

		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t\n",
			n.ID,
			truncate(n.Title, 40),
			n.Version,
			n.CreatedAt.Format("2006-01-02 15:04"),
			expires,
		)
	}

	w.Flush()
	fmt.Printf("\nPage %d of %d, %d notes total\n", page.Page+1, page.TotalPages, page.TotalElements)
	return nil
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 0, "zero based page index")
	ListCmd.Flags().IntVarP(&listSize, "size", "s", 10, "page size, capped at 100 by the server")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")
}
