package note

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var versionsFormat string

var VersionsCmd = &cobra.Command{
	Use:   "versions <id>",
	Short: "List prior versions of a note",
	Long: `Shows the note's history, newest version first. A version is
recorded every time the note is updated and holds the state it replaced.`,
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

		versions, err := app.ListVersions(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to list versions: %w", err)
		}

		if versionsFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(versions)
		}

		if len(versions) == 0 {
			fmt.Println("No versions recorded; the note has never been updated")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Version\tTitle\tRecorded\t\n")
		for _, v := range versions {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n",
				v.VersionNumber,
				truncate(v.Title, 40),
				v.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	VersionsCmd.Flags().StringVarP(&versionsFormat, "format", "f", "table", "output format (table, json)")
}
