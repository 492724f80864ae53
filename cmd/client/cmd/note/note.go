package note

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"notestash/cmd/client/cmd/types"
	"notestash/internal/app/client"
)

// NoteCmd groups the note commands: create, list, get, update, delete,
// versions.
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Work with notes",
	Long:  `Create, inspect, update and delete notes stored on the server.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func parseExpiry(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if d, err := time.ParseDuration(value); err == nil {
		t := time.Now().Add(d)
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("expiry must be a duration (for example 24h) or an RFC3339 timestamp: %w", err)
	}
	return &t, nil
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
