package note

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notestash/internal/domain/note"
)

func TestNoteResponse_WireNames(t *testing.T) {
	n := note.Note{
		ID:        7,
		Title:     "groceries",
		Content:   "milk",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Version:   2,
	}

	raw, err := json.Marshal(toNoteResponse(n))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "version")
	assert.NotContains(t, fields, "versionNumber")
	assert.NotContains(t, fields, "expiryTime")
}

func TestVersionResponse_WireNames(t *testing.T) {
	v := note.Version{
		ID:            3,
		NoteID:        7,
		Title:         "groceries",
		Content:       "milk",
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		VersionNumber: 1,
	}

	raw, err := json.Marshal(toVersionResponse(v))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Contains(t, fields, "versionNumber")
	assert.Contains(t, fields, "noteId")
	assert.NotContains(t, fields, "version")
}
