package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{
	{"bearer": {}},
}

func createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "note-create",
		Method:        http.MethodPost,
		Path:          "/api/notes",
		Summary:       "Create a note",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusCreated,
		Security:      bearerSecurity,
	}
}

func listOp() huma.Operation {
	return huma.Operation{
		OperationID: "note-list",
		Method:      http.MethodGet,
		Path:        "/api/notes",
		Summary:     "List active notes",
		Description: "Returns the caller's unexpired notes, newest first, paginated.",
		Tags:        []string{"Notes"},
		Security:    bearerSecurity,
	}
}

func getOp() huma.Operation {
	return huma.Operation{
		OperationID: "note-get",
		Method:      http.MethodGet,
		Path:        "/api/notes/{id}",
		Summary:     "Fetch a note",
		Tags:        []string{"Notes"},
		Security:    bearerSecurity,
	}
}

func updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "note-update",
		Method:      http.MethodPut,
		Path:        "/api/notes/{id}",
		Summary:     "Update a note",
		Description: "Replaces title, content and expiry. The previous state is kept as a version.",
		Tags:        []string{"Notes"},
		Security:    bearerSecurity,
	}
}

func deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "note-delete",
		Method:        http.MethodDelete,
		Path:          "/api/notes/{id}",
		Summary:       "Delete a note",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearerSecurity,
	}
}

func versionsOp() huma.Operation {
	return huma.Operation{
		OperationID: "note-versions",
		Method:      http.MethodGet,
		Path:        "/api/notes/{id}/versions",
		Summary:     "List note versions",
		Description: "Returns prior states of the note, newest version first.",
		Tags:        []string{"Notes"},
		Security:    bearerSecurity,
	}
}
