package note

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notestash/internal/app/server/api/http/apierror"
	mwauth "notestash/internal/app/server/api/http/middleware/auth"
	"notestash/internal/domain/note"
)

type Handler struct {
	notes note.Servicer
	log   *slog.Logger
}

func NewHandler(notes note.Servicer, log *slog.Logger) *Handler {
	return &Handler{
		notes: notes,
		log:   log.With("component", "note_handler"),
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, createOp(), h.create)
	huma.Register(api, listOp(), h.list)
	huma.Register(api, getOp(), h.get)
	huma.Register(api, updateOp(), h.update)
	huma.Register(api, deleteOp(), h.delete)
	huma.Register(api, versionsOp(), h.versions)
}

func (h *Handler) create(ctx context.Context, input *CreateInput) (*NoteOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.notes.Create(ctx, identity.UserID, input.Body.Title, input.Body.Content, input.Body.ExpiryTime)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	return &NoteOutput{Body: toNoteResponse(n)}, nil
}

func (h *Handler) list(ctx context.Context, input *ListInput) (*PageOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	page, err := h.notes.List(ctx, identity.UserID, input.Page, input.Size)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	content := make([]NoteResponse, 0, len(page.Content))
	for _, n := range page.Content {
		content = append(content, toNoteResponse(n))
	}

	return &PageOutput{Body: PageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}}, nil
}

func (h *Handler) get(ctx context.Context, input *GetInput) (*NoteOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.notes.Get(ctx, identity.UserID, input.ID)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	return &NoteOutput{Body: toNoteResponse(n)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*NoteOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.notes.Update(ctx, identity.UserID, input.ID, input.Body.Title, input.Body.Content, input.Body.ExpiryTime)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	return &NoteOutput{Body: toNoteResponse(n)}, nil
}

func (h *Handler) delete(ctx context.Context, input *DeleteInput) (*struct{}, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.notes.Delete(ctx, identity.UserID, input.ID); err != nil {
		return nil, h.mapError(ctx, err)
	}

	return &struct{}{}, nil
}

func (h *Handler) versions(ctx context.Context, input *VersionsInput) (*VersionsOutput, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	versions, err := h.notes.ListVersions(ctx, identity.UserID, input.ID)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	out := make([]VersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toVersionResponse(v))
	}

	return &VersionsOutput{Body: out}, nil
}

func (h *Handler) mapError(ctx context.Context, err error) huma.StatusError {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return apierror.Status(ctx, http.StatusNotFound, "Note not found")
	case errors.Is(err, note.ErrInvalidInput):
		return apierror.Status(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, note.ErrQuotaExceeded):
		return apierror.Status(ctx, http.StatusBadRequest, "Maximum note limit reached (5000). Delete old notes to create new ones.")
	default:
		h.log.Error("note operation failed", "error", err)
		return apierror.Status(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func requireIdentity(ctx context.Context) (mwauth.Identity, error) {
	identity, ok := mwauth.FromContext(ctx)
	if !ok {
		return mwauth.Identity{}, apierror.Status(ctx, http.StatusUnauthorized, "Authentication required")
	}
	return identity, nil
}
