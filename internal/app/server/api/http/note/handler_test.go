package note

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	mwauth "notestash/internal/app/server/api/http/middleware/auth"
	"notestash/internal/domain/note"
)

// MockNoteService is a mock implementation of the note.Servicer interface for testing
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Create(ctx context.Context, ownerID int64, title, content string, expiry *time.Time) (note.Note, error) {
	args := m.Called(ctx, ownerID, title, content, expiry)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockNoteService) Get(ctx context.Context, ownerID, noteID int64) (note.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockNoteService) List(ctx context.Context, ownerID int64, page, size int) (note.Page, error) {
	args := m.Called(ctx, ownerID, page, size)
	return args.Get(0).(note.Page), args.Error(1)
}

func (m *MockNoteService) Update(ctx context.Context, ownerID, noteID int64, title, content string, expiry *time.Time) (note.Note, error) {
	args := m.Called(ctx, ownerID, noteID, title, content, expiry)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockNoteService) Delete(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

func (m *MockNoteService) ListVersions(ctx context.Context, ownerID, noteID int64) ([]note.Version, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]note.Version), args.Error(1)
}

func (m *MockNoteService) SweepExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func authedCtx(userID int64) context.Context {
	return mwauth.WithIdentity(context.Background(), mwauth.Identity{UserID: userID, Username: "alice"})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Create(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	created := note.Note{ID: 5, OwnerID: 1, Title: "groceries", Content: "milk", Version: 1}
	notes.On("Create", mock.Anything, int64(1), "groceries", "milk", (*time.Time)(nil)).
		Return(created, nil)

	out, err := h.create(authedCtx(1), &CreateInput{
		Body: NoteRequest{Title: "groceries", Content: "milk"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Body.ID)
	assert.Equal(t, 1, out.Body.Version)

	notes.AssertExpectations(t)
}

func TestHandler_Create_QuotaExceeded(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	notes.On("Create", mock.Anything, int64(1), "t", "c", (*time.Time)(nil)).
		Return(note.Note{}, note.ErrQuotaExceeded)

	_, err := h.create(authedCtx(1), &CreateInput{Body: NoteRequest{Title: "t", Content: "c"}})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestHandler_Create_Unauthenticated(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	_, err := h.create(context.Background(), &CreateInput{Body: NoteRequest{Title: "t", Content: "c"}})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	notes.AssertNotCalled(t, "Create")
}

func TestHandler_List(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	page := note.Page{
		Content:       []note.Note{{ID: 2}, {ID: 1}},
		Page:          0,
		Size:          10,
		TotalElements: 2,
		TotalPages:    1,
	}
	notes.On("List", mock.Anything, int64(1), 0, 10).Return(page, nil)

	out, err := h.list(authedCtx(1), &ListInput{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, out.Body.Content, 2)
	assert.Equal(t, int64(2), out.Body.TotalElements)
}

func TestHandler_Get_NotFound(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	notes.On("Get", mock.Anything, int64(1), int64(99)).
		Return(note.Note{}, note.ErrNotFound)

	_, err := h.get(authedCtx(1), &GetInput{ID: 99})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_Update(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	updated := note.Note{ID: 5, Title: "new", Content: "body", Version: 3}
	notes.On("Update", mock.Anything, int64(1), int64(5), "new", "body", (*time.Time)(nil)).
		Return(updated, nil)

	out, err := h.update(authedCtx(1), &UpdateInput{
		ID:   5,
		Body: NoteRequest{Title: "new", Content: "body"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Body.Version)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	notes.On("Delete", mock.Anything, int64(1), int64(99)).Return(note.ErrNotFound)

	_, err := h.delete(authedCtx(1), &DeleteInput{ID: 99})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestHandler_Versions(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	versions := []note.Version{
		{ID: 2, NoteID: 5, VersionNumber: 2},
		{ID: 1, NoteID: 5, VersionNumber: 1},
	}
	notes.On("ListVersions", mock.Anything, int64(1), int64(5)).Return(versions, nil)

	out, err := h.versions(authedCtx(1), &VersionsInput{ID: 5})
	require.NoError(t, err)
	assert.Len(t, out.Body, 2)
	assert.Equal(t, int64(5), out.Body[0].NoteID)
	assert.Equal(t, 2, out.Body[0].VersionNumber)
}

func TestHandler_Versions_ForeignNote(t *testing.T) {
	notes := new(MockNoteService)
	h := NewHandler(notes, slog.Default())

	notes.On("ListVersions", mock.Anything, int64(2), int64(5)).
		Return(nil, note.ErrNotFound)

	_, err := h.versions(authedCtx(2), &VersionsInput{ID: 5})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
