package note

import (
	"context"
	"time"
)

// Repository persists notes and their version snapshots. Every owner-scoped
// method filters by id and owner in one query so notes of other users are
// indistinguishable from missing ones.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	FindByIDAndOwner(ctx context.Context, ownerID, noteID int64) (Note, error)
	// ListActiveByOwner returns one page of non-expired notes ordered by
	// created_at descending, plus the total count of active notes.
	ListActiveByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]Note, int64, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	// Update snapshots the note's current state into a version row, then
	// applies the new title/content/expiry, bumps updated_at and increments
	// the version counter, all in one transaction. Returns the updated note,
	// or ErrNotFound when no note with that id belongs to the owner.
	Update(ctx context.Context, ownerID, noteID int64, title, content string, expiry *time.Time, now time.Time) (Note, error)
	// Delete removes version rows first, then the note row, in one
	// transaction. Returns ErrNotFound when the owner has no such note.
	Delete(ctx context.Context, ownerID, noteID int64) error
	ListVersions(ctx context.Context, noteID int64) ([]Version, error)
	// DeleteExpired removes all notes across all owners whose expiry time is
	// at or before now, versions first, in one transaction. Returns the
	// number of notes removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
