package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"notestash/internal/domain/note"
)

const noteColumns = `id, user_id, title, content, created_at, updated_at, expiry_time, version`

type NoteRepository struct {
	pool DB
	log  *slog.Logger
}

func NewNoteRepository(pool DB, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, created_at, updated_at, expiry_time, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		n.OwnerID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt, n.ExpiryTime, n.Version).
		Scan(&n.ID)

	if err != nil {
		r.log.Error("failed to insert note", "owner_id", n.OwnerID, "error", err)
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) FindByIDAndOwner(ctx context.Context, ownerID, noteID int64) (note.Note, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, ownerID)

	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to get note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return note.Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (r *NoteRepository) ListActiveByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]note.Note, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes
		 WHERE user_id = $1 AND (expiry_time IS NULL OR expiry_time > $2)`,
		ownerID, now).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count active notes: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = $1 AND (expiry_time IS NULL OR expiry_time > $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		ownerID, now, limit, offset)
	if err != nil {
		r.log.Error("failed to list notes", "owner_id", ownerID, "error", err)
		return nil, 0, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (r *NoteRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notes WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

// Update runs snapshot-then-mutate in one transaction: the pre-update state
// goes into note_versions stamped with the pre-update version number, then
// the note row is overwritten with version+1.
func (r *NoteRepository) Update(ctx context.Context, ownerID, noteID int64, title, content string, expiry *time.Time, now time.Time) (note.Note, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return note.Note{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	snapshot, err := tx.Exec(ctx,
		`INSERT INTO note_versions (note_id, title, content, version_number, created_at)
		 SELECT id, title, content, version, $3
		 FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, ownerID, now)
	if err != nil {
		r.log.Error("failed to snapshot note", "note_id", noteID, "error", err)
		return note.Note{}, fmt.Errorf("snapshot note: %w", err)
	}
	if snapshot.RowsAffected() == 0 {
		return note.Note{}, note.ErrNotFound
	}

	row := tx.QueryRow(ctx,
		`UPDATE notes
		 SET title = $3, content = $4, expiry_time = $5, updated_at = $6, version = version + 1
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+noteColumns,
		noteID, ownerID, title, content, expiry, now)

	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Note vanished under a concurrent delete; the rollback also
			// discards the snapshot row.
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to update note", "note_id", noteID, "error", err)
		return note.Note{}, fmt.Errorf("update note: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return note.Note{}, fmt.Errorf("commit update: %w", err)
	}
	return n, nil
}

// Delete removes version rows before the note row so the foreign key from
// note_versions is never violated.
func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM note_versions
		 WHERE note_id IN (SELECT id FROM notes WHERE id = $1 AND user_id = $2)`,
		noteID, ownerID)
	if err != nil {
		r.log.Error("failed to delete note versions", "note_id", noteID, "error", err)
		return fmt.Errorf("delete note versions: %w", err)
	}

	result, err := tx.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, ownerID)
	if err != nil {
		r.log.Error("failed to delete note", "note_id", noteID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}
	if result.RowsAffected() == 0 {
		return note.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func (r *NoteRepository) ListVersions(ctx context.Context, noteID int64) ([]note.Version, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, note_id, title, content, version_number, created_at
		 FROM note_versions
		 WHERE note_id = $1
		 ORDER BY version_number DESC`, noteID)
	if err != nil {
		r.log.Error("failed to list versions", "note_id", noteID, "error", err)
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []note.Version
	for rows.Next() {
		var v note.Version
		if err := rows.Scan(&v.ID, &v.NoteID, &v.Title, &v.Content, &v.VersionNumber, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// DeleteExpired removes expired notes across all owners, versions first, in
// one transaction. Same cascade ordering as Delete.
func (r *NoteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM note_versions
		 WHERE note_id IN (
		     SELECT id FROM notes WHERE expiry_time IS NOT NULL AND expiry_time <= $1
		 )`, now)
	if err != nil {
		r.log.Error("failed to delete expired note versions", "error", err)
		return 0, fmt.Errorf("delete expired versions: %w", err)
	}

	result, err := tx.Exec(ctx,
		`DELETE FROM notes WHERE expiry_time IS NOT NULL AND expiry_time <= $1`, now)
	if err != nil {
		r.log.Error("failed to delete expired notes", "error", err)
		return 0, fmt.Errorf("delete expired notes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit sweep: %w", err)
	}
	return result.RowsAffected(), nil
}

func scanNotes(rows pgx.Rows) ([]note.Note, error) {
	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	err := row.Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Content,
		&n.CreatedAt, &n.UpdatedAt, &n.ExpiryTime, &n.Version,
	)
	if err != nil {
		return note.Note{}, err
	}
	return n, nil
}
