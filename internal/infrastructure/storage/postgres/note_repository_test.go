package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notestash/internal/domain/note"
)

type statement struct {
	sql  string
	args []any
}

// recordingTx captures every statement executed inside a transaction so the
// tests can assert statement order and arguments.
type recordingTx struct {
	stmts      []statement
	execTags   []string
	row        pgx.Row
	committed  bool
	rolledBack bool
}

func (tx *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.stmts = append(tx.stmts, statement{sql: sql, args: args})
	tag := tx.execTags[0]
	tx.execTags = tx.execTags[1:]
	return pgconn.NewCommandTag(tag), nil
}

func (tx *recordingTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	tx.stmts = append(tx.stmts, statement{sql: sql, args: args})
	return emptyRows{}, nil
}

func (tx *recordingTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	tx.stmts = append(tx.stmts, statement{sql: sql, args: args})
	return tx.row
}

func (tx *recordingTx) Commit(ctx context.Context) error {
	tx.committed = true
	return nil
}

func (tx *recordingTx) Rollback(ctx context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

func (tx *recordingTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("nested tx not supported")
}

func (tx *recordingTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (tx *recordingTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return nil
}

func (tx *recordingTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (tx *recordingTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (tx *recordingTx) Conn() *pgx.Conn { return nil }

type recordingDB struct {
	stmts []statement
	tx    *recordingTx
	row   pgx.Row
	rows  pgx.Rows
}

func (db *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.stmts = append(db.stmts, statement{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (db *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.stmts = append(db.stmts, statement{sql: sql, args: args})
	return db.rows, nil
}

func (db *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.stmts = append(db.stmts, statement{sql: sql, args: args})
	return db.row
}

func (db *recordingDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

type noteRow struct{ n note.Note }

func (r noteRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.n.ID
	*(dest[1].(*int64)) = r.n.OwnerID
	*(dest[2].(*string)) = r.n.Title
	*(dest[3].(*string)) = r.n.Content
	*(dest[4].(*time.Time)) = r.n.CreatedAt
	*(dest[5].(*time.Time)) = r.n.UpdatedAt
	*(dest[6].(**time.Time)) = r.n.ExpiryTime
	*(dest[7].(*int)) = r.n.Version
	return nil
}

type int64Row struct{ v int64 }

func (r int64Row) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.v
	return nil
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

func TestNoteRepository_Update_SnapshotPrecedesMutate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := note.Note{ID: 5, OwnerID: 1, Title: "new", Content: "after", Version: 3}

	tx := &recordingTx{execTags: []string{"INSERT 0 1"}, row: noteRow{n: updated}}
	repo := NewNoteRepository(&recordingDB{tx: tx}, slog.Default())

	n, err := repo.Update(context.Background(), 1, 5, "new", "after", nil, now)
	require.NoError(t, err)
	assert.Equal(t, updated, n)

	require.Len(t, tx.stmts, 2)

	// The snapshot insert reads the note row before the update statement
	// touches it, so the version row always carries the pre-update state.
	assert.Contains(t, tx.stmts[0].sql, "INSERT INTO note_versions")
	assert.Contains(t, tx.stmts[0].sql, "FROM notes")
	assert.Equal(t, []any{int64(5), int64(1), now}, tx.stmts[0].args)

	assert.Contains(t, tx.stmts[1].sql, "UPDATE notes")
	assert.Contains(t, tx.stmts[1].sql, "version = version + 1")

	assert.True(t, tx.committed)
}

func TestNoteRepository_Update_MissingNoteRollsBack(t *testing.T) {
	tx := &recordingTx{execTags: []string{"INSERT 0 0"}}
	repo := NewNoteRepository(&recordingDB{tx: tx}, slog.Default())

	_, err := repo.Update(context.Background(), 1, 99, "t", "c", nil, time.Now())
	assert.ErrorIs(t, err, note.ErrNotFound)

	require.Len(t, tx.stmts, 1)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestNoteRepository_Delete_VersionsBeforeNote(t *testing.T) {
	tx := &recordingTx{execTags: []string{"DELETE 2", "DELETE 1"}}
	repo := NewNoteRepository(&recordingDB{tx: tx}, slog.Default())

	err := repo.Delete(context.Background(), 1, 5)
	require.NoError(t, err)

	require.Len(t, tx.stmts, 2)
	assert.Contains(t, tx.stmts[0].sql, "DELETE FROM note_versions")
	assert.Contains(t, tx.stmts[1].sql, "DELETE FROM notes")
	assert.True(t, tx.committed)
}

func TestNoteRepository_Delete_NotFound(t *testing.T) {
	tx := &recordingTx{execTags: []string{"DELETE 0", "DELETE 0"}}
	repo := NewNoteRepository(&recordingDB{tx: tx}, slog.Default())

	err := repo.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, note.ErrNotFound)
	assert.False(t, tx.committed)
}

func TestNoteRepository_DeleteExpired_VersionsBeforeNotes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tx := &recordingTx{execTags: []string{"DELETE 4", "DELETE 3"}}
	repo := NewNoteRepository(&recordingDB{tx: tx}, slog.Default())

	removed, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	require.Len(t, tx.stmts, 2)
	assert.Contains(t, tx.stmts[0].sql, "DELETE FROM note_versions")
	assert.Contains(t, tx.stmts[0].sql, "expiry_time IS NOT NULL AND expiry_time <= $1")
	assert.Equal(t, []any{now}, tx.stmts[0].args)

	assert.Contains(t, tx.stmts[1].sql, "DELETE FROM notes")
	assert.Contains(t, tx.stmts[1].sql, "expiry_time IS NOT NULL AND expiry_time <= $1")

	assert.True(t, tx.committed)
}

func TestNoteRepository_ListActiveByOwner_FiltersExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := &recordingDB{row: int64Row{v: 7}, rows: emptyRows{}}
	repo := NewNoteRepository(db, slog.Default())

	_, total, err := repo.ListActiveByOwner(context.Background(), 1, now, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	require.Len(t, db.stmts, 2)
	for _, stmt := range db.stmts {
		assert.Contains(t, stmt.sql, "expiry_time IS NULL OR expiry_time > $2")
		assert.Equal(t, now, stmt.args[1])
	}
}
