package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStorage keeps the session token and a read cache of notes so list
// and get keep working while the server is unreachable.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			expiry_time DATETIME,
			version INTEGER NOT NULL DEFAULT 1,
			cached_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);
	`)

	return err
}

func (s *SQLiteStorage) SaveToken(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (key, value) VALUES ('token', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadToken() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = 'token'`).Scan(&token)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *SQLiteStorage) ClearToken() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE key = 'token'`)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) CacheNote(n Note) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (id, title, content, created_at, updated_at, expiry_time, version, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at,
			expiry_time = excluded.expiry_time,
			version = excluded.version,
			cached_at = excluded.cached_at
	`, n.ID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt, n.ExpiryTime, n.Version, time.Now())
	if err != nil {
		return fmt.Errorf("cache note: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) CacheNotes(notes []Note) error {
	for _, n := range notes {
		if err := s.CacheNote(n); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStorage) RemoveNote(id int64) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("remove note: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) CachedNote(id int64) (*Note, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, created_at, updated_at, expiry_time, version
		FROM notes WHERE id = ?
	`, id)

	var n Note
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt, &n.ExpiryTime, &n.Version); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note %d not cached", id)
		}
		return nil, fmt.Errorf("read cached note: %w", err)
	}

	return &n, nil
}

func (s *SQLiteStorage) CachedNotes() ([]Note, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, created_at, updated_at, expiry_time, version
		FROM notes ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("read cached notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt, &n.ExpiryTime, &n.Version); err != nil {
			return nil, fmt.Errorf("scan cached note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
