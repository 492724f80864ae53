package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notestash/internal/app/client/config"
)

// App ties the HTTP client and the local cache together for the CLI.
type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	storage       *SQLiteStorage
	authenticated bool
	mu            sync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := newHTTPClient(cfg, log)

	storage, err := NewSQLiteStorage(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
	}

	if token, err := storage.LoadToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("token loaded from cache")
	}

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// Register creates an account and starts a session with the returned token.
func (a *App) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	result, err := a.httpClient.Register(ctx, creds)
	if err != nil {
		return nil, err
	}

	a.startSession(result.Token)
	return result, nil
}

func (a *App) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	result, err := a.httpClient.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	a.startSession(result.Token)
	return result, nil
}

func (a *App) Logout() error {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	a.httpClient.SetToken("")
	return a.storage.ClearToken()
}

func (a *App) Profile(ctx context.Context) (*Profile, error) {
	return a.httpClient.Profile(ctx)
}

func (a *App) startSession(token string) {
	a.httpClient.SetToken(token)

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	if err := a.storage.SaveToken(token); err != nil {
		a.log.Warn("failed to persist token", "error", err)
	}
}

func (a *App) CreateNote(ctx context.Context, draft NoteDraft) (*Note, error) {
	note, err := a.httpClient.CreateNote(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := a.storage.CacheNote(*note); err != nil {
		a.log.Warn("failed to cache note", "note_id", note.ID, "error", err)
	}

	return note, nil
}

// GetNote fetches from the server, falling back to the local cache when the
// server cannot be reached.
func (a *App) GetNote(ctx context.Context, id int64) (*Note, error) {
	note, err := a.httpClient.GetNote(ctx, id)
	if err != nil {
		cached, cacheErr := a.storage.CachedNote(id)
		if cacheErr != nil {
			return nil, err
		}
		a.log.Debug("serving note from cache", "note_id", id)
		return cached, nil
	}

	if err := a.storage.CacheNote(*note); err != nil {
		a.log.Warn("failed to cache note", "note_id", note.ID, "error", err)
	}

	return note, nil
}

// ListNotes fetches a page from the server and refreshes the cache. When the
// server is unreachable the whole cache is returned as a single page.
func (a *App) ListNotes(ctx context.Context, page, size int) (*NotePage, error) {
	result, err := a.httpClient.ListNotes(ctx, page, size)
	if err != nil {
		cached, cacheErr := a.storage.CachedNotes()
		if cacheErr != nil || len(cached) == 0 {
			return nil, err
		}
		a.log.Debug("serving notes from cache", "count", len(cached))
		return &NotePage{
			Content:       cached,
			Page:          0,
			Size:          len(cached),
			TotalElements: int64(len(cached)),
			TotalPages:    1,
		}, nil
	}

	if err := a.storage.CacheNotes(result.Content); err != nil {
		a.log.Warn("failed to cache notes", "error", err)
	}

	return result, nil
}

func (a *App) UpdateNote(ctx context.Context, id int64, draft NoteDraft) (*Note, error) {
	note, err := a.httpClient.UpdateNote(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	if err := a.storage.CacheNote(*note); err != nil {
		a.log.Warn("failed to cache note", "note_id", note.ID, "error", err)
	}

	return note, nil
}

func (a *App) DeleteNote(ctx context.Context, id int64) error {
	if err := a.httpClient.DeleteNote(ctx, id); err != nil {
		return err
	}

	if err := a.storage.RemoveNote(id); err != nil {
		a.log.Warn("failed to drop cached note", "note_id", id, "error", err)
	}

	return nil
}

func (a *App) ListVersions(ctx context.Context, id int64) ([]NoteVersion, error) {
	return a.httpClient.ListVersions(ctx, id)
}
