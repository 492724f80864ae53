package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const (
	// MaxNotesPerUser is the hard cap on notes a single owner may hold.
	MaxNotesPerUser = 5000

	MaxTitleLen     = 255
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Servicer interface {
	Create(ctx context.Context, ownerID int64, title, content string, expiry *time.Time) (Note, error)
	Get(ctx context.Context, ownerID, noteID int64) (Note, error)
	List(ctx context.Context, ownerID int64, page, size int) (Page, error)
	Update(ctx context.Context, ownerID, noteID int64, title, content string, expiry *time.Time) (Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
	ListVersions(ctx context.Context, ownerID, noteID int64) ([]Version, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
	}
}

func (s *Service) Create(ctx context.Context, ownerID int64, title, content string, expiry *time.Time) (Note, error) {
	if err := validateNote(title, content); err != nil {
		return Note{}, err
	}

	count, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to count notes", "owner_id", ownerID, "error", err)
		return Note{}, fmt.Errorf("count notes: %w", err)
	}
	if count >= MaxNotesPerUser {
		return Note{}, ErrQuotaExceeded
	}

	now := time.Now()
	n := Note{
		OwnerID:    ownerID,
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiryTime: expiry,
		Version:    1,
	}

	if err := s.repo.Create(ctx, &n); err != nil {
		s.log.Error("failed to create note", "owner_id", ownerID, "error", err)
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_id", n.ID, "owner_id", ownerID)
	return n, nil
}

func (s *Service) Get(ctx context.Context, ownerID, noteID int64) (Note, error) {
	n, err := s.repo.FindByIDAndOwner(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to get note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return Note{}, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, ownerID int64, page, size int) (Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	notes, total, err := s.repo.ListActiveByOwner(ctx, ownerID, time.Now(), size, page*size)
	if err != nil {
		s.log.Error("failed to list notes", "owner_id", ownerID, "error", err)
		return Page{}, fmt.Errorf("list notes: %w", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return Page{
		Content:       notes,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Update snapshots the pre-update state and applies the new content as one
// atomic step; the version counter grows by exactly one per call.
func (s *Service) Update(ctx context.Context, ownerID, noteID int64, title, content string, expiry *time.Time) (Note, error) {
	if err := validateNote(title, content); err != nil {
		return Note{}, err
	}

	n, err := s.repo.Update(ctx, ownerID, noteID, title, content, expiry, time.Now())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Note{}, ErrNotFound
		}
		s.log.Error("failed to update note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return Note{}, fmt.Errorf("update note: %w", err)
	}

	s.log.Info("note updated", "note_id", n.ID, "owner_id", ownerID, "version", n.Version)
	return n, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, noteID int64) error {
	if err := s.repo.Delete(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.Info("note deleted", "note_id", noteID, "owner_id", ownerID)
	return nil
}

func (s *Service) ListVersions(ctx context.Context, ownerID, noteID int64) ([]Version, error) {
	// Ownership check first; versions are never exposed through a note the
	// caller does not own.
	if _, err := s.repo.FindByIDAndOwner(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("verify note ownership: %w", err)
	}

	versions, err := s.repo.ListVersions(ctx, noteID)
	if err != nil {
		s.log.Error("failed to list versions", "note_id", noteID, "error", err)
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}

// SweepExpired removes every note whose expiry time has passed, across all
// owners. It is invoked only by the background sweeper, never from the
// request surface. A note deleted concurrently by its owner simply does not
// match the sweep query; that race is benign.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.Error("failed to sweep expired notes", "error", err)
		return 0, fmt.Errorf("sweep expired notes: %w", err)
	}

	if deleted > 0 {
		s.log.Info("expired notes removed", "count", deleted)
	}
	return deleted, nil
}

func validateNote(title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, MaxTitleLen)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
