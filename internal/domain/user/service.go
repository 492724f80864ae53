package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password string) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	Get(ctx context.Context, username string) (User, error)
}

// Limiter gates login attempts. It is shared across all callers, so permits
// must be granted atomically.
type Limiter interface {
	Allow() bool
}

// dummyHash keeps the unknown-username path as expensive as a real
// password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("notestash"), bcrypt.DefaultCost)

type Service struct {
	repo      Repository
	validator Validator
	limiter   Limiter
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, limiter Limiter, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		limiter:   limiter,
		log:       log.With("component", "user_service"),
	}
}

// Register creates a new account. Duplicate usernames are detected by the
// unique constraint on the users table, not a pre-check, so two concurrent
// registrations cannot both succeed.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateRegister(username, password); err != nil {
		s.log.Debug("registration validation failed", "username", username, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return User{}, ErrUsernameTaken
		}
		s.log.Error("failed to create user", "username", username, "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Authenticate verifies credentials. The rate limiter is consulted before the
// credentials are touched, and its rejection is reported distinctly so the
// surface can answer 429 instead of 401/400.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if !s.limiter.Allow() {
		s.log.Warn("login attempt rate limited", "username", username)
		return User{}, ErrRateLimited
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Burn a comparison so an unknown username takes as long as a
			// wrong password.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return User{}, ErrInvalidCredentials
		}
		s.log.Error("failed to look up user", "username", username, "error", err)
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	// Best effort: a user deleted between lookup and stamp must not fail the
	// login, the stamp is simply skipped.
	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		s.log.Warn("failed to update last login", "user_id", u.ID, "error", err)
	} else {
		u.LastLogin = &now
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, username string) (User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}
