package user

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a new user and returns the stored row. Implementations
	// surface a username collision as ErrUsernameTaken.
	Create(ctx context.Context, username, passwordHash string) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	// UpdateLastLogin stamps the user's last successful login. A missing row
	// is not an error for callers; see Service.Authenticate.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}
