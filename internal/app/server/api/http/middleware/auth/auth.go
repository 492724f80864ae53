package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notestash/internal/app/server/api/http/apierror"
	"notestash/internal/domain/user"
)

// TokenValidator checks a bearer token and returns its subject.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// Identity is the authenticated principal bound to the request context.
type Identity struct {
	UserID   int64
	Username string
}

type contextKey string

const identityKey contextKey = "identity"

type Auth struct {
	tokens TokenValidator
	users  user.Servicer
	log    *slog.Logger
}

func New(tokens TokenValidator, users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		users:  users,
		log:    log.With("component", "auth_middleware"),
	}
}

// Middleware validates the Authorization header, resolves the token subject
// to a stored user and binds the identity to the request context. Requests
// without a valid bearer token are answered 401 with the error envelope.
// Operations that declare no security requirement pass through untouched.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if op := ctx.Operation(); op == nil || len(op.Security) == 0 {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierror.Write(ctx, http.StatusUnauthorized, "Missing or malformed Authorization header")
			return
		}

		username, err := a.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("token validation failed", "error", err)
			apierror.Write(ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		u, err := a.users.Get(ctx.Context(), username)
		if err != nil {
			// Token subject no longer maps to a stored user.
			a.log.Warn("token subject not found", "username", username)
			apierror.Write(ctx, http.StatusUnauthorized, "Unknown user")
			return
		}

		identity := Identity{UserID: u.ID, Username: u.Username}
		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

// WithIdentity binds an identity to the context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// FromContext returns the identity bound by Middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
