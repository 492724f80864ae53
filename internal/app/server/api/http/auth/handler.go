package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notestash/internal/app/server/api/http/apierror"
	mwauth "notestash/internal/app/server/api/http/middleware/auth"
	"notestash/internal/domain/user"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

type Handler struct {
	users  user.Servicer
	tokens TokenIssuer
	log    *slog.Logger
}

func NewHandler(users user.Servicer, tokens TokenIssuer, log *slog.Logger) *Handler {
	return &Handler{
		users:  users,
		tokens: tokens,
		log:    log.With("component", "auth_handler"),
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, registerOp(), h.register)
	huma.Register(api, loginOp(), h.login)
	huma.Register(api, profileOp(), h.profile)
}

func (h *Handler) register(ctx context.Context, input *RegisterInput) (*AuthOutput, error) {
	u, err := h.users.Register(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return nil, apierror.Status(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUsernameTaken):
			return nil, apierror.Status(ctx, http.StatusBadRequest, "Username is already taken")
		default:
			h.log.Error("registration failed", "error", err)
			return nil, apierror.Status(ctx, http.StatusInternalServerError, "Internal server error")
		}
	}

	token, err := h.tokens.Issue(u.Username)
	if err != nil {
		h.log.Error("token issue failed", "error", err)
		return nil, apierror.Status(ctx, http.StatusInternalServerError, "Internal server error")
	}

	return &AuthOutput{Body: AuthResponse{
		Token:    token,
		Username: u.Username,
		Message:  "User registered successfully",
	}}, nil
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*AuthOutput, error) {
	u, err := h.users.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrRateLimited):
			return nil, apierror.Status(ctx, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
		case errors.Is(err, user.ErrInvalidCredentials):
			return nil, apierror.Status(ctx, http.StatusBadRequest, "Invalid username or password")
		default:
			h.log.Error("login failed", "error", err)
			return nil, apierror.Status(ctx, http.StatusInternalServerError, "Internal server error")
		}
	}

	token, err := h.tokens.Issue(u.Username)
	if err != nil {
		h.log.Error("token issue failed", "error", err)
		return nil, apierror.Status(ctx, http.StatusInternalServerError, "Internal server error")
	}

	return &AuthOutput{Body: AuthResponse{
		Token:    token,
		Username: u.Username,
		Message:  "Authentication successful",
	}}, nil
}

func (h *Handler) profile(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	identity, ok := mwauth.FromContext(ctx)
	if !ok {
		return nil, apierror.Status(ctx, http.StatusUnauthorized, "Authentication required")
	}

	u, err := h.users.Get(ctx, identity.Username)
	if err != nil {
		return nil, apierror.Status(ctx, http.StatusUnauthorized, "Unknown user")
	}

	return &ProfileOutput{Body: ProfileResponse{
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}}, nil
}
