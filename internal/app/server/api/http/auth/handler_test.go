package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	mwauth "notestash/internal/app/server/api/http/middleware/auth"
	"notestash/internal/domain/user"
)

// MockUserService is a mock implementation of the user.Servicer interface for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(string) (string, error) {
	return s.token, s.err
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_Register(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok123"}, slog.Default())

	users.On("Register", mock.Anything, "alice", "S3cret!pass").
		Return(user.User{ID: 1, Username: "alice"}, nil)

	out, err := h.register(context.Background(), &RegisterInput{
		Body: RegisterRequest{Username: "alice", Password: "S3cret!pass"},
	})
	require.NoError(t, err)
	assert.Equal(t, "tok123", out.Body.Token)
	assert.Equal(t, "alice", out.Body.Username)
	assert.Equal(t, "User registered successfully", out.Body.Message)

	users.AssertExpectations(t)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	users.On("Register", mock.Anything, "alice", mock.Anything).
		Return(user.User{}, user.ErrUsernameTaken)

	_, err := h.register(context.Background(), &RegisterInput{
		Body: RegisterRequest{Username: "alice", Password: "S3cret!pass"},
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestHandler_Register_InvalidInput(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	users.On("Register", mock.Anything, "a", mock.Anything).
		Return(user.User{}, user.ErrInvalidInput)

	_, err := h.register(context.Background(), &RegisterInput{
		Body: RegisterRequest{Username: "a", Password: "S3cret!pass"},
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestHandler_Login(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok456"}, slog.Default())

	users.On("Authenticate", mock.Anything, "alice", "S3cret!pass").
		Return(user.User{ID: 1, Username: "alice"}, nil)

	out, err := h.login(context.Background(), &LoginInput{
		Body: LoginRequest{Username: "alice", Password: "S3cret!pass"},
	})
	require.NoError(t, err)
	assert.Equal(t, "tok456", out.Body.Token)
	assert.Equal(t, "Authentication successful", out.Body.Message)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	users.On("Authenticate", mock.Anything, "alice", "wrong").
		Return(user.User{}, user.ErrInvalidCredentials)

	_, err := h.login(context.Background(), &LoginInput{
		Body: LoginRequest{Username: "alice", Password: "wrong"},
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestHandler_Login_RateLimited(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	users.On("Authenticate", mock.Anything, "alice", mock.Anything).
		Return(user.User{}, user.ErrRateLimited)

	_, err := h.login(context.Background(), &LoginInput{
		Body: LoginRequest{Username: "alice", Password: "S3cret!pass"},
	})
	assert.Equal(t, http.StatusTooManyRequests, statusOf(t, err))
}

func TestHandler_Profile(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	users.On("Get", mock.Anything, "alice").
		Return(user.User{ID: 1, Username: "alice"}, nil)

	ctx := mwauth.WithIdentity(context.Background(), mwauth.Identity{UserID: 1, Username: "alice"})
	out, err := h.profile(ctx, &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Body.Username)
}

func TestHandler_Profile_NoIdentity(t *testing.T) {
	users := new(MockUserService)
	h := NewHandler(users, stubIssuer{token: "tok"}, slog.Default())

	_, err := h.profile(context.Background(), &struct{}{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
