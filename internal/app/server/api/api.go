package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "notestash/internal/app/server/api/http/auth"
	healthAPI "notestash/internal/app/server/api/http/health"
	"notestash/internal/app/server/api/http/apierror"
	"notestash/internal/app/server/api/http/middleware"
	authMW "notestash/internal/app/server/api/http/middleware/auth"
	loggerMW "notestash/internal/app/server/api/http/middleware/logger"
	noteAPI "notestash/internal/app/server/api/http/note"
	"notestash/internal/domain/note"
	"notestash/internal/domain/user"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services collects the domain services the API exposes. They are built in
// main so the expiry sweeper can share the note service.
type Services struct {
	Users  user.Servicer
	Notes  note.Servicer
	Tokens interface {
		Issue(subject string) (string, error)
		Validate(token string) (string, error)
	}
	DB Pinger
}

type Handlers struct {
	Health *healthAPI.Handler
	Auth   *authAPI.Handler
	Note   *noteAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(svc Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("NoteStash API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	apierror.Install()

	API := humachi.New(mux, config)

	middlewares := middleware.NewContainer()
	middlewares.Add(loggerMW.New(log).Middleware())
	middlewares.Add(apierror.Middleware())
	middlewares.Add(authMW.New(svc.Tokens, svc.Users, log).Middleware())
	API.UseMiddleware(middlewares.GetAllAndClear()...)

	h := handlers(svc, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux
}

func handlers(svc Services, log *slog.Logger) *Handlers {
	return &Handlers{
		Health: healthAPI.NewHandler(svc.DB),
		Auth:   authAPI.NewHandler(svc.Users, svc.Tokens, log),
		Note:   noteAPI.NewHandler(svc.Notes, log),
	}
}
