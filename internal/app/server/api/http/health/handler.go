package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"notestash/internal/app/server/api/http/apierror"
)

// Pinger reports reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, statusOp(), h.status)
}

func (h *Handler) status(ctx context.Context, _ *struct{}) (*StatusOutput, error) {
	if err := h.db.Ping(ctx); err != nil {
		return nil, apierror.Status(ctx, http.StatusServiceUnavailable, "Database unreachable")
	}
	return &StatusOutput{Body: StatusBody{Status: "ok"}}, nil
}
