package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{log: log.With("component", "http")}
}

// Middleware logs every request with a generated request id, the method,
// path, response status and handling duration.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		requestID := uuid.NewString()
		start := time.Now()

		entry := l.log.With(
			"request_id", requestID,
			"method", ctx.Method(),
			"path", ctx.URL().Path,
			"remote_addr", ctx.RemoteAddr(),
		)
		entry.Debug("request started")

		next(ctx)

		entry.Info("request completed",
			"status", ctx.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
