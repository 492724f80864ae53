// Package apierror defines the uniform error envelope returned by every
// failing endpoint.
package apierror

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Envelope is the single error shape for the whole API.
type Envelope struct {
	Timestamp time.Time `json:"timestamp" doc:"Time when the error occurred"`
	Status    int       `json:"status" example:"400" doc:"HTTP status code"`
	ErrorText string    `json:"error" example:"Bad Request" doc:"Error type"`
	Message   string    `json:"message" doc:"Detailed error message"`
	Path      string    `json:"path" example:"/api/notes/123" doc:"Request path that caused the error"`
}

func (e *Envelope) Error() string {
	return e.Message
}

func (e *Envelope) GetStatus() int {
	return e.Status
}

// New builds an envelope for the given status. Detail errors are aggregated
// into one message, comma separated, so field validation failures arrive as
// a single string.
func New(path string, status int, msg string, errs ...error) *Envelope {
	details := make([]string, 0, len(errs)+1)
	if msg != "" {
		details = append(details, msg)
	}
	for _, err := range errs {
		if err == nil {
			continue
		}
		details = append(details, err.Error())
	}

	errorText := http.StatusText(status)
	if status == http.StatusBadRequest && len(errs) > 0 {
		errorText = "Validation Error"
	}

	return &Envelope{
		Timestamp: time.Now(),
		Status:    status,
		ErrorText: errorText,
		Message:   strings.Join(details, ", "),
		Path:      path,
	}
}

type pathKey struct{}

// WithPath binds the request path to the context so operation handlers can
// build envelopes without access to the raw request.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

func pathFrom(ctx context.Context) string {
	path, _ := ctx.Value(pathKey{}).(string)
	return path
}

// Status builds an envelope for a handler error, taking the request path
// from the context bound by WithPath.
func Status(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	return New(pathFrom(ctx), status, msg, errs...)
}

// Install replaces huma's error constructors so huma-generated failures
// (validation, unparsable bodies, handler errors) all use the envelope.
func Install() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		return New("", status, msg, errs...)
	}
	huma.NewErrorWithContext = func(ctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
		path := ""
		if ctx != nil {
			path = ctx.URL().Path
		}
		return New(path, status, msg, errs...)
	}
}

// Middleware binds the request path into the handler context so Status can
// fill the envelope's path field.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, WithPath(ctx.Context(), ctx.URL().Path)))
	}
}

// Write emits the envelope directly on a huma context, for middleware that
// fails a request before any operation handler runs.
func Write(ctx huma.Context, status int, msg string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(New(ctx.URL().Path, status, msg))
}
