package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"notestash/internal/app/client/config"
)

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
	log     *slog.Logger
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		baseURL: strings.TrimRight(cfg.ServerAddress, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log.With("component", "http_client"),
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}

// parseResponse decodes the body into out, or turns a failure status into an
// error carrying the server's message.
func (h *httpClient) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/register", creds)
	if err != nil {
		return nil, err
	}

	var result AuthResult
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *httpClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", creds)
	if err != nil {
		return nil, err
	}

	var result AuthResult
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *httpClient) Profile(ctx context.Context) (*Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := h.parseResponse(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *httpClient) CreateNote(ctx context.Context, draft NoteDraft) (*Note, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/notes", draft)
	if err != nil {
		return nil, err
	}

	var note Note
	if err := h.parseResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (h *httpClient) GetNote(ctx context.Context, id int64) (*Note, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var note Note
	if err := h.parseResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (h *httpClient) ListNotes(ctx context.Context, page, size int) (*NotePage, error) {
	path := fmt.Sprintf("/api/notes?page=%d&size=%d", page, size)
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result NotePage
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (h *httpClient) UpdateNote(ctx context.Context, id int64, draft NoteDraft) (*Note, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%d", id), draft)
	if err != nil {
		return nil, err
	}

	var note Note
	if err := h.parseResponse(resp, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (h *httpClient) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListVersions(ctx context.Context, id int64) ([]NoteVersion, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d/versions", id), nil)
	if err != nil {
		return nil, err
	}

	var versions []NoteVersion
	if err := h.parseResponse(resp, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}
