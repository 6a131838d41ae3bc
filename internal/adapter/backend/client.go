package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"locket-admin/internal/config/configs"
	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
	"locket-admin/internal/metrics"
)

// Paths that are called without a bearer token.
var publicPaths = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
	"/api/plans":         true,
}

// Client talks to the Locket REST backend. A Client obtained from NewClient
// has no session; Bind returns a copy that authenticates as a session and
// reports rejected tokens back to it.
type Client struct {
	base       *url.URL
	http       *http.Client
	guard      port.SessionGuard
	hardDelete bool
	logger     *slog.Logger
}

// NewClient builds a client from configuration. The request timeout is
// only set when configured; by default requests wait for the backend.
func NewClient(cfg configs.Backend, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	return &Client{
		base:       &base,
		http:       &http.Client{Timeout: cfg.Timeout},
		hardDelete: cfg.HardDelete(),
		logger:     logger,
	}
}

// Bind returns a client that sends guard's token and invalidates guard
// when the backend answers 401 or 403.
func (c *Client) Bind(guard port.SessionGuard) *Client {
	cp := *c
	cp.guard = guard
	return &cp
}

// envelope is the wrapper the backend puts around every JSON response.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        any
	rawBody     io.Reader
	contentType string
}

// do sends req and decodes the envelope's data into out. Failures are
// mapped onto the domain error taxonomy.
func (c *Client) do(ctx context.Context, req request, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.BackendCallDuration.WithLabelValues(req.op).Observe(time.Since(start).Seconds())
		metrics.BackendCallsTotal.WithLabelValues(req.op, outcome(err)).Inc()
	}()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Warn("backend unreachable",
			slog.String("op", req.op),
			slog.String("url", c.base.String()),
			slog.Any("error", err))
		return fmt.Errorf("%s: %w", req.op, domain.ErrServerUnreachable)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", req.op, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Public endpoints carry no token, so a rejection there is about the
		// submitted credentials.
		if publicPaths[req.path] {
			return &domain.APIError{Status: resp.StatusCode, Message: parseEnvelope(payload).message()}
		}
		c.logger.Info("backend rejected session token",
			slog.String("op", req.op),
			slog.Int("status", resp.StatusCode))
		if c.guard != nil {
			c.guard.Invalidate()
		}
		return fmt.Errorf("%s: %w", req.op, domain.ErrUnauthorized)
	}

	env := parseEnvelope(payload)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.APIError{Status: resp.StatusCode, Message: env.message()}
	}
	if env.Success != nil && !*env.Success {
		return &domain.APIError{Status: resp.StatusCode, Message: env.message()}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.op, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	u := c.base.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	body := req.rawBody
	contentType := req.contentType
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if !publicPaths[req.path] && c.guard != nil {
		if token := c.guard.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return httpReq, nil
}

// parseEnvelope accepts both enveloped and bare JSON bodies. A body that
// is not an envelope becomes the data itself.
func parseEnvelope(payload []byte) envelope {
	var env envelope
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return env
	}
	if trimmed[0] != '{' {
		env.Data = trimmed
		return env
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return env
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}
	}
	if _, hasData := keys["data"]; !hasData {
		env.Data = trimmed
	}
	return env
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func outcome(err error) string {
	var apiErr *domain.APIError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrUnauthorized):
		return metrics.OutcomeUnauthorized
	case errors.Is(err, domain.ErrServerUnreachable):
		return metrics.OutcomeUnreachable
	case errors.As(err, &apiErr):
		return metrics.OutcomeAPIError + "_" + strconv.Itoa(apiErr.Status/100) + "xx"
	default:
		return "error"
	}
}

// unwrapField decodes raw into out, accepting either the value itself or
// an object that carries it under key.
func unwrapField(raw json.RawMessage, key string, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keys); err == nil {
			if inner, ok := keys[key]; ok && !strings.EqualFold(string(inner), "null") {
				return json.Unmarshal(inner, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}

func escape(id string) string { return url.PathEscape(id) }
