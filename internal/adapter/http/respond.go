package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"locket-admin/internal/core/domain"
)

type errorResponse struct {
	Error    string            `json:"error"`
	Errors   map[string]string `json:"errors,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
	Expired  bool              `json:"expired,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto a status code and a JSON body carrying the
// message shown to the operator. fallback is that message when err has
// nothing presentable.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	resp := errorResponse{Error: domain.UserMessage(err, fallback)}
	var (
		status int
		verrs  domain.ValidationErrors
		apiErr *domain.APIError
	)
	switch {
	case errors.As(err, &verrs):
		status = http.StatusUnprocessableEntity
		resp.Errors = verrs
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrWorkspaceClosed):
		status = http.StatusUnauthorized
		resp.Error = domain.UserMessage(domain.ErrUnauthorized, fallback)
		resp.Redirect = LoginPath
		resp.Expired = h.nav.Consume(h.sessionID(r))
		h.clearSessionCookie(w)
	case errors.Is(err, domain.ErrServerUnreachable):
		status = http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		status = apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
	case errors.Is(err, domain.ErrNotConfirmed), errors.Is(err, domain.ErrStaleResponse):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidImage):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrImageTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidDateRange):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	default:
		status = http.StatusInternalServerError
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	writeJSON(w, status, resp)
}

// badRequest reports malformed input that never reached a use case.
func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
