package httpadapter

import (
	"net/http"

	"locket-admin/internal/core/domain"
)

type sessionResponse struct {
	domain.Session
	LastError string `json:"lastError,omitempty"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	s, err := h.sessions.Login(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err, "Login failed")
		return
	}
	info := s.Info()
	h.setSessionCookie(w, info)
	writeJSON(w, http.StatusCreated, sessionResponse{Session: info, LastError: s.Ads().LastError()})
}

// handleLogout ends the session named by the cookie. It always succeeds
// so a stale cookie can be cleared.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if id := h.sessionID(r); id != "" {
		if err := h.sessions.Logout(r.Context(), id); err != nil {
			h.writeError(w, r, err, "Logout failed")
			return
		}
	}
	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	s := session(r)
	writeJSON(w, http.StatusOK, sessionResponse{Session: s.Info(), LastError: s.Ads().LastError()})
}

func (h *Handler) handlePreferences(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DarkMode *bool `json:"darkMode"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.DarkMode == nil {
		h.writeError(w, r, domain.ValidationErrors{"darkMode": "darkMode is required"}, "")
		return
	}
	info, err := h.sessions.SetDarkMode(r.Context(), session(r).ID(), *req.DarkMode)
	if err != nil {
		h.writeError(w, r, err, "Failed to save preferences")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: info})
}
