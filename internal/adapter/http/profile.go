package httpadapter

import (
	"net/http"

	"locket-admin/internal/core/domain"
)

type profileResponse struct {
	User    domain.User    `json:"user"`
	Session domain.Session `json:"session"`
}

// handleUpdateProfile edits the administrator on the backend, then shows
// the new display name in the session.
func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update domain.ProfileUpdate
	if !decodeJSON(w, r, &update) {
		return
	}
	s := session(r)
	user, err := s.Admin().UpdateProfile(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err, "Failed to update profile")
		return
	}
	info, err := h.sessions.SetDisplayName(r.Context(), s.ID(), update.DisplayName)
	if err != nil {
		h.writeError(w, r, err, "Failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: user, Session: info})
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	err := session(r).Admin().ChangePassword(r.Context(), domain.PasswordChange(req))
	if err != nil {
		h.writeError(w, r, err, "Failed to change password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleChangeEmail(w http.ResponseWriter, r *http.Request) {
	var change domain.EmailChange
	if !decodeJSON(w, r, &change) {
		return
	}
	if err := session(r).Admin().ChangeEmail(r.Context(), change); err != nil {
		h.writeError(w, r, err, "Failed to change email")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePublicPlans serves the end-user plan catalogue without a session.
func (h *Handler) handlePublicPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.sessions.PublicPlans(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to load plans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}
