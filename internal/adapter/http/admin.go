package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"locket-admin/internal/core/domain"
)

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := session(r).Admin().ListUsers(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err, "Failed to load users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleBanUser(banned bool) http.HandlerFunc {
	fallback := "Failed to unban user"
	if banned {
		fallback = "Failed to ban user"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := session(r).Admin().SetUserBanned(r.Context(), chi.URLParam(r, "id"), banned)
		if err != nil {
			h.writeError(w, r, err, fallback)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := session(r).Admin().ListPosts(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err, "Failed to load posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := session(r).Admin().DeletePost(r.Context(), chi.URLParam(r, "id"), confirmation(r)); err != nil {
		h.writeError(w, r, err, "Failed to delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := session(r).Admin().ListPlans(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to load plans")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"plans": plans})
}

func (h *Handler) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan domain.Plan
	if !decodeJSON(w, r, &plan) {
		return
	}
	created, err := session(r).Admin().CreatePlan(r.Context(), plan)
	if err != nil {
		h.writeError(w, r, err, "Failed to create plan")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	var plan domain.Plan
	if !decodeJSON(w, r, &plan) {
		return
	}
	updated, err := session(r).Admin().UpdatePlan(r.Context(), chi.URLParam(r, "id"), plan)
	if err != nil {
		h.writeError(w, r, err, "Failed to update plan")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleSetPlanActive(active bool) http.HandlerFunc {
	fallback := "Failed to deactivate plan"
	if active {
		fallback = "Failed to activate plan"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := session(r).Admin().SetPlanActive(r.Context(), chi.URLParam(r, "id"), active); err != nil {
			h.writeError(w, r, err, fallback)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handlePendingRefunds(w http.ResponseWriter, r *http.Request) {
	refunds, err := session(r).Admin().PendingRefunds(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to load refunds")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"refunds": refunds})
}

func (h *Handler) handleProcessRefund(w http.ResponseWriter, r *http.Request) {
	var req domain.RefundProcessing
	if !decodeJSON(w, r, &req) {
		return
	}
	refund, err := session(r).Admin().ProcessRefund(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err, "Failed to process refund")
		return
	}
	writeJSON(w, http.StatusOK, refund)
}

func (h *Handler) handleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := session(r).Admin().ListAuditLogs(r.Context(), r.URL.Query())
	if err != nil {
		h.writeError(w, r, err, "Failed to load audit logs")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) handleGetAuditLog(w http.ResponseWriter, r *http.Request) {
	log, err := session(r).Admin().GetAuditLog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load audit log")
		return
	}
	writeJSON(w, http.StatusOK, log)
}
