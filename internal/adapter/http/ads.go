package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"locket-admin/internal/core/domain"
)

type adListResponse struct {
	domain.Page[domain.Ad]
	Stats     domain.AdStats `json:"stats"`
	LastError string         `json:"lastError,omitempty"`
}

// handleListAds returns one page of the workspace's ads with the stats of
// the whole filtered list. Accepts optional status, placement, page and
// limit query parameters.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	h.writeAdList(w, r, http.StatusOK)
}

// handleReloadAds refetches the list from the backend, then returns it
// like handleListAds.
func (h *Handler) handleReloadAds(w http.ResponseWriter, r *http.Request) {
	if err := session(r).Ads().Load(r.Context()); err != nil {
		h.writeError(w, r, err, "Failed to load ads")
		return
	}
	h.writeAdList(w, r, http.StatusOK)
}

func (h *Handler) writeAdList(w http.ResponseWriter, r *http.Request, status int) {
	q := r.URL.Query()
	filter, err := domain.ParseAdFilter(q.Get("status"), q.Get("placement"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	ads := session(r).Ads()
	list := ads.List(filter)
	writeJSON(w, status, adListResponse{
		Page:      domain.Paginate(list, page, limit),
		Stats:     domain.ComputeStats(list),
		LastError: ads.LastError(),
	})
}

func (h *Handler) handleDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, session(r).Ads().Draft())
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	ad, err := session(r).Ads().Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Ad not found")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

// handleCreateAd decodes the body over the default draft, so omitted
// fields keep their defaults.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	ads := session(r).Ads()
	draft := ads.Draft()
	if !decodeJSON(w, r, &draft) {
		return
	}
	ad, err := ads.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err, "Failed to create ad")
		return
	}
	writeJSON(w, http.StatusCreated, ad)
}

// handleUpdateAd decodes the body over the current record, so the body may
// carry only the fields being edited.
func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	ads := session(r).Ads()
	id := chi.URLParam(r, "id")
	draft, err := ads.Get(id)
	if err != nil {
		h.writeError(w, r, err, "Ad not found")
		return
	}
	if !decodeJSON(w, r, &draft) {
		return
	}
	ad, err := ads.Update(r.Context(), id, draft)
	if err != nil {
		h.writeError(w, r, err, "Failed to update ad")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handlePatchFrequency(w http.ResponseWriter, r *http.Request) {
	var patch domain.FrequencyPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	ad, err := session(r).Ads().PatchFrequency(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, r, err, "Failed to update frequency")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) handleToggleAd(w http.ResponseWriter, r *http.Request) {
	ad, err := session(r).Ads().ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to update ad status")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

// handleDeleteAd requires the confirm header or query parameter; without
// it nothing is sent and 409 is returned.
func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := session(r).Ads().Delete(r.Context(), chi.URLParam(r, "id"), confirmation(r)); err != nil {
		h.writeError(w, r, err, "Failed to delete ad")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSimulate adds demo traffic to an ad and reloads the workspace so
// the new counters show up in the list.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	ads := session(r).Ads()
	id := chi.URLParam(r, "id")
	if _, err := ads.Get(id); err != nil {
		h.writeError(w, r, err, "Ad not found")
		return
	}
	ad, err := h.simulator.SimulateTraffic(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "Failed to simulate traffic")
		return
	}
	if err = ads.Load(r.Context()); err != nil {
		h.writeError(w, r, err, "Failed to load ads")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}
