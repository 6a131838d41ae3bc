package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleRevenueReport returns the revenue report for the optional
// startDate and endDate query parameters (YYYY-MM-DD). Without them the
// last month is reported; a start after the end is rejected with 400.
func (h *Handler) handleRevenueReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := session(r).Admin().RevenueReport(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load revenue report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleAdPerformance is the per-ad counterpart of handleRevenueReport.
func (h *Handler) handleAdPerformance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := session(r).Admin().AdPerformanceReport(r.Context(), chi.URLParam(r, "id"), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load ad performance report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := session(r).Admin().DashboardSummary(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Failed to load dashboard")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleDailyRevenue accepts an optional days query parameter; the
// default window applies when it is missing or zero.
func (h *Handler) handleDailyRevenue(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	daily, err := session(r).Admin().DailyRevenue(r.Context(), days)
	if err != nil {
		h.writeError(w, r, err, "Failed to load daily revenue")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dailyRevenue": daily})
}
