package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"locket-admin/internal/adapter/usecase"
	"locket-admin/internal/config/configs"
	"locket-admin/internal/core/domain"
	"locket-admin/internal/metrics"
)

// LoginPath is where the dashboard sends an operator whose session ended.
const LoginPath = "/admin/login"

// TrafficSimulator adds sample traffic to an ad. Only the demo backend
// provides one.
type TrafficSimulator interface {
	SimulateTraffic(ctx context.Context, id string) (domain.Ad, error)
}

// Handler is the inbound HTTP adapter of the console. It resolves the
// operator session from the session cookie and exposes the session's
// workspace and the admin pass-through as a JSON API under /admin/api.
type Handler struct {
	sessions  *usecase.SessionUseCase
	nav       *Navigator
	simulator TrafficSimulator
	cookie    configs.Session
	logger    *slog.Logger
	router    chi.Router
}

// Option customises a Handler.
type Option func(*Handler)

// WithDemo marks every API response as demo data and enables the traffic
// simulation endpoint.
func WithDemo(sim TrafficSimulator) Option {
	return func(h *Handler) { h.simulator = sim }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(sessions *usecase.SessionUseCase, nav *Navigator, cookie configs.Session, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{sessions: sessions, nav: nav, cookie: cookie, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/admin/api", func(r chi.Router) {
		if h.simulator != nil {
			r.Use(demoSource)
		}

		r.Post("/session", h.handleLogin)
		r.Delete("/session", h.handleLogout)
		r.Get("/public/plans", h.handlePublicPlans)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/session", h.handleSessionInfo)
			r.Put("/session/preferences", h.handlePreferences)

			r.Put("/profile", h.handleUpdateProfile)
			r.Post("/profile/password", h.handleChangePassword)
			r.Post("/profile/email", h.handleChangeEmail)

			r.Route("/ads", func(r chi.Router) {
				r.Get("/", h.handleListAds)
				r.Post("/", h.handleCreateAd)
				r.Post("/reload", h.handleReloadAds)
				r.Get("/draft", h.handleDraft)
				r.Post("/image", h.handleImage)
				r.Get("/{id}", h.handleGetAd)
				r.Put("/{id}", h.handleUpdateAd)
				r.Patch("/{id}/frequency", h.handlePatchFrequency)
				r.Post("/{id}/toggle", h.handleToggleAd)
				r.Delete("/{id}", h.handleDeleteAd)
				if h.simulator != nil {
					r.Post("/{id}/simulate", h.handleSimulate)
				}
			})

			r.Get("/users", h.handleListUsers)
			r.Put("/users/{id}/ban", h.handleBanUser(true))
			r.Put("/users/{id}/unban", h.handleBanUser(false))

			r.Get("/posts", h.handleListPosts)
			r.Delete("/posts/{id}", h.handleDeletePost)

			r.Get("/plans", h.handleListPlans)
			r.Post("/plans", h.handleCreatePlan)
			r.Put("/plans/{id}", h.handleUpdatePlan)
			r.Put("/plans/{id}/activate", h.handleSetPlanActive(true))
			r.Delete("/plans/{id}", h.handleSetPlanActive(false))

			r.Get("/refunds/pending", h.handlePendingRefunds)
			r.Put("/refunds/{id}/process", h.handleProcessRefund)

			r.Get("/reports/revenue", h.handleRevenueReport)
			r.Get("/reports/ads/{id}", h.handleAdPerformance)

			r.Get("/audit-logs", h.handleListAuditLogs)
			r.Get("/audit-logs/{id}", h.handleGetAuditLog)

			r.Get("/dashboard/summary", h.handleDashboardSummary)
			r.Get("/dashboard/daily-revenue", h.handleDailyRevenue)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
