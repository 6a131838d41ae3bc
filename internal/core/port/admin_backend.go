package port

import (
	"context"
	"net/url"

	"locket-admin/internal/core/domain"
)

// AdminBackend is the rest of the backend's administrative surface.
type AdminBackend interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)

	ListUsers(ctx context.Context, params url.Values) (domain.Listing[domain.User], error)
	BanUser(ctx context.Context, id string) (domain.User, error)
	UnbanUser(ctx context.Context, id string) (domain.User, error)

	ListPosts(ctx context.Context, params url.Values) (domain.Listing[domain.Post], error)
	DeletePost(ctx context.Context, id string) error

	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, plan domain.Plan) (domain.Plan, error)
	ActivatePlan(ctx context.Context, id string) error
	DeactivatePlan(ctx context.Context, id string) error

	PendingRefunds(ctx context.Context) ([]domain.Refund, error)
	ProcessRefund(ctx context.Context, id string, req domain.RefundProcessing) (domain.Refund, error)

	RevenueReport(ctx context.Context, r domain.DateRange) (domain.RevenueReport, error)
	AdPerformanceReport(ctx context.Context, adID string, r domain.DateRange) (domain.AdPerformanceReport, error)

	ListAuditLogs(ctx context.Context, params url.Values) (domain.Listing[domain.AuditLog], error)
	GetAuditLog(ctx context.Context, id string) (domain.AuditLog, error)

	DashboardSummary(ctx context.Context) (domain.DashboardSummary, error)
	DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenue, error)

	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
	ChangePassword(ctx context.Context, change domain.PasswordChange) error
	ChangeEmail(ctx context.Context, change domain.EmailChange) error

	// PublicPlans is the plan catalogue shown to end users. It needs no
	// token.
	PublicPlans(ctx context.Context) ([]domain.Plan, error)
}
