package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

// DefaultRevenueDays is the dashboard chart window when none is given.
const DefaultRevenueDays = 30

// listParams are the query parameters forwarded to the backend's paginated
// list endpoints.
var listParams = []string{"page", "limit", "search", "status", "role", "sort", "order", "actionType", "targetResource", "startDate", "endDate"}

// AdminUseCase is the part of the console that is a thin pass-through to
// the backend: users, posts, plans, refunds, reports, audit logs and the
// dashboard. It checks request shapes before anything is sent.
type AdminUseCase struct {
	backend port.AdminBackend
	logger  *slog.Logger
	now     func() time.Time
}

func NewAdminUseCase(backend port.AdminBackend, logger *slog.Logger, now func() time.Time) *AdminUseCase {
	if now == nil {
		now = time.Now
	}
	return &AdminUseCase{backend: backend, logger: logger, now: now}
}

// sanitizeListParams keeps the known list parameters and fills in the
// default page and page size.
func sanitizeListParams(in url.Values) url.Values {
	out := url.Values{}
	for _, k := range listParams {
		if v := strings.TrimSpace(in.Get(k)); v != "" {
			out.Set(k, v)
		}
	}
	if out.Get("page") == "" {
		out.Set("page", "1")
	}
	if out.Get("limit") == "" {
		out.Set("limit", fmt.Sprint(domain.DefaultPageSize))
	}
	return out
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{field: field + " is required"}
	}
	return nil
}

func (u *AdminUseCase) ListUsers(ctx context.Context, params url.Values) (domain.Listing[domain.User], error) {
	return u.backend.ListUsers(ctx, sanitizeListParams(params))
}

// SetUserBanned bans or unbans a user.
func (u *AdminUseCase) SetUserBanned(ctx context.Context, id string, banned bool) (domain.User, error) {
	if err := requireID("userId", id); err != nil {
		return domain.User{}, err
	}
	if banned {
		return u.backend.BanUser(ctx, id)
	}
	return u.backend.UnbanUser(ctx, id)
}

func (u *AdminUseCase) ListPosts(ctx context.Context, params url.Values) (domain.Listing[domain.Post], error) {
	return u.backend.ListPosts(ctx, sanitizeListParams(params))
}

// DeletePost removes a post after confirm agrees.
func (u *AdminUseCase) DeletePost(ctx context.Context, id string, confirm port.Confirmer) error {
	if err := requireID("postId", id); err != nil {
		return err
	}
	if confirm == nil || !confirm.Confirm(fmt.Sprintf("Delete post %s?", id)) {
		return domain.ErrNotConfirmed
	}
	return u.backend.DeletePost(ctx, id)
}

func (u *AdminUseCase) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return u.backend.ListPlans(ctx)
}

func (u *AdminUseCase) CreatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	if err := domain.ValidatePlan(plan).Err(); err != nil {
		return domain.Plan{}, err
	}
	plan.ID = ""
	return u.backend.CreatePlan(ctx, plan)
}

func (u *AdminUseCase) UpdatePlan(ctx context.Context, id string, plan domain.Plan) (domain.Plan, error) {
	if err := requireID("planId", id); err != nil {
		return domain.Plan{}, err
	}
	if err := domain.ValidatePlan(plan).Err(); err != nil {
		return domain.Plan{}, err
	}
	plan.ID = id
	return u.backend.UpdatePlan(ctx, id, plan)
}

// SetPlanActive activates or deactivates a plan.
func (u *AdminUseCase) SetPlanActive(ctx context.Context, id string, active bool) error {
	if err := requireID("planId", id); err != nil {
		return err
	}
	if active {
		return u.backend.ActivatePlan(ctx, id)
	}
	return u.backend.DeactivatePlan(ctx, id)
}

func (u *AdminUseCase) PendingRefunds(ctx context.Context) ([]domain.Refund, error) {
	return u.backend.PendingRefunds(ctx)
}

// ProcessRefund records the administrator's decision on a refund. The
// backend performs the refund itself.
func (u *AdminUseCase) ProcessRefund(ctx context.Context, id string, req domain.RefundProcessing) (domain.Refund, error) {
	if err := requireID("refundId", id); err != nil {
		return domain.Refund{}, err
	}
	req.Status = domain.RefundDecision(strings.ToUpper(strings.TrimSpace(string(req.Status))))
	req.AdminNote = strings.TrimSpace(req.AdminNote)
	req.ExternalRefundID = strings.TrimSpace(req.ExternalRefundID)
	if err := req.Validate(); err != nil {
		return domain.Refund{}, err
	}
	refund, err := u.backend.ProcessRefund(ctx, id, req)
	if err != nil {
		return domain.Refund{}, err
	}
	u.logger.Info("refund processed", slog.String("refund", id), slog.String("status", string(req.Status)))
	return refund, nil
}

// RevenueReport fetches the revenue report for [start, end]. Empty bounds
// default to the last month; a start after the end is rejected without a
// request.
func (u *AdminUseCase) RevenueReport(ctx context.Context, start, end string) (domain.RevenueReport, error) {
	r, err := domain.NewDateRange(start, end, u.now())
	if err != nil {
		return domain.RevenueReport{}, err
	}
	return u.backend.RevenueReport(ctx, r)
}

func (u *AdminUseCase) AdPerformanceReport(ctx context.Context, adID, start, end string) (domain.AdPerformanceReport, error) {
	if err := requireID("adId", adID); err != nil {
		return domain.AdPerformanceReport{}, err
	}
	r, err := domain.NewDateRange(start, end, u.now())
	if err != nil {
		return domain.AdPerformanceReport{}, err
	}
	return u.backend.AdPerformanceReport(ctx, adID, r)
}

func (u *AdminUseCase) ListAuditLogs(ctx context.Context, params url.Values) (domain.Listing[domain.AuditLog], error) {
	return u.backend.ListAuditLogs(ctx, sanitizeListParams(params))
}

func (u *AdminUseCase) GetAuditLog(ctx context.Context, id string) (domain.AuditLog, error) {
	if err := requireID("logId", id); err != nil {
		return domain.AuditLog{}, err
	}
	return u.backend.GetAuditLog(ctx, id)
}

func (u *AdminUseCase) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	return u.backend.DashboardSummary(ctx)
}

// DailyRevenue returns the revenue chart for the last days days, or
// DefaultRevenueDays when days is not positive.
func (u *AdminUseCase) DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenue, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}
	return u.backend.DailyRevenue(ctx, days)
}

// UpdateProfile sends the trimmed profile edit.
func (u *AdminUseCase) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	update = update.Normalize()
	if err := update.Validate().Err(); err != nil {
		return domain.User{}, err
	}
	return u.backend.UpdateProfile(ctx, update)
}

// ChangePassword checks that the new password was typed twice the same
// before anything is sent.
func (u *AdminUseCase) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	if err := change.Validate().Err(); err != nil {
		return err
	}
	if err := u.backend.ChangePassword(ctx, change); err != nil {
		return err
	}
	u.logger.Info("administrator password changed")
	return nil
}

func (u *AdminUseCase) ChangeEmail(ctx context.Context, change domain.EmailChange) error {
	change.NewEmail = strings.TrimSpace(change.NewEmail)
	if err := change.Validate().Err(); err != nil {
		return err
	}
	return u.backend.ChangeEmail(ctx, change)
}
