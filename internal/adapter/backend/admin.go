package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"locket-admin/internal/core/domain"
)

// Login exchanges credentials for a bearer token. It is sent without
// authentication.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var res domain.LoginResult
	err := c.do(ctx, request{op: "login", method: http.MethodPost, path: "/api/auth/login", body: creds}, &res)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if res.Token == "" {
		return domain.LoginResult{}, &domain.APIError{Status: http.StatusOK, Message: "login response carried no token"}
	}
	return res, nil
}

// getInto performs a GET and decodes the value found under key (or the
// data itself) into out.
func (c *Client) getInto(ctx context.Context, op, path string, query url.Values, key string, out any) error {
	return c.sendInto(ctx, request{op: op, method: http.MethodGet, path: path, query: query}, key, out)
}

func (c *Client) sendInto(ctx context.Context, req request, key string, out any) error {
	var raw json.RawMessage
	if err := c.do(ctx, req, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	if err := unwrapField(raw, key, out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", req.op, key, err)
	}
	return nil
}

func (c *Client) ListUsers(ctx context.Context, params url.Values) (domain.Listing[domain.User], error) {
	var l domain.Listing[domain.User]
	err := c.do(ctx, request{op: "list_users", method: http.MethodGet, path: "/api/admin/users", query: params}, &l)
	return l, err
}

func (c *Client) BanUser(ctx context.Context, id string) (domain.User, error) {
	return c.setUserBan(ctx, "ban_user", id, "ban")
}

func (c *Client) UnbanUser(ctx context.Context, id string) (domain.User, error) {
	return c.setUserBan(ctx, "unban_user", id, "unban")
}

func (c *Client) setUserBan(ctx context.Context, op, id, action string) (domain.User, error) {
	var u domain.User
	err := c.sendInto(ctx, request{
		op:     op,
		method: http.MethodPut,
		path:   "/api/admin/users/" + escape(id) + "/" + action,
	}, "user", &u)
	return u, err
}

func (c *Client) ListPosts(ctx context.Context, params url.Values) (domain.Listing[domain.Post], error) {
	var l domain.Listing[domain.Post]
	err := c.do(ctx, request{op: "list_posts", method: http.MethodGet, path: "/api/admin/posts", query: params}, &l)
	return l, err
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, request{op: "delete_post", method: http.MethodDelete, path: "/api/admin/posts/" + escape(id)}, nil)
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	plans := []domain.Plan{}
	err := c.getInto(ctx, "list_plans", "/api/admin/plans", nil, "plans", &plans)
	return plans, err
}

func (c *Client) CreatePlan(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	var out domain.Plan
	err := c.sendInto(ctx, request{op: "create_plan", method: http.MethodPost, path: "/api/admin/plans", body: plan}, "plan", &out)
	return out, err
}

func (c *Client) UpdatePlan(ctx context.Context, id string, plan domain.Plan) (domain.Plan, error) {
	var out domain.Plan
	err := c.sendInto(ctx, request{op: "update_plan", method: http.MethodPut, path: "/api/admin/plans/" + escape(id), body: plan}, "plan", &out)
	return out, err
}

func (c *Client) ActivatePlan(ctx context.Context, id string) error {
	return c.do(ctx, request{op: "activate_plan", method: http.MethodPut, path: "/api/admin/plans/" + escape(id) + "/activate"}, nil)
}

// DeactivatePlan uses DELETE, which the backend treats as a soft
// deactivation.
func (c *Client) DeactivatePlan(ctx context.Context, id string) error {
	return c.do(ctx, request{op: "deactivate_plan", method: http.MethodDelete, path: "/api/admin/plans/" + escape(id)}, nil)
}

func (c *Client) PendingRefunds(ctx context.Context) ([]domain.Refund, error) {
	refunds := []domain.Refund{}
	err := c.getInto(ctx, "pending_refunds", "/api/admin/refunds/pending", nil, "refunds", &refunds)
	return refunds, err
}

func (c *Client) ProcessRefund(ctx context.Context, id string, req domain.RefundProcessing) (domain.Refund, error) {
	var out domain.Refund
	err := c.sendInto(ctx, request{
		op:     "process_refund",
		method: http.MethodPut,
		path:   "/api/admin/refunds/" + escape(id) + "/process",
		body:   req,
	}, "refund", &out)
	return out, err
}

func (c *Client) RevenueReport(ctx context.Context, r domain.DateRange) (domain.RevenueReport, error) {
	var out domain.RevenueReport
	q := url.Values{"startDate": {r.StartDate()}, "endDate": {r.EndDate()}}
	err := c.do(ctx, request{op: "revenue_report", method: http.MethodGet, path: "/api/admin/reports/revenue", query: q}, &out)
	return out, err
}

func (c *Client) AdPerformanceReport(ctx context.Context, adID string, r domain.DateRange) (domain.AdPerformanceReport, error) {
	var out domain.AdPerformanceReport
	q := url.Values{"adId": {adID}, "startDate": {r.StartDate()}, "endDate": {r.EndDate()}}
	err := c.do(ctx, request{op: "ad_performance_report", method: http.MethodGet, path: "/api/admin/reports/ad_performance", query: q}, &out)
	return out, err
}

func (c *Client) ListAuditLogs(ctx context.Context, params url.Values) (domain.Listing[domain.AuditLog], error) {
	var l domain.Listing[domain.AuditLog]
	err := c.do(ctx, request{op: "list_audit_logs", method: http.MethodGet, path: "/api/admin/audit-logs", query: params}, &l)
	return l, err
}

func (c *Client) GetAuditLog(ctx context.Context, id string) (domain.AuditLog, error) {
	var out domain.AuditLog
	err := c.getInto(ctx, "get_audit_log", "/api/admin/audit-logs/"+escape(id), nil, "log", &out)
	return out, err
}

func (c *Client) DashboardSummary(ctx context.Context) (domain.DashboardSummary, error) {
	var out domain.DashboardSummary
	err := c.do(ctx, request{op: "dashboard_summary", method: http.MethodGet, path: "/api/admin/dashboard/summary"}, &out)
	return out, err
}

func (c *Client) DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenue, error) {
	points := []domain.DailyRevenue{}
	q := url.Values{"days": {strconv.Itoa(days)}}
	err := c.getInto(ctx, "daily_revenue", "/api/admin/dashboard/daily-revenue", q, "dailyRevenue", &points)
	return points, err
}

// UpdateProfile edits the signed-in administrator and returns the updated
// user when the backend echoes it.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error) {
	var out domain.User
	err := c.sendInto(ctx, request{op: "update_profile", method: http.MethodPut, path: "/api/users/profile", body: update}, "user", &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	return c.do(ctx, request{op: "change_password", method: http.MethodPost, path: "/api/users/change-password", body: change}, nil)
}

func (c *Client) ChangeEmail(ctx context.Context, change domain.EmailChange) error {
	return c.do(ctx, request{op: "change_email", method: http.MethodPost, path: "/api/users/change-email", body: change}, nil)
}

// PublicPlans lists the active plans. It is sent without authentication.
func (c *Client) PublicPlans(ctx context.Context) ([]domain.Plan, error) {
	plans := []domain.Plan{}
	err := c.getInto(ctx, "public_plans", "/api/plans", nil, "plans", &plans)
	return plans, err
}
