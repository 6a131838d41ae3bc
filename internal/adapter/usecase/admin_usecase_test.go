package usecase

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
	"locket-admin/internal/core/port/mocks"
)

func newTestAdmin(t *testing.T) (*AdminUseCase, *mocks.MockAdminBackend) {
	t.Helper()
	backend := mocks.NewMockAdminBackend(t)
	return NewAdminUseCase(backend, discardLogger(), func() time.Time { return testNow }), backend
}

func TestRevenueReportDefaultsToLastMonth(t *testing.T) {
	u, backend := newTestAdmin(t)
	backend.EXPECT().RevenueReport(mock.Anything, mock.MatchedBy(func(r domain.DateRange) bool {
		return r.StartDate() == "2025-04-20" && r.EndDate() == "2025-05-20"
	})).Return(domain.RevenueReport{}, nil).Once()

	_, err := u.RevenueReport(context.Background(), "", "")
	require.NoError(t, err)
}

func TestRevenueReportRejectsInvertedRange(t *testing.T) {
	u, _ := newTestAdmin(t)
	_, err := u.RevenueReport(context.Background(), "2025-06-01", "2025-05-01")
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestAdPerformanceRequiresAd(t *testing.T) {
	u, _ := newTestAdmin(t)
	_, err := u.AdPerformanceReport(context.Background(), "", "2025-05-01", "2025-05-02")
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "adId")
}

func TestProcessRefund(t *testing.T) {
	u, backend := newTestAdmin(t)
	backend.EXPECT().ProcessRefund(mock.Anything, "r1", domain.RefundProcessing{
		Status:           domain.RefundApproved,
		AdminNote:        "ok",
		ExternalRefundID: "ext-9",
	}).Return(domain.Refund{ID: "r1", Status: "APPROVED", Amount: decimal.RequireFromString("99000")}, nil).Once()

	refund, err := u.ProcessRefund(context.Background(), "r1", domain.RefundProcessing{
		Status:           "approved",
		AdminNote:        " ok ",
		ExternalRefundID: "ext-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", refund.Status)

	_, err = u.ProcessRefund(context.Background(), "r1", domain.RefundProcessing{Status: "MAYBE"})
	require.Error(t, err)

	_, err = u.ProcessRefund(context.Background(), "r1", domain.RefundProcessing{Status: domain.RefundRejected, ExternalRefundID: "x"})
	require.Error(t, err)
}

func TestCreatePlanValidates(t *testing.T) {
	u, backend := newTestAdmin(t)

	_, err := u.CreatePlan(context.Background(), domain.Plan{Name: "", Price: decimal.NewFromInt(-1), Interval: "fortnight"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 4)

	plan := domain.Plan{Name: "Gold", Price: decimal.NewFromInt(49000), Interval: "month", IntervalCount: 1}
	backend.EXPECT().CreatePlan(mock.Anything, plan).Return(domain.Plan{ID: "p1", Name: "Gold"}, nil).Once()
	got, err := u.CreatePlan(context.Background(), plan)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
}

func TestSetPlanActive(t *testing.T) {
	u, backend := newTestAdmin(t)
	backend.EXPECT().ActivatePlan(mock.Anything, "p1").Return(nil).Once()
	backend.EXPECT().DeactivatePlan(mock.Anything, "p2").Return(nil).Once()

	require.NoError(t, u.SetPlanActive(context.Background(), "p1", true))
	require.NoError(t, u.SetPlanActive(context.Background(), "p2", false))
}

func TestListUsersSanitizesParams(t *testing.T) {
	u, backend := newTestAdmin(t)
	backend.EXPECT().ListUsers(mock.Anything, url.Values{
		"page":   {"1"},
		"limit":  {"10"},
		"search": {"ann"},
	}).Return(domain.Listing[domain.User]{}, nil).Once()

	_, err := u.ListUsers(context.Background(), url.Values{"search": {" ann "}, "evil": {"1"}})
	require.NoError(t, err)
}

func TestDeletePostNeedsConfirmation(t *testing.T) {
	u, backend := newTestAdmin(t)

	err := u.DeletePost(context.Background(), "p1", port.ConfirmFunc(func(string) bool { return false }))
	require.ErrorIs(t, err, domain.ErrNotConfirmed)

	backend.EXPECT().DeletePost(mock.Anything, "p1").Return(nil).Once()
	require.NoError(t, u.DeletePost(context.Background(), "p1", port.ConfirmFunc(func(string) bool { return true })))
}

func TestDailyRevenueDefaultWindow(t *testing.T) {
	u, backend := newTestAdmin(t)
	backend.EXPECT().DailyRevenue(mock.Anything, DefaultRevenueDays).Return(nil, nil).Once()
	_, err := u.DailyRevenue(context.Background(), 0)
	require.NoError(t, err)
}

func TestPasswordChangeMismatchMakesNoCall(t *testing.T) {
	u, _ := newTestAdmin(t)
	err := u.ChangePassword(context.Background(), domain.PasswordChange{CurrentPassword: "old", NewPassword: "a", ConfirmPassword: "b"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "new passwords do not match", verrs["confirmPassword"])
}

func TestPasswordChangeSent(t *testing.T) {
	u, backend := newTestAdmin(t)
	change := domain.PasswordChange{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}
	backend.EXPECT().ChangePassword(mock.Anything, change).Return(nil).Once()
	require.NoError(t, u.ChangePassword(context.Background(), change))
}

func TestEmailChange(t *testing.T) {
	u, backend := newTestAdmin(t)

	err := u.ChangeEmail(context.Background(), domain.EmailChange{Password: "pw", NewEmail: "not-an-email"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "newEmail")

	backend.EXPECT().ChangeEmail(mock.Anything, domain.EmailChange{Password: "pw", NewEmail: "root@example.com"}).Return(nil).Once()
	require.NoError(t, u.ChangeEmail(context.Background(), domain.EmailChange{Password: "pw", NewEmail: " root@example.com "}))
}

func TestUpdateProfileTrimsAndRejectsEmpty(t *testing.T) {
	u, backend := newTestAdmin(t)

	_, err := u.UpdateProfile(context.Background(), domain.ProfileUpdate{DisplayName: "  "})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	backend.EXPECT().UpdateProfile(mock.Anything, domain.ProfileUpdate{DisplayName: "Root"}).
		Return(domain.User{Username: "root", DisplayName: "Root"}, nil).Once()
	user, err := u.UpdateProfile(context.Background(), domain.ProfileUpdate{DisplayName: " Root "})
	require.NoError(t, err)
	assert.Equal(t, "Root", user.DisplayName)
}
