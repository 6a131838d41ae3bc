package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
	"locket-admin/internal/core/port/mocks"
)

type sessionFixture struct {
	ads   *mocks.MockAdBackend
	admin *mocks.MockAdminBackend
	store *mocks.MockSessionStore
	nav   *mocks.MockNavigator
	guard port.SessionGuard
	uc    *SessionUseCase
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		ads:   mocks.NewMockAdBackend(t),
		admin: mocks.NewMockAdminBackend(t),
		store: mocks.NewMockSessionStore(t),
		nav:   mocks.NewMockNavigator(t),
	}
	factory := func(guard port.SessionGuard) port.Backends {
		if guard != nil {
			f.guard = guard
		}
		return port.Backends{Ads: f.ads, Admin: f.admin}
	}
	f.uc = NewSessionUseCase(f.store, factory, f.nav, time.Hour, discardLogger())
	f.uc.now = func() time.Time { return testNow }
	f.uc.newID = func() string { return "sess-1" }
	return f
}

func signedToken(t *testing.T, username string, exp time.Time) string {
	t.Helper()
	claims := tokenClaims{
		Username:         username,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func (f *sessionFixture) login(t *testing.T, token string) *Session {
	t.Helper()
	res := domain.LoginResult{Token: token}
	f.admin.EXPECT().Login(mock.Anything, domain.Credentials{Identifier: "admin", Password: "pw"}).Return(res, nil).Once()
	f.store.EXPECT().Save(mock.Anything, mock.AnythingOfType("domain.Session")).Return(nil).Once()
	f.ads.EXPECT().ListAds(mock.Anything).Return(sampleAds(), nil).Once()

	s, err := f.uc.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "pw"})
	require.NoError(t, err)
	return s
}

func TestLoginReadsTokenClaims(t *testing.T) {
	f := newSessionFixture(t)
	exp := testNow.Add(2 * time.Hour).Truncate(time.Second)

	s := f.login(t, signedToken(t, "root", exp))

	info := s.Info()
	assert.Equal(t, "sess-1", info.ID)
	assert.Equal(t, "root", info.DisplayName)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.NotEmpty(t, s.Token())
	assert.Len(t, s.Ads().List(domain.AdFilter{}), 3)
}

func TestLoginWithOpaqueTokenUsesTTL(t *testing.T) {
	f := newSessionFixture(t)

	s := f.login(t, "opaque-token")

	info := s.Info()
	assert.Equal(t, "admin", info.DisplayName)
	assert.Equal(t, testNow.Add(time.Hour), info.ExpiresAt)
	assert.Equal(t, "opaque-token", s.Token())
}

func TestLoginValidatesCredentials(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.uc.Login(context.Background(), domain.Credentials{Identifier: " "})

	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "identifier")
	assert.Contains(t, verrs, "password")
}

func TestLoginFailurePassesThrough(t *testing.T) {
	f := newSessionFixture(t)
	f.admin.EXPECT().Login(mock.Anything, mock.Anything).
		Return(domain.LoginResult{}, &domain.APIError{Status: 400, Message: "Invalid credentials"}).Once()

	_, err := f.uc.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "bad"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestBackendRejectionEndsSession(t *testing.T) {
	f := newSessionFixture(t)
	s := f.login(t, "opaque-token")
	require.Same(t, s, f.guard)

	f.ads.EXPECT().UpdateAdStatus(mock.Anything, "a1", domain.AdStatusPaused).
		RunAndReturn(func(context.Context, string, domain.AdStatus) error {
			f.guard.Invalidate()
			return domain.ErrUnauthorized
		}).Once()
	f.store.EXPECT().Delete(mock.Anything, "sess-1").Return(nil).Once()
	f.nav.EXPECT().RedirectToLogin("sess-1").Once()

	_, err := s.Ads().ToggleStatus(context.Background(), "a1")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, s.Token())
	assert.False(t, s.Active())

	f.store.EXPECT().Get(mock.Anything, "sess-1").Return(domain.Session{}, domain.ErrNotFound).Once()
	_, err = f.uc.Workspace(context.Background(), "sess-1")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestInvalidateOnlyOnce(t *testing.T) {
	f := newSessionFixture(t)
	s := f.login(t, "opaque-token")

	f.store.EXPECT().Delete(mock.Anything, "sess-1").Return(nil).Once()
	f.nav.EXPECT().RedirectToLogin("sess-1").Once()

	s.Invalidate()
	s.Invalidate()
}

func TestWorkspaceRestoresFromStore(t *testing.T) {
	f := newSessionFixture(t)
	stored := domain.Session{ID: "old", Token: "tok", DisplayName: "root", ExpiresAt: testNow.Add(time.Hour)}
	f.store.EXPECT().Get(mock.Anything, "old").Return(stored, nil).Once()
	f.ads.EXPECT().ListAds(mock.Anything).Return(sampleAds(), nil).Once()

	s, err := f.uc.Workspace(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token())

	again, err := f.uc.Workspace(context.Background(), "old")
	require.NoError(t, err)
	assert.Same(t, s, again)
	assert.Len(t, again.Ads().List(domain.AdFilter{}), 3)
}

func TestWorkspaceExpiredSession(t *testing.T) {
	f := newSessionFixture(t)
	stored := domain.Session{ID: "old", Token: "tok", ExpiresAt: testNow.Add(-time.Minute)}
	f.store.EXPECT().Get(mock.Anything, "old").Return(stored, nil).Once()
	f.store.EXPECT().Delete(mock.Anything, "old").Return(nil).Once()
	f.nav.EXPECT().RedirectToLogin("old").Once()

	_, err := f.uc.Workspace(context.Background(), "old")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	f := newSessionFixture(t)
	s := f.login(t, "opaque-token")
	f.store.EXPECT().Delete(mock.Anything, "sess-1").Return(nil).Once()

	require.NoError(t, f.uc.Logout(context.Background(), "sess-1"))
	assert.False(t, s.Active())
	assert.Empty(t, s.Ads().List(domain.AdFilter{}))
}

func TestSetDarkMode(t *testing.T) {
	f := newSessionFixture(t)
	f.login(t, "opaque-token")
	f.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.ID == "sess-1" && s.DarkMode
	})).Return(nil).Once()

	info, err := f.uc.SetDarkMode(context.Background(), "sess-1", true)
	require.NoError(t, err)
	assert.True(t, info.DarkMode)
}

func TestLoginWithoutTokenStartsNoSession(t *testing.T) {
	f := newSessionFixture(t)
	f.admin.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.LoginResult{}, nil).Once()

	_, err := f.uc.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "pw"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "login response carried no token", apiErr.Message)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInitialLoadSurvivesCancelledRequest(t *testing.T) {
	f := newSessionFixture(t)
	f.admin.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.LoginResult{Token: "opaque-token"}, nil).Once()
	f.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	f.ads.EXPECT().ListAds(mock.Anything).RunAndReturn(func(ctx context.Context) ([]domain.Ad, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return sampleAds(), nil
	}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := f.uc.Login(ctx, domain.Credentials{Identifier: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Len(t, s.Ads().List(domain.AdFilter{}), 3)
	assert.Empty(t, s.Ads().LastError())
}

func TestSetDisplayName(t *testing.T) {
	f := newSessionFixture(t)
	f.login(t, "opaque-token")
	f.store.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.DisplayName == "Root"
	})).Return(nil).Once()

	info, err := f.uc.SetDisplayName(context.Background(), "sess-1", " Root ")
	require.NoError(t, err)
	assert.Equal(t, "Root", info.DisplayName)
}

func TestPublicPlansNeedNoSession(t *testing.T) {
	f := newSessionFixture(t)
	f.admin.EXPECT().PublicPlans(mock.Anything).Return([]domain.Plan{{Name: "Gold"}}, nil).Once()

	plans, err := f.uc.PublicPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Nil(t, f.guard)
}
