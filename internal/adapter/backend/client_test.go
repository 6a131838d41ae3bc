package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/config/configs"
	"locket-admin/internal/core/domain"
)

type fakeGuard struct {
	token       string
	invalidated atomic.Int32
}

func (g *fakeGuard) Token() string { return g.token }
func (g *fakeGuard) Invalidate()   { g.invalidated.Add(1) }

func newTestClient(t *testing.T, h http.Handler, mode string) (*Client, *fakeGuard) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return clientFor(t, srv.URL, mode)
}

func clientFor(t *testing.T, raw, mode string) (*Client, *fakeGuard) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	if mode == "" {
		mode = configs.DeleteModePause
	}
	guard := &fakeGuard{token: "tok-123"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewClient(configs.Backend{BaseURL: *u, DeleteMode: mode}, logger).Bind(guard)
	return c, guard
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestListAdsDecodesBackendShape(t *testing.T) {
	var auth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/admin/ads", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"ads":[
			{"_id":"a1","name":"Promo","ctaUrl":"https://x.com","status":"ACTIVE","placement":"feed",
			 "imageUrl":"https://cdn.x/a.png","impressionsToday":10,"clicksToday":2,
			 "frequency":{"perUserPerDay":3,"minIntervalMinutes":30,"perSession":1}},
			{"id":"a2","name":"Other","targetUrl":"https://y.com","isActive":false,"placement":"splash"}
		]}}`)
	}), "")

	ads, err := c.ListAds(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, "Bearer tok-123", auth)
	assert.Equal(t, "a1", ads[0].ID)
	assert.Equal(t, "https://x.com", ads[0].TargetURL)
	assert.True(t, ads[0].Active)
	assert.Equal(t, int64(10), ads[0].ImpressionCount)
	assert.Equal(t, int64(2), ads[0].ClickCount)
	assert.Equal(t, domain.Frequency{PerUserPerDay: 3, MinIntervalMinutes: 30, PerSession: 1}, ads[0].Frequency)

	assert.Equal(t, "a2", ads[1].ID)
	assert.False(t, ads[1].Active)
	assert.Equal(t, domain.PlacementSplash, ads[1].Placement)
}

func TestLoginIsSentWithoutToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var creds domain.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds.Identifier)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"token":"jwt","user":{"username":"root"}}}`)
	}), "")

	res, err := c.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, "root", res.User.Username)
}

func TestLoginRejectionIsAnAPIError(t *testing.T) {
	c, guard := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`)
	}), "")

	_, err := c.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "bad"})

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, guard.invalidated.Load())
}

func TestAuthFailureInvalidatesSessionForAnyOperation(t *testing.T) {
	calls := map[string]func(c *Client) error{
		"list ads": func(c *Client) error {
			_, err := c.ListAds(context.Background())
			return err
		},
		"toggle": func(c *Client) error {
			return c.UpdateAdStatus(context.Background(), "a1", domain.AdStatusPaused)
		},
		"list users": func(c *Client) error {
			_, err := c.ListUsers(context.Background(), nil)
			return err
		},
		"refunds": func(c *Client) error {
			_, err := c.PendingRefunds(context.Background())
			return err
		},
	}
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		for name, call := range calls {
			t.Run(name+"/"+http.StatusText(status), func(t *testing.T) {
				c, guard := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					writeJSON(w, status, `{"success":false,"message":"token expired"}`)
				}), "")

				err := call(c)
				require.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.Equal(t, int32(1), guard.invalidated.Load())
			})
		}
	}
}

func TestUnreachableBackendDoesNotInvalidate(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, guard := clientFor(t, addr, "")
	_, err := c.ListAds(context.Background())

	require.ErrorIs(t, err, domain.ErrServerUnreachable)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, guard.invalidated.Load())
	assert.Equal(t,
		"Backend server is not running. Please start the backend server first.",
		domain.UserMessage(err, "failed"))
}

func TestAPIErrorUsesBodyMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{name: "message", status: http.StatusBadRequest, body: `{"success":false,"message":"Name already used"}`, message: "Name already used"},
		{name: "error field", status: http.StatusConflict, body: `{"error":"conflict"}`, message: "conflict"},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, message: ""},
		{name: "success false on 200", status: http.StatusOK, body: `{"success":false,"message":"nope"}`, message: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, guard := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}), "")

			_, err := c.CreateAd(context.Background(), domain.Ad{Name: "x"})

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Zero(t, guard.invalidated.Load())
		})
	}
}

func TestCreateAdSendsCanonicalPayload(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var body map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, `{"success":true,"data":{"ad":{"_id":"srv-1","name":"Promo","placement":"feed","isActive":true}}}`)
	}), "")

	ad, err := c.CreateAd(context.Background(), domain.Ad{
		Name:      "Promo",
		ImageURL:  "https://cdn.x/a.png",
		TargetURL: "https://x.com/landing",
		Placement: domain.PlacementFeed,
		Active:    true,
		StartAt:   &start,
		Frequency: domain.DefaultFrequency(),
	})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", ad.ID)

	assert.Equal(t, "https://x.com/landing", body["targetUrl"])
	assert.Equal(t, "https://x.com/landing", body["ctaUrl"])
	assert.Equal(t, "ACTIVE", body["status"])
	assert.Nil(t, body["endAt"])
	assert.Equal(t, "", body["title"])
	assert.Equal(t, "", body["ctaText"])
	assert.Equal(t, map[string]any{"perUserPerDay": 3.0, "minIntervalMinutes": 30.0, "perSession": 1.0}, body["frequency"])
}

func TestPatchFrequencySendsOnlyChangedField(t *testing.T) {
	var raw []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/ads/a1", r.URL.Path)
		raw, _ = io.ReadAll(r.Body)
		writeJSON(w, http.StatusOK, `{"success":true}`)
	}), "")

	zero := 0
	err := c.PatchAdFrequency(context.Background(), "a1", domain.FrequencyPatch{PerSession: &zero})
	require.NoError(t, err)
	assert.JSONEq(t, `{"frequency":{"perSession":0}}`, string(raw))
}

func TestDeleteAdModes(t *testing.T) {
	tests := []struct {
		mode   string
		method string
		path   string
		body   string
	}{
		{mode: configs.DeleteModePause, method: http.MethodPut, path: "/api/admin/ads/a1/status", body: `{"status":"PAUSED"}`},
		{mode: configs.DeleteModeHard, method: http.MethodDelete, path: "/api/admin/ads/a1"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var hits atomic.Int32
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				if tt.body != "" {
					raw, _ := io.ReadAll(r.Body)
					assert.JSONEq(t, tt.body, string(raw))
				}
				writeJSON(w, http.StatusOK, `{"success":true}`)
			}), tt.mode)

			require.NoError(t, c.DeleteAd(context.Background(), "a1"))
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestUploadAdImage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/upload/ad-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "banner.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, []byte("png-bytes"), data)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"imageUrl":"https://cdn.x/banner.png"}}`)
	}), "")

	got, err := c.UploadAdImage(context.Background(), domain.ImageFile{
		Name:        "banner.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.x/banner.png", got)
}

func TestUploadAdImageTopLevelURL(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"imageUrl":"https://cdn.x/top.png"}`)
	}), "")

	got, err := c.UploadAdImage(context.Background(), domain.ImageFile{Name: "a.png", ContentType: "image/png", Data: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.x/top.png", got)
}

func TestReportsSendDateRange(t *testing.T) {
	var query url.Values
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, `{"success":true,"data":{
			"summary":{"totalGrossRevenue":"1250.50","totalNetRevenue":1000,"totalRefunds":0,"totalInvoices":4,"currency":"VND"},
			"dailyDetails":[{"date":"2025-06-01","grossRevenue":10.25}]}}`)
	}), "")

	r, err := domain.NewDateRange("2025-06-01", "2025-06-30", time.Now())
	require.NoError(t, err)
	rep, err := c.RevenueReport(context.Background(), r)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", query.Get("startDate"))
	assert.Equal(t, "2025-06-30", query.Get("endDate"))
	assert.Equal(t, "1250.5", rep.Summary.TotalGrossRevenue.String())
	require.Len(t, rep.DailyDetails, 1)
	assert.Equal(t, "10.25", rep.DailyDetails[0].GrossRevenue.String())
}

func TestListUsersPassesQuery(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "ann", r.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"items":[{"_id":"u1","username":"ann","isActive":true}],
			"pagination":{"page":2,"limit":10,"total":11,"totalPages":2}}}`)
	}), "")

	l, err := c.ListUsers(context.Background(), url.Values{"page": {"2"}, "search": {"ann"}})
	require.NoError(t, err)
	require.Len(t, l.Items, 1)
	assert.Equal(t, "u1", l.Items[0].ID)
	assert.Equal(t, 2, l.Pagination.TotalPages)
}

func TestLoginWithoutTokenIsAnAPIError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"user":{"username":"root"}}}`)
	}), "")

	_, err := c.Login(context.Background(), domain.Credentials{Identifier: "admin", Password: "pw"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "login response carried no token", apiErr.Message)
}

func TestProfileEndpoints(t *testing.T) {
	type call struct {
		method, path, auth string
		body               map[string]any
	}
	var calls []call
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{r.Method, r.URL.Path, r.Header.Get("Authorization"), body})
		if r.URL.Path == "/api/users/profile" {
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"user":{"_id":"u1","username":"root","displayName":"Root"}}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true}`)
	}), "")
	ctx := context.Background()

	user, err := c.UpdateProfile(ctx, domain.ProfileUpdate{DisplayName: "Root", Phone: "+1 555"})
	require.NoError(t, err)
	assert.Equal(t, "Root", user.DisplayName)
	require.NoError(t, c.ChangePassword(ctx, domain.PasswordChange{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}))
	require.NoError(t, c.ChangeEmail(ctx, domain.EmailChange{Password: "pw", NewEmail: "root@example.com"}))

	require.Len(t, calls, 3)
	assert.Equal(t, call{http.MethodPut, "/api/users/profile", "Bearer tok-123", map[string]any{"displayName": "Root", "phone": "+1 555"}}, calls[0])
	assert.Equal(t, call{http.MethodPost, "/api/users/change-password", "Bearer tok-123", map[string]any{"currentPassword": "old", "newPassword": "new"}}, calls[1])
	assert.Equal(t, call{http.MethodPost, "/api/users/change-email", "Bearer tok-123", map[string]any{"password": "pw", "newEmail": "root@example.com"}}, calls[2])
}

func TestProfileAuthFailureEndsSession(t *testing.T) {
	c, guard := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"expired"}`)
	}), "")

	err := c.ChangePassword(context.Background(), domain.PasswordChange{CurrentPassword: "old", NewPassword: "new"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int32(1), guard.invalidated.Load())
}

func TestPublicPlansSentWithoutToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plans", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"plans":[{"_id":"p1","name":"Gold","price":"4.99","interval":"month","isActive":true}]}}`)
	}), "")

	plans, err := c.PublicPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Gold", plans[0].Name)
	assert.Equal(t, "4.99", plans[0].Price.String())
}
