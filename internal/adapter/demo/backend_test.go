package demo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port/mocks"
)

var testNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

func newTestBackend(t *testing.T) (*Backend, *mocks.MockAdRepository) {
	t.Helper()
	repo := mocks.NewMockAdRepository(t)
	b := NewBackend(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	b.now = func() time.Time { return testNow }
	b.newID = func() string { return "ad_fixed1" }
	return b, repo
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Regexp(t, `^ad_[0-9a-f]{7}$`, id)
	assert.NotEqual(t, id, NewID())
}

func TestCreateAd_AssignsIDAndResetsCounters(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()
	draft := domain.NewDraft(testNow)
	draft.ID = "client-side"
	draft.Name = "Promo"
	draft.ImpressionCount = 77

	repo.EXPECT().Insert(ctx, mock.MatchedBy(func(ad domain.Ad) bool {
		return ad.ID == "ad_fixed1" && ad.ImpressionCount == 0 && ad.CreatedAt.Equal(testNow)
	})).Return(nil)

	got, err := b.CreateAd(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "ad_fixed1", got.ID)
	assert.Equal(t, "Promo", got.Name)
	assert.Zero(t, got.ImpressionCount)
}

func TestPatchAdFrequency_MergesIntoStoredPolicy(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()
	stored := domain.Ad{ID: "ad_1", Frequency: domain.Frequency{PerUserPerDay: 3, MinIntervalMinutes: 30, PerSession: 1}}
	zero := 0

	repo.EXPECT().Get(ctx, "ad_1").Return(&stored, nil)
	repo.EXPECT().SetFrequency(ctx, "ad_1", domain.Frequency{PerUserPerDay: 3, MinIntervalMinutes: 0, PerSession: 1}).Return(nil)

	require.NoError(t, b.PatchAdFrequency(ctx, "ad_1", domain.FrequencyPatch{MinIntervalMinutes: &zero}))
}

func TestPatchAdFrequency_UnknownAd(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()
	one := 1

	repo.EXPECT().Get(ctx, "ghost").Return(nil, nil)

	err := b.PatchAdFrequency(ctx, "ghost", domain.FrequencyPatch{PerSession: &one})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAdStatus(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()

	repo.EXPECT().SetActive(ctx, "ad_1", false).Return(nil)
	repo.EXPECT().SetActive(ctx, "ad_2", true).Return(nil)

	require.NoError(t, b.UpdateAdStatus(ctx, "ad_1", domain.AdStatusPaused))
	require.NoError(t, b.UpdateAdStatus(ctx, "ad_2", domain.AdStatusActive))
}

func TestUpdateAd_ReturnsStoredRecord(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()
	edit := domain.Ad{ID: "ad_1", Name: "New"}
	stored := domain.Ad{ID: "ad_1", Name: "New", ClickCount: 9}

	repo.EXPECT().Update(ctx, edit).Return(nil)
	repo.EXPECT().Get(ctx, "ad_1").Return(&stored, nil)

	got, err := b.UpdateAd(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ClickCount)
}

func TestSimulateTraffic_AddsBoundedBurst(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()
	var added [2]int64

	repo.EXPECT().AddTraffic(ctx, "ad_1", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, impressions, clicks int64) error {
			added = [2]int64{impressions, clicks}
			return nil
		})
	repo.EXPECT().Get(ctx, "ad_1").Return(&domain.Ad{ID: "ad_1", ImpressionCount: 42}, nil)

	got, err := b.SimulateTraffic(ctx, "ad_1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ImpressionCount)
	assert.GreaterOrEqual(t, added[0], int64(10))
	assert.Less(t, added[0], int64(60))
	assert.GreaterOrEqual(t, added[1], int64(0))
	assert.Less(t, added[1], int64(5))
}

func TestDeleteAd_PropagatesNotFound(t *testing.T) {
	b, repo := newTestBackend(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "ghost").Return(domain.ErrNotFound)

	assert.ErrorIs(t, b.DeleteAd(ctx, "ghost"), domain.ErrNotFound)
}
