package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/db"
)

// startPostgres runs a throwaway PostgreSQL container, migrates it and
// returns a pool connected to it.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("locket_admin"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.MigratePostgres(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func demoAd(id string, created time.Time) domain.Ad {
	start := created
	return domain.Ad{
		ID:        id,
		Name:      "Ad " + id,
		Title:     "Title",
		ImageURL:  "https://cdn.example.com/" + id + ".png",
		TargetURL: "https://example.com/" + id,
		CTAText:   "Open",
		Placement: domain.PlacementBanner,
		Active:    true,
		StartAt:   &start,
		Frequency: domain.DefaultFrequency(),
		CreatedAt: created,
	}
}

func TestRepositories(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ads", func(t *testing.T) {
		repo := NewAdRepository(pool)
		require.NoError(t, repo.Insert(ctx, demoAd("ad_old", base)))
		require.NoError(t, repo.Insert(ctx, demoAd("ad_new", base.Add(time.Hour))))

		ads, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, ads, 2)
		assert.Equal(t, "ad_new", ads[0].ID)
		assert.Nil(t, ads[0].EndAt)
		assert.True(t, ads[0].StartAt.Equal(base.Add(time.Hour)))

		edit := demoAd("ad_old", base)
		edit.Name = "Renamed"
		edit.Placement = domain.PlacementSplash
		require.NoError(t, repo.Update(ctx, edit))
		require.NoError(t, repo.SetFrequency(ctx, "ad_old", domain.Frequency{PerSession: 4}))
		require.NoError(t, repo.SetActive(ctx, "ad_old", false))
		require.NoError(t, repo.AddTraffic(ctx, "ad_old", 100, 7))
		require.NoError(t, repo.AddTraffic(ctx, "ad_old", 10, 1))

		got, err := repo.Get(ctx, "ad_old")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, domain.PlacementSplash, got.Placement)
		assert.Equal(t, domain.Frequency{PerSession: 4}, got.Frequency)
		assert.False(t, got.Active)
		assert.Equal(t, int64(110), got.ImpressionCount)
		assert.Equal(t, int64(8), got.ClickCount)
		assert.True(t, got.CreatedAt.Equal(base))

		require.NoError(t, repo.Delete(ctx, "ad_old"))
		got, err = repo.Get(ctx, "ad_old")
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.ErrorIs(t, repo.SetActive(ctx, "missing", true), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, demoAd("missing", base)), domain.ErrNotFound)
	})

	t.Run("sessions", func(t *testing.T) {
		repo := NewSessionRepository(pool)
		s := domain.Session{
			ID:          "s1",
			Token:       "tok",
			DisplayName: "root",
			CreatedAt:   base,
			ExpiresAt:   base.Add(time.Hour),
		}
		require.NoError(t, repo.Save(ctx, s))
		s.DarkMode = true
		require.NoError(t, repo.Save(ctx, s))
		require.NoError(t, repo.Save(ctx, domain.Session{ID: "s2", Token: "t2", CreatedAt: base}))

		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, got.DarkMode)
		assert.Equal(t, "tok", got.Token)
		assert.True(t, got.ExpiresAt.Equal(base.Add(time.Hour)))

		got, err = repo.Get(ctx, "s2")
		require.NoError(t, err)
		assert.True(t, got.ExpiresAt.IsZero())

		n, err := repo.DeleteExpired(ctx, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.Get(ctx, "s1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, repo.Delete(ctx, "s2"))
		assert.ErrorIs(t, repo.Delete(ctx, "s2"), domain.ErrNotFound)
	})
}
