package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var _ port.AdRepository = (*AdRepository)(nil)

const adColumns = `id, name, title, description, image_url, target_url, cta_text, placement,
    is_active, start_at, end_at, per_user_per_day, min_interval_minutes, per_session,
    impression_count, click_count, created_at`

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// It stores the ads served by the demo backend.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

// List returns every ad, newest first.
func (r *AdRepository) List(ctx context.Context) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adColumns+` FROM demo_ads ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		return scanAd(row)
	})
}

// Get returns an ad by id.
func (r *AdRepository) Get(ctx context.Context, id string) (*domain.Ad, error) {
	ad, err := scanAd(r.pool.QueryRow(ctx, `SELECT `+adColumns+` FROM demo_ads WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepository) Insert(ctx context.Context, ad domain.Ad) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO demo_ads (`+adColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		ad.ID, ad.Name, ad.Title, ad.Description, ad.ImageURL, ad.TargetURL, ad.CTAText, string(ad.Placement),
		ad.Active, ad.StartAt, ad.EndAt,
		ad.Frequency.PerUserPerDay, ad.Frequency.MinIntervalMinutes, ad.Frequency.PerSession,
		ad.ImpressionCount, ad.ClickCount, ad.CreatedAt)
	return err
}

func (r *AdRepository) Update(ctx context.Context, ad domain.Ad) error {
	tag, err := r.pool.Exec(ctx, `UPDATE demo_ads SET
    name = $2, title = $3, description = $4, image_url = $5, target_url = $6, cta_text = $7,
    placement = $8, is_active = $9, start_at = $10, end_at = $11,
    per_user_per_day = $12, min_interval_minutes = $13, per_session = $14
WHERE id = $1`,
		ad.ID, ad.Name, ad.Title, ad.Description, ad.ImageURL, ad.TargetURL, ad.CTAText,
		string(ad.Placement), ad.Active, ad.StartAt, ad.EndAt,
		ad.Frequency.PerUserPerDay, ad.Frequency.MinIntervalMinutes, ad.Frequency.PerSession)
	return affected(tag, err, "ad", ad.ID)
}

func (r *AdRepository) SetFrequency(ctx context.Context, id string, f domain.Frequency) error {
	tag, err := r.pool.Exec(ctx, `UPDATE demo_ads
SET per_user_per_day = $2, min_interval_minutes = $3, per_session = $4 WHERE id = $1`,
		id, f.PerUserPerDay, f.MinIntervalMinutes, f.PerSession)
	return affected(tag, err, "ad", id)
}

func (r *AdRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE demo_ads SET is_active = $2 WHERE id = $1`, id, active)
	return affected(tag, err, "ad", id)
}

func (r *AdRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM demo_ads WHERE id = $1`, id)
	return affected(tag, err, "ad", id)
}

// AddTraffic increments the counters in a single statement so concurrent
// simulations never lose an update.
func (r *AdRepository) AddTraffic(ctx context.Context, id string, impressions, clicks int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE demo_ads
SET impression_count = impression_count + $2, click_count = click_count + $3 WHERE id = $1`,
		id, impressions, clicks)
	return affected(tag, err, "ad", id)
}

func scanAd(row pgx.Row) (domain.Ad, error) {
	var (
		ad        domain.Ad
		placement string
	)
	err := row.Scan(
		&ad.ID,
		&ad.Name,
		&ad.Title,
		&ad.Description,
		&ad.ImageURL,
		&ad.TargetURL,
		&ad.CTAText,
		&placement,
		&ad.Active,
		&ad.StartAt,
		&ad.EndAt,
		&ad.Frequency.PerUserPerDay,
		&ad.Frequency.MinIntervalMinutes,
		&ad.Frequency.PerSession,
		&ad.ImpressionCount,
		&ad.ClickCount,
		&ad.CreatedAt,
	)
	if err != nil {
		return domain.Ad{}, err
	}
	ad.Placement = domain.Placement(placement)
	ad.CreatedAt = ad.CreatedAt.UTC()
	return ad, nil
}

func affected(tag pgconn.CommandTag, err error, kind, id string) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}
