package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var _ port.AdRepository = (*AdRepository)(nil)

const adColumns = `id, name, title, description, image_url, target_url, cta_text, placement,
    is_active, start_at, end_at, per_user_per_day, min_interval_minutes, per_session,
    impression_count, click_count, created_at`

// AdRepository is the file-backed store of the demo backend. Times are
// written in UTC.
type AdRepository struct {
	db *sql.DB
}

func NewAdRepository(db *sql.DB) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) List(ctx context.Context) ([]domain.Ad, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+adColumns+` FROM demo_ads ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

// Get returns nil when no ad has the id.
func (r *AdRepository) Get(ctx context.Context, id string) (*domain.Ad, error) {
	ad, err := scanAd(r.db.QueryRowContext(ctx, `SELECT `+adColumns+` FROM demo_ads WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepository) Insert(ctx context.Context, ad domain.Ad) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO demo_ads (`+adColumns+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ad.ID, ad.Name, ad.Title, ad.Description, ad.ImageURL, ad.TargetURL, ad.CTAText, string(ad.Placement),
		ad.Active, utcPtr(ad.StartAt), utcPtr(ad.EndAt),
		ad.Frequency.PerUserPerDay, ad.Frequency.MinIntervalMinutes, ad.Frequency.PerSession,
		ad.ImpressionCount, ad.ClickCount, ad.CreatedAt.UTC())
	return err
}

func (r *AdRepository) Update(ctx context.Context, ad domain.Ad) error {
	res, err := r.db.ExecContext(ctx, `UPDATE demo_ads SET
    name = ?, title = ?, description = ?, image_url = ?, target_url = ?, cta_text = ?,
    placement = ?, is_active = ?, start_at = ?, end_at = ?,
    per_user_per_day = ?, min_interval_minutes = ?, per_session = ?
WHERE id = ?`,
		ad.Name, ad.Title, ad.Description, ad.ImageURL, ad.TargetURL, ad.CTAText,
		string(ad.Placement), ad.Active, utcPtr(ad.StartAt), utcPtr(ad.EndAt),
		ad.Frequency.PerUserPerDay, ad.Frequency.MinIntervalMinutes, ad.Frequency.PerSession,
		ad.ID)
	return affected(res, err, ad.ID)
}

func (r *AdRepository) SetFrequency(ctx context.Context, id string, f domain.Frequency) error {
	res, err := r.db.ExecContext(ctx, `UPDATE demo_ads
SET per_user_per_day = ?, min_interval_minutes = ?, per_session = ? WHERE id = ?`,
		f.PerUserPerDay, f.MinIntervalMinutes, f.PerSession, id)
	return affected(res, err, id)
}

func (r *AdRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE demo_ads SET is_active = ? WHERE id = ?`, active, id)
	return affected(res, err, id)
}

func (r *AdRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM demo_ads WHERE id = ?`, id)
	return affected(res, err, id)
}

func (r *AdRepository) AddTraffic(ctx context.Context, id string, impressions, clicks int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE demo_ads
SET impression_count = impression_count + ?, click_count = click_count + ? WHERE id = ?`,
		impressions, clicks, id)
	return affected(res, err, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAd(row scanner) (domain.Ad, error) {
	var (
		ad         domain.Ad
		placement  string
		start, end sql.NullTime
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
		&start,
		&end,
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
	ad.StartAt = nullTime(start)
	ad.EndAt = nullTime(end)
	ad.CreatedAt = ad.CreatedAt.UTC()
	return ad, nil
}

func utcPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func affected(res sql.Result, err error, id string) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("ad %q: %w", id, domain.ErrNotFound)
	}
	return nil
}
