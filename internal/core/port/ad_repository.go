package port

import (
	"context"

	"locket-admin/internal/core/domain"
)

// AdRepository persists ads locally for the demo backend. Ads are returned
// newest first.
type AdRepository interface {
	List(ctx context.Context) ([]domain.Ad, error)
	// Get returns nil and no error when the ad does not exist.
	Get(ctx context.Context, id string) (*domain.Ad, error)
	Insert(ctx context.Context, ad domain.Ad) error
	// Update overwrites the editable fields; id, createdAt and counters
	// are left alone. It returns domain.ErrNotFound for unknown ids.
	Update(ctx context.Context, ad domain.Ad) error
	// SetFrequency, SetActive and Delete return domain.ErrNotFound for
	// unknown ids.
	SetFrequency(ctx context.Context, id string, f domain.Frequency) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	// AddTraffic increments the impression and click counters.
	AddTraffic(ctx context.Context, id string, impressions, clicks int64) error
}
