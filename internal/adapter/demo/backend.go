// Package demo is the offline stand-in for the Locket backend. It serves
// ads from a local repository so the console can be tried without a
// running backend. Everything it returns is sample data.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var _ port.AdBackend = (*Backend)(nil)

// NewID returns a demo ad id: "ad_" followed by seven random characters.
func NewID() string {
	return "ad_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// Backend implements port.AdBackend over a port.AdRepository.
type Backend struct {
	repo   port.AdRepository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBackend(repo port.AdRepository, logger *slog.Logger) *Backend {
	return &Backend{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  NewID,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *Backend) ListAds(ctx context.Context) ([]domain.Ad, error) {
	return b.repo.List(ctx)
}

// CreateAd stores draft under a fresh demo id with zeroed counters.
func (b *Backend) CreateAd(ctx context.Context, draft domain.Ad) (domain.Ad, error) {
	ad := draft.Clone()
	ad.ID = b.newID()
	ad.CreatedAt = b.now().UTC()
	ad.ImpressionCount = 0
	ad.ClickCount = 0
	if err := b.repo.Insert(ctx, ad); err != nil {
		return domain.Ad{}, err
	}
	b.logger.Debug("demo ad created", slog.String("ad", ad.ID))
	return ad, nil
}

func (b *Backend) UpdateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	if err := b.repo.Update(ctx, ad); err != nil {
		return domain.Ad{}, err
	}
	return b.get(ctx, ad.ID)
}

func (b *Backend) PatchAdFrequency(ctx context.Context, id string, patch domain.FrequencyPatch) error {
	ad, err := b.get(ctx, id)
	if err != nil {
		return err
	}
	return b.repo.SetFrequency(ctx, id, ad.Frequency.Apply(patch))
}

func (b *Backend) UpdateAdStatus(ctx context.Context, id string, status domain.AdStatus) error {
	return b.repo.SetActive(ctx, id, status.Active())
}

// DeleteAd removes the ad from the local store.
func (b *Backend) DeleteAd(ctx context.Context, id string) error {
	return b.repo.Delete(ctx, id)
}

// SimulateTraffic adds a random burst of 10 to 59 impressions and up to 4
// clicks to the ad and returns the updated record.
func (b *Backend) SimulateTraffic(ctx context.Context, id string) (domain.Ad, error) {
	b.mu.Lock()
	impressions := int64(b.rnd.Intn(50) + 10)
	clicks := int64(b.rnd.Intn(5))
	b.mu.Unlock()

	if err := b.repo.AddTraffic(ctx, id, impressions, clicks); err != nil {
		return domain.Ad{}, err
	}
	b.logger.Debug("demo traffic simulated",
		slog.String("ad", id), slog.Int64("impressions", impressions), slog.Int64("clicks", clicks))
	return b.get(ctx, id)
}

func (b *Backend) get(ctx context.Context, id string) (domain.Ad, error) {
	ad, err := b.repo.Get(ctx, id)
	if err != nil {
		return domain.Ad{}, err
	}
	if ad == nil {
		return domain.Ad{}, fmt.Errorf("ad %q: %w", id, domain.ErrNotFound)
	}
	return *ad, nil
}
