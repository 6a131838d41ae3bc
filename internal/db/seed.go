package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var seedAds = []struct {
	name      string
	title     string
	cta       string
	placement domain.Placement
	active    bool
}{
	{"Spring promo", "Spring is here", "Shop now", domain.PlacementFeed, true},
	{"Premium upsell", "Go Premium", "Upgrade", domain.PlacementHomeWidget, true},
	{"Welcome tour", "Welcome to Locket", "Get started", domain.PlacementOnboarding, true},
	{"Launch splash", "Something new", "Learn more", domain.PlacementSplash, false},
	{"Partner banner", "Our partners", "Visit", domain.PlacementBanner, true},
}

// Seed fills an empty demo store with sample ads carrying random traffic.
// A store that already holds ads is left untouched.
func Seed(ctx context.Context, repo port.AdRepository, newID func() string, now time.Time) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(now.UnixNano()))
	for i, s := range seedAds {
		start := now.AddDate(0, 0, -7).UTC()
		end := now.AddDate(0, 1, 0).UTC()
		impressions := int64(500 + r.Intn(5000))
		ad := domain.Ad{
			ID:              newID(),
			Name:            s.name,
			Title:           s.title,
			Description:     fmt.Sprintf("Demo creative %d", i+1),
			ImageURL:        fmt.Sprintf("https://picsum.photos/seed/locket%d/600/400", i+1),
			TargetURL:       fmt.Sprintf("https://example.com/landing/%d", i+1),
			CTAText:         s.cta,
			Placement:       s.placement,
			Active:          s.active,
			StartAt:         &start,
			EndAt:           &end,
			Frequency:       domain.DefaultFrequency(),
			CreatedAt:       now.Add(-time.Duration(len(seedAds)-i) * time.Hour).UTC(),
			ImpressionCount: impressions,
			ClickCount:      int64(r.Intn(int(impressions/10) + 1)),
		}
		if err = repo.Insert(ctx, ad); err != nil {
			return fmt.Errorf("seed %q: %w", s.name, err)
		}
	}
	return nil
}
