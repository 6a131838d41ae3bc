package port

import (
	"context"

	"locket-admin/internal/core/domain"
)

// AdBackend is the outbound port for ad persistence. The live
// implementation calls the Locket backend; the demo implementation keeps
// ads in a local store. Implementations report failures using the domain
// error taxonomy (ErrUnauthorized, ErrServerUnreachable, *APIError).
type AdBackend interface {
	// ListAds returns every ad known to the backend.
	ListAds(ctx context.Context) ([]domain.Ad, error)
	// CreateAd stores a new ad and returns the stored record. The ID of
	// the draft is ignored; the backend assigns the durable one.
	CreateAd(ctx context.Context, draft domain.Ad) (domain.Ad, error)
	// UpdateAd replaces every editable field of the ad with the same ID.
	UpdateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error)
	// PatchAdFrequency sends only the patched frequency fields.
	PatchAdFrequency(ctx context.Context, id string, patch domain.FrequencyPatch) error
	// UpdateAdStatus switches an ad between active and paused.
	UpdateAdStatus(ctx context.Context, id string, status domain.AdStatus) error
	// DeleteAd removes the ad, or deactivates it when the backend cannot
	// delete ads.
	DeleteAd(ctx context.Context, id string) error
}

// ImageUploader stores an image file and returns its durable URL.
type ImageUploader interface {
	UploadAdImage(ctx context.Context, img domain.ImageFile) (string, error)
}
