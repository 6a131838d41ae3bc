package port

import (
	"context"

	"locket-admin/internal/core/domain"
)

// AdUseCase is the ad workspace of one operator session: an in-memory,
// newest-first list of ads kept in step with the backend. Every failing
// operation leaves the list as it was and records a user-visible message
// retrievable with LastError.
type AdUseCase interface {
	// Load replaces the list with the backend's current one.
	Load(ctx context.Context) error
	// List returns the ads matching filter in list order.
	List(filter domain.AdFilter) []domain.Ad
	Get(id string) (domain.Ad, error)
	Stats(filter domain.AdFilter) domain.AdStats

	// Draft returns the pending create form; ResetDraft restores defaults.
	Draft() domain.Ad
	ResetDraft()

	// Create validates draft and, when clean, stores it and prepends the
	// stored record. Validation failures are returned as
	// domain.ValidationErrors without contacting the backend.
	Create(ctx context.Context, draft domain.Ad) (domain.Ad, error)
	// Update validates and sends a full edit of the ad with the given id.
	Update(ctx context.Context, id string, draft domain.Ad) (domain.Ad, error)
	// PatchFrequency applies the patch locally at once and rolls it back
	// when the backend call fails.
	PatchFrequency(ctx context.Context, id string, patch domain.FrequencyPatch) (domain.Ad, error)
	// ToggleStatus flips active and paused, optimistically.
	ToggleStatus(ctx context.Context, id string) (domain.Ad, error)
	// Delete asks confirm first; a declined confirmation returns
	// domain.ErrNotConfirmed and changes nothing.
	Delete(ctx context.Context, id string, confirm Confirmer) error

	LastError() string
	Close()
}
