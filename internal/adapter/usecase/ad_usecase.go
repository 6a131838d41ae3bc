package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var _ port.AdUseCase = (*AdUseCase)(nil)

// AdUseCase is the ad workspace of one operator session. It keeps the
// newest-first list of ads in step with the backend, gates writes behind
// the validator and applies inline edits optimistically.
//
// Backend calls are made without holding the lock. Responses that arrive
// after Close, or for a Load superseded by a newer one, are discarded.
type AdUseCase struct {
	backend port.AdBackend
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string

	mu      sync.Mutex
	ads     []domain.Ad
	draft   domain.Ad
	lastErr string
	loadGen uint64
	closed  bool
}

// AdOption customises an AdUseCase.
type AdOption func(*AdUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AdOption {
	return func(u *AdUseCase) { u.now = now }
}

// WithIDGenerator replaces the generator of locally stamped ids.
func WithIDGenerator(newID func() string) AdOption {
	return func(u *AdUseCase) { u.newID = newID }
}

// NewAdUseCase creates an empty workspace over backend. Call Load to fill
// it.
func NewAdUseCase(backend port.AdBackend, logger *slog.Logger, opts ...AdOption) *AdUseCase {
	u := &AdUseCase{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.draft = domain.NewDraft(u.now())
	return u
}

// Load replaces the list with the backend's. On failure the current list is
// kept.
func (u *AdUseCase) Load(ctx context.Context) error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return domain.ErrWorkspaceClosed
	}
	u.loadGen++
	gen := u.loadGen
	u.mu.Unlock()

	ads, err := u.backend.ListAds(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return closedErr(err)
	}
	if gen != u.loadGen {
		u.logger.Debug("discarding superseded ad list", slog.Uint64("gen", gen))
		return domain.ErrStaleResponse
	}
	if err != nil {
		u.recordLocked(err, "Failed to load ads")
		return err
	}
	u.ads = make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		u.ads = append(u.ads, ad.Clone())
	}
	u.lastErr = ""
	return nil
}

// List returns the ads matching filter in list order.
func (u *AdUseCase) List(filter domain.AdFilter) []domain.Ad {
	u.mu.Lock()
	defer u.mu.Unlock()
	return domain.FilterAds(u.ads, filter)
}

// Get returns the ad with the given id.
func (u *AdUseCase) Get(id string) (domain.Ad, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	i := u.indexLocked(id)
	if i < 0 {
		return domain.Ad{}, fmt.Errorf("ad %q: %w", id, domain.ErrNotFound)
	}
	return u.ads[i].Clone(), nil
}

// Stats aggregates the counters of the ads matching filter.
func (u *AdUseCase) Stats(filter domain.AdFilter) domain.AdStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	return domain.ComputeStats(domain.FilterAds(u.ads, filter))
}

func (u *AdUseCase) Draft() domain.Ad {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.draft.Clone()
}

func (u *AdUseCase) ResetDraft() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.draft = domain.NewDraft(u.now())
}

// Create validates draft, stores it and prepends the stored record. When
// the backend does not echo the record, the draft is stamped with a local
// id and creation time.
func (u *AdUseCase) Create(ctx context.Context, draft domain.Ad) (domain.Ad, error) {
	now := u.now()
	if err := domain.ValidateAd(draft, now).Err(); err != nil {
		return domain.Ad{}, err
	}
	if err := u.checkOpen(); err != nil {
		return domain.Ad{}, err
	}

	draft.ID = ""
	stored, err := u.backend.CreateAd(ctx, draft)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return domain.Ad{}, closedErr(err)
	}
	if err != nil {
		u.recordLocked(err, "Failed to create ad")
		return domain.Ad{}, err
	}
	if stored.ID == "" {
		stored = draft.Clone()
		stored.ID = u.newID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now.UTC()
	}

	u.ads = slices.Insert(u.ads, 0, stored.Clone())
	u.draft = domain.NewDraft(now)
	u.lastErr = ""
	return stored, nil
}

// Update validates draft and sends it as a full edit of the ad with the
// given id. The id, creation time and counters of the existing record are
// kept whatever the draft or the response carry.
func (u *AdUseCase) Update(ctx context.Context, id string, draft domain.Ad) (domain.Ad, error) {
	current, err := u.Get(id)
	if err != nil {
		return domain.Ad{}, err
	}
	draft.ID = current.ID
	draft.CreatedAt = current.CreatedAt
	draft.ImpressionCount = current.ImpressionCount
	draft.ClickCount = current.ClickCount

	if err = domain.ValidateAd(draft, u.now()).Err(); err != nil {
		return domain.Ad{}, err
	}
	if err = u.checkOpen(); err != nil {
		return domain.Ad{}, err
	}

	stored, err := u.backend.UpdateAd(ctx, draft)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return domain.Ad{}, closedErr(err)
	}
	if err != nil {
		u.recordLocked(err, "Failed to update ad")
		return domain.Ad{}, err
	}
	if stored.ID == "" {
		stored = draft.Clone()
	}
	stored.ID = current.ID
	stored.CreatedAt = current.CreatedAt

	if i := u.indexLocked(id); i >= 0 {
		u.ads[i] = stored.Clone()
	}
	u.lastErr = ""
	return stored, nil
}

// PatchFrequency merges patch into the ad at once and sends only the
// patched fields. A failed call restores the previous frequency.
func (u *AdUseCase) PatchFrequency(ctx context.Context, id string, patch domain.FrequencyPatch) (domain.Ad, error) {
	if patch.Empty() {
		return u.Get(id)
	}
	if err := domain.ValidateFrequencyPatch(patch).Err(); err != nil {
		return domain.Ad{}, err
	}
	return u.runOptimistic(ctx, id, command{
		apply: func(ad *domain.Ad) func(*domain.Ad) {
			prev := ad.Frequency
			ad.Frequency = prev.Apply(patch)
			return func(ad *domain.Ad) { ad.Frequency = prev }
		},
		send: func(ctx context.Context, ad domain.Ad) error {
			return u.backend.PatchAdFrequency(ctx, ad.ID, patch)
		},
	}, "Failed to update frequency")
}

// ToggleStatus flips the ad between active and paused at once and sends
// the new status. A failed call flips it back.
func (u *AdUseCase) ToggleStatus(ctx context.Context, id string) (domain.Ad, error) {
	return u.runOptimistic(ctx, id, command{
		apply: func(ad *domain.Ad) func(*domain.Ad) {
			prev := ad.Active
			ad.Active = !prev
			return func(ad *domain.Ad) { ad.Active = prev }
		},
		send: func(ctx context.Context, ad domain.Ad) error {
			return u.backend.UpdateAdStatus(ctx, ad.ID, ad.Status())
		},
	}, "Failed to update ad status")
}

// Delete asks confirm, then removes the ad from the backend and the list.
func (u *AdUseCase) Delete(ctx context.Context, id string, confirm port.Confirmer) error {
	ad, err := u.Get(id)
	if err != nil {
		return err
	}
	if confirm == nil || !confirm.Confirm(fmt.Sprintf("Delete ad %q?", ad.Name)) {
		return domain.ErrNotConfirmed
	}
	if err = u.checkOpen(); err != nil {
		return err
	}

	err = u.backend.DeleteAd(ctx, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return closedErr(err)
	}
	if err != nil {
		u.recordLocked(err, "Failed to delete ad")
		return err
	}
	if i := u.indexLocked(id); i >= 0 {
		u.ads = slices.Delete(u.ads, i, i+1)
	}
	u.lastErr = ""
	return nil
}

// LastError returns the message of the last failed backend call, or "" if
// the most recent call succeeded.
func (u *AdUseCase) LastError() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// Close drops the list. Calls still in flight are discarded when they
// return.
func (u *AdUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.closed = true
	u.ads = nil
}

// command is an optimistic edit of one ad: apply changes the record in
// place and returns the closure that undoes exactly that change; send
// performs the paired backend call.
type command struct {
	apply func(ad *domain.Ad) (undo func(ad *domain.Ad))
	send  func(ctx context.Context, ad domain.Ad) error
}

func (u *AdUseCase) runOptimistic(ctx context.Context, id string, cmd command, fallback string) (domain.Ad, error) {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return domain.Ad{}, domain.ErrWorkspaceClosed
	}
	i := u.indexLocked(id)
	if i < 0 {
		u.mu.Unlock()
		return domain.Ad{}, fmt.Errorf("ad %q: %w", id, domain.ErrNotFound)
	}
	undo := cmd.apply(&u.ads[i])
	applied := u.ads[i].Clone()
	u.mu.Unlock()

	err := cmd.send(ctx, applied)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return domain.Ad{}, closedErr(err)
	}
	i = u.indexLocked(id)
	if err != nil {
		if i >= 0 {
			undo(&u.ads[i])
		}
		u.recordLocked(err, fallback)
		return domain.Ad{}, err
	}
	u.lastErr = ""
	if i < 0 {
		return applied, nil
	}
	return u.ads[i].Clone(), nil
}

// closedErr is what a call that completed after Close reports: its own
// failure if it had one.
func closedErr(err error) error {
	if err != nil {
		return err
	}
	return domain.ErrWorkspaceClosed
}

func (u *AdUseCase) checkOpen() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return domain.ErrWorkspaceClosed
	}
	return nil
}

func (u *AdUseCase) indexLocked(id string) int {
	return slices.IndexFunc(u.ads, func(ad domain.Ad) bool { return ad.ID == id })
}

func (u *AdUseCase) recordLocked(err error, fallback string) {
	u.lastErr = domain.UserMessage(err, fallback)
	u.logger.Warn("ad operation failed", slog.String("message", u.lastErr), slog.Any("error", err))
}
