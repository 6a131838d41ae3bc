package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
	"locket-admin/internal/metrics"
)

// Session is one signed-in operator. It owns the operator's ad workspace
// and is the port.SessionGuard of every backend call made on its behalf.
// A session ends on logout, on expiry or when the backend rejects its
// token; after that Token returns "" and the workspace is closed.
type Session struct {
	id     string
	store  port.SessionStore
	nav    port.Navigator
	logger *slog.Logger
	onEnd  func(id string)

	mu    sync.RWMutex
	data  domain.Session
	ended bool

	loadOnce sync.Once
	ads      *AdUseCase
	images   *ImageUseCase
	admin    *AdminUseCase
}

var _ port.SessionGuard = (*Session)(nil)

func (s *Session) ID() string { return s.id }

// Info returns a snapshot of the persisted session state.
func (s *Session) Info() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Token returns the bearer token, or "" once the session has ended.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ended {
		return ""
	}
	return s.data.Token
}

// Active reports whether the session has not ended.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ended
}

func (s *Session) Ads() port.AdUseCase   { return s.ads }
func (s *Session) Images() *ImageUseCase { return s.images }
func (s *Session) Admin() *AdminUseCase  { return s.admin }

// Invalidate ends the session because the backend rejected its token. The
// persisted record is removed and the navigator is told to send the
// operator to the login screen. Only the first call has an effect.
func (s *Session) Invalidate() {
	if !s.end() {
		return
	}
	metrics.SessionsInvalidated.Inc()
	s.logger.Info("session invalidated", slog.String("session", s.id))
	if err := s.store.Delete(context.Background(), s.id); err != nil {
		s.logger.Error("failed to delete invalidated session", slog.String("session", s.id), slog.Any("error", err))
	}
	s.nav.RedirectToLogin(s.id)
}

func (s *Session) end() bool {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return false
	}
	s.ended = true
	s.data.Token = ""
	s.mu.Unlock()

	s.ads.Close()
	if s.onEnd != nil {
		s.onEnd(s.id)
	}
	return true
}

// ensureLoaded fills the workspace the first time the session is used.
// A failed load is kept in the workspace's LastError. The load outlives a
// cancelled first request.
func (s *Session) ensureLoaded(ctx context.Context) {
	s.loadOnce.Do(func() {
		if err := s.ads.Load(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("initial ad load failed", slog.String("session", s.id), slog.Any("error", err))
		}
	})
}

// SessionUseCase creates, resumes and ends operator sessions.
type SessionUseCase struct {
	store    port.SessionStore
	backends port.BackendFactory
	nav      port.Navigator
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	mu   sync.Mutex
	live map[string]*Session
}

// NewSessionUseCase wires the session lifecycle. ttl is the lifetime of a
// session whose token carries no expiry.
func NewSessionUseCase(
	store port.SessionStore,
	backends port.BackendFactory,
	nav port.Navigator,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		store:    store,
		backends: backends,
		nav:      nav,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		live:     make(map[string]*Session),
	}
}

// tokenClaims are the claims the console reads from a backend token. The
// signature is not checked here; the backend verifies it on every call.
type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Login authenticates against the backend and starts a session.
func (u *SessionUseCase) Login(ctx context.Context, creds domain.Credentials) (*Session, error) {
	errs := domain.ValidationErrors{}
	if strings.TrimSpace(creds.Identifier) == "" {
		errs["identifier"] = "identifier is required"
	}
	if creds.Password == "" {
		errs["password"] = "password is required"
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	res, err := u.backends(nil).Admin.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &domain.APIError{Status: http.StatusBadGateway, Message: "login response carried no token"}
	}

	now := u.now().UTC()
	data := domain.Session{
		ID:          u.newID(),
		Token:       res.Token,
		DisplayName: res.User.Username,
		CreatedAt:   now,
		ExpiresAt:   now.Add(u.ttl),
	}
	if claims, err := parseToken(res.Token); err != nil {
		u.logger.Debug("backend token is not a readable JWT", slog.Any("error", err))
	} else {
		if claims.ExpiresAt != nil {
			data.ExpiresAt = claims.ExpiresAt.Time.UTC()
		}
		if data.DisplayName == "" {
			data.DisplayName = claims.Username
		}
	}
	if data.DisplayName == "" {
		data.DisplayName = creds.Identifier
	}

	if err = u.store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s := u.attach(data)
	s.ensureLoaded(ctx)
	u.logger.Info("operator logged in", slog.String("session", data.ID), slog.String("user", data.DisplayName))
	return s, nil
}

// Workspace returns the live session with the given id, restoring it from
// the store when the process has restarted since login. Unknown and
// expired sessions yield domain.ErrUnauthorized.
func (u *SessionUseCase) Workspace(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, domain.ErrUnauthorized
	}

	u.mu.Lock()
	s, ok := u.live[id]
	u.mu.Unlock()

	if !ok {
		data, err := u.store.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		s = u.attach(data)
	}

	if s.Info().Expired(u.now()) {
		s.Invalidate()
		return nil, domain.ErrUnauthorized
	}
	if !s.Active() {
		return nil, domain.ErrUnauthorized
	}
	s.ensureLoaded(ctx)
	return s, nil
}

// Logout ends the session. Logging out an unknown session is not an
// error.
func (u *SessionUseCase) Logout(ctx context.Context, id string) error {
	u.mu.Lock()
	s, ok := u.live[id]
	u.mu.Unlock()
	if ok {
		s.end()
	}
	if err := u.store.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	u.logger.Info("operator logged out", slog.String("session", id))
	return nil
}

// SetDarkMode stores the operator's theme preference.
func (u *SessionUseCase) SetDarkMode(ctx context.Context, id string, on bool) (domain.Session, error) {
	return u.update(ctx, id, func(d *domain.Session) { d.DarkMode = on })
}

// SetDisplayName stores the name shown for the operator after a profile
// edit. An empty name keeps the current one.
func (u *SessionUseCase) SetDisplayName(ctx context.Context, id, name string) (domain.Session, error) {
	return u.update(ctx, id, func(d *domain.Session) {
		if name = strings.TrimSpace(name); name != "" {
			d.DisplayName = name
		}
	})
}

// PublicPlans lists the plan catalogue without a session.
func (u *SessionUseCase) PublicPlans(ctx context.Context) ([]domain.Plan, error) {
	return u.backends(nil).Admin.PublicPlans(ctx)
}

func (u *SessionUseCase) update(ctx context.Context, id string, edit func(*domain.Session)) (domain.Session, error) {
	s, err := u.Workspace(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	s.mu.Lock()
	edit(&s.data)
	data := s.data
	s.mu.Unlock()

	if err = u.store.Save(ctx, data); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	return data, nil
}

// attach builds the live session for data, or returns the one a
// concurrent caller registered first.
func (u *SessionUseCase) attach(data domain.Session) *Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.live[data.ID]; ok {
		return s
	}

	s := &Session{
		id:     data.ID,
		store:  u.store,
		nav:    u.nav,
		logger: u.logger.With(slog.String("session", data.ID)),
		onEnd:  u.detach,
		data:   data,
	}
	b := u.backends(s)
	s.ads = NewAdUseCase(b.Ads, s.logger, WithClock(u.now))
	s.images = NewImageUseCase(b.Uploader, s.logger)
	s.admin = NewAdminUseCase(b.Admin, s.logger, u.now)
	u.live[data.ID] = s
	return s
}

func (u *SessionUseCase) detach(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.live, id)
}

func parseToken(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
