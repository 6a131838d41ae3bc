package port

import (
	"context"

	"locket-admin/internal/core/domain"
)

// SessionStore persists operator sessions. Get returns domain.ErrNotFound
// for unknown ids.
type SessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionGuard is what the backend client needs from the current session:
// the bearer token, and a way to end the session when the backend rejects
// it.
type SessionGuard interface {
	Token() string
	Invalidate()
}

// Navigator receives the navigation event raised when a session ends
// because the backend rejected its token.
type Navigator interface {
	RedirectToLogin(sessionID string)
}

// Confirmer gates destructive actions behind an explicit human decision.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }
