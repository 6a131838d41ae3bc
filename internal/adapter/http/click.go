package httpadapter

import (
	"log/slog"
	"sync"
	"time"

	"locket-admin/internal/core/port"
)

var _ port.Navigator = (*Navigator)(nil)

// endedRetention bounds how long an ended session is remembered.
const endedRetention = time.Hour

// Navigator turns the login redirect raised when the backend rejects a
// session into the 401 response of the operator's next request. The
// dashboard follows the redirect field of that response.
type Navigator struct {
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	ended map[string]time.Time
}

func NewNavigator(logger *slog.Logger) *Navigator {
	return &Navigator{logger: logger, now: time.Now, ended: make(map[string]time.Time)}
}

// RedirectToLogin records that the session was ended by the backend.
func (n *Navigator) RedirectToLogin(sessionID string) {
	now := n.now()
	n.mu.Lock()
	defer n.mu.Unlock()
	for id, at := range n.ended {
		if now.Sub(at) > endedRetention {
			delete(n.ended, id)
		}
	}
	n.ended[sessionID] = now
	n.logger.Info("redirecting session to login", slog.String("session", sessionID), slog.String("to", LoginPath))
}

// Consume reports whether a redirect is pending for the session and
// clears it.
func (n *Navigator) Consume(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.ended[sessionID]
	delete(n.ended, sessionID)
	return ok
}
