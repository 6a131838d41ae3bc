package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"locket-admin/internal/core/domain"
	"locket-admin/internal/core/port"
)

var _ port.SessionStore = (*SessionRepository)(nil)

// SessionRepository persists operator sessions so they survive a console
// restart.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Save inserts the session or overwrites the stored one with the same id.
func (r *SessionRepository) Save(ctx context.Context, s domain.Session) error {
	var expires *time.Time
	if !s.ExpiresAt.IsZero() {
		expires = &s.ExpiresAt
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO admin_sessions (id, token, display_name, dark_mode, expires_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
    token = EXCLUDED.token,
    display_name = EXCLUDED.display_name,
    dark_mode = EXCLUDED.dark_mode,
    expires_at = EXCLUDED.expires_at`,
		s.ID, s.Token, s.DisplayName, s.DarkMode, expires, s.CreatedAt)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, id string) (domain.Session, error) {
	var (
		s       domain.Session
		expires *time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT id, token, display_name, dark_mode, expires_at, created_at
FROM admin_sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.Token, &s.DisplayName, &s.DarkMode, &expires, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Session{}, fmt.Errorf("session %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Session{}, err
	}
	if expires != nil {
		s.ExpiresAt = expires.UTC()
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id)
	return affected(tag, err, "session", id)
}

// DeleteExpired removes sessions whose expiry has passed and returns how
// many were removed.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
