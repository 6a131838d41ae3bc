package configs

import "time"

// Session configures operator sessions.
type Session struct {
	CookieName string `env:"COOKIE_NAME" envDefault:"locket_admin_session"`
	// TTL is used when the backend token carries no expiry.
	TTL time.Duration `env:"TTL" envDefault:"24h"`
	// Store is "memory" or "postgres".
	Store        string `env:"STORE" envDefault:"memory"`
	SecureCookie bool   `env:"SECURE_COOKIE" envDefault:"false"`
}
