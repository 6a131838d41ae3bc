package domain

import "time"

// Session is the persisted state of one signed-in operator: the bearer
// token issued by the backend, the cached display name and the dark-mode
// preference.
type Session struct {
	ID          string    `json:"id"`
	Token       string    `json:"-"`
	DisplayName string    `json:"displayName"`
	DarkMode    bool      `json:"darkMode"`
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Expired reports whether the token's expiry is known and has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Credentials are what the operator types into the login form.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResult is what the backend returns for a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		Username string `json:"username"`
	} `json:"user"`
}
