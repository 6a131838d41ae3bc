package configs

import (
	"net/url"
	"time"
)

// Delete modes for ads. The backend historically had no delete endpoint
// for ads, so "pause" deactivates the ad instead of removing it.
const (
	DeleteModePause = "pause"
	DeleteModeHard  = "hard"
)

// Backend configures the client of the Locket REST backend.
type Backend struct {
	// BaseURL is the backend origin, without the /api suffix.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:4000"`
	// Timeout bounds a single backend request. Zero disables the timeout.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
	// DeleteMode is either "pause" or "hard".
	DeleteMode string `env:"DELETE_MODE" envDefault:"pause"`
	// UploadEnabled turns on the image upload endpoint. When false a
	// picked file stays as an inline preview URL.
	UploadEnabled bool `env:"UPLOAD_ENABLED" envDefault:"true"`
}

// HardDelete reports whether deletes should call the DELETE endpoint.
func (c Backend) HardDelete() bool {
	return c.DeleteMode == DeleteModeHard
}
