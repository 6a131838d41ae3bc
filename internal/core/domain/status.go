package domain

import (
	"fmt"
	"strings"
)

// AdStatus is the display form of Ad.Active.
type AdStatus string

const (
	AdStatusActive AdStatus = "active"
	AdStatusPaused AdStatus = "paused"
)

// StatusOf maps the canonical boolean onto an AdStatus.
func StatusOf(active bool) AdStatus {
	if active {
		return AdStatusActive
	}
	return AdStatusPaused
}

// Active reports whether s is the active status.
func (s AdStatus) Active() bool { return s == AdStatusActive }

// Wire returns the upper-case form the status endpoint expects.
func (s AdStatus) Wire() string { return strings.ToUpper(string(s)) }

// ParseAdStatus accepts both the lower-case display values, the upper-case
// wire values and the "inactive" spelling used by one of the dashboard forms.
func ParseAdStatus(s string) (AdStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return AdStatusActive, nil
	case "paused", "inactive":
		return AdStatusPaused, nil
	default:
		return "", fmt.Errorf("unknown ad status %q", s)
	}
}
