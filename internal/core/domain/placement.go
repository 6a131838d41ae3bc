package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Placement is the in-app surface an ad is shown on. The set is the union of
// the values used by both ad forms of the dashboard so existing campaigns
// keep decoding.
type Placement string

const (
	PlacementFeed       Placement = "feed"
	PlacementHomeWidget Placement = "home_widget"
	PlacementOnboarding Placement = "onboarding"
	PlacementSplash     Placement = "splash"
	PlacementBanner     Placement = "banner"
)

var placements = []Placement{
	PlacementFeed,
	PlacementHomeWidget,
	PlacementOnboarding,
	PlacementSplash,
	PlacementBanner,
}

// Placements returns every known placement in display order.
func Placements() []Placement {
	return slices.Clone(placements)
}

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	return slices.Contains(placements, p)
}

// ParsePlacement normalises s and checks it against the known set.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown placement %q", s)
	}
	return p, nil
}

// UnmarshalJSON rejects unknown placements. An empty string decodes to the
// empty placement so records that never had one still load.
func (p *Placement) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*p = ""
		return nil
	}
	parsed, err := ParsePlacement(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
