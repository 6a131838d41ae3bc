package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Ad is one advertising creative targeted at a placement, with a validity
// window and a frequency-capping policy. ID is assigned once at creation
// and is the only key used by update, toggle and delete. The counters are
// maintained by the backend and are read-only for the console.
type Ad struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	ImageURL        string     `json:"imageUrl"`
	TargetURL       string     `json:"targetUrl"`
	CTAText         string     `json:"ctaText,omitempty"`
	Placement       Placement  `json:"placement"`
	Active          bool       `json:"isActive"`
	StartAt         *time.Time `json:"startAt,omitempty"`
	EndAt           *time.Time `json:"endAt,omitempty"`
	Frequency       Frequency  `json:"frequency"`
	CreatedAt       time.Time  `json:"createdAt"`
	ImpressionCount int64      `json:"impressionCount"`
	ClickCount      int64      `json:"clickCount"`
}

// NewDraft returns the defaults a create form starts from.
func NewDraft(now time.Time) Ad {
	start := now.UTC()
	return Ad{
		Placement: PlacementFeed,
		Active:    true,
		StartAt:   &start,
		Frequency: DefaultFrequency(),
	}
}

// Status returns the display status of the ad.
func (a Ad) Status() AdStatus { return StatusOf(a.Active) }

// CTR is the click-through rate in percent, rounded to two decimals.
func (a Ad) CTR() float64 { return ctr(a.ClickCount, a.ImpressionCount) }

// Clone returns a copy that shares no pointers with a.
func (a Ad) Clone() Ad {
	if a.StartAt != nil {
		t := *a.StartAt
		a.StartAt = &t
	}
	if a.EndAt != nil {
		t := *a.EndAt
		a.EndAt = &t
	}
	return a
}

// adWire is the union of the shapes the backend and the two dashboard
// forms have used for an ad.
type adWire struct {
	ID               string          `json:"id"`
	MongoID          string          `json:"_id"`
	Name             *string         `json:"name"`
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	ImageURL         *string         `json:"imageUrl"`
	TargetURL        *string         `json:"targetUrl"`
	CTAURL           *string         `json:"ctaUrl"`
	CTAText          *string         `json:"ctaText"`
	Placement        *Placement      `json:"placement"`
	IsActive         *bool           `json:"isActive"`
	Status           string          `json:"status"`
	StartAt          *string         `json:"startAt"`
	EndAt            *string         `json:"endAt"`
	Frequency        *FrequencyPatch `json:"frequency"`
	CreatedAt        *string         `json:"createdAt"`
	ImpressionCount  *int64          `json:"impressionCount"`
	ImpressionsToday *int64          `json:"impressionsToday"`
	ClickCount       *int64          `json:"clickCount"`
	ClicksToday      *int64          `json:"clicksToday"`
}

// UnmarshalJSON decodes any of the known ad shapes into the canonical form.
// Fields absent from the input keep their current value, so decoding onto a
// draft only overrides what the caller sent. A present text field replaces
// the current value even when empty, and a frequency object is merged key
// by key into the current policy.
func (a *Ad) UnmarshalJSON(b []byte) error {
	var w adWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	switch {
	case w.ID != "":
		a.ID = w.ID
	case w.MongoID != "":
		a.ID = w.MongoID
	}
	setString(&a.Name, w.Name)
	setString(&a.Title, w.Title)
	setString(&a.Description, w.Description)
	setString(&a.ImageURL, w.ImageURL)
	setString(&a.CTAText, w.CTAText)
	switch {
	case nonEmpty(w.TargetURL):
		a.TargetURL = *w.TargetURL
	case nonEmpty(w.CTAURL):
		a.TargetURL = *w.CTAURL
	case w.TargetURL != nil || w.CTAURL != nil:
		a.TargetURL = ""
	}
	if w.Placement != nil && *w.Placement != "" {
		a.Placement = *w.Placement
	}

	switch {
	case w.IsActive != nil:
		a.Active = *w.IsActive
	case w.Status != "":
		st, err := ParseAdStatus(w.Status)
		if err != nil {
			return err
		}
		a.Active = st.Active()
	}

	var err error
	if a.StartAt, err = optionalTime(w.StartAt, a.StartAt); err != nil {
		return fmt.Errorf("startAt: %w", err)
	}
	if a.EndAt, err = optionalTime(w.EndAt, a.EndAt); err != nil {
		return fmt.Errorf("endAt: %w", err)
	}
	if w.CreatedAt != nil && *w.CreatedAt != "" {
		if a.CreatedAt, err = ParseTimestamp(*w.CreatedAt); err != nil {
			return fmt.Errorf("createdAt: %w", err)
		}
	}
	if w.Frequency != nil {
		a.Frequency = a.Frequency.Apply(*w.Frequency)
	}

	switch {
	case w.ImpressionCount != nil:
		a.ImpressionCount = *w.ImpressionCount
	case w.ImpressionsToday != nil:
		a.ImpressionCount = *w.ImpressionsToday
	}
	switch {
	case w.ClickCount != nil:
		a.ClickCount = *w.ClickCount
	case w.ClicksToday != nil:
		a.ClickCount = *w.ClicksToday
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nonEmpty(v *string) bool { return v != nil && *v != "" }

// optionalTime keeps cur when the field is absent, clears it on null or an
// empty string and parses it otherwise.
func optionalTime(raw *string, cur *time.Time) (*time.Time, error) {
	if raw == nil {
		return cur, nil
	}
	if strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseTimestamp accepts ISO 8601 timestamps as well as the date-only and
// minute-precision forms produced by date pickers. Values without a zone
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
