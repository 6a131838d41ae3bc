package domain

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

var absoluteHTTP = regexp.MustCompile(`(?i)^https?://`)

// ValidationErrors maps a field name to a human-readable message. An empty
// mapping means the draft can be submitted.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns v as an error, or nil when there are no violations.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ValidateAd checks a complete ad draft. Every rule is evaluated and
// contributes at most one entry; now is the reference time when the draft
// has no start.
func ValidateAd(ad Ad, now time.Time) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(ad.Name) == "" {
		errs["name"] = "name is required"
	}
	if !IsAbsoluteHTTP(ad.ImageURL) {
		errs["imageUrl"] = "image URL must start with http:// or https://"
	}
	if !IsAbsoluteHTTP(ad.TargetURL) {
		errs["targetUrl"] = "target URL must start with http:// or https://"
	}
	validateFrequency(errs, ad.Frequency.PerUserPerDay, ad.Frequency.MinIntervalMinutes, ad.Frequency.PerSession)

	if ad.EndAt != nil {
		ref := now
		if ad.StartAt != nil {
			ref = *ad.StartAt
		}
		if !ad.EndAt.After(ref) {
			errs["endAt"] = "end date must be after the start date"
		}
	}
	return errs
}

// ValidateFrequencyPatch applies the non-negativity rules to the fields a
// patch sets.
func ValidateFrequencyPatch(p FrequencyPatch) ValidationErrors {
	errs := ValidationErrors{}
	val := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	validateFrequency(errs, val(p.PerUserPerDay), val(p.MinIntervalMinutes), val(p.PerSession))
	return errs
}

func validateFrequency(errs ValidationErrors, perUserPerDay, minInterval, perSession int) {
	if perUserPerDay < 0 {
		errs["perUserPerDay"] = "must not be negative"
	}
	if minInterval < 0 {
		errs["minIntervalMinutes"] = "must not be negative"
	}
	if perSession < 0 {
		errs["perSession"] = "must not be negative"
	}
}

// IsAbsoluteHTTP reports whether s, trimmed, starts with an http or https
// scheme.
func IsAbsoluteHTTP(s string) bool {
	return absoluteHTTP.MatchString(strings.TrimSpace(s))
}
