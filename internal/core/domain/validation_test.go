package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

func validAd() Ad {
	ad := NewDraft(now)
	ad.Name = "Spring promo"
	ad.ImageURL = "https://cdn.example.com/a.png"
	ad.TargetURL = "http://example.com"
	return ad
}

func ptr[T any](v T) *T { return &v }

func TestValidateAd(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Ad)
		want []string
	}{
		{name: "valid draft", edit: func(*Ad) {}},
		{name: "blank name", edit: func(a *Ad) { a.Name = "   " }, want: []string{"name"}},
		{name: "relative image", edit: func(a *Ad) { a.ImageURL = "/img.png" }, want: []string{"imageUrl"}},
		{name: "upper-case scheme", edit: func(a *Ad) { a.TargetURL = "  HTTPS://example.com" }},
		{name: "ftp target", edit: func(a *Ad) { a.TargetURL = "ftp://example.com" }, want: []string{"targetUrl"}},
		{name: "zero caps are unlimited", edit: func(a *Ad) { a.Frequency = Frequency{} }},
		{
			name: "negative caps",
			edit: func(a *Ad) { a.Frequency = Frequency{PerUserPerDay: -1, MinIntervalMinutes: -1, PerSession: -1} },
			want: []string{"perUserPerDay", "minIntervalMinutes", "perSession"},
		},
		{name: "end equal to start", edit: func(a *Ad) { a.EndAt = ptr(*a.StartAt) }, want: []string{"endAt"}},
		{name: "end after start", edit: func(a *Ad) { a.EndAt = ptr(a.StartAt.Add(time.Minute)) }},
		{
			name: "end before now without start",
			edit: func(a *Ad) { a.StartAt = nil; a.EndAt = ptr(now.Add(-time.Hour)) },
			want: []string{"endAt"},
		},
		{
			name: "every rule at once",
			edit: func(a *Ad) {
				*a = Ad{ImageURL: "x", TargetURL: "y", Frequency: Frequency{PerSession: -2}, EndAt: ptr(now)}
			},
			want: []string{"name", "imageUrl", "targetUrl", "perSession", "endAt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := validAd()
			tt.edit(&ad)
			errs := ValidateAd(ad, now)
			got := make([]string, 0, len(errs))
			for k := range errs {
				got = append(got, k)
			}
			assert.ElementsMatch(t, tt.want, got)
			if len(tt.want) == 0 {
				assert.NoError(t, errs.Err())
			} else {
				assert.Error(t, errs.Err())
			}
		})
	}
}

func TestValidateFrequencyPatch(t *testing.T) {
	assert.Empty(t, ValidateFrequencyPatch(FrequencyPatch{PerSession: ptr(0)}))
	assert.Equal(t, ValidationErrors{"minIntervalMinutes": "must not be negative"},
		ValidateFrequencyPatch(FrequencyPatch{MinIntervalMinutes: ptr(-5)}))
}

func TestFrequencyApply(t *testing.T) {
	f := DefaultFrequency()
	got := f.Apply(FrequencyPatch{PerUserPerDay: ptr(0)})
	assert.Equal(t, Frequency{PerUserPerDay: 0, MinIntervalMinutes: 30, PerSession: 1}, got)
	assert.True(t, Unlimited(got.PerUserPerDay))
	assert.Equal(t, DefaultFrequency(), f, "Apply must not mutate the receiver")
	assert.True(t, FrequencyPatch{}.Empty())
}

func TestValidationErrorsMessage(t *testing.T) {
	err := ValidationErrors{"name": "name is required", "endAt": "bad"}
	assert.Equal(t, "validation failed: endAt: bad; name: name is required", err.Error())
}
