package domain

import (
	"fmt"
	"math"
	"strings"
)

// FilterAll disables a filter dimension.
const FilterAll = "all"

// AdFilter narrows an ad list by status and placement. Both dimensions are
// conjunctive; an empty value behaves like "all".
type AdFilter struct {
	Status    string
	Placement string
}

// ParseAdFilter validates raw filter values as they arrive from a query
// string.
func ParseAdFilter(status, placement string) (AdFilter, error) {
	f := AdFilter{
		Status:    strings.ToLower(strings.TrimSpace(status)),
		Placement: strings.ToLower(strings.TrimSpace(placement)),
	}
	if f.Status != "" && f.Status != FilterAll {
		st, err := ParseAdStatus(f.Status)
		if err != nil {
			return AdFilter{}, err
		}
		f.Status = string(st)
	}
	if f.Placement != "" && f.Placement != FilterAll {
		if _, err := ParsePlacement(f.Placement); err != nil {
			return AdFilter{}, err
		}
	}
	return f, nil
}

// Matches reports whether ad passes the filter.
func (f AdFilter) Matches(ad Ad) bool {
	okStatus := f.Status == "" || f.Status == FilterAll || string(ad.Status()) == f.Status
	okPlacement := f.Placement == "" || f.Placement == FilterAll || string(ad.Placement) == f.Placement
	return okStatus && okPlacement
}

// FilterAds returns the ads that match f, in list order.
func FilterAds(ads []Ad, f AdFilter) []Ad {
	out := make([]Ad, 0, len(ads))
	for _, ad := range ads {
		if f.Matches(ad) {
			out = append(out, ad.Clone())
		}
	}
	return out
}

// AdStats aggregates the counters of a set of ads for the list header.
type AdStats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Paused      int     `json:"paused"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// ComputeStats sums the counters of ads. CTR is in percent.
func ComputeStats(ads []Ad) AdStats {
	var s AdStats
	for _, ad := range ads {
		s.Total++
		if ad.Active {
			s.Active++
		} else {
			s.Paused++
		}
		s.Impressions += ad.ImpressionCount
		s.Clicks += ad.ClickCount
	}
	s.CTR = ctr(s.Clicks, s.Impressions)
	return s
}

func ctr(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return math.Round(float64(clicks)/float64(impressions)*100*100) / 100
}

// FormatCTR renders a CTR percentage the way the dashboard shows it.
func FormatCTR(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
