package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the date format the report endpoints take.
const DateLayout = "2006-01-02"

// DateRange is an inclusive report window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses a report window. Missing bounds default to the last
// month ending today. A start after the end is rejected before any request
// is made.
func NewDateRange(start, end string, now time.Time) (DateRange, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	r := DateRange{Start: today.AddDate(0, -1, 0), End: today}

	var err error
	if s := strings.TrimSpace(start); s != "" {
		if r.Start, err = time.Parse(DateLayout, s); err != nil {
			return DateRange{}, ValidationErrors{"startDate": fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", start)}
		}
	}
	if e := strings.TrimSpace(end); e != "" {
		if r.End, err = time.Parse(DateLayout, e); err != nil {
			return DateRange{}, ValidationErrors{"endDate": fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", end)}
		}
	}
	if r.Start.After(r.End) {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

func (r DateRange) StartDate() string { return r.Start.Format(DateLayout) }
func (r DateRange) EndDate() string   { return r.End.Format(DateLayout) }

// RevenueReport is the pre-aggregated revenue report. Amounts are decimal
// so currency values round-trip exactly.
type RevenueReport struct {
	Period struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Days      int    `json:"days"`
	} `json:"period"`
	Summary      RevenueSummary `json:"summary"`
	DailyDetails []RevenueDay   `json:"dailyDetails"`
}

type RevenueSummary struct {
	TotalGrossRevenue   decimal.Decimal `json:"totalGrossRevenue"`
	TotalNetRevenue     decimal.Decimal `json:"totalNetRevenue"`
	TotalRefunds        decimal.Decimal `json:"totalRefunds"`
	TotalInvoices       int64           `json:"totalInvoices"`
	AverageDailyRevenue decimal.Decimal `json:"averageDailyRevenue"`
	Currency            string          `json:"currency"`
}

type RevenueDay struct {
	Date         string          `json:"date,omitempty"`
	Day          string          `json:"day,omitempty"`
	GrossRevenue decimal.Decimal `json:"grossRevenue"`
	NetRevenue   decimal.Decimal `json:"netRevenue"`
	Refunds      decimal.Decimal `json:"refunds"`
	Invoices     int64           `json:"invoices"`
	SubsNet      decimal.Decimal `json:"subsNet"`
	AdsRevenue   decimal.Decimal `json:"adsRevenue"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// AdPerformanceReport is the per-ad impressions/clicks report.
type AdPerformanceReport struct {
	Ad           Ad                   `json:"ad"`
	Summary      AdPerformanceSummary `json:"summary"`
	DailyDetails []AdPerformanceDay   `json:"dailyDetails"`
}

type AdPerformanceSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	CTR              float64 `json:"ctr"`
}

type AdPerformanceDay struct {
	Date        string  `json:"date,omitempty"`
	Day         string  `json:"day,omitempty"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}
