package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The records below mirror the backend's own shapes; the console passes
// them through without normalising, so they keep the backend's "_id" key.

// User is an end user of the social app as seen by an administrator.
type User struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	Role        string    `json:"role,omitempty"`
	Active      bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Post is a user post under moderation.
type Post struct {
	ID            string        `json:"_id"`
	Author        *User         `json:"author,omitempty"`
	Caption       string        `json:"caption,omitempty"`
	ImageURL      string        `json:"imageUrl,omitempty"`
	Visibility    string        `json:"visibility,omitempty"`
	Location      *PostLocation `json:"location,omitempty"`
	ReactionCount int           `json:"reactionCount"`
	CommentCount  int           `json:"commentCount"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type PostLocation struct {
	Name string `json:"name"`
}

// Plan is a subscription plan.
type Plan struct {
	ID            string          `json:"_id,omitempty"`
	Code          string          `json:"code,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency,omitempty"`
	Interval      string          `json:"interval"`
	IntervalCount int             `json:"intervalCount"`
	TrialDays     int             `json:"trialDays"`
	Active        bool            `json:"isActive"`
	Features      PlanFeatures    `json:"features"`
}

type PlanFeatures struct {
	MaxPostsPerDay int  `json:"maxPostsPerDay"`
	NoAds          bool `json:"noAds"`
}

var planIntervals = map[string]bool{"day": true, "week": true, "month": true, "year": true}

// ValidatePlan checks the shape of a plan before it is sent to the backend.
func ValidatePlan(p Plan) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "name is required"
	}
	if p.Price.IsNegative() {
		errs["price"] = "must not be negative"
	}
	if !planIntervals[p.Interval] {
		errs["interval"] = "must be one of day, week, month, year"
	}
	if p.IntervalCount < 1 {
		errs["intervalCount"] = "must be at least 1"
	}
	if p.TrialDays < 0 {
		errs["trialDays"] = "must not be negative"
	}
	return errs
}

// RefundDecision is the outcome an administrator records for a refund.
type RefundDecision string

const (
	RefundApproved RefundDecision = "APPROVED"
	RefundRejected RefundDecision = "REJECTED"
)

// Refund is a user-initiated refund request.
type Refund struct {
	ID               string          `json:"_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	User             *User           `json:"user,omitempty"`
	Invoice          *RefundInvoice  `json:"invoice,omitempty"`
	AdminNote        string          `json:"adminNote,omitempty"`
	ExternalRefundID string          `json:"externalRefundId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	RefundedAt       *time.Time      `json:"refundedAt,omitempty"`
}

type RefundInvoice struct {
	PlanName string `json:"planName"`
}

// RefundProcessing is the decision body sent to the process endpoint.
// External refund ids only accompany approvals.
type RefundProcessing struct {
	Status           RefundDecision `json:"status"`
	AdminNote        string         `json:"adminNote,omitempty"`
	ExternalRefundID string         `json:"externalRefundId,omitempty"`
}

// Validate checks the decision value.
func (p RefundProcessing) Validate() error {
	switch p.Status {
	case RefundApproved:
		return nil
	case RefundRejected:
		if p.ExternalRefundID != "" {
			return ValidationErrors{"externalRefundId": "only allowed when approving"}
		}
		return nil
	default:
		return ValidationErrors{"status": fmt.Sprintf("must be %s or %s", RefundApproved, RefundRejected)}
	}
}

// AuditLog is one recorded administrator action.
type AuditLog struct {
	ID             string    `json:"_id"`
	ActionType     string    `json:"actionType"`
	Admin          *User     `json:"adminId,omitempty"`
	TargetResource string    `json:"targetResource"`
	TargetID       string    `json:"targetId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DashboardSummary is the set of headline numbers on the dashboard home.
type DashboardSummary struct {
	Users struct {
		Total        int64 `json:"total"`
		NewLast7Days int64 `json:"newLast7Days"`
	} `json:"users"`
	Posts struct {
		Last24h int64 `json:"last24h"`
	} `json:"posts"`
	Ads struct {
		Active int64 `json:"active"`
	} `json:"ads"`
	Refunds struct {
		Pending int64 `json:"pending"`
	} `json:"refunds"`
}

// DailyRevenue is one point of the dashboard revenue chart.
type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}
