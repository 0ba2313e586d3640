package models

import "github.com/shopspring/decimal"

// PlanRequest creates a recurring pricing plan at the provider.
type PlanRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Interval      string          `json:"interval"` // "day", "week", "month" or "year"
	IntervalCount int             `json:"interval_count"`
}

// PlanResult echoes the created plan. ProductID is the backing product for
// providers that model plans as product + recurring price.
type PlanResult struct {
	Success       bool            `json:"success"`
	PlanID        string          `json:"plan_id,omitempty"`
	ProductID     string          `json:"product_id,omitempty"`
	Name          string          `json:"name,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Interval      string          `json:"interval,omitempty"`
	IntervalCount int64           `json:"interval_count,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
}
