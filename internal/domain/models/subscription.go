package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionRequest subscribes a customer to a recurring plan.
type SubscriptionRequest struct {
	CustomerID    string          `json:"customer_id"`
	PlanID        string          `json:"plan_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Interval      string          `json:"interval"`       // "day", "week", "month" or "year"
	IntervalCount int             `json:"interval_count"` // 1 for monthly, 12 for yearly
}

// SubscriptionResult is the normalized outcome of a subscription create or
// cancel. EndDate is nil while the subscription is active; gateways leave it
// absent rather than fabricating one.
type SubscriptionResult struct {
	Success        bool       `json:"success"`
	SubscriptionID string     `json:"subscription_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
}
