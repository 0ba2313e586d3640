package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefundRequest asks a gateway to return funds for a previous transaction.
type RefundRequest struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Reason        string          `json:"reason,omitempty"` // e.g. "requested_by_customer", "duplicate", "fraudulent"
}

// RefundResult is the normalized outcome of a refund attempt.
type RefundResult struct {
	Success        bool            `json:"success"`
	RefundID       string          `json:"refund_id,omitempty"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	Timestamp      time.Time       `json:"timestamp"`
	ErrorMessage   string          `json:"error_message,omitempty"`
}
