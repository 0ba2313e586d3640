package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDetails is the read model for a previously created payment.
type TransactionDetails struct {
	TransactionID     string          `json:"transaction_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            string          `json:"status"`
	Timestamp         time.Time       `json:"timestamp"`
	PaymentMethodType string          `json:"payment_method_type,omitempty"`
	CustomerName      string          `json:"customer_name,omitempty"`
	CustomerEmail     string          `json:"customer_email,omitempty"`
	Description       string          `json:"description,omitempty"`
}
