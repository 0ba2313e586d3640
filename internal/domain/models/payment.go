package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payments_xpto/pkg"
)

// Customer identifies the paying customer on a payment request.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Address is the optional billing address attached to a payment request.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PaymentMethodInfo carries the method type tag plus an opaque,
// already-tokenized reference to the method details. Raw card data never
// enters this system.
type PaymentMethodInfo struct {
	Type    string `json:"type"`    // e.g. "card", "paypal", "bank_transfer"
	Details string `json:"details"` // provider token, e.g. "pm_card_visa"
}

// PaymentRequest is the normalized payment input shared by all gateways.
// Amounts are decimal values in major currency units (10.00 = ten dollars).
type PaymentRequest struct {
	Amount         decimal.Decimal   `json:"amount"`
	Currency       string            `json:"currency"`
	PaymentMethod  PaymentMethodInfo `json:"payment_method"`
	Customer       Customer          `json:"customer"`
	BillingAddress *Address          `json:"billing_address,omitempty"`
	Description    string            `json:"description,omitempty"`
}

var billingAddressThreshold = decimal.NewFromInt(10000)

// Validate checks the structural invariants of a payment request. It is
// called once by the processor, before any gateway call, and returns a
// validation-kind PaymentError on the first violation found.
func (r PaymentRequest) Validate() error {
	if !r.Amount.GreaterThan(decimal.Zero) {
		return pkg.NewValidationError("amount must be greater than zero")
	}
	if len(r.Currency) != 3 {
		return pkg.NewValidationError("currency must be a 3-letter code")
	}
	if strings.TrimSpace(r.Customer.Name) == "" || strings.TrimSpace(r.Customer.Email) == "" {
		return pkg.NewValidationError("customer name and email are required")
	}
	if len(r.Description) > 255 {
		return pkg.NewValidationError("description cannot exceed 255 characters")
	}
	if isCardMethod(r.PaymentMethod.Type) && strings.TrimSpace(r.PaymentMethod.Details) == "" {
		return pkg.NewValidationError("card details reference is required for card payments")
	}
	if r.Amount.GreaterThan(billingAddressThreshold) && r.BillingAddress == nil {
		return pkg.NewValidationError("billing address is required for amounts over 10,000")
	}
	return nil
}

func isCardMethod(methodType string) bool {
	switch strings.ToLower(strings.TrimSpace(methodType)) {
	case "card", "creditcard", "credit_card":
		return true
	}
	return false
}

// PaymentResult is the normalized outcome of a payment attempt.
//
// Status carries the provider's native status string ("Completed" for the
// sandbox, "succeeded" for Stripe, "COMPLETED" for PayPal); only Success is
// normalized across gateways.
type PaymentResult struct {
	Success         bool            `json:"success"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	Status          string          `json:"status,omitempty"`
	AmountProcessed decimal.Decimal `json:"amount_processed"`
	Currency        string          `json:"currency,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	ErrorMessage    string          `json:"error_message,omitempty"`
}
