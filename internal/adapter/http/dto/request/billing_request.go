package request

import (
	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
)

// SubscriptionCreateRequest is the wire payload for the "create
// subscription" route.
type SubscriptionCreateRequest struct {
	CustomerID    string          `json:"customer_id"`
	PlanID        string          `json:"plan_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Interval      string          `json:"interval"`
	IntervalCount int             `json:"interval_count"`
}

func (r SubscriptionCreateRequest) ToModel() models.SubscriptionRequest {
	return models.SubscriptionRequest{
		CustomerID:    r.CustomerID,
		PlanID:        r.PlanID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Interval:      r.Interval,
		IntervalCount: r.IntervalCount,
	}
}

// CustomerRequest is the wire payload for customer create and update routes.
type CustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
}

func (r CustomerRequest) ToModel() models.CustomerRequest {
	return models.CustomerRequest{
		Name:        r.Name,
		Email:       r.Email,
		Description: r.Description,
	}
}

// PlanCreateRequest is the wire payload for the "create plan" route.
type PlanCreateRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Interval      string          `json:"interval"`
	IntervalCount int             `json:"interval_count"`
}

func (r PlanCreateRequest) ToModel() models.PlanRequest {
	return models.PlanRequest{
		Name:          r.Name,
		Description:   r.Description,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Interval:      r.Interval,
		IntervalCount: r.IntervalCount,
	}
}

// PaymentMethodAttachRequest is the wire payload for attaching a payment
// method to a customer.
type PaymentMethodAttachRequest struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

func (r PaymentMethodAttachRequest) ToModel() models.PaymentMethodInfo {
	return models.PaymentMethodInfo{Type: r.Type, Details: r.Details}
}
