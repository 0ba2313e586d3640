package response

import (
	"time"

	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
)

type SubscriptionResponse struct {
	Success        bool       `json:"success"`
	SubscriptionID string     `json:"subscription_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
}

func FromSubscriptionResult(r models.SubscriptionResult) SubscriptionResponse {
	return SubscriptionResponse{
		Success:        r.Success,
		SubscriptionID: r.SubscriptionID,
		Status:         r.Status,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		ErrorMessage:   r.ErrorMessage,
	}
}

type CustomerResponse struct {
	Success      bool   `json:"success"`
	CustomerID   string `json:"customer_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func FromCustomerResult(r models.CustomerResult) CustomerResponse {
	return CustomerResponse{
		Success:      r.Success,
		CustomerID:   r.CustomerID,
		Name:         r.Name,
		Email:        r.Email,
		Description:  r.Description,
		ErrorMessage: r.ErrorMessage,
	}
}

type PlanResponse struct {
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

func FromPlanResult(r models.PlanResult) PlanResponse {
	return PlanResponse{
		Success:       r.Success,
		PlanID:        r.PlanID,
		ProductID:     r.ProductID,
		Name:          r.Name,
		Description:   r.Description,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Interval:      r.Interval,
		IntervalCount: r.IntervalCount,
		ErrorMessage:  r.ErrorMessage,
	}
}

type PaymentMethodResponse struct {
	Success         bool   `json:"success"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	Type            string `json:"type,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

func FromPaymentMethodResult(r models.PaymentMethodResult) PaymentMethodResponse {
	return PaymentMethodResponse{
		Success:         r.Success,
		PaymentMethodID: r.PaymentMethodID,
		Type:            r.Type,
		ErrorMessage:    r.ErrorMessage,
	}
}
