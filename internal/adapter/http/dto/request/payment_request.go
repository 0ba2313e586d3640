package request

import (
	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
)

// PaymentCreateRequest is the wire payload for the "process payment" route.
type PaymentCreateRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod struct {
		Type    string `json:"type"`
		Details string `json:"details"`
	} `json:"payment_method"`
	Customer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"customer"`
	BillingAddress *models.Address `json:"billing_address,omitempty"`
	Description    string          `json:"description,omitempty"`
}

func (r PaymentCreateRequest) ToModel() models.PaymentRequest {
	return models.PaymentRequest{
		Amount:   r.Amount,
		Currency: r.Currency,
		PaymentMethod: models.PaymentMethodInfo{
			Type:    r.PaymentMethod.Type,
			Details: r.PaymentMethod.Details,
		},
		Customer: models.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
		},
		BillingAddress: r.BillingAddress,
		Description:    r.Description,
	}
}

// RefundCreateRequest is the wire payload for the "process refund" route.
type RefundCreateRequest struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Reason        string          `json:"reason,omitempty"`
}

func (r RefundCreateRequest) ToModel() models.RefundRequest {
	return models.RefundRequest{
		TransactionID: r.TransactionID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Reason:        r.Reason,
	}
}
