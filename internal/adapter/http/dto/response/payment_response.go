package response

import (
	"time"

	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
)

type PaymentResponse struct {
	Success         bool            `json:"success"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	Status          string          `json:"status,omitempty"`
	AmountProcessed decimal.Decimal `json:"amount_processed"`
	Currency        string          `json:"currency,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	ErrorMessage    string          `json:"error_message,omitempty"`
}

func FromPaymentResult(r models.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Success:         r.Success,
		TransactionID:   r.TransactionID,
		Status:          r.Status,
		AmountProcessed: r.AmountProcessed,
		Currency:        r.Currency,
		Timestamp:       r.Timestamp,
		ErrorMessage:    r.ErrorMessage,
	}
}

type RefundResponse struct {
	Success        bool            `json:"success"`
	RefundID       string          `json:"refund_id,omitempty"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	Timestamp      time.Time       `json:"timestamp"`
	ErrorMessage   string          `json:"error_message,omitempty"`
}

func FromRefundResult(r models.RefundResult) RefundResponse {
	return RefundResponse{
		Success:        r.Success,
		RefundID:       r.RefundID,
		RefundedAmount: r.RefundedAmount,
		Timestamp:      r.Timestamp,
		ErrorMessage:   r.ErrorMessage,
	}
}

type TransactionResponse struct {
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

func FromTransactionDetails(d models.TransactionDetails) TransactionResponse {
	return TransactionResponse{
		TransactionID:     d.TransactionID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		Status:            d.Status,
		Timestamp:         d.Timestamp,
		PaymentMethodType: d.PaymentMethodType,
		CustomerName:      d.CustomerName,
		CustomerEmail:     d.CustomerEmail,
		Description:       d.Description,
	}
}
