package models

// PaymentMethodResult is the outcome of attaching a payment method to a
// customer.
type PaymentMethodResult struct {
	Success         bool   `json:"success"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	Type            string `json:"type,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}
