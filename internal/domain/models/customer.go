package models

// CustomerRequest creates or updates a customer record at the provider.
type CustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
}

// CustomerResult echoes the provider's view of a customer.
type CustomerResult struct {
	Success      bool   `json:"success"`
	CustomerID   string `json:"customer_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
