package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
	"payments_xpto/internal/usecase/interfaces"
	"payments_xpto/pkg"
)

const (
	paypalSandboxBaseURL    = "https://api-m.sandbox.paypal.com"
	paypalProductionBaseURL = "https://api-m.paypal.com"

	paypalRequestTimeout = 30 * time.Second

	codePayPalError       = "PAYPAL_ERROR"
	codePayPalRefundError = "PAYPAL_REFUND_ERROR"
)

// PayPalGateway is the partial second-provider adapter: payment, refund,
// transaction lookup and subscription create/cancel only. Customer, plan and
// payment-method operations are capability gaps.
//
// Unlike the Stripe adapter, every failure here (non-success HTTP response
// or transport error) is raised as a PaymentError; the false-success result
// channel is never used.
//
// Each operation fetches a fresh OAuth client-credentials token. Token
// caching with expiry would save a round trip per call, but correctness does
// not require it. The bearer token is attached to each outgoing request,
// never stored on the shared client, so concurrent calls cannot leak
// credentials into each other.
type PayPalGateway struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	baseURL      string
}

var _ interfaces.IPaymentGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, clientSecret string, sandbox bool) (*PayPalGateway, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(clientSecret) == "" {
		return nil, pkg.NewConfigurationError("paypal client id and client secret are required for the paypal gateway")
	}
	baseURL := paypalProductionBaseURL
	if sandbox {
		baseURL = paypalSandboxBaseURL
	}
	return &PayPalGateway{
		httpClient:   &http.Client{Timeout: paypalRequestTimeout},
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
	}, nil
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	Amount      paypalAmount `json:"amount"`
	Description string       `json:"description,omitempty"`
}

type paypalName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type paypalPayer struct {
	Name         paypalName `json:"name"`
	EmailAddress string     `json:"email_address"`
}

type paypalOrderResponse struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	CreateTime    string               `json:"create_time"`
	Payer         *paypalPayer         `json:"payer"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
	Message       string               `json:"message"`
}

// getAccessToken performs the client-credentials grant. Called once per
// operation; no token reuse across calls.
func (g *PayPalGateway) getAccessToken(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", body)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.clientID, g.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("paypal token request failed with status %d", resp.StatusCode)
	}

	var token paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token")
	}
	return token.AccessToken, nil
}

// call sends one authenticated JSON request and returns the status code and
// raw response body.
func (g *PayPalGateway) call(ctx context.Context, method, path, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

func paypalFailureMessage(raw []byte, statusCode int) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("paypal responded with status %d", statusCode)
}

func (g *PayPalGateway) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return models.PaymentResult{}, pkg.NewTransportError("an error occurred while processing the PayPal payment", codePayPalError, err)
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"amount": paypalAmount{
					CurrencyCode: strings.ToUpper(request.Currency),
					Value:        request.Amount.StringFixed(2),
				},
			},
		},
	}

	status, raw, err := g.call(ctx, http.MethodPost, "/v2/checkout/orders", token, payload)
	if err != nil {
		return models.PaymentResult{}, pkg.NewTransportError("an error occurred while processing the PayPal payment", codePayPalError, err)
	}
	if status < 200 || status >= 300 {
		return models.PaymentResult{}, pkg.NewTransportError(paypalFailureMessage(raw, status), codePayPalError, nil)
	}

	var order paypalOrderResponse
	if err := json.Unmarshal(raw, &order); err != nil {
		return models.PaymentResult{}, pkg.NewTransportError("an error occurred while processing the PayPal payment", codePayPalError, err)
	}

	log.Printf("[payment][paypal] order created transaction_id=%s status=%s", order.ID, order.Status)
	return models.PaymentResult{
		Success:         true,
		TransactionID:   order.ID,
		Status:          order.Status,
		AmountProcessed: request.Amount,
		Currency:        request.Currency,
		Timestamp:       time.Now().UTC(),
	}, nil
}

func (g *PayPalGateway) ProcessRefund(ctx context.Context, request models.RefundRequest) (models.RefundResult, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return models.RefundResult{}, pkg.NewTransportError("an error occurred while processing the PayPal refund", codePayPalRefundError, err)
	}

	payload := map[string]any{
		"amount": paypalAmount{
			CurrencyCode: strings.ToUpper(request.Currency),
			Value:        request.Amount.StringFixed(2),
		},
	}

	path := fmt.Sprintf("/v2/payments/captures/%s/refund", request.TransactionID)
	status, raw, err := g.call(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return models.RefundResult{}, pkg.NewTransportError("an error occurred while processing the PayPal refund", codePayPalRefundError, err)
	}
	if status < 200 || status >= 300 {
		return models.RefundResult{}, pkg.NewTransportError(paypalFailureMessage(raw, status), codePayPalRefundError, nil)
	}

	var refund struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &refund); err != nil {
		return models.RefundResult{}, pkg.NewTransportError("an error occurred while processing the PayPal refund", codePayPalRefundError, err)
	}

	log.Printf("[payment][paypal] refund created refund_id=%s", refund.ID)
	return models.RefundResult{
		Success:        true,
		RefundID:       refund.ID,
		RefundedAmount: request.Amount,
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (g *PayPalGateway) GetTransactionDetails(ctx context.Context, transactionID string) (models.TransactionDetails, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return models.TransactionDetails{}, pkg.NewTransportError("an error occurred while retrieving the PayPal transaction details", codePayPalError, err)
	}

	status, raw, err := g.call(ctx, http.MethodGet, "/v2/checkout/orders/"+transactionID, token, nil)
	if err != nil {
		return models.TransactionDetails{}, pkg.NewTransportError("an error occurred while retrieving the PayPal transaction details", codePayPalError, err)
	}
	if status < 200 || status >= 300 {
		return models.TransactionDetails{}, pkg.NewTransportError(paypalFailureMessage(raw, status), codePayPalError, nil)
	}

	var order paypalOrderResponse
	if err := json.Unmarshal(raw, &order); err != nil {
		return models.TransactionDetails{}, pkg.NewTransportError("an error occurred while retrieving the PayPal transaction details", codePayPalError, err)
	}
	if len(order.PurchaseUnits) == 0 {
		return models.TransactionDetails{}, pkg.NewTransportError("paypal order has no purchase units", codePayPalError, nil)
	}

	unit := order.PurchaseUnits[0]
	amount, err := decimal.NewFromString(unit.Amount.Value)
	if err != nil {
		return models.TransactionDetails{}, pkg.NewTransportError("paypal order amount is not a valid decimal", codePayPalError, err)
	}

	details := models.TransactionDetails{
		TransactionID: order.ID,
		Amount:        amount,
		Currency:      unit.Amount.CurrencyCode,
		Status:        order.Status,
		// The orders API does not expose the concrete funding instrument.
		PaymentMethodType: "paypal",
		Description:       unit.Description,
	}
	if ts, err := time.Parse(time.RFC3339, order.CreateTime); err == nil {
		details.Timestamp = ts.UTC()
	}
	if order.Payer != nil {
		details.CustomerName = strings.TrimSpace(order.Payer.Name.GivenName + " " + order.Payer.Name.Surname)
		details.CustomerEmail = order.Payer.EmailAddress
	}
	return details, nil
}

func (g *PayPalGateway) CreateSubscription(ctx context.Context, request models.SubscriptionRequest) (models.SubscriptionResult, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return models.SubscriptionResult{}, pkg.NewTransportError("an error occurred while creating the PayPal subscription", codePayPalError, err)
	}

	payload := map[string]any{
		"plan_id": request.PlanID,
		"custom_id": request.CustomerID,
		"application_context": map[string]any{
			"user_action": "SUBSCRIBE_NOW",
			"payment_method": map[string]any{
				"payer_selected":  "PAYPAL",
				"payee_preferred": "IMMEDIATE_PAYMENT_REQUIRED",
			},
		},
	}

	status, raw, err := g.call(ctx, http.MethodPost, "/v1/billing/subscriptions", token, payload)
	if err != nil {
		return models.SubscriptionResult{}, pkg.NewTransportError("an error occurred while creating the PayPal subscription", codePayPalError, err)
	}
	if status < 200 || status >= 300 {
		return models.SubscriptionResult{}, pkg.NewTransportError(paypalFailureMessage(raw, status), codePayPalError, nil)
	}

	var sub struct {
		ID        string `json:"id"`
		Status    string `json:"status"`
		StartTime string `json:"start_time"`
	}
	if err := json.Unmarshal(raw, &sub); err != nil {
		return models.SubscriptionResult{}, pkg.NewTransportError("an error occurred while creating the PayPal subscription", codePayPalError, err)
	}

	result := models.SubscriptionResult{
		Success:        true,
		SubscriptionID: sub.ID,
		Status:         sub.Status,
		// PayPal provides no end date for an active subscription; EndDate
		// stays absent rather than being fabricated.
	}
	if ts, err := time.Parse(time.RFC3339, sub.StartTime); err == nil {
		result.StartDate = ts.UTC()
	}
	log.Printf("[payment][paypal] subscription created subscription_id=%s status=%s", sub.ID, sub.Status)
	return result, nil
}

func (g *PayPalGateway) CancelSubscription(ctx context.Context, subscriptionID string) (models.SubscriptionResult, error) {
	token, err := g.getAccessToken(ctx)
	if err != nil {
		return models.SubscriptionResult{}, pkg.NewTransportError("an error occurred while cancelling the PayPal subscription", codePayPalError, err)
	}

	payload := map[string]any{"reason": "cancelled by customer"}
	path := fmt.Sprintf("/v1/billing/subscriptions/%s/cancel", subscriptionID)
	status, raw, err := g.call(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return models.SubscriptionResult{}, pkg.NewTransportError("an error occurred while cancelling the PayPal subscription", codePayPalError, err)
	}
	if status < 200 || status >= 300 {
		return models.SubscriptionResult{}, pkg.NewTransportError(paypalFailureMessage(raw, status), codePayPalError, nil)
	}

	// Successful cancellation returns an empty body.
	now := time.Now().UTC()
	log.Printf("[payment][paypal] subscription cancelled subscription_id=%s", subscriptionID)
	return models.SubscriptionResult{
		Success:        true,
		SubscriptionID: subscriptionID,
		Status:         "cancelled",
		EndDate:        &now,
	}, nil
}

func (g *PayPalGateway) CreateCustomer(ctx context.Context, request models.CustomerRequest) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("CreateCustomer", "paypal")
}

func (g *PayPalGateway) GetCustomer(ctx context.Context, customerID string) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("GetCustomer", "paypal")
}

func (g *PayPalGateway) UpdateCustomer(ctx context.Context, customerID string, request models.CustomerRequest) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("UpdateCustomer", "paypal")
}

func (g *PayPalGateway) CreatePlan(ctx context.Context, request models.PlanRequest) (models.PlanResult, error) {
	return models.PlanResult{}, pkg.NewNotSupportedError("CreatePlan", "paypal")
}

func (g *PayPalGateway) AddPaymentMethodToCustomer(ctx context.Context, customerID string, paymentMethod models.PaymentMethodInfo) (models.PaymentMethodResult, error) {
	return models.PaymentMethodResult{}, pkg.NewNotSupportedError("AddPaymentMethodToCustomer", "paypal")
}
