package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"payments_xpto/internal/domain/models"
	"payments_xpto/internal/usecase/interfaces"
	"payments_xpto/pkg"
)

// StripeGateway is the full-featured external provider adapter. Stripe
// speaks minor units, so amounts are converted at this boundary.
//
// Failure channels: payment, refund and transaction lookup raise a
// PaymentError (with Stripe's own error code when it supplied one);
// customer, plan, subscription and payment-method business failures come
// back as Success=false results instead. Transport-level failures on those
// operations still raise.
type StripeGateway struct {
	api *client.API
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway builds the adapter around its own API client so the key
// is never installed on shared package state.
func NewStripeGateway(apiKey string) (*StripeGateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, pkg.NewConfigurationError("stripe API key is required for the stripe gateway")
	}
	api := &client.API{}
	api.Init(apiKey, nil)
	log.Printf("[payment][stripe] client initialized")
	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(models.ToMinorUnits(request.Amount)),
		Currency:      stripe.String(strings.ToLower(request.Currency)),
		PaymentMethod: stripe.String(request.PaymentMethod.Details),
		Confirm:       stripe.Bool(true),
		ReceiptEmail:  stripe.String(request.Customer.Email),
		// Single-use direct charge: never hand back a redirect flow.
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if request.Description != "" {
		params.Description = stripe.String(request.Description)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return models.PaymentResult{}, stripeError(err)
	}

	result := models.PaymentResult{
		Success:         intent.Status == stripe.PaymentIntentStatusSucceeded,
		TransactionID:   intent.ID,
		Status:          string(intent.Status),
		AmountProcessed: models.FromMinorUnits(intent.Amount),
		Currency:        string(intent.Currency),
		Timestamp:       time.Now().UTC(),
	}
	if intent.LastPaymentError != nil {
		result.ErrorMessage = intent.LastPaymentError.Msg
	}
	log.Printf("[payment][stripe] payment intent created transaction_id=%s status=%s", intent.ID, intent.Status)
	return result, nil
}

func (g *StripeGateway) ProcessRefund(ctx context.Context, request models.RefundRequest) (models.RefundResult, error) {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(request.TransactionID),
		Amount:        stripe.Int64(models.ToMinorUnits(request.Amount)),
		Reason:        stripe.String(stripeRefundReason(request.Reason)),
	}

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return models.RefundResult{}, stripeError(err)
	}

	result := models.RefundResult{
		Success:        refund.Status == stripe.RefundStatusSucceeded,
		RefundID:       refund.ID,
		RefundedAmount: models.FromMinorUnits(refund.Amount),
		Timestamp:      time.Now().UTC(),
		ErrorMessage:   string(refund.FailureReason),
	}
	log.Printf("[payment][stripe] refund created refund_id=%s status=%s", refund.ID, refund.Status)
	return result, nil
}

// stripeRefundReason maps a free-form reason onto Stripe's closed vocabulary.
func stripeRefundReason(reason string) string {
	switch strings.ToLower(reason) {
	case "duplicate":
		return "duplicate"
	case "fraudulent":
		return "fraudulent"
	default:
		return "requested_by_customer"
	}
}

func (g *StripeGateway) GetTransactionDetails(ctx context.Context, transactionID string) (models.TransactionDetails, error) {
	params := &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}}
	params.AddExpand("customer")

	intent, err := g.api.PaymentIntents.Get(transactionID, params)
	if err != nil {
		return models.TransactionDetails{}, stripeError(err)
	}

	details := models.TransactionDetails{
		TransactionID: intent.ID,
		Amount:        models.FromMinorUnits(intent.Amount),
		Currency:      string(intent.Currency),
		Status:        string(intent.Status),
		Timestamp:     time.Unix(intent.Created, 0).UTC(),
		Description:   intent.Description,
	}
	if len(intent.PaymentMethodTypes) > 0 {
		details.PaymentMethodType = intent.PaymentMethodTypes[0]
	}
	if intent.Customer != nil {
		details.CustomerName = intent.Customer.Name
		details.CustomerEmail = intent.Customer.Email
	}
	return details, nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, request models.SubscriptionRequest) (models.SubscriptionResult, error) {
	params := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(request.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(request.PlanID)},
		},
	}

	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.SubscriptionResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.SubscriptionResult{}, stripeError(err)
	}
	return stripeSubscriptionResult(sub), nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionID string) (models.SubscriptionResult, error) {
	params := &stripe.SubscriptionCancelParams{Params: stripe.Params{Context: ctx}}

	sub, err := g.api.Subscriptions.Cancel(subscriptionID, params)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.SubscriptionResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.SubscriptionResult{}, stripeError(err)
	}
	return stripeSubscriptionResult(sub), nil
}

func stripeSubscriptionResult(sub *stripe.Subscription) models.SubscriptionResult {
	result := models.SubscriptionResult{
		Success:        true,
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		StartDate:      time.Unix(sub.StartDate, 0).UTC(),
	}
	if sub.EndedAt != 0 {
		end := time.Unix(sub.EndedAt, 0).UTC()
		result.EndDate = &end
	}
	return result
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, request models.CustomerRequest) (models.CustomerResult, error) {
	params := &stripe.CustomerParams{
		Params:      stripe.Params{Context: ctx},
		Name:        stripe.String(request.Name),
		Email:       stripe.String(request.Email),
		Description: stripe.String(request.Description),
	}

	customer, err := g.api.Customers.New(params)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.CustomerResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.CustomerResult{}, stripeError(err)
	}
	return stripeCustomerResult(customer), nil
}

func (g *StripeGateway) GetCustomer(ctx context.Context, customerID string) (models.CustomerResult, error) {
	params := &stripe.CustomerParams{Params: stripe.Params{Context: ctx}}

	customer, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.CustomerResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.CustomerResult{}, stripeError(err)
	}
	return stripeCustomerResult(customer), nil
}

func (g *StripeGateway) UpdateCustomer(ctx context.Context, customerID string, request models.CustomerRequest) (models.CustomerResult, error) {
	params := &stripe.CustomerParams{
		Params:      stripe.Params{Context: ctx},
		Name:        stripe.String(request.Name),
		Email:       stripe.String(request.Email),
		Description: stripe.String(request.Description),
	}

	customer, err := g.api.Customers.Update(customerID, params)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.CustomerResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.CustomerResult{}, stripeError(err)
	}
	return stripeCustomerResult(customer), nil
}

func stripeCustomerResult(customer *stripe.Customer) models.CustomerResult {
	return models.CustomerResult{
		Success:     true,
		CustomerID:  customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Description: customer.Description,
	}
}

// CreatePlan creates a product plus a recurring price; the price id is the
// plan id in Stripe's current API.
func (g *StripeGateway) CreatePlan(ctx context.Context, request models.PlanRequest) (models.PlanResult, error) {
	productParams := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(request.Name),
	}
	if request.Description != "" {
		productParams.Description = stripe.String(request.Description)
	}

	product, err := g.api.Products.New(productParams)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.PlanResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.PlanResult{}, stripeError(err)
	}

	priceParams := &stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(models.ToMinorUnits(request.Amount)),
		Currency:   stripe.String(strings.ToLower(request.Currency)),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(strings.ToLower(request.Interval)),
			IntervalCount: stripe.Int64(int64(request.IntervalCount)),
		},
	}

	price, err := g.api.Prices.New(priceParams)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.PlanResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.PlanResult{}, stripeError(err)
	}

	log.Printf("[payment][stripe] plan created plan_id=%s product_id=%s", price.ID, product.ID)
	return models.PlanResult{
		Success:       true,
		PlanID:        price.ID,
		ProductID:     product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Amount:        models.FromMinorUnits(price.UnitAmount),
		Currency:      string(price.Currency),
		Interval:      string(price.Recurring.Interval),
		IntervalCount: price.Recurring.IntervalCount,
	}, nil
}

func (g *StripeGateway) AddPaymentMethodToCustomer(ctx context.Context, customerID string, paymentMethod models.PaymentMethodInfo) (models.PaymentMethodResult, error) {
	attachParams := &stripe.PaymentMethodAttachParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}

	pm, err := g.api.PaymentMethods.Attach(paymentMethod.Details, attachParams)
	if err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.PaymentMethodResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.PaymentMethodResult{}, stripeError(err)
	}

	// Make the attached method the customer's default.
	updateParams := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(pm.ID),
		},
	}
	if _, err := g.api.Customers.Update(customerID, updateParams); err != nil {
		if msg, ok := stripeBusinessFailure(err); ok {
			return models.PaymentMethodResult{Success: false, ErrorMessage: msg}, nil
		}
		return models.PaymentMethodResult{}, stripeError(err)
	}

	return models.PaymentMethodResult{
		Success:         true,
		PaymentMethodID: pm.ID,
		Type:            string(pm.Type),
	}, nil
}

// stripeBusinessFailure reports whether err is a failure Stripe itself
// described (as opposed to a transport problem), returning its message for
// the result channel.
func stripeBusinessFailure(err error) (string, bool) {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return sErr.Msg, true
	}
	return "", false
}

// stripeError wraps any Stripe failure for the thrown channel, keeping the
// provider's error code when one is present.
func stripeError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return pkg.NewTransportError(fmt.Sprintf("stripe error: %s", sErr.Msg), string(sErr.Code), err)
	}
	return pkg.NewTransportError(fmt.Sprintf("unexpected error: %v", err), pkg.CodeUnexpectedError, err)
}
