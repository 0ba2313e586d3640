package usecase

import (
	"context"
	"errors"
	"log"

	"payments_xpto/internal/domain/models"
	"payments_xpto/internal/usecase/interfaces"
	"payments_xpto/pkg"
)

// IPaymentProcessor is the public entry point of the payment layer: one
// operation per use case, each validating input where applicable, delegating
// to the configured gateway and logging the outcome.
//
// Every failure surfaces as a *pkg.PaymentError. The processor never retries
// and never recovers: each call is attempted exactly once against the
// gateway, and whichever failure channel the gateway used (thrown error or
// Success=false result) is preserved unchanged.
type IPaymentProcessor interface {
	ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error)
	ProcessRefund(ctx context.Context, request models.RefundRequest) (models.RefundResult, error)
	GetTransactionDetails(ctx context.Context, transactionID string) (models.TransactionDetails, error)
	CreateSubscription(ctx context.Context, request models.SubscriptionRequest) (models.SubscriptionResult, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (models.SubscriptionResult, error)
	CreateCustomer(ctx context.Context, request models.CustomerRequest) (models.CustomerResult, error)
	GetCustomer(ctx context.Context, customerID string) (models.CustomerResult, error)
	UpdateCustomer(ctx context.Context, customerID string, request models.CustomerRequest) (models.CustomerResult, error)
	CreatePlan(ctx context.Context, request models.PlanRequest) (models.PlanResult, error)
	AddPaymentMethodToCustomer(ctx context.Context, customerID string, paymentMethod models.PaymentMethodInfo) (models.PaymentMethodResult, error)
}

type PaymentProcessor struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentProcessor = (*PaymentProcessor)(nil)

func NewPaymentProcessor(gateway interfaces.IPaymentGateway) *PaymentProcessor {
	return &PaymentProcessor{gateway: gateway}
}

func (p *PaymentProcessor) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	if err := request.Validate(); err != nil {
		log.Printf("[payment][processor] warning: payment request validation failed err=%v", err)
		return models.PaymentResult{}, err
	}

	log.Printf("[payment][processor] processing payment amount=%s currency=%s", request.Amount, request.Currency)
	result, err := p.gateway.ProcessPayment(ctx, request)
	if err != nil {
		log.Printf("[payment][processor] error: payment processing failed err=%v", err)
		return models.PaymentResult{}, wrapGatewayError("an unexpected error occurred while processing the payment", err)
	}
	if result.Success {
		log.Printf("[payment][processor] payment processed transaction_id=%s status=%s", result.TransactionID, result.Status)
	} else {
		log.Printf("[payment][processor] warning: payment declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) ProcessRefund(ctx context.Context, request models.RefundRequest) (models.RefundResult, error) {
	log.Printf("[payment][processor] processing refund transaction_id=%s amount=%s currency=%s", request.TransactionID, request.Amount, request.Currency)
	result, err := p.gateway.ProcessRefund(ctx, request)
	if err != nil {
		log.Printf("[payment][processor] error: refund processing failed err=%v", err)
		return models.RefundResult{}, wrapGatewayError("an unexpected error occurred while processing the refund", err)
	}
	if result.Success {
		log.Printf("[payment][processor] refund processed refund_id=%s", result.RefundID)
	} else {
		log.Printf("[payment][processor] warning: refund declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) GetTransactionDetails(ctx context.Context, transactionID string) (models.TransactionDetails, error) {
	log.Printf("[payment][processor] retrieving transaction details transaction_id=%s", transactionID)
	details, err := p.gateway.GetTransactionDetails(ctx, transactionID)
	if err != nil {
		log.Printf("[payment][processor] error: transaction details retrieval failed transaction_id=%s err=%v", transactionID, err)
		return models.TransactionDetails{}, wrapGatewayError("an unexpected error occurred while retrieving transaction details", err)
	}
	log.Printf("[payment][processor] transaction details retrieved transaction_id=%s status=%s", details.TransactionID, details.Status)
	return details, nil
}

func (p *PaymentProcessor) CreateSubscription(ctx context.Context, request models.SubscriptionRequest) (models.SubscriptionResult, error) {
	log.Printf("[payment][processor] creating subscription customer_id=%s plan_id=%s", request.CustomerID, request.PlanID)
	result, err := p.gateway.CreateSubscription(ctx, request)
	if err != nil {
		log.Printf("[payment][processor] error: subscription creation failed err=%v", err)
		return models.SubscriptionResult{}, wrapGatewayError("an unexpected error occurred while creating the subscription", err)
	}
	if result.Success {
		log.Printf("[payment][processor] subscription created subscription_id=%s status=%s", result.SubscriptionID, result.Status)
	} else {
		log.Printf("[payment][processor] warning: subscription creation declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) CancelSubscription(ctx context.Context, subscriptionID string) (models.SubscriptionResult, error) {
	log.Printf("[payment][processor] cancelling subscription subscription_id=%s", subscriptionID)
	result, err := p.gateway.CancelSubscription(ctx, subscriptionID)
	if err != nil {
		log.Printf("[payment][processor] error: subscription cancellation failed subscription_id=%s err=%v", subscriptionID, err)
		return models.SubscriptionResult{}, wrapGatewayError("an unexpected error occurred while cancelling the subscription", err)
	}
	if result.Success {
		log.Printf("[payment][processor] subscription cancelled subscription_id=%s status=%s", result.SubscriptionID, result.Status)
	} else {
		log.Printf("[payment][processor] warning: subscription cancellation declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) CreateCustomer(ctx context.Context, request models.CustomerRequest) (models.CustomerResult, error) {
	log.Printf("[payment][processor] creating customer name=%q", request.Name)
	result, err := p.gateway.CreateCustomer(ctx, request)
	if err != nil {
		log.Printf("[payment][processor] error: customer creation failed err=%v", err)
		return models.CustomerResult{}, wrapGatewayError("an unexpected error occurred while creating the customer", err)
	}
	if result.Success {
		log.Printf("[payment][processor] customer created customer_id=%s", result.CustomerID)
	} else {
		log.Printf("[payment][processor] warning: customer creation declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) GetCustomer(ctx context.Context, customerID string) (models.CustomerResult, error) {
	log.Printf("[payment][processor] retrieving customer customer_id=%s", customerID)
	result, err := p.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		log.Printf("[payment][processor] error: customer retrieval failed customer_id=%s err=%v", customerID, err)
		return models.CustomerResult{}, wrapGatewayError("an unexpected error occurred while retrieving the customer", err)
	}
	if result.Success {
		log.Printf("[payment][processor] customer retrieved customer_id=%s", result.CustomerID)
	} else {
		log.Printf("[payment][processor] warning: customer retrieval declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) UpdateCustomer(ctx context.Context, customerID string, request models.CustomerRequest) (models.CustomerResult, error) {
	log.Printf("[payment][processor] updating customer customer_id=%s", customerID)
	result, err := p.gateway.UpdateCustomer(ctx, customerID, request)
	if err != nil {
		log.Printf("[payment][processor] error: customer update failed customer_id=%s err=%v", customerID, err)
		return models.CustomerResult{}, wrapGatewayError("an unexpected error occurred while updating the customer", err)
	}
	if result.Success {
		log.Printf("[payment][processor] customer updated customer_id=%s", result.CustomerID)
	} else {
		log.Printf("[payment][processor] warning: customer update declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) CreatePlan(ctx context.Context, request models.PlanRequest) (models.PlanResult, error) {
	log.Printf("[payment][processor] creating plan name=%q amount=%s currency=%s", request.Name, request.Amount, request.Currency)
	result, err := p.gateway.CreatePlan(ctx, request)
	if err != nil {
		log.Printf("[payment][processor] error: plan creation failed err=%v", err)
		return models.PlanResult{}, wrapGatewayError("an unexpected error occurred while creating the plan", err)
	}
	if result.Success {
		log.Printf("[payment][processor] plan created plan_id=%s product_id=%s", result.PlanID, result.ProductID)
	} else {
		log.Printf("[payment][processor] warning: plan creation declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

func (p *PaymentProcessor) AddPaymentMethodToCustomer(ctx context.Context, customerID string, paymentMethod models.PaymentMethodInfo) (models.PaymentMethodResult, error) {
	log.Printf("[payment][processor] adding payment method customer_id=%s type=%s", customerID, paymentMethod.Type)
	result, err := p.gateway.AddPaymentMethodToCustomer(ctx, customerID, paymentMethod)
	if err != nil {
		log.Printf("[payment][processor] error: payment method attach failed customer_id=%s err=%v", customerID, err)
		return models.PaymentMethodResult{}, wrapGatewayError("an unexpected error occurred while adding the payment method to the customer", err)
	}
	if result.Success {
		log.Printf("[payment][processor] payment method added payment_method_id=%s", result.PaymentMethodID)
	} else {
		log.Printf("[payment][processor] warning: payment method attach declined error=%q", result.ErrorMessage)
	}
	return result, nil
}

// wrapGatewayError turns any gateway failure into a *pkg.PaymentError.
// Errors the gateway already classified pass through untouched so their kind
// and provider code survive the facade.
func wrapGatewayError(message string, err error) error {
	var payErr *pkg.PaymentError
	if errors.As(err, &payErr) {
		return err
	}
	return pkg.NewTransportError(message, pkg.CodeUnexpectedError, err)
}
