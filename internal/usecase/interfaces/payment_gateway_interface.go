package interfaces

import (
	"context"

	"payments_xpto/internal/domain/models"
)

// IPaymentGateway abstracts external payment providers (Stripe, PayPal and
// the network-free sandbox) behind one operation set.
//
// Every gateway owns the translation between the normalized models and its
// provider's wire format, including major/minor unit conversion where the
// provider speaks minor units. Status strings are passed through verbatim;
// only the Success flag is normalized across gateways.
//
// Operations a given provider cannot serve fail with a not_supported
// PaymentError, never with a silently empty result.
type IPaymentGateway interface {
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
