package payments

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"payments_xpto/internal/domain/models"
	"payments_xpto/internal/usecase/interfaces"
	"payments_xpto/pkg"
)

const sandboxProcessingDelay = 500 * time.Millisecond

var sandboxPaymentLimit = decimal.NewFromInt(1000000)

// SandboxGateway is the deterministic, network-free provider. Every decision
// is a pure function of the input; the only side effect is an artificial
// processing delay that models realistic provider latency.
//
// Rule-based declines use the result channel (Success=false plus message).
// Customer and plan operations are not part of the sandbox capability set.
type SandboxGateway struct {
	delay time.Duration
}

var _ interfaces.IPaymentGateway = (*SandboxGateway)(nil)

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{delay: sandboxProcessingDelay}
}

// simulateProcessing blocks for the artificial delay, honoring caller
// cancellation.
func (g *SandboxGateway) simulateProcessing(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *SandboxGateway) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	if err := g.simulateProcessing(ctx); err != nil {
		return models.PaymentResult{}, err
	}

	success := request.Amount.GreaterThan(decimal.Zero) && request.Amount.LessThan(sandboxPaymentLimit)
	result := models.PaymentResult{
		Success:   success,
		Currency:  request.Currency,
		Timestamp: time.Now().UTC(),
	}
	if success {
		result.TransactionID = "SANDBOX-" + uuid.NewString()
		result.Status = "Completed"
		result.AmountProcessed = request.Amount
	} else {
		result.Status = "Failed"
		result.AmountProcessed = decimal.Zero
		result.ErrorMessage = "Payment amount out of allowed range"
	}
	log.Printf("[payment][sandbox] payment processed success=%t transaction_id=%s", result.Success, result.TransactionID)
	return result, nil
}

func (g *SandboxGateway) ProcessRefund(ctx context.Context, request models.RefundRequest) (models.RefundResult, error) {
	if err := g.simulateProcessing(ctx); err != nil {
		return models.RefundResult{}, err
	}

	success := request.Amount.GreaterThan(decimal.Zero) && strings.TrimSpace(request.TransactionID) != ""
	result := models.RefundResult{
		Success:   success,
		Timestamp: time.Now().UTC(),
	}
	if success {
		result.RefundID = "SANDBOX-REFUND-" + uuid.NewString()
		result.RefundedAmount = request.Amount
	} else {
		result.RefundedAmount = decimal.Zero
		result.ErrorMessage = "Invalid refund request"
	}
	log.Printf("[payment][sandbox] refund processed success=%t refund_id=%s", result.Success, result.RefundID)
	return result, nil
}

// GetTransactionDetails returns a fixed illustrative record. The sandbox
// keeps no transaction history, so this is a stand-in, not a real lookup.
func (g *SandboxGateway) GetTransactionDetails(ctx context.Context, transactionID string) (models.TransactionDetails, error) {
	if err := g.simulateProcessing(ctx); err != nil {
		return models.TransactionDetails{}, err
	}

	return models.TransactionDetails{
		TransactionID:     transactionID,
		Amount:            decimal.RequireFromString("100.00"),
		Currency:          "USD",
		Status:            "succeeded",
		Timestamp:         time.Now().UTC().Add(-5 * time.Minute),
		PaymentMethodType: "card",
		CustomerName:      "John Doe",
		CustomerEmail:     "john.doe@example.com",
		Description:       "Sandbox transaction",
	}, nil
}

func (g *SandboxGateway) CreateSubscription(ctx context.Context, request models.SubscriptionRequest) (models.SubscriptionResult, error) {
	if err := g.simulateProcessing(ctx); err != nil {
		return models.SubscriptionResult{}, err
	}

	success := request.Amount.GreaterThan(decimal.Zero) && strings.TrimSpace(request.CustomerID) != ""
	now := time.Now().UTC()
	result := models.SubscriptionResult{
		Success:   success,
		StartDate: now,
	}
	if success {
		result.SubscriptionID = "SANDBOX-SUB-" + uuid.NewString()
		result.Status = "active"
		end := now.AddDate(0, request.IntervalCount, 0)
		result.EndDate = &end
	} else {
		result.Status = "failed"
		result.ErrorMessage = "Invalid subscription request"
	}
	log.Printf("[payment][sandbox] subscription created success=%t subscription_id=%s", result.Success, result.SubscriptionID)
	return result, nil
}

func (g *SandboxGateway) CancelSubscription(ctx context.Context, subscriptionID string) (models.SubscriptionResult, error) {
	if err := g.simulateProcessing(ctx); err != nil {
		return models.SubscriptionResult{}, err
	}

	success := strings.TrimSpace(subscriptionID) != ""
	now := time.Now().UTC()
	result := models.SubscriptionResult{
		Success:        success,
		SubscriptionID: subscriptionID,
		StartDate:      now.AddDate(0, -1, 0),
	}
	if success {
		result.Status = "cancelled"
		result.EndDate = &now
	} else {
		result.Status = "failed"
		result.ErrorMessage = "Invalid subscription ID"
	}
	log.Printf("[payment][sandbox] subscription cancelled success=%t subscription_id=%s", result.Success, subscriptionID)
	return result, nil
}

func (g *SandboxGateway) CreateCustomer(ctx context.Context, request models.CustomerRequest) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("CreateCustomer", "sandbox")
}

func (g *SandboxGateway) GetCustomer(ctx context.Context, customerID string) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("GetCustomer", "sandbox")
}

func (g *SandboxGateway) UpdateCustomer(ctx context.Context, customerID string, request models.CustomerRequest) (models.CustomerResult, error) {
	return models.CustomerResult{}, pkg.NewNotSupportedError("UpdateCustomer", "sandbox")
}

func (g *SandboxGateway) CreatePlan(ctx context.Context, request models.PlanRequest) (models.PlanResult, error) {
	return models.PlanResult{}, pkg.NewNotSupportedError("CreatePlan", "sandbox")
}

func (g *SandboxGateway) AddPaymentMethodToCustomer(ctx context.Context, customerID string, paymentMethod models.PaymentMethodInfo) (models.PaymentMethodResult, error) {
	return models.PaymentMethodResult{
		Success:         true,
		PaymentMethodID: "pm_sandbox_" + uuid.NewString(),
		Type:            paymentMethod.Type,
	}, nil
}
