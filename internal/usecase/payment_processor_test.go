package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"payments_xpto/internal/domain/models"
	mock_interfaces "payments_xpto/internal/usecase/interfaces/mocks"
	"payments_xpto/pkg"
)

func validPaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		Amount:        decimal.RequireFromString("10.00"),
		Currency:      "USD",
		PaymentMethod: models.PaymentMethodInfo{Type: "card", Details: "pm_card_visa"},
		Customer:      models.Customer{Name: "Test User", Email: "test@example.com"},
	}
}

func TestPaymentProcessor_ProcessPayment(t *testing.T) {
	t.Run("invalid request never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		// No EXPECT: any gateway call fails the test.
		p := NewPaymentProcessor(gateway)

		req := validPaymentRequest()
		req.Amount = decimal.Zero
		_, err := p.ProcessPayment(context.Background(), req)

		var payErr *pkg.PaymentError
		if !errors.As(err, &payErr) {
			t.Fatalf("expected *pkg.PaymentError, got %v", err)
		}
		if payErr.Kind != pkg.KindValidation || payErr.Code != pkg.CodeInvalidRequest {
			t.Fatalf("expected validation/INVALID_REQUEST, got %s/%s", payErr.Kind, payErr.Code)
		}
	})

	t.Run("successful result is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		want := models.PaymentResult{
			Success:         true,
			TransactionID:   "txn-1",
			Status:          "Completed",
			AmountProcessed: decimal.RequireFromString("10.00"),
			Currency:        "USD",
			Timestamp:       time.Now().UTC(),
		}
		gateway.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(want, nil)

		got, err := p.ProcessPayment(context.Background(), validPaymentRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.TransactionID != want.TransactionID || got.Status != want.Status || !got.AmountProcessed.Equal(want.AmountProcessed) {
			t.Fatalf("result altered by processor: %+v", got)
		}
	})

	t.Run("business decline passes through without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		declined := models.PaymentResult{Success: false, ErrorMessage: "card declined"}
		gateway.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(declined, nil)

		got, err := p.ProcessPayment(context.Background(), validPaymentRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Success || got.ErrorMessage != "card declined" {
			t.Fatalf("expected decline passthrough, got %+v", got)
		}
	})

	t.Run("raw gateway error is wrapped with cause preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		cause := errors.New("connection reset")
		gateway.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(models.PaymentResult{}, cause)

		_, err := p.ProcessPayment(context.Background(), validPaymentRequest())
		var payErr *pkg.PaymentError
		if !errors.As(err, &payErr) {
			t.Fatalf("expected *pkg.PaymentError, got %v", err)
		}
		if payErr.Kind != pkg.KindTransport || payErr.Code != pkg.CodeUnexpectedError {
			t.Fatalf("expected transport/UNEXPECTED_ERROR, got %s/%s", payErr.Kind, payErr.Code)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("cause not preserved in chain: %v", err)
		}
	})

	t.Run("already-classified gateway error passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		provErr := pkg.NewTransportError("stripe error: card_declined", "card_declined", errors.New("provider said no"))
		gateway.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).Return(models.PaymentResult{}, provErr)

		_, err := p.ProcessPayment(context.Background(), validPaymentRequest())
		var payErr *pkg.PaymentError
		if !errors.As(err, &payErr) {
			t.Fatalf("expected *pkg.PaymentError, got %v", err)
		}
		if payErr.Code != "card_declined" {
			t.Fatalf("provider code lost in the facade, got %q", payErr.Code)
		}
	})
}

func TestPaymentProcessor_CapabilityGapPropagation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	p := NewPaymentProcessor(gateway)

	gapErr := pkg.NewNotSupportedError("CreatePlan", "paypal")
	gateway.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Return(models.PlanResult{}, gapErr)

	_, err := p.CreatePlan(context.Background(), models.PlanRequest{Name: "Gold"})
	var payErr *pkg.PaymentError
	if !errors.As(err, &payErr) {
		t.Fatalf("expected *pkg.PaymentError, got %v", err)
	}
	if payErr.Kind != pkg.KindNotSupported {
		t.Fatalf("expected not_supported kind, got %s", payErr.Kind)
	}
}

func TestPaymentProcessor_LookupOperations(t *testing.T) {
	t.Run("transaction details passthrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		want := models.TransactionDetails{
			TransactionID: "txn-9",
			Amount:        decimal.RequireFromString("42.00"),
			Currency:      "usd",
			Status:        "succeeded",
		}
		gateway.EXPECT().GetTransactionDetails(gomock.Any(), "txn-9").Return(want, nil)

		got, err := p.GetTransactionDetails(context.Background(), "txn-9")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.TransactionID != "txn-9" || got.Status != "succeeded" {
			t.Fatalf("unexpected details: %+v", got)
		}
	})

	t.Run("customer lookup failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		p := NewPaymentProcessor(gateway)

		gateway.EXPECT().GetCustomer(gomock.Any(), "cus-1").Return(models.CustomerResult{}, errors.New("boom"))

		_, err := p.GetCustomer(context.Background(), "cus-1")
		var payErr *pkg.PaymentError
		if !errors.As(err, &payErr) {
			t.Fatalf("expected *pkg.PaymentError, got %v", err)
		}
	})
}
