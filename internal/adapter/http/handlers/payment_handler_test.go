package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"payments_xpto/internal/adapter/http/handlers/mocks"
	"payments_xpto/internal/domain/models"
	"payments_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/payments", h.ProcessPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/payments", h.ProcessPayment)

		processor.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			Return(models.PaymentResult{}, pkg.NewValidationError("Payment amount must be greater than zero"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"amount":"0","currency":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != pkg.CodeInvalidRequest {
			t.Fatalf("expected code %s, got %s", pkg.CodeInvalidRequest, body["code"])
		}
	})

	t.Run("transport error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/payments", h.ProcessPayment)

		processor.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			Return(models.PaymentResult{}, pkg.NewTransportError("PayPal payment failed", "PAYPAL_ERROR", nil))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"amount":"25.00","currency":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "PAYPAL_ERROR" {
			t.Fatalf("expected code PAYPAL_ERROR, got %s", body["code"])
		}
	})

	t.Run("unclassified error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/payments", h.ProcessPayment)

		processor.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			Return(models.PaymentResult{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(`{"amount":"25.00","currency":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/payments", h.ProcessPayment)

		processor.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req models.PaymentRequest) (models.PaymentResult, error) {
				if req.Customer.Email != "jane@example.com" {
					t.Fatalf("unexpected customer email: %s", req.Customer.Email)
				}
				return models.PaymentResult{
					Success:       true,
					TransactionID: "txn-1",
					Status:        "succeeded",
				}, nil
			})

		payload := `{"amount":"25.00","currency":"USD","payment_method":{"type":"card","details":"tok_visa"},"customer":{"name":"Jane","email":"jane@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["transaction_id"] != "txn-1" {
			t.Fatalf("expected transaction_id txn-1, got %v", body["transaction_id"])
		}
	})
}

func TestPaymentHandler_ProcessRefund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/refunds", h.ProcessRefund)

		processor.EXPECT().ProcessRefund(gomock.Any(), gomock.Any()).
			Return(models.RefundResult{
				Success:        true,
				RefundID:       "re-1",
				RefundedAmount: decimal.RequireFromString("10.00"),
			}, nil)

		payload := `{"transaction_id":"txn-1","amount":"10.00","currency":"USD"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/refunds", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/refunds", h.ProcessRefund)

		req := httptest.NewRequest(http.MethodPost, "/v1/refunds", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetTransactionDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.GET("/v1/transactions/:transaction_id", h.GetTransactionDetails)

		processor.EXPECT().GetTransactionDetails(gomock.Any(), "txn-1").
			Return(models.TransactionDetails{
				TransactionID: "txn-1",
				Status:        "succeeded",
				Amount:        decimal.RequireFromString("25.00"),
				Currency:      "USD",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/txn-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("transport error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.GET("/v1/transactions/:transaction_id", h.GetTransactionDetails)

		processor.EXPECT().GetTransactionDetails(gomock.Any(), "txn-x").
			Return(models.TransactionDetails{}, pkg.NewTransportError("Failed to retrieve transaction details", "", errors.New("timeout")))

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/txn-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Subscriptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/subscriptions", h.CreateSubscription)

		processor.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
			Return(models.SubscriptionResult{
				Success:        true,
				SubscriptionID: "sub-1",
				Status:         "active",
			}, nil)

		payload := `{"customer_id":"cus-1","plan_id":"plan-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.DELETE("/v1/subscriptions/:subscription_id", h.CancelSubscription)

		processor.EXPECT().CancelSubscription(gomock.Any(), "sub-1").
			Return(models.SubscriptionResult{
				Success:        true,
				SubscriptionID: "sub-1",
				Status:         "cancelled",
			}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/sub-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CustomerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create customer not supported maps to 501", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/customers", h.CreateCustomer)

		processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).
			Return(models.CustomerResult{}, pkg.NewNotSupportedError("Customer creation", "the sandbox gateway"))

		payload := `{"name":"Jane","email":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotImplemented {
			t.Fatalf("expected 501, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != pkg.CodeNotSupported {
			t.Fatalf("expected code %s, got %s", pkg.CodeNotSupported, body["code"])
		}
	})

	t.Run("update customer success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.PUT("/v1/customers/:customer_id", h.UpdateCustomer)

		processor.EXPECT().UpdateCustomer(gomock.Any(), "cus-1", gomock.Any()).
			Return(models.CustomerResult{Success: true, CustomerID: "cus-1"}, nil)

		payload := `{"name":"Jane Updated","email":"jane@example.com"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/customers/cus-1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get customer success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.GET("/v1/customers/:customer_id", h.GetCustomer)

		processor.EXPECT().GetCustomer(gomock.Any(), "cus-1").
			Return(models.CustomerResult{Success: true, CustomerID: "cus-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cus-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("attach payment method success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/customers/:customer_id/payment-methods", h.AddPaymentMethodToCustomer)

		processor.EXPECT().AddPaymentMethodToCustomer(gomock.Any(), "cus-1", gomock.Any()).
			Return(models.PaymentMethodResult{Success: true, PaymentMethodID: "pm-1"}, nil)

		payload := `{"type":"card","details":"pm_card_visa"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers/cus-1/payment-methods", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CreatePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("configuration error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/plans", h.CreatePlan)

		processor.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			Return(models.PlanResult{}, pkg.NewConfigurationError("Stripe API key is not configured"))

		payload := `{"name":"Gold","amount":"9.90","currency":"USD","interval":"month"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		processor := mocks.NewMockIPaymentProcessor(ctrl)
		h := NewPaymentHandler(processor)

		r := gin.New()
		r.POST("/v1/plans", h.CreatePlan)

		processor.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).
			Return(models.PlanResult{Success: true, PlanID: "plan-1"}, nil)

		payload := `{"name":"Gold","amount":"9.90","currency":"USD","interval":"month"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
