package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "payments_xpto/internal/adapter/http/dto/request"
	response "payments_xpto/internal/adapter/http/dto/response"
	"payments_xpto/internal/usecase"
	"payments_xpto/pkg"
)

// PaymentHandler exposes the payment processor over HTTP. It is thin glue:
// decode, delegate, encode. All business rules live in the processor and
// the gateways.
type PaymentHandler struct {
	processor usecase.IPaymentProcessor
}

func NewPaymentHandler(processor usecase.IPaymentProcessor) *PaymentHandler {
	return &PaymentHandler{processor: processor}
}

func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payment payload err=%v", err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.ProcessPayment(c.Request.Context(), req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

func (h *PaymentHandler) ProcessRefund(c *gin.Context) {
	var req request.RefundCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid refund payload err=%v", err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.ProcessRefund(c.Request.Context(), req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRefundResult(result))
}

func (h *PaymentHandler) GetTransactionDetails(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	details, err := h.processor.GetTransactionDetails(c.Request.Context(), transactionID)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionDetails(details))
}

func (h *PaymentHandler) CreateSubscription(c *gin.Context) {
	var req request.SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid subscription payload err=%v", err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.CreateSubscription(c.Request.Context(), req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionResult(result))
}

func (h *PaymentHandler) CancelSubscription(c *gin.Context) {
	subscriptionID := c.Param("subscription_id")

	result, err := h.processor.CancelSubscription(c.Request.Context(), subscriptionID)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptionResult(result))
}

func (h *PaymentHandler) CreateCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid customer payload err=%v", err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.CreateCustomer(c.Request.Context(), req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerResult(result))
}

func (h *PaymentHandler) GetCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	result, err := h.processor.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerResult(result))
}

func (h *PaymentHandler) UpdateCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid customer payload customer_id=%s err=%v", customerID, err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.UpdateCustomer(c.Request.Context(), customerID, req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerResult(result))
}

func (h *PaymentHandler) CreatePlan(c *gin.Context) {
	var req request.PlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid plan payload err=%v", err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.CreatePlan(c.Request.Context(), req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlanResult(result))
}

func (h *PaymentHandler) AddPaymentMethodToCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var req request.PaymentMethodAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid payment method payload customer_id=%s err=%v", customerID, err)
		writeBadPayload(c)
		return
	}

	result, err := h.processor.AddPaymentMethodToCustomer(c.Request.Context(), customerID, req.ToModel())
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethodResult(result))
}

func writeBadPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    pkg.CodeInvalidRequest,
		"message": "Invalid request payload",
	})
}

// writePaymentError maps the unified error kind onto an HTTP status. The
// error code and message go out verbatim so callers can branch on codes.
func writePaymentError(c *gin.Context, err error) {
	var payErr *pkg.PaymentError
	if !errors.As(err, &payErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    pkg.CodeUnexpectedError,
			"message": "An internal error occurred",
		})
		return
	}

	status := http.StatusInternalServerError
	switch payErr.Kind {
	case pkg.KindValidation:
		status = http.StatusBadRequest
	case pkg.KindNotSupported:
		status = http.StatusNotImplemented
	case pkg.KindTransport:
		status = http.StatusBadGateway
	case pkg.KindConfiguration:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{
		"code":    payErr.Code,
		"message": payErr.Message,
	})
}
