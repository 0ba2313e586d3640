package routes

import (
	"net/http"

	"payments_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathRefunds       = "/refunds"
	PathTransactions  = "/transactions"
	PathSubscriptions = "/subscriptions"
	PathCustomers     = "/customers"
	PathPlans         = "/plans"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST(PathPayments, paymentHandler.ProcessPayment)
	rg.POST(PathRefunds, paymentHandler.ProcessRefund)
	rg.GET(PathTransactions+"/:transaction_id", paymentHandler.GetTransactionDetails)

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("", paymentHandler.CreateSubscription)
		subscriptions.DELETE("/:subscription_id", paymentHandler.CancelSubscription)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", paymentHandler.CreateCustomer)
		customers.GET("/:customer_id", paymentHandler.GetCustomer)
		customers.PUT("/:customer_id", paymentHandler.UpdateCustomer)
		customers.POST("/:customer_id/payment-methods", paymentHandler.AddPaymentMethodToCustomer)
	}

	rg.POST(PathPlans, paymentHandler.CreatePlan)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
