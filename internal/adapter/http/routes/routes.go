package routes

import (
	"log"
	"os"
	"strconv"

	"payments_xpto/internal/adapter/http/handlers"
	"payments_xpto/internal/infrastructure/payments"
	"payments_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	gateway, err := payments.NewGateway(gatewayConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to configure payment gateway: %v", err)
	}

	processor := usecase.NewPaymentProcessor(gateway)
	paymentHandler := handlers.NewPaymentHandler(processor)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

// gatewayConfigFromEnv reads the gateway selection and credentials from the
// environment. PAYMENT_GATEWAY defaults to sandbox so the service boots with
// no credentials at all.
func gatewayConfigFromEnv() payments.Config {
	gatewayType := payments.GatewayType(os.Getenv("PAYMENT_GATEWAY"))
	if gatewayType == "" {
		gatewayType = payments.GatewaySandbox
	}

	paypalSandbox, _ := strconv.ParseBool(os.Getenv("PAYPAL_SANDBOX"))

	return payments.Config{
		Type:               gatewayType,
		StripeAPIKey:       os.Getenv("STRIPE_API_KEY"),
		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalSandbox:      paypalSandbox,
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
