package payments

import (
	"fmt"
	"log"

	"payments_xpto/internal/usecase/interfaces"
	"payments_xpto/pkg"
)

// GatewayType selects which provider adapter to construct.
type GatewayType string

const (
	GatewaySandbox GatewayType = "sandbox"
	GatewayStripe  GatewayType = "stripe"
	GatewayPayPal  GatewayType = "paypal"
)

// Config is the credential bundle for gateway construction. Only the fields
// of the selected type are read.
type Config struct {
	Type GatewayType

	StripeAPIKey string

	PayPalClientID     string
	PayPalClientSecret string
	PayPalSandbox      bool
}

// NewGateway constructs exactly one gateway for the given configuration.
// Missing credentials for the selected type fail here, synchronously,
// before any operation is reachable; no network activity happens at
// construction time.
func NewGateway(cfg Config) (interfaces.IPaymentGateway, error) {
	switch cfg.Type {
	case GatewaySandbox:
		log.Printf("[payment][factory] sandbox gateway selected")
		return NewSandboxGateway(), nil
	case GatewayStripe:
		gateway, err := NewStripeGateway(cfg.StripeAPIKey)
		if err != nil {
			return nil, err
		}
		log.Printf("[payment][factory] stripe gateway selected")
		return gateway, nil
	case GatewayPayPal:
		gateway, err := NewPayPalGateway(cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.PayPalSandbox)
		if err != nil {
			return nil, err
		}
		log.Printf("[payment][factory] paypal gateway selected sandbox=%t", cfg.PayPalSandbox)
		return gateway, nil
	default:
		return nil, pkg.NewConfigurationError(fmt.Sprintf("unsupported gateway type %q", cfg.Type))
	}
}
