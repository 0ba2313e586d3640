package payments

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments_xpto/pkg"
)

func TestNewGateway(t *testing.T) {
	cases := []struct {
		name      string
		cfg       Config
		wantType  any
		wantError bool
	}{
		{
			name:     "sandbox needs no credentials",
			cfg:      Config{Type: GatewaySandbox},
			wantType: &SandboxGateway{},
		},
		{
			name:     "stripe with api key",
			cfg:      Config{Type: GatewayStripe, StripeAPIKey: "sk_test_123"},
			wantType: &StripeGateway{},
		},
		{
			name:      "stripe without api key",
			cfg:       Config{Type: GatewayStripe},
			wantError: true,
		},
		{
			name:     "paypal with credentials",
			cfg:      Config{Type: GatewayPayPal, PayPalClientID: "id", PayPalClientSecret: "secret", PayPalSandbox: true},
			wantType: &PayPalGateway{},
		},
		{
			name:      "paypal missing client id",
			cfg:       Config{Type: GatewayPayPal, PayPalClientSecret: "secret"},
			wantError: true,
		},
		{
			name:      "paypal missing client secret",
			cfg:       Config{Type: GatewayPayPal, PayPalClientID: "id"},
			wantError: true,
		},
		{
			name:      "unknown gateway type",
			cfg:       Config{Type: GatewayType("square")},
			wantError: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gateway, err := NewGateway(c.cfg)
			if c.wantError {
				var payErr *pkg.PaymentError
				require.True(t, errors.As(err, &payErr), "expected *pkg.PaymentError, got %v", err)
				assert.Equal(t, pkg.KindConfiguration, payErr.Kind)
				assert.Nil(t, gateway)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, c.wantType, gateway)
		})
	}
}
