// Package payments is a stub payment provider. Real payment processing is
// out of scope; the stub hands back a deterministic-looking intent reference
// so bookings carry a payment_intent_id the way a real integration would.
package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, v ...interface{})
}

// Client is the stub payment client
type Client struct {
	provider string
	log      Logger
}

// NewClient creates a stub payment client. provider only labels the generated
// references (e.g. "stub").
func NewClient(provider string, log Logger) *Client {
	if provider == "" {
		provider = "stub"
	}
	return &Client{provider: provider, log: log}
}

// CreateIntent pretends to create a payment intent for the amount and
// returns its reference. It never fails and never charges anyone.
func (c *Client) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (string, error) {
	intentID := fmt.Sprintf("%s_pi_%s", c.provider, uuid.NewString())
	c.log.Info("payments: created stub intent %s for %s %s", intentID, amount.StringFixed(2), currency)
	return intentID, nil
}
