package client

import (
	"context"
	"fmt"
	"freshpack-backend/internal/config"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
)

type BraintreeClient interface {
	// ChargeOneTime settles amount against a card nonce from the drop-in UI
	// and returns the gateway transaction id.
	ChargeOneTime(ctx context.Context, nonce string, amount decimal.Decimal, orderRef string) (string, error)
}

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient returns nil when the merchant is not configured, which
// disables card charging at order time.
func NewBraintreeClient(cfg *config.Braintree) BraintreeClient {
	if !cfg.Enabled() {
		return nil
	}

	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

func (c *braintreeClientImpl) ChargeOneTime(ctx context.Context, nonce string, amount decimal.Decimal, orderRef string) (string, error) {
	// braintree wants unscaled minor units plus scale: 500.00 -> NewDecimal(50000, 2)
	minor := amount.Shift(2).Round(0).IntPart()
	if minor <= 0 {
		return "", fmt.Errorf("invalid charge amount %s", amount)
	}

	req := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(minor, 2),
		PaymentMethodNonce: nonce,
		OrderId:            orderRef,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined || tx.Status == braintree.TransactionStatusGatewayRejected {
		return "", fmt.Errorf("transaction declined by processor: %s", tx.ProcessorResponseText)
	}

	return tx.Id, nil
}
