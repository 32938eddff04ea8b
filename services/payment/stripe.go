package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway charges through Stripe PaymentIntents. The stripe.Key must be
// set before the first call (done in main from config).
type StripeGateway struct {
	Logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

func (g *StripeGateway) Authorize(ctx context.Context, amount float64, currency, reference string) (*Authorization, error) {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("reference", reference)

	pi, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Type == stripe.ErrorTypeCard {
			g.Logger.Warn("Stripe declined charge",
				zap.String("reference", reference), zap.String("code", string(stripeErr.Code)))
			return nil, ErrDeclined
		}
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	if pi.Status == stripe.PaymentIntentStatusCanceled {
		return nil, ErrDeclined
	}

	return &Authorization{
		TransactionID: pi.ID,
		Amount:        amount,
		Currency:      currency,
		AuthorizedAt:  time.Now(),
	}, nil
}
