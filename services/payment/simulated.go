package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedGateway approves every well-formed charge after a short delay. It
// stands in for a real acquirer in development and demos.
type SimulatedGateway struct {
	Logger *zap.Logger
	// Delay before the simulated authorization completes.
	Delay time.Duration
}

// NewSimulatedGateway returns a gateway with a one-second settlement delay.
func NewSimulatedGateway(logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{Logger: logger, Delay: 1 * time.Second}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, amount float64, currency, reference string) (*Authorization, error) {
	if amount <= 0 {
		return nil, ErrDeclined
	}

	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	auth := &Authorization{
		TransactionID: "sim_" + uuid.New().String(),
		Amount:        amount,
		Currency:      currency,
		AuthorizedAt:  time.Now(),
	}
	if g.Logger != nil {
		g.Logger.Info("Simulated payment authorized",
			zap.String("reference", reference),
			zap.Float64("amount", amount),
			zap.String("transaction", auth.TransactionID))
	}
	return auth, nil
}
