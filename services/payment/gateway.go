package payment

import (
	"context"
	"errors"
	"time"
)

// ErrDeclined signals that the gateway refused the charge. The booking stays
// payable; the client may retry.
var ErrDeclined = errors.New("payment declined")

// Authorization is the gateway's answer to a successful charge.
type Authorization struct {
	TransactionID string
	Amount        float64
	Currency      string
	AuthorizedAt  time.Time
}

// Gateway authorizes client charges. Implementations must either return an
// Authorization or an error; ErrDeclined means the charge was refused rather
// than the call failing.
type Gateway interface {
	Authorize(ctx context.Context, amount float64, currency, reference string) (*Authorization, error)
}
