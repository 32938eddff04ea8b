package ledgerRepo

import (
	"context"

	"zora/models"
)

// LedgerRepository is the append-only store for governance records. There is
// deliberately no update or delete: the only mutation is Append.
type LedgerRepository interface {
	// Append writes a new record and returns its record ID.
	Append(ctx context.Context, record models.LedgerRecord) (string, error)
	// GetAll returns every ledger record in insertion order.
	GetAll(ctx context.Context) ([]models.LedgerRecord, error)
	// GetByEventType returns records of one event type in insertion order.
	GetByEventType(ctx context.Context, eventType string) ([]models.LedgerRecord, error)
}
