package models

import "time"

// Ledger event types. The set is closed; records carrying any other type are
// a programming error.
const (
	EventClientAgreementSigned  = "CLIENT_AGREEMENT_SIGNED"
	EventPartnerAgreementSigned = "PARTNER_AGREEMENT_SIGNED"
	EventBookingConfirmedPaid   = "BOOKING_CONFIRMED_AND_PAID"
	EventPayoutReleased         = "PAYOUT_RELEASED"
)

// LedgerRecord is an append-only audit entry for a legally or financially
// significant event. Records are immutable once written; the hash is a
// tamper-evidence checksum over {eventType, details}, not a security measure.
type LedgerRecord struct {
	RecordID  string                 `bson:"recordId" json:"recordId"`
	Timestamp time.Time              `bson:"timestamp" json:"timestamp"`
	EventType string                 `bson:"eventType" json:"eventType"`
	Details   map[string]interface{} `bson:"details" json:"details"`
	Hash      string                 `bson:"hash" json:"hash"`
}
