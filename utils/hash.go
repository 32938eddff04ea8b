package utils

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// IntegrityHash computes the tamper-evidence checksum stored on ledger
// records. It hashes the canonical JSON of {eventType, details}; map keys are
// sorted by encoding/json, so the same event always yields the same hash.
// This is a checksum, not a cryptographic signature.
func IntegrityHash(eventType string, details map[string]interface{}) string {
	payload := struct {
		EventType string                 `json:"eventType"`
		Details   map[string]interface{} `json:"details"`
	}{eventType, details}

	raw, err := json.Marshal(payload)
	if err != nil {
		// Details maps only ever hold JSON-safe values; a failure here is a
		// programming error.
		panic(fmt.Sprintf("ledger hash: unencodable details: %v", err))
	}
	return fmt.Sprintf("hash_%x", xxhash.Sum64(raw))
}
