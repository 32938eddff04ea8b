package utils

import (
	"strings"
	"testing"
)

func TestIntegrityHashDeterministic(t *testing.T) {
	a := IntegrityHash("BOOKING_CONFIRMED_AND_PAID", map[string]interface{}{
		"requestId":  "TR-1",
		"finalPrice": 20000.0,
		"commission": 3000.0,
	})
	// Same payload, different map insertion order.
	b := IntegrityHash("BOOKING_CONFIRMED_AND_PAID", map[string]interface{}{
		"commission": 3000.0,
		"requestId":  "TR-1",
		"finalPrice": 20000.0,
	})
	if a != b {
		t.Errorf("hash differs for identical payloads: %s != %s", a, b)
	}
	if !strings.HasPrefix(a, "hash_") {
		t.Errorf("hash = %q, want hash_ prefix", a)
	}
}

func TestIntegrityHashSensitivity(t *testing.T) {
	base := IntegrityHash("PAYOUT_RELEASED", map[string]interface{}{"requestId": "TR-1"})

	if got := IntegrityHash("PAYOUT_RELEASED", map[string]interface{}{"requestId": "TR-2"}); got == base {
		t.Error("hash unchanged when details changed")
	}
	if got := IntegrityHash("CLIENT_AGREEMENT_SIGNED", map[string]interface{}{"requestId": "TR-1"}); got == base {
		t.Error("hash unchanged when event type changed")
	}
}
