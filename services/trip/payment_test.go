package trip

import (
	"context"
	"errors"
	"testing"

	"zora/models"
	"zora/services/payment"
)

func TestProcessPaymentStampsFinancials(t *testing.T) {
	ctx := context.Background()
	svc, repo, ledger, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Offer 20000 at 15% commission: 3000 platform cut, 17000 partner payout.
	if req.FinalPriceAtPayment == nil || *req.FinalPriceAtPayment != 20000 {
		t.Fatalf("finalPriceAtPayment = %v, want 20000", req.FinalPriceAtPayment)
	}
	if *req.CommissionAtPayment != 3000 {
		t.Errorf("commissionAtPayment = %v, want 3000", *req.CommissionAtPayment)
	}
	if *req.PayoutAmountAtPayment != 17000 {
		t.Errorf("payoutAmountAtPayment = %v, want 17000", *req.PayoutAmountAtPayment)
	}
	if *req.CommissionAtPayment+*req.PayoutAmountAtPayment != *req.FinalPriceAtPayment {
		t.Error("commission + payout must equal the stamped price")
	}
	if req.ClientPaymentDate == nil {
		t.Error("clientPaymentDate must be set")
	}
	if req.TransactionID == "" {
		t.Error("transactionId must be set")
	}
	if req.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want %s", req.Status, models.StatusConfirmed)
	}

	// The persisted copy carries the stamp too; there is no window where the
	// request is confirmed but unstamped.
	stored, _ := repo.GetByID(ctx, req.ID)
	if !stored.Stamped() {
		t.Fatal("persisted request is confirmed but unstamped")
	}

	recs, _ := ledger.GetByEventType(ctx, models.EventBookingConfirmedPaid)
	if len(recs) != 1 {
		t.Fatalf("BOOKING_CONFIRMED_AND_PAID records = %d, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Details["finalPrice"] != 20000.0 || rec.Details["commission"] != 3000.0 || rec.Details["payout"] != 17000.0 {
		t.Errorf("ledger details = %v", rec.Details)
	}
	if rec.Hash == "" {
		t.Error("ledger record must carry an integrity hash")
	}
}

func TestProcessPaymentStampSurvivesRateChange(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// The platform raises its cut after the client has paid. Nothing about
	// the stamped transaction may move.
	if err := svc.Settings.SetCommissionRate(ctx, 0.20); err != nil {
		t.Fatalf("set rate: %v", err)
	}

	stored, err := svc.Repo.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *stored.CommissionAtPayment != 3000 {
		t.Errorf("commission moved after rate change: %v", *stored.CommissionAtPayment)
	}
	if *stored.PayoutAmountAtPayment != 17000 {
		t.Errorf("payout moved after rate change: %v", *stored.PayoutAmountAtPayment)
	}

	m, err := svc.Metrics(ctx)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.TotalProfit != 3000 {
		t.Errorf("totalProfit = %v, want stamped 3000 despite new rate", m.TotalProfit)
	}
}

func TestProcessPaymentRefusesDoubleCharge(t *testing.T) {
	ctx := context.Background()
	svc, _, ledger, gateway, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if gateway.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls)
	}

	if _, err := svc.ProcessPayment(ctx, req.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second pay: got %v, want ErrInvalidTransition", err)
	}
	if gateway.calls != 1 {
		t.Errorf("gateway must not be called again, calls = %d", gateway.calls)
	}
	recs, _ := ledger.GetByEventType(ctx, models.EventBookingConfirmedPaid)
	if len(recs) != 1 {
		t.Errorf("ledger records = %d, want 1", len(recs))
	}
}

func TestProcessPaymentDeclineIsRetryable(t *testing.T) {
	ctx := context.Background()
	svc, repo, ledger, gateway, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingPayment)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	gateway.err = payment.ErrDeclined
	out, err := svc.ProcessPayment(ctx, req.ID)
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("got %v, want ErrPaymentDeclined", err)
	}
	if out.Status != models.StatusPaymentFailed {
		t.Errorf("status = %s, want %s", out.Status, models.StatusPaymentFailed)
	}
	if out.Stamped() {
		t.Error("declined payment must not write the snapshot")
	}
	if out.FinalOffer == nil {
		t.Error("final offer must survive a decline so the client can retry")
	}
	if recs, _ := ledger.GetAll(ctx); len(recs) != 0 {
		t.Errorf("ledger records after decline = %d, want 0", len(recs))
	}

	// Retry straight from payment_failed.
	gateway.err = nil
	out, err = svc.ProcessPayment(ctx, req.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if out.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want %s", out.Status, models.StatusConfirmed)
	}
	if !out.Stamped() {
		t.Error("retried payment must write the snapshot")
	}

	stored, _ := repo.GetByID(ctx, req.ID)
	if stored.Status != models.StatusConfirmed {
		t.Errorf("persisted status = %s", stored.Status)
	}
}

func TestProcessPaymentRequiresFinalOffer(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingPayment)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Force an inconsistent record to check the guard order.
	stored, _ := repo.GetByID(ctx, req.ID)
	stored.FinalOffer = nil
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := svc.ProcessPayment(ctx, req.ID); !errors.Is(err, ErrNoFinalOffer) {
		t.Fatalf("got %v, want ErrNoFinalOffer", err)
	}
}

func TestReleasePayoutWritesLedgerOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, ledger, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPaymentReleased)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if req.PartnerPayoutDate == nil {
		t.Error("partnerPayoutDate must be set")
	}
	if req.PayoutID == "" {
		t.Error("payoutId must be set")
	}

	recs, _ := ledger.GetByEventType(ctx, models.EventPayoutReleased)
	if len(recs) != 1 {
		t.Fatalf("PAYOUT_RELEASED records = %d, want 1", len(recs))
	}
	if recs[0].Details["payoutAmount"] != 17000.0 {
		t.Errorf("ledger payoutAmount = %v, want 17000", recs[0].Details["payoutAmount"])
	}

	// A second release must refuse and must not add a record.
	if _, err := svc.ReleasePayout(ctx, req.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second release: got %v, want ErrInvalidTransition", err)
	}
	recs, _ = ledger.GetByEventType(ctx, models.EventPayoutReleased)
	if len(recs) != 1 {
		t.Errorf("records after refused release = %d, want 1", len(recs))
	}
}
