package trip

import (
	"context"
	"errors"
	"testing"

	"zora/models"
)

func TestCreateRequestInitializesLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := svc.CreateRequest(ctx, &models.TravelRequest{ClientID: "C-1", To: "Nairobi"})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if req.Status != models.StatusNewRequest {
		t.Errorf("status = %s, want %s", req.Status, models.StatusNewRequest)
	}
	if req.ID == "" {
		t.Error("expected a generated request ID")
	}
	if req.Offers == nil || len(req.Offers) != 0 {
		t.Errorf("offers = %v, want empty slice", req.Offers)
	}
	if req.Stamped() {
		t.Error("fresh request must not carry a financial snapshot")
	}
}

func TestCreateRequestRequiresClient(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	if _, err := svc.CreateRequest(context.Background(), &models.TravelRequest{To: "Nairobi"}); err == nil {
		t.Fatal("expected error for missing client id")
	}
}

func TestDispatchGuardsStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingBids)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Already in pending_bids; a second dispatch must refuse.
	if _, err := svc.DispatchToPartners(ctx, req.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("dispatch from pending_bids: got %v, want ErrInvalidTransition", err)
	}
}

func TestRankOffersWithNoValidOffers(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _, _ := newTestService()

	req, err := svc.CreateRequest(ctx, &models.TravelRequest{ClientID: "C-1", To: "Lima"})
	if err != nil {
		t.Fatalf("CreateRequest: %v", err)
	}
	if _, err := svc.DispatchToPartners(ctx, req.ID); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if _, err := svc.RankOffers(ctx, req.ID); !errors.Is(err, ErrNoValidOffers) {
		t.Fatalf("rank with zero offers: got %v, want ErrNoValidOffers", err)
	}

	stored, _ := repo.GetByID(ctx, req.ID)
	if stored.Status != models.StatusPendingBids {
		t.Errorf("status after refused rank = %s, want %s", stored.Status, models.StatusPendingBids)
	}
}

func TestRankOffersAdvisoryFailureReverts(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _, adv := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingBids)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	adv.err = errors.New("model unavailable")
	out, err := svc.RankOffers(ctx, req.ID)
	if err != nil {
		t.Fatalf("advisory failure must not surface as an error, got %v", err)
	}
	if out.Status != models.StatusPendingBids {
		t.Errorf("status = %s, want reverted %s", out.Status, models.StatusPendingBids)
	}
	if out.PresentedOffers != nil {
		t.Error("presented offers must be cleared on a failed ranking")
	}

	// Recovery: advisory comes back, ranking succeeds.
	adv.err = nil
	out, err = svc.RankOffers(ctx, req.ID)
	if err != nil {
		t.Fatalf("rank after recovery: %v", err)
	}
	if out.Status != models.StatusOfferReady {
		t.Errorf("status = %s, want %s", out.Status, models.StatusOfferReady)
	}
	if len(out.PresentedOffers) == 0 {
		t.Fatal("expected presented offers after successful ranking")
	}

	stored, _ := repo.GetByID(ctx, req.ID)
	if stored.Status != models.StatusOfferReady {
		t.Errorf("persisted status = %s, want %s", stored.Status, models.StatusOfferReady)
	}
}

func TestSubmitOfferReplacesByPartner(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingBids)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	firstID := req.Offers[0].ID

	// Same partner resubmits with a new price. One entry, same offer ID.
	req, err = svc.SubmitOffer(ctx, req.ID, models.PartnerOffer{
		PartnerID:   "P-alpha",
		PartnerName: "Alpha Travel",
		Price:       18500,
	})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if len(req.Offers) != 1 {
		t.Fatalf("offers = %d, want 1 after resubmission", len(req.Offers))
	}
	o := req.Offers[0]
	if o.ID != firstID {
		t.Errorf("offer ID changed on resubmission: %s != %s", o.ID, firstID)
	}
	if o.Price != 18500 {
		t.Errorf("price = %v, want 18500", o.Price)
	}
	if !o.WasRevised {
		t.Error("resubmitted offer must be marked revised")
	}

	// A different partner appends.
	req, err = svc.SubmitOffer(ctx, req.ID, models.PartnerOffer{
		PartnerID:   "P-beta",
		PartnerName: "Beta Voyages",
		Price:       21000,
	})
	if err != nil {
		t.Fatalf("second partner: %v", err)
	}
	if len(req.Offers) != 2 {
		t.Fatalf("offers = %d, want 2", len(req.Offers))
	}
	if req.Offers[1].WasRevised {
		t.Error("fresh offer must not be marked revised")
	}
}

func TestRejectOfferForRevisionDropsFromValidSet(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingBids)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, err = svc.RejectOfferForRevision(ctx, req.ID, req.Offers[0].ID, "itinerary too thin")
	if err != nil {
		t.Fatalf("reject offer: %v", err)
	}
	if !req.Offers[0].IsRejected {
		t.Error("offer must be flagged rejected")
	}
	if req.Offers[0].RevisionNote != "itinerary too thin" {
		t.Errorf("revision note = %q", req.Offers[0].RevisionNote)
	}
	if len(req.ValidOffers()) != 0 {
		t.Error("rejected offer must drop out of the valid set")
	}
	if req.Status != models.StatusPendingBids {
		t.Errorf("status must be untouched, got %s", req.Status)
	}

	// Ranking now refuses; the only offer is out for revision.
	if _, err := svc.RankOffers(ctx, req.ID); !errors.Is(err, ErrNoValidOffers) {
		t.Fatalf("rank: got %v, want ErrNoValidOffers", err)
	}

	// The partner resubmits and the rejection clears.
	req, err = svc.SubmitOffer(ctx, req.ID, models.PartnerOffer{
		PartnerID: "P-alpha",
		Price:     19500,
	})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if req.Offers[0].IsRejected || req.Offers[0].RevisionNote != "" {
		t.Error("resubmission must clear the rejection flag and note")
	}
	if len(req.ValidOffers()) != 1 {
		t.Error("resubmitted offer must be valid again")
	}
}

func TestSelectFinalOfferIsWriteOnce(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusPendingPayment)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if req.FinalOffer == nil {
		t.Fatal("expected a final offer")
	}
	if req.FinalOffer.PartnerID != "P-alpha" {
		t.Errorf("final offer partner = %s", req.FinalOffer.PartnerID)
	}
	// Shortlist survives selection for audit.
	if len(req.PresentedOffers) == 0 {
		t.Error("presented offers must be retained after selection")
	}

	if _, err := svc.SelectFinalOffer(ctx, req.ID, req.PresentedOffers[0].ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second select: got %v, want ErrInvalidTransition", err)
	}
}

func TestSelectUnknownOffer(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusOfferReady)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.SelectFinalOffer(ctx, req.ID, "PO-missing"); !errors.Is(err, ErrOfferNotFound) {
		t.Fatalf("got %v, want ErrOfferNotFound", err)
	}
}

func TestRejectPresentedOffersParksForRevision(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusOfferReady)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, err = svc.RejectPresentedOffers(ctx, req.ID, "over budget")
	if err != nil {
		t.Fatalf("reject offers: %v", err)
	}
	if req.Status != models.StatusRevisionRequested {
		t.Errorf("status = %s, want %s", req.Status, models.StatusRevisionRequested)
	}
	if req.RejectionReason != "over budget" {
		t.Errorf("reason = %q", req.RejectionReason)
	}
	if req.PresentedOffers != nil {
		t.Error("shortlist must be cleared on rejection")
	}

	// Re-dispatch resumes the cycle from revision_requested.
	req, err = svc.DispatchToPartners(ctx, req.ID)
	if err != nil {
		t.Fatalf("re-dispatch: %v", err)
	}
	if req.Status != models.StatusPendingBids {
		t.Errorf("status = %s, want %s", req.Status, models.StatusPendingBids)
	}
}

func TestCompleteRequiresReleasedPayout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.CompleteTrip(ctx, req.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("complete from confirmed: got %v, want ErrInvalidTransition", err)
	}

	if req, err = svc.ReleasePayout(ctx, req.ID); err != nil {
		t.Fatalf("release payout: %v", err)
	}
	if req, err = svc.CompleteTrip(ctx, req.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if req.Status != models.StatusCompleted {
		t.Errorf("status = %s, want %s", req.Status, models.StatusCompleted)
	}
}

func TestAddChatMessageThreads(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestService()

	req, err := seedRequest(ctx, svc, models.StatusNewRequest)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	req, err = svc.AddChatMessage(ctx, req.ID, ThreadPartner, models.ChatMessage{Sender: "Admin", Text: "please bid"})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if len(req.PartnerChat) != 1 || len(req.ClientChat) != 0 {
		t.Errorf("partner=%d client=%d, want 1/0", len(req.PartnerChat), len(req.ClientChat))
	}
	if req.PartnerChat[0].ID == "" {
		t.Error("expected a generated message ID")
	}

	if _, err := svc.AddChatMessage(ctx, req.ID, "nonsense", models.ChatMessage{Sender: "X", Text: "y"}); err == nil {
		t.Fatal("expected error for unknown thread")
	}
}
