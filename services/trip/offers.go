package trip

import (
	"context"
	"fmt"

	"zora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitOffer records or revises a partner's bid. Offers are keyed by the
// partner's stable ID: a resubmission replaces the prior entry in place,
// preserving its offer ID, marking it revised and clearing any rejection.
// The request status is re-asserted to pending_bids either way, which covers
// both a fresh bid and a response to a revision request.
//
// Price positivity and itinerary completeness are validated at the API edge,
// not here.
func (s *DefaultTripService) SubmitOffer(ctx context.Context, requestID string, offer models.PartnerOffer) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offer.PartnerID == "" {
		return nil, fmt.Errorf("offer is missing a partner id")
	}

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range req.Offers {
		if req.Offers[i].PartnerID == offer.PartnerID {
			offer.ID = req.Offers[i].ID
			offer.IsRejected = false
			offer.WasRevised = true
			offer.RevisionNote = ""
			req.Offers[i] = offer
			replaced = true
			break
		}
	}
	if !replaced {
		offer.ID = "PO-" + uuid.New().String()
		offer.IsRejected = false
		offer.WasRevised = false
		offer.RevisionNote = ""
		req.Offers = append(req.Offers, offer)
	}

	req.Status = models.StatusPendingBids
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Partner offer submitted",
		zap.String("request", req.ID),
		zap.String("partner", offer.PartnerID),
		zap.Float64("price", offer.Price),
		zap.Bool("revised", replaced))
	return req, nil
}

// RejectOfferForRevision sends a single offer back to its partner with a
// note. The offer drops out of the valid set used by ranking; the request
// status is untouched.
func (s *DefaultTripService) RejectOfferForRevision(ctx context.Context, requestID, offerID, note string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range req.Offers {
		if req.Offers[i].ID == offerID {
			req.Offers[i].IsRejected = true
			req.Offers[i].RevisionNote = note
			found = true
			break
		}
	}
	if !found {
		return nil, ErrOfferNotFound
	}

	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Offer sent back for revision",
		zap.String("request", req.ID), zap.String("offer", offerID))
	return req, nil
}
