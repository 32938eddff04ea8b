package trip

import (
	"context"
	"fmt"

	"zora/models"

	"go.uber.org/zap"
)

// DispatchToPartners moves new_request or revision_requested to pending_bids.
func (s *DefaultTripService) DispatchToPartners(ctx context.Context, requestID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusNewRequest && req.Status != models.StatusRevisionRequested {
		return nil, fmt.Errorf("%w: dispatch from %s", ErrInvalidTransition, req.Status)
	}

	req.Status = models.StatusPendingBids
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Request dispatched to partners", zap.String("request", req.ID))
	return req, nil
}

// RankOffers runs the advisory ranking step over the valid offer set.
//
// With zero valid offers the call refuses and leaves the status untouched.
// The request sits in analyzing only while the advisory call is in flight: a
// failed or empty ranking reverts it to pending_bids so it can never get
// stuck with no way forward, and the reversion itself is not an error.
func (s *DefaultTripService) RankOffers(ctx context.Context, requestID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusPendingBids && req.Status != models.StatusAnalyzing {
		return nil, fmt.Errorf("%w: rank from %s", ErrInvalidTransition, req.Status)
	}

	valid := req.ValidOffers()
	if len(valid) == 0 {
		return nil, ErrNoValidOffers
	}

	req.Status = models.StatusAnalyzing
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}

	presented, rankErr := s.Advisory.RankOffers(ctx, req, valid)
	if rankErr != nil || len(presented) == 0 {
		if rankErr != nil {
			s.Logger.Warn("Advisory ranking failed, reverting to pending_bids",
				zap.String("request", req.ID), zap.Error(rankErr))
		} else {
			s.Logger.Warn("Advisory ranking returned no offers, reverting to pending_bids",
				zap.String("request", req.ID))
		}
		req.Status = models.StatusPendingBids
		req.PresentedOffers = nil
		if err := s.Repo.Update(ctx, req); err != nil {
			return nil, err
		}
		return req, nil
	}

	req.Status = models.StatusOfferReady
	req.PresentedOffers = presented
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Offers presented to client",
		zap.String("request", req.ID), zap.Int("presented", len(presented)))
	return req, nil
}

// SelectFinalOffer commits the client to one of the presented offers. The
// final offer is set at most once; the shortlist is retained for audit.
func (s *DefaultTripService) SelectFinalOffer(ctx context.Context, requestID, offerID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusOfferReady || req.PresentedOffers == nil {
		return nil, fmt.Errorf("%w: select from %s", ErrInvalidTransition, req.Status)
	}
	if req.FinalOffer != nil {
		return nil, ErrFinalOfferSet
	}

	var selected *models.PartnerOffer
	for i := range req.PresentedOffers {
		if req.PresentedOffers[i].ID == offerID {
			offer := req.PresentedOffers[i].PartnerOffer
			selected = &offer
			break
		}
	}
	if selected == nil {
		return nil, ErrOfferNotFound
	}

	req.Status = models.StatusPendingPayment
	req.FinalOffer = selected
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Final offer selected",
		zap.String("request", req.ID), zap.String("offer", offerID), zap.Float64("price", selected.Price))
	return req, nil
}

// RejectPresentedOffers declines the whole shortlist. The request parks in
// revision_requested until an admin re-dispatches it.
func (s *DefaultTripService) RejectPresentedOffers(ctx context.Context, requestID, reason string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusOfferReady {
		return nil, fmt.Errorf("%w: reject offers from %s", ErrInvalidTransition, req.Status)
	}

	req.Status = models.StatusRevisionRequested
	req.RejectionReason = reason
	req.PresentedOffers = nil
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Presented offers rejected",
		zap.String("request", req.ID), zap.String("reason", reason))
	return req, nil
}

// CompleteTrip marks a paid-out trip as finished. Pure bookkeeping.
func (s *DefaultTripService) CompleteTrip(ctx context.Context, requestID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusPaymentReleased {
		return nil, fmt.Errorf("%w: complete from %s", ErrInvalidTransition, req.Status)
	}

	req.Status = models.StatusCompleted
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AttachItinerary stores an advisory-generated itinerary on the request.
func (s *DefaultTripService) AttachItinerary(ctx context.Context, requestID, itinerary string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	req.AIItinerary = itinerary
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AttachRadarAlert stores an advisory-generated risk alert on the request.
func (s *DefaultTripService) AttachRadarAlert(ctx context.Context, requestID string, alert *models.RadarAlert) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	req.AIAlert = alert
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
