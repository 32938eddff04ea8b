package trip

import (
	"context"

	"zora/models"
)

// Service owns the request lifecycle: status transitions, offer management,
// financial stamping, ledger emission and the derived financial metrics.
//
// The engine assumes a single logical writer. All mutations are serialized
// through one mutex; it is not designed for concurrent multi-instance
// mutation of the same request without an external concurrency-control layer.
type Service interface {
	// CreateRequest registers a new trip brief in status new_request.
	CreateRequest(ctx context.Context, req *models.TravelRequest) (*models.TravelRequest, error)
	// DispatchToPartners moves new_request or revision_requested to
	// pending_bids. This is a manual admin action; there is no implicit timer.
	DispatchToPartners(ctx context.Context, requestID string) (*models.TravelRequest, error)

	// SubmitOffer records or revises a partner's bid and re-asserts
	// pending_bids. A request holds at most one offer per partner.
	SubmitOffer(ctx context.Context, requestID string, offer models.PartnerOffer) (*models.TravelRequest, error)
	// RejectOfferForRevision sends one offer back to its partner with a note.
	// The request status is untouched.
	RejectOfferForRevision(ctx context.Context, requestID, offerID, note string) (*models.TravelRequest, error)

	// RankOffers runs the advisory ranking over the valid offer set. With no
	// valid offers it refuses without changing status. On advisory failure or
	// an empty result the request reverts to pending_bids; on success the
	// shortlist is stored and the request advances to offer_ready.
	RankOffers(ctx context.Context, requestID string) (*models.TravelRequest, error)
	// SelectFinalOffer commits the client to one presented offer.
	SelectFinalOffer(ctx context.Context, requestID, offerID string) (*models.TravelRequest, error)
	// RejectPresentedOffers declines the whole shortlist with a reason and
	// parks the request in revision_requested until it is re-dispatched.
	RejectPresentedOffers(ctx context.Context, requestID, reason string) (*models.TravelRequest, error)

	// ProcessPayment charges the client for the final offer. Success stamps
	// the financial snapshot exactly once and confirms the booking; a decline
	// moves the request to payment_failed but keeps it payable.
	ProcessPayment(ctx context.Context, requestID string) (*models.TravelRequest, error)
	// ReleasePayout releases the partner payout for a confirmed booking.
	ReleasePayout(ctx context.Context, requestID string) (*models.TravelRequest, error)
	// CompleteTrip marks a paid-out trip as finished.
	CompleteTrip(ctx context.Context, requestID string) (*models.TravelRequest, error)

	// AddChatMessage appends to one of the request's chat threads
	// ("client", "partner" or "expert").
	AddChatMessage(ctx context.Context, requestID, thread string, msg models.ChatMessage) (*models.TravelRequest, error)
	// AttachItinerary stores an advisory-generated itinerary on the request.
	AttachItinerary(ctx context.Context, requestID, itinerary string) (*models.TravelRequest, error)
	// AttachRadarAlert stores an advisory-generated risk alert on the request.
	AttachRadarAlert(ctx context.Context, requestID string, alert *models.RadarAlert) (*models.TravelRequest, error)

	// Metrics recomputes the financial aggregates from the full request
	// collection. Nothing is cached.
	Metrics(ctx context.Context) (*models.FinancialMetrics, error)
}
