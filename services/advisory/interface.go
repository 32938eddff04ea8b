package advisory

import (
	"context"

	"zora/models"
)

// Service is the AI advisory collaborator. Every method may fail; callers
// must treat a failure or empty result as "no suggestion" and degrade
// gracefully rather than surfacing an error to the end user.
type Service interface {
	// RankOffers returns a shortlisted, annotated subset of the given offers
	// (ideally two). An empty result means no ranking could be produced.
	RankOffers(ctx context.Context, req *models.TravelRequest, offers []models.PartnerOffer) ([]models.PresentedOffer, error)
	// GenerateItinerary produces a free-text travel guide for the request.
	GenerateItinerary(ctx context.Context, req *models.TravelRequest) (string, error)
	// RadarAlert scans the request for operational risks.
	RadarAlert(ctx context.Context, req *models.TravelRequest) (*models.RadarAlert, error)
	// OfferAdvice gives a partner strategic bidding advice for the request.
	OfferAdvice(ctx context.Context, req *models.TravelRequest) (string, error)
	// ExpertChat continues the client's expert-advisory conversation. Prior
	// turns are held in the context store keyed by request ID.
	ExpertChat(ctx context.Context, requestID, message string) (string, error)
}
