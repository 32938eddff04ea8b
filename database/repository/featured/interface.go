package featuredRepo

import (
	"context"

	"zora/models"
)

// FeaturedOfferRepository defines data access for promotional packages.
type FeaturedOfferRepository interface {
	Create(ctx context.Context, offer *models.FeaturedOffer) error
	Update(ctx context.Context, offer *models.FeaturedOffer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.FeaturedOffer, error)
	GetAll(ctx context.Context) ([]models.FeaturedOffer, error)
	GetByPartnerID(ctx context.Context, partnerID string) ([]models.FeaturedOffer, error)
}
