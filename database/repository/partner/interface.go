package partnerRepo

import (
	"context"

	"zora/models"
)

// PartnerRepository defines data access for partner agencies.
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	// GetByEmail returns (nil, nil) when no partner matches.
	GetByEmail(ctx context.Context, email string) (*models.Partner, error)
	GetAll(ctx context.Context) ([]models.Partner, error)
}
