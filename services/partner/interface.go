package partner

import (
	"context"

	"zora/models"
)

// PartnerService manages partner agency profiles, including the one-way
// legal-agreement signature.
type PartnerService interface {
	RegisterPartner(ctx context.Context, p *models.Partner, password string) (*models.Partner, error)
	UpdatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error)
	DeletePartner(ctx context.Context, id string) error
	GetPartnerByID(ctx context.Context, id string) (*models.Partner, error)
	GetAllPartners(ctx context.Context) ([]models.Partner, error)
	// SignAgreement records the partner's signature. Signing is one-way and
	// emits exactly one ledger record; signing again is a no-op.
	SignAgreement(ctx context.Context, id, version string) (*models.Partner, error)
	// Authenticate verifies credentials and returns the partner on success.
	Authenticate(ctx context.Context, email, password string) (*models.Partner, error)
}
