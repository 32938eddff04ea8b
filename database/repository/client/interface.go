package clientRepo

import (
	"context"

	"zora/models"
)

// ClientRepository defines data access for client profiles.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetByEmail returns (nil, nil) when no client matches.
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
}
