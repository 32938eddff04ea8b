package requestRepo

import (
	"context"

	"zora/models"
)

// RequestRepository defines data access for travel requests. Requests are
// never deleted; they only progress through statuses.
type RequestRepository interface {
	// Create inserts a new request record.
	Create(ctx context.Context, req *models.TravelRequest) error
	// Update replaces an existing request document and refreshes updatedAt.
	Update(ctx context.Context, req *models.TravelRequest) error
	// GetByID retrieves a request by its unique ID.
	GetByID(ctx context.Context, id string) (*models.TravelRequest, error)
	// GetAll retrieves all requests, newest first.
	GetAll(ctx context.Context) ([]models.TravelRequest, error)
	// GetByClientID retrieves all requests belonging to a client.
	GetByClientID(ctx context.Context, clientID string) ([]models.TravelRequest, error)
	// GetByStatus retrieves all requests in the given status.
	GetByStatus(ctx context.Context, status models.RequestStatus) ([]models.TravelRequest, error)
}
