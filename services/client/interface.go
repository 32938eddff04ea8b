package client

import (
	"context"

	"zora/models"
)

// ClientService manages client profiles, including the one-way
// legal-agreement signature.
type ClientService interface {
	RegisterClient(ctx context.Context, c *models.Client, password string) (*models.Client, error)
	UpdateClient(ctx context.Context, c *models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
	GetClientByID(ctx context.Context, id string) (*models.Client, error)
	GetAllClients(ctx context.Context) ([]models.Client, error)
	// SignAgreement records the client's signature. Signing is one-way and
	// emits exactly one ledger record; signing again is a no-op.
	SignAgreement(ctx context.Context, id, version string) (*models.Client, error)
	// Authenticate verifies credentials and returns the client on success.
	Authenticate(ctx context.Context, email, password string) (*models.Client, error)
}
