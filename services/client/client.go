package client

import (
	"context"
	"fmt"
	"time"

	clientRepo "zora/database/repository/client"
	ledgerRepo "zora/database/repository/ledger"
	"zora/models"
	"zora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo   clientRepo.ClientRepository
	Ledger ledgerRepo.LedgerRepository
	Logger *zap.Logger
}

// RegisterClient creates a new client profile. A profile created with its
// agreement already signed emits the signature ledger record immediately.
func (s *DefaultClientService) RegisterClient(ctx context.Context, c *models.Client, password string) (*models.Client, error) {
	if c.Name == "" || c.Email == "" {
		return nil, fmt.Errorf("client requires a name and email")
	}

	existing, err := s.Repo.GetByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("client with email %s already exists", c.Email)
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		c.PasswordHash = string(hash)
	}

	c.ID = "C-" + uuid.New().String()
	c.JoinDate = time.Now().Format("2006-01-02")
	if c.LoyaltyTier == "" {
		c.LoyaltyTier = "Bronze"
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if c.Signed() {
		if err := s.logSignature(ctx, c); err != nil {
			return nil, err
		}
	}

	s.Logger.Info("Client registered", zap.String("client", c.ID), zap.String("name", c.Name))
	return c, nil
}

// UpdateClient saves profile changes, emitting the signature ledger record on
// the unsigned-to-signed transition only. A signature already on file is
// never cleared.
func (s *DefaultClientService) UpdateClient(ctx context.Context, c *models.Client) (*models.Client, error) {
	original, err := s.Repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	firstSignature := !original.Signed() && c.Signed()

	if original.Signed() {
		c.AgreementSignedAt = original.AgreementSignedAt
		if c.AgreementVersion == "" {
			c.AgreementVersion = original.AgreementVersion
		}
	}
	if c.PasswordHash == "" {
		c.PasswordHash = original.PasswordHash
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if firstSignature {
		if err := s.logSignature(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SignAgreement records the client's signature. Re-signing is a no-op and
// does not duplicate the ledger entry.
func (s *DefaultClientService) SignAgreement(ctx context.Context, id, version string) (*models.Client, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Signed() {
		return c, nil
	}

	now := time.Now()
	c.AgreementSignedAt = &now
	c.AgreementVersion = version
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.logSignature(ctx, c); err != nil {
		return nil, err
	}
	s.Logger.Info("Client agreement signed",
		zap.String("client", c.ID), zap.String("version", version))
	return c, nil
}

func (s *DefaultClientService) logSignature(ctx context.Context, c *models.Client) error {
	details := map[string]interface{}{
		"clientId":         c.ID,
		"clientName":       c.Name,
		"agreementVersion": c.AgreementVersion,
	}
	record := models.LedgerRecord{
		Timestamp: time.Now(),
		EventType: models.EventClientAgreementSigned,
		Details:   details,
		Hash:      utils.IntegrityHash(models.EventClientAgreementSigned, details),
	}
	if _, err := s.Ledger.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append client signature record: %w", err)
	}
	return nil
}

// Authenticate verifies credentials and returns the client on success.
func (s *DefaultClientService) Authenticate(ctx context.Context, email, password string) (*models.Client, error) {
	c, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return c, nil
}

func (s *DefaultClientService) DeleteClient(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultClientService) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultClientService) GetAllClients(ctx context.Context) ([]models.Client, error) {
	return s.Repo.GetAll(ctx)
}
