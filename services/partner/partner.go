package partner

import (
	"context"
	"fmt"
	"time"

	ledgerRepo "zora/database/repository/ledger"
	partnerRepo "zora/database/repository/partner"
	"zora/models"
	"zora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPartnerService is the production implementation.
type DefaultPartnerService struct {
	Repo   partnerRepo.PartnerRepository
	Ledger ledgerRepo.LedgerRepository
	Logger *zap.Logger
}

// RegisterPartner creates a new partner profile. A profile created with its
// agreement already signed emits the signature ledger record immediately.
func (s *DefaultPartnerService) RegisterPartner(ctx context.Context, p *models.Partner, password string) (*models.Partner, error) {
	if p.Name == "" || p.ContactEmail == "" {
		return nil, fmt.Errorf("partner requires a name and contact email")
	}

	existing, err := s.Repo.GetByEmail(ctx, p.ContactEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("partner with email %s already exists", p.ContactEmail)
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		p.PasswordHash = string(hash)
	}

	p.ID = "P-" + uuid.New().String()
	p.JoinDate = time.Now().Format("2006-01-02")
	if p.Status == "" {
		p.Status = "Active"
	}
	if p.PerformanceTier == "" {
		p.PerformanceTier = "Standard"
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if p.Signed() {
		if err := s.logSignature(ctx, p); err != nil {
			return nil, err
		}
	}

	s.Logger.Info("Partner registered", zap.String("partner", p.ID), zap.String("name", p.Name))
	return p, nil
}

// UpdatePartner saves profile changes. It detects the unsigned-to-signed
// agreement transition and emits the ledger record exactly once; a signature
// already on file is never cleared by a later update.
func (s *DefaultPartnerService) UpdatePartner(ctx context.Context, p *models.Partner) (*models.Partner, error) {
	original, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	firstSignature := !original.Signed() && p.Signed()

	if original.Signed() {
		// Signature is one-way.
		p.AgreementSignedAt = original.AgreementSignedAt
		if p.AgreementVersion == "" {
			p.AgreementVersion = original.AgreementVersion
		}
	}
	if p.PasswordHash == "" {
		p.PasswordHash = original.PasswordHash
	}

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if firstSignature {
		if err := s.logSignature(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SignAgreement records the partner's signature. Re-signing is a no-op and
// does not duplicate the ledger entry.
func (s *DefaultPartnerService) SignAgreement(ctx context.Context, id, version string) (*models.Partner, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Signed() {
		return p, nil
	}

	now := time.Now()
	p.AgreementSignedAt = &now
	p.AgreementVersion = version
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.logSignature(ctx, p); err != nil {
		return nil, err
	}
	s.Logger.Info("Partner agreement signed",
		zap.String("partner", p.ID), zap.String("version", version))
	return p, nil
}

func (s *DefaultPartnerService) logSignature(ctx context.Context, p *models.Partner) error {
	details := map[string]interface{}{
		"partnerId":        p.ID,
		"partnerName":      p.Name,
		"agreementVersion": p.AgreementVersion,
	}
	record := models.LedgerRecord{
		Timestamp: time.Now(),
		EventType: models.EventPartnerAgreementSigned,
		Details:   details,
		Hash:      utils.IntegrityHash(models.EventPartnerAgreementSigned, details),
	}
	if _, err := s.Ledger.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append partner signature record: %w", err)
	}
	return nil
}

// Authenticate verifies credentials and returns the partner on success.
func (s *DefaultPartnerService) Authenticate(ctx context.Context, email, password string) (*models.Partner, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return p, nil
}

func (s *DefaultPartnerService) DeletePartner(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultPartnerService) GetPartnerByID(ctx context.Context, id string) (*models.Partner, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPartnerService) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	return s.Repo.GetAll(ctx)
}
