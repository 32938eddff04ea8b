package trip

import (
	"context"
	"fmt"
	"sync"
	"time"

	clientRepo "zora/database/repository/client"
	ledgerRepo "zora/database/repository/ledger"
	partnerRepo "zora/database/repository/partner"
	requestRepo "zora/database/repository/request"
	settingsRepo "zora/database/repository/settings"
	"zora/models"
	"zora/services/advisory"
	"zora/services/payment"
	"zora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTripService is the production implementation of Service.
type DefaultTripService struct {
	Repo     requestRepo.RequestRepository
	Ledger   ledgerRepo.LedgerRepository
	Settings settingsRepo.SettingsRepository
	Partners partnerRepo.PartnerRepository
	Clients  clientRepo.ClientRepository
	Advisory advisory.Service
	Gateway  payment.Gateway
	Logger   *zap.Logger

	// Serializes all mutations. The engine is a single-writer state machine.
	mu sync.Mutex
}

// CreateRequest registers a new trip brief in status new_request.
func (s *DefaultTripService) CreateRequest(ctx context.Context, req *models.TravelRequest) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ClientID == "" {
		return nil, fmt.Errorf("request is missing a client id")
	}

	req.ID = "TR-" + uuid.New().String()
	req.Status = models.StatusNewRequest
	req.Offers = []models.PartnerOffer{}
	req.PresentedOffers = nil
	req.FinalOffer = nil
	req.ClientChat = []models.ChatMessage{}
	req.PartnerChat = []models.ChatMessage{}
	req.ClientPaymentDate = nil
	req.PartnerPayoutDate = nil
	req.FinalPriceAtPayment = nil
	req.CommissionAtPayment = nil
	req.PayoutAmountAtPayment = nil

	if err := s.Repo.Create(ctx, req); err != nil {
		return nil, err
	}
	s.Logger.Info("Travel request created",
		zap.String("request", req.ID), zap.String("client", req.ClientID), zap.String("to", req.To))
	return req, nil
}

// appendLedger writes a governance record with its integrity hash.
func (s *DefaultTripService) appendLedger(ctx context.Context, eventType string, details map[string]interface{}) error {
	record := models.LedgerRecord{
		Timestamp: time.Now(),
		EventType: eventType,
		Details:   details,
		Hash:      utils.IntegrityHash(eventType, details),
	}
	if _, err := s.Ledger.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append %s ledger record: %w", eventType, err)
	}
	return nil
}
