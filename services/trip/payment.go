package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zora/models"
	"zora/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessPayment charges the client for the final offer.
//
// This is the single point where the financial snapshot is written: final
// price, commission at the rate in effect right now, and the partner payout.
// The stamp is computed first and persisted together with the status change
// in one update, so the caller never observes a confirmed request without
// its snapshot. Once written the snapshot is immutable; later commission
// rate changes never touch it.
func (s *DefaultTripService) ProcessPayment(ctx context.Context, requestID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusPendingPayment && req.Status != models.StatusPaymentFailed {
		return nil, fmt.Errorf("%w: pay from %s", ErrInvalidTransition, req.Status)
	}
	if req.FinalOffer == nil {
		return nil, ErrNoFinalOffer
	}
	if req.Stamped() {
		return nil, ErrAlreadyStamped
	}

	auth, err := s.Gateway.Authorize(ctx, req.FinalOffer.Price, "usd", req.ID)
	if err != nil {
		// A decline keeps the final offer so the client can retry.
		req.Status = models.StatusPaymentFailed
		if uerr := s.Repo.Update(ctx, req); uerr != nil {
			return nil, uerr
		}
		if errors.Is(err, payment.ErrDeclined) {
			s.Logger.Warn("Client payment declined", zap.String("request", req.ID))
			return req, ErrPaymentDeclined
		}
		s.Logger.Error("Payment gateway error", zap.String("request", req.ID), zap.Error(err))
		return req, fmt.Errorf("payment gateway: %w", err)
	}

	rate, err := s.Settings.GetCommissionRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve commission rate: %w", err)
	}

	finalPrice := req.FinalOffer.Price
	commission := finalPrice * rate
	payout := finalPrice - commission
	now := time.Now()

	req.Status = models.StatusConfirmed
	req.ClientPaymentDate = &now
	req.FinalPriceAtPayment = &finalPrice
	req.CommissionAtPayment = &commission
	req.PayoutAmountAtPayment = &payout
	req.TransactionID = auth.TransactionID
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}

	details := map[string]interface{}{
		"requestId":  req.ID,
		"clientId":   req.ClientID,
		"partnerId":  req.FinalOffer.PartnerID,
		"finalPrice": finalPrice,
		"commission": commission,
		"payout":     payout,
	}
	if err := s.appendLedger(ctx, models.EventBookingConfirmedPaid, details); err != nil {
		return nil, err
	}

	s.Logger.Info("Booking confirmed and paid",
		zap.String("request", req.ID),
		zap.Float64("finalPrice", finalPrice),
		zap.Float64("commission", commission),
		zap.Float64("payout", payout))
	return req, nil
}

// ReleasePayout releases the partner payout for a confirmed booking and
// records it in the ledger.
func (s *DefaultTripService) ReleasePayout(ctx context.Context, requestID string) (*models.TravelRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: release payout from %s", ErrInvalidTransition, req.Status)
	}

	now := time.Now()
	req.Status = models.StatusPaymentReleased
	req.PartnerPayoutDate = &now
	req.PayoutID = "PY-" + uuid.New().String()
	if err := s.Repo.Update(ctx, req); err != nil {
		return nil, err
	}

	details := map[string]interface{}{
		"requestId": req.ID,
	}
	if req.FinalOffer != nil {
		details["partnerId"] = req.FinalOffer.PartnerID
		details["partnerName"] = req.FinalOffer.PartnerName
	}
	if req.PayoutAmountAtPayment != nil {
		details["payoutAmount"] = *req.PayoutAmountAtPayment
	}
	if err := s.appendLedger(ctx, models.EventPayoutReleased, details); err != nil {
		return nil, err
	}

	s.Logger.Info("Partner payout released", zap.String("request", req.ID))
	return req, nil
}
