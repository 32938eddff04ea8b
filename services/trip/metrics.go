package trip

import (
	"context"

	"zora/models"
)

// transactionStatuses are the statuses counted as transactions: everything
// from pending_payment through the terminal states.
var transactionStatuses = map[models.RequestStatus]bool{
	models.StatusPendingPayment:   true,
	models.StatusPaymentFailed:    true,
	models.StatusConfirmed:        true,
	models.StatusPayoutProcessing: true,
	models.StatusPaymentReleased:  true,
	models.StatusCompleted:        true,
}

// Metrics recomputes the financial aggregates from the full request
// collection on every call.
//
// Revenue and profit sum the stamped snapshot over paid requests, so they are
// immune to later commission rate changes. Pending client payments
// deliberately use the live final-offer price: no stamp exists before
// payment.
func (s *DefaultTripService) Metrics(ctx context.Context) (*models.FinancialMetrics, error) {
	requests, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	m := &models.FinancialMetrics{}
	for _, req := range requests {
		if req.ClientPaymentDate != nil {
			if req.FinalPriceAtPayment != nil {
				m.TotalRevenue += *req.FinalPriceAtPayment
			}
			if req.CommissionAtPayment != nil {
				m.TotalProfit += *req.CommissionAtPayment
			}
		}

		switch req.Status {
		case models.StatusConfirmed:
			if req.PayoutAmountAtPayment != nil {
				m.PendingPayouts += *req.PayoutAmountAtPayment
			}
		case models.StatusPaymentReleased, models.StatusCompleted:
			if req.PayoutAmountAtPayment != nil {
				m.TotalPayoutsMade += *req.PayoutAmountAtPayment
			}
		case models.StatusPendingPayment:
			if req.FinalOffer != nil {
				m.PendingClientPayments += req.FinalOffer.Price
			}
		case models.StatusPaymentFailed:
			m.FailedTransactions++
		}

		if transactionStatuses[req.Status] {
			m.TotalTransactions++
		}
	}
	return m, nil
}
