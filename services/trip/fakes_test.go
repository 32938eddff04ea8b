package trip

import (
	"context"
	"fmt"
	"sync"

	"zora/models"
	"zora/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]models.TravelRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]models.TravelRequest)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *models.TravelRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, req *models.TravelRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID]; !ok {
		return fmt.Errorf("request %s not found", req.ID)
	}
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*models.TravelRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("request %s not found", id)
	}
	return &req, nil
}

func (r *fakeRequestRepo) GetAll(ctx context.Context) ([]models.TravelRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TravelRequest
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, nil
}

func (r *fakeRequestRepo) GetByClientID(ctx context.Context, clientID string) ([]models.TravelRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TravelRequest
	for _, req := range r.requests {
		if req.ClientID == clientID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) GetByStatus(ctx context.Context, status models.RequestStatus) ([]models.TravelRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TravelRequest
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeLedger struct {
	mu      sync.Mutex
	records []models.LedgerRecord
}

func (l *fakeLedger) Append(ctx context.Context, record models.LedgerRecord) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	record.RecordID = "REC-" + uuid.New().String()
	l.records = append(l.records, record)
	return record.RecordID, nil
}

func (l *fakeLedger) GetAll(ctx context.Context) ([]models.LedgerRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.LedgerRecord(nil), l.records...), nil
}

func (l *fakeLedger) GetByEventType(ctx context.Context, eventType string) ([]models.LedgerRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.LedgerRecord
	for _, rec := range l.records {
		if rec.EventType == eventType {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeSettings struct {
	rate float64
}

func (s *fakeSettings) GetCommissionRate(ctx context.Context) (float64, error) {
	return s.rate, nil
}

func (s *fakeSettings) SetCommissionRate(ctx context.Context, rate float64) error {
	s.rate = rate
	return nil
}

// fakeGateway authorizes everything unless an error is scripted.
type fakeGateway struct {
	err   error
	calls int
}

func (g *fakeGateway) Authorize(ctx context.Context, amount float64, currency, reference string) (*payment.Authorization, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Authorization{
		TransactionID: "sim_test",
		Amount:        amount,
		Currency:      currency,
	}, nil
}

// fakeAdvisory shortlists up to two offers, cheapest-first ordering is not
// attempted; it preserves submission order like a trivial ranker would.
type fakeAdvisory struct {
	err   error
	empty bool
}

func (a *fakeAdvisory) RankOffers(ctx context.Context, req *models.TravelRequest, offers []models.PartnerOffer) ([]models.PresentedOffer, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.empty {
		return nil, nil
	}
	var out []models.PresentedOffer
	for i, o := range offers {
		if i == 2 {
			break
		}
		out = append(out, models.PresentedOffer{
			PartnerOffer:  o,
			Justification: "solid value for the brief",
			Category:      "Best Value",
			IsRecommended: i == 0,
		})
	}
	return out, nil
}

func (a *fakeAdvisory) GenerateItinerary(ctx context.Context, req *models.TravelRequest) (string, error) {
	return "Day 1: arrive and settle in.", nil
}

func (a *fakeAdvisory) RadarAlert(ctx context.Context, req *models.TravelRequest) (*models.RadarAlert, error) {
	return nil, nil
}

func (a *fakeAdvisory) OfferAdvice(ctx context.Context, req *models.TravelRequest) (string, error) {
	return "", nil
}

func (a *fakeAdvisory) ExpertChat(ctx context.Context, requestID, message string) (string, error) {
	return "", nil
}

// newTestService wires a service over in-memory fakes with a 15% commission.
func newTestService() (*DefaultTripService, *fakeRequestRepo, *fakeLedger, *fakeGateway, *fakeAdvisory) {
	repo := newFakeRequestRepo()
	ledger := &fakeLedger{}
	gateway := &fakeGateway{}
	adv := &fakeAdvisory{}
	svc := &DefaultTripService{
		Repo:     repo,
		Ledger:   ledger,
		Settings: &fakeSettings{rate: 0.15},
		Advisory: adv,
		Gateway:  gateway,
		Logger:   zap.NewNop(),
	}
	return svc, repo, ledger, gateway, adv
}

// seedRequest creates a request and walks it to the given status using the
// real lifecycle operations.
func seedRequest(ctx context.Context, svc *DefaultTripService, target models.RequestStatus) (*models.TravelRequest, error) {
	req, err := svc.CreateRequest(ctx, &models.TravelRequest{
		ClientID:  "C-test",
		From:      "Istanbul",
		To:        "Tokyo",
		Travelers: 2,
		Budget:    25000,
	})
	if err != nil || target == models.StatusNewRequest {
		return req, err
	}

	if req, err = svc.DispatchToPartners(ctx, req.ID); err != nil {
		return req, err
	}
	if req, err = svc.SubmitOffer(ctx, req.ID, models.PartnerOffer{
		PartnerID:   "P-alpha",
		PartnerName: "Alpha Travel",
		Price:       20000,
		Details:     "Full package with transfers",
	}); err != nil {
		return req, err
	}
	if target == models.StatusPendingBids {
		return req, nil
	}

	if req, err = svc.RankOffers(ctx, req.ID); err != nil || target == models.StatusOfferReady {
		return req, err
	}
	if req, err = svc.SelectFinalOffer(ctx, req.ID, req.PresentedOffers[0].ID); err != nil || target == models.StatusPendingPayment {
		return req, err
	}
	if req, err = svc.ProcessPayment(ctx, req.ID); err != nil || target == models.StatusConfirmed {
		return req, err
	}
	if req, err = svc.ReleasePayout(ctx, req.ID); err != nil || target == models.StatusPaymentReleased {
		return req, err
	}
	return svc.CompleteTrip(ctx, req.ID)
}
