package partner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"zora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakePartnerRepo struct {
	partners map[string]models.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: make(map[string]models.Partner)}
}

func (r *fakePartnerRepo) Create(ctx context.Context, p *models.Partner) error {
	r.partners[p.ID] = *p
	return nil
}

func (r *fakePartnerRepo) Update(ctx context.Context, p *models.Partner) error {
	if _, ok := r.partners[p.ID]; !ok {
		return fmt.Errorf("partner %s not found", p.ID)
	}
	r.partners[p.ID] = *p
	return nil
}

func (r *fakePartnerRepo) Delete(ctx context.Context, id string) error {
	delete(r.partners, id)
	return nil
}

func (r *fakePartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	p, ok := r.partners[id]
	if !ok {
		return nil, fmt.Errorf("partner %s not found", id)
	}
	return &p, nil
}

func (r *fakePartnerRepo) GetByEmail(ctx context.Context, email string) (*models.Partner, error) {
	for _, p := range r.partners {
		if p.ContactEmail == email {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakePartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	var out []models.Partner
	for _, p := range r.partners {
		out = append(out, p)
	}
	return out, nil
}

type fakeLedger struct {
	records []models.LedgerRecord
}

func (l *fakeLedger) Append(ctx context.Context, record models.LedgerRecord) (string, error) {
	record.RecordID = "REC-" + uuid.New().String()
	l.records = append(l.records, record)
	return record.RecordID, nil
}

func (l *fakeLedger) GetAll(ctx context.Context) ([]models.LedgerRecord, error) {
	return l.records, nil
}

func (l *fakeLedger) GetByEventType(ctx context.Context, eventType string) ([]models.LedgerRecord, error) {
	var out []models.LedgerRecord
	for _, rec := range l.records {
		if rec.EventType == eventType {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestService() (*DefaultPartnerService, *fakeLedger) {
	ledger := &fakeLedger{}
	return &DefaultPartnerService{
		Repo:   newFakePartnerRepo(),
		Ledger: ledger,
		Logger: zap.NewNop(),
	}, ledger
}

func TestRegisterPartnerDefaults(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService()

	p, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Expeditions",
		ContactEmail: "ops@atlas.example",
	}, "hunter2hunter2")
	if err != nil {
		t.Fatalf("RegisterPartner: %v", err)
	}
	if p.ID == "" {
		t.Error("expected a generated partner ID")
	}
	if p.Status != "Active" || p.PerformanceTier != "Standard" {
		t.Errorf("defaults = %s/%s", p.Status, p.PerformanceTier)
	}
	if p.PasswordHash == "" || p.PasswordHash == "hunter2hunter2" {
		t.Error("password must be stored hashed")
	}
	// No agreement signed yet, so no ledger record.
	if recs, _ := ledger.GetAll(ctx); len(recs) != 0 {
		t.Errorf("ledger records = %d, want 0", len(recs))
	}

	// Duplicate email refused.
	if _, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Clone",
		ContactEmail: "ops@atlas.example",
	}, ""); err == nil {
		t.Fatal("expected duplicate email error")
	}
}

func TestSignAgreementEmitsSingleLedgerRecord(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService()

	p, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Expeditions",
		ContactEmail: "ops@atlas.example",
	}, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	p, err = svc.SignAgreement(ctx, p.ID, "v2.1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !p.Signed() {
		t.Fatal("partner must be signed")
	}
	if p.AgreementVersion != "v2.1" {
		t.Errorf("version = %q", p.AgreementVersion)
	}

	// Signing again is a no-op.
	again, err := svc.SignAgreement(ctx, p.ID, "v3.0")
	if err != nil {
		t.Fatalf("re-sign: %v", err)
	}
	if again.AgreementVersion != "v2.1" {
		t.Errorf("re-sign changed version to %q", again.AgreementVersion)
	}

	recs, _ := ledger.GetByEventType(ctx, models.EventPartnerAgreementSigned)
	if len(recs) != 1 {
		t.Fatalf("PARTNER_AGREEMENT_SIGNED records = %d, want 1", len(recs))
	}
	if recs[0].Details["partnerId"] != p.ID || recs[0].Details["agreementVersion"] != "v2.1" {
		t.Errorf("ledger details = %v", recs[0].Details)
	}
	if recs[0].Hash == "" {
		t.Error("signature record must carry an integrity hash")
	}
}

func TestUpdatePartnerPreservesSignature(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService()

	p, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Expeditions",
		ContactEmail: "ops@atlas.example",
	}, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.SignAgreement(ctx, p.ID, "v2.1"); err != nil {
		t.Fatalf("sign: %v", err)
	}

	// A later profile update with no signature fields must not clear it.
	updated, err := svc.UpdatePartner(ctx, &models.Partner{
		ID:           p.ID,
		Name:         "Atlas Expeditions Ltd",
		ContactEmail: "ops@atlas.example",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Signed() {
		t.Error("update cleared the agreement signature")
	}
	if updated.AgreementVersion != "v2.1" {
		t.Errorf("version = %q", updated.AgreementVersion)
	}
	if recs, _ := ledger.GetByEventType(ctx, models.EventPartnerAgreementSigned); len(recs) != 1 {
		t.Errorf("records = %d, want still 1", len(recs))
	}
}

func TestUpdatePartnerDetectsFirstSignature(t *testing.T) {
	ctx := context.Background()
	svc, ledger := newTestService()

	p, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Expeditions",
		ContactEmail: "ops@atlas.example",
	}, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	now := time.Now()
	p.AgreementSignedAt = &now
	p.AgreementVersion = "v2.1"
	if _, err := svc.UpdatePartner(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	if recs, _ := ledger.GetByEventType(ctx, models.EventPartnerAgreementSigned); len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	if _, err := svc.RegisterPartner(ctx, &models.Partner{
		Name:         "Atlas Expeditions",
		ContactEmail: "ops@atlas.example",
	}, "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "ops@atlas.example", "correct-horse"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ops@atlas.example", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Authenticate(ctx, "nobody@atlas.example", "x"); err == nil {
		t.Error("unknown email accepted")
	}
}
