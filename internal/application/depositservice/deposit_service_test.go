package depositservice

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type fakeDepositRepo struct {
	created   []*domain.Deposit
	createErr error
}

func (f *fakeDepositRepo) Create(ctx context.Context, deposit *domain.Deposit) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, deposit)
	return nil
}

func (f *fakeDepositRepo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Deposit, error) {
	return nil, nil
}

func (f *fakeDepositRepo) UpdateStatus(ctx context.Context, paymentIntentID string, status domain.DepositStatus) (int64, error) {
	return 0, nil
}

func (f *fakeDepositRepo) UpdateStatusIfCurrently(ctx context.Context, paymentIntentID string, expected, status domain.DepositStatus) (bool, error) {
	return false, nil
}

func (f *fakeDepositRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Deposit, error) {
	return f.created, nil
}

type fakeProfileRepo struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) SetAlpacaAccountID(ctx context.Context, userID, accountID string) error {
	return nil
}

type fakePaymentClient struct {
	intent  *domain.PaymentIntent
	err     error
	lastReq *domain.PaymentIntentRequest
}

func (f *fakePaymentClient) CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}

func fundedProfile() *domain.Profile {
	return &domain.Profile{
		ID:              "user-1",
		AlpacaAccountID: "acct-1",
		WalletAddress:   "0xabc",
	}
}

func TestInitiateDeposit(t *testing.T) {
	deposits := &fakeDepositRepo{}
	profiles := &fakeProfileRepo{profile: fundedProfile()}
	payments := &fakePaymentClient{intent: &domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	svc := New(deposits, profiles, payments, zerolog.Nop())

	initiation, err := svc.InitiateDeposit(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if initiation.PaymentIntentID != "pi_1" || initiation.ClientSecret != "pi_1_secret" {
		t.Fatalf("unexpected initiation: %+v", initiation)
	}
	if payments.lastReq.AmountCents != 5000 {
		t.Errorf("amount cents: got %d", payments.lastReq.AmountCents)
	}
	if payments.lastReq.AlpacaAccountID != "acct-1" {
		t.Errorf("alpaca account: got %q", payments.lastReq.AlpacaAccountID)
	}

	if len(deposits.created) != 1 {
		t.Fatalf("expected 1 pending deposit, got %d", len(deposits.created))
	}
	created := deposits.created[0]
	if created.StripePaymentIntent != "pi_1" || created.Status != domain.DepositPending {
		t.Fatalf("unexpected deposit: %+v", created)
	}
}

func TestInitiateDeposit_RejectsNonPositiveAmount(t *testing.T) {
	svc := New(&fakeDepositRepo{}, &fakeProfileRepo{profile: fundedProfile()}, &fakePaymentClient{}, zerolog.Nop())

	for _, amount := range []float64{0, -1, -0.01} {
		if _, err := svc.InitiateDeposit(context.Background(), "user-1", amount); !errors.Is(err, domain.ErrInvalidDepositAmount) {
			t.Errorf("amount %v: expected ErrInvalidDepositAmount, got %v", amount, err)
		}
	}
}

func TestInitiateDeposit_RequiresBrokerAccount(t *testing.T) {
	profiles := &fakeProfileRepo{profile: &domain.Profile{ID: "user-1"}}
	svc := New(&fakeDepositRepo{}, profiles, &fakePaymentClient{}, zerolog.Nop())

	if _, err := svc.InitiateDeposit(context.Background(), "user-1", 50); !errors.Is(err, domain.ErrNoBrokerAccount) {
		t.Fatalf("expected ErrNoBrokerAccount, got %v", err)
	}
}

// Pins the recovery path: if the local deposit insert fails after the
// payment intent was opened, the initiation is still returned so the app
// can confirm the payment. The webhook later heals the missing record.
func TestInitiateDeposit_ReturnsIntentDespiteRecordFailure(t *testing.T) {
	deposits := &fakeDepositRepo{createErr: errors.New("insert failed")}
	profiles := &fakeProfileRepo{profile: fundedProfile()}
	payments := &fakePaymentClient{intent: &domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	svc := New(deposits, profiles, payments, zerolog.Nop())

	initiation, err := svc.InitiateDeposit(context.Background(), "user-1", 50)
	if err != nil {
		t.Fatalf("expected initiation despite record failure, got error: %v", err)
	}
	if initiation.PaymentIntentID != "pi_1" {
		t.Fatalf("unexpected initiation: %+v", initiation)
	}
}

func TestInitiateDeposit_PaymentClientFailure(t *testing.T) {
	payments := &fakePaymentClient{err: errors.New("processor unavailable")}
	svc := New(&fakeDepositRepo{}, &fakeProfileRepo{profile: fundedProfile()}, payments, zerolog.Nop())

	if _, err := svc.InitiateDeposit(context.Background(), "user-1", 50); err == nil {
		t.Fatal("expected processor failure to surface")
	}
}
