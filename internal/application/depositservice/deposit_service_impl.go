package depositservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/domain/interfaces"
	"github.com/Crypto1181/Caballo/internal/repositories/depositrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/profilerepo"
	"github.com/Crypto1181/Caballo/pkg/currency"
)

type depositService struct {
	depositRepo   depositrepo.IDepositRepository
	profileRepo   profilerepo.IProfileRepository
	paymentClient interfaces.PaymentClient
	logger        zerolog.Logger
}

func New(
	depositRepo depositrepo.IDepositRepository,
	profileRepo profilerepo.IProfileRepository,
	paymentClient interfaces.PaymentClient,
	logger zerolog.Logger,
) IDepositService {
	return &depositService{
		depositRepo:   depositRepo,
		profileRepo:   profileRepo,
		paymentClient: paymentClient,
		logger:        logger,
	}
}

func (s *depositService) InitiateDeposit(ctx context.Context, userID string, amount float64) (*domain.DepositInitiation, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidDepositAmount
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.AlpacaAccountID == "" {
		return nil, domain.ErrNoBrokerAccount
	}

	intent, err := s.paymentClient.CreatePaymentIntent(ctx, &domain.PaymentIntentRequest{
		AmountCents:     currency.DollarsToCents(amount),
		Currency:        "usd",
		UserID:          userID,
		AlpacaAccountID: profile.AlpacaAccountID,
		WalletAddress:   profile.WalletAddress,
	})
	if err != nil {
		return nil, err
	}

	deposit := &domain.Deposit{
		UserID:              userID,
		AlpacaAccountID:     profile.AlpacaAccountID,
		StripePaymentIntent: intent.ID,
		Amount:              decimal.NewFromFloat(amount),
		Status:              domain.DepositPending,
	}
	if err := s.depositRepo.Create(ctx, deposit); err != nil {
		// The webhook can still heal the record; return the intent so the
		// app can proceed with payment confirmation.
		s.logger.Error().Err(err).Str("payment_intent", intent.ID).Msg("Failed to save deposit record")
	}

	return &domain.DepositInitiation{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          amount,
	}, nil
}

func (s *depositService) ListDeposits(ctx context.Context, userID string) ([]*domain.Deposit, error) {
	return s.depositRepo.ListByUser(ctx, userID)
}
