package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/domain/interfaces"
	"github.com/Crypto1181/Caballo/internal/repositories/profilerepo"
)

type accountService struct {
	profileRepo  profilerepo.IProfileRepository
	brokerClient interfaces.BrokerClient
	logger       zerolog.Logger
}

func New(profileRepo profilerepo.IProfileRepository, brokerClient interfaces.BrokerClient, logger zerolog.Logger) IAccountService {
	return &accountService{
		profileRepo:  profileRepo,
		brokerClient: brokerClient,
		logger:       logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, userID string, req *domain.AccountRequest) (*domain.BrokerAccount, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.AlpacaAccountID != "" {
		return nil, domain.ErrBrokerAccountExists
	}

	account, err := s.brokerClient.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.SetAlpacaAccountID(ctx, userID, account.ID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("alpaca_account_id", account.ID).
		Msg("Alpaca account created")

	return account, nil
}
