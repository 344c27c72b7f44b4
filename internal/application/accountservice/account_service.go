package accountservice

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IAccountService interface {
	// CreateAccount opens a brokerage account for the user and links it to
	// their profile. Returns domain.ErrBrokerAccountExists when the
	// profile already carries one.
	CreateAccount(ctx context.Context, userID string, req *domain.AccountRequest) (*domain.BrokerAccount, error)
}
