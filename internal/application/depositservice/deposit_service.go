package depositservice

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IDepositService interface {
	// InitiateDeposit opens a payment intent for the amount and inserts a
	// pending deposit keyed by the intent id.
	InitiateDeposit(ctx context.Context, userID string, amount float64) (*domain.DepositInitiation, error)

	// ListDeposits returns the user's funding attempts.
	ListDeposits(ctx context.Context, userID string) ([]*domain.Deposit, error)
}
