package depositrepo

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IDepositRepository interface {
	// Create inserts a pending deposit for a new funding attempt.
	Create(ctx context.Context, deposit *domain.Deposit) error

	// GetByPaymentIntent looks a deposit up by its processor transaction
	// id. Returns nil, nil when no row matches.
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Deposit, error)

	// UpdateStatus sets the status unconditionally (last write wins) and
	// reports how many rows matched.
	UpdateStatus(ctx context.Context, paymentIntentID string, status domain.DepositStatus) (int64, error)

	// UpdateStatusIfCurrently is the conditional variant: the status is
	// only written when the row currently holds expected. It reports
	// whether the write was applied, which makes the succeeded transition
	// usable as an idempotency guard.
	UpdateStatusIfCurrently(ctx context.Context, paymentIntentID string, expected, status domain.DepositStatus) (bool, error)

	// ListByUser returns a user's deposits, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Deposit, error)
}
