package ledgerrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type ILedgerRepository interface {
	// Get returns the balance for (user, currency), or nil, nil when the
	// row does not exist yet.
	Get(ctx context.Context, userID, currencyCode string) (*domain.Balance, error)

	// Create inserts the first balance row for a (user, currency) pair.
	Create(ctx context.Context, balance *domain.Balance) error

	// SetAvailable overwrites the available amount and stamps the update
	// time. The read-modify-write cycle is the caller's; two concurrent
	// writers can lose an update here.
	SetAvailable(ctx context.Context, userID, currencyCode string, available decimal.Decimal) error

	// ListByUser returns all of a user's balances.
	ListByUser(ctx context.Context, userID string) ([]*domain.Balance, error)
}
