package orderrepo

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IOrderRepository interface {
	// Create persists an order after the broker accepted it.
	Create(ctx context.Context, order *domain.Order) error

	// ListByUser returns a user's orders, newest first. status filters by
	// broker status when non-empty; limit caps the result set.
	ListByUser(ctx context.Context, userID, status string, limit int) ([]*domain.Order, error)
}
