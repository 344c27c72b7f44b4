package orderservice

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IOrderService interface {
	// PlaceOrder forwards the order to the broker and persists the
	// accepted order.
	PlaceOrder(ctx context.Context, userID string, req *domain.OrderRequest) (*domain.Order, error)

	// ListOrders returns the user's order history from storage.
	ListOrders(ctx context.Context, userID, status string, limit int) ([]*domain.Order, error)
}
