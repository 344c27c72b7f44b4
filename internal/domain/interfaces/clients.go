package interfaces

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

// PaymentClient talks to the payment processor's REST API.
type PaymentClient interface {
	// CreatePaymentIntent opens a payment intent for a funding attempt.
	CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
}

// BrokerClient talks to the trading broker's API. Calls are direct
// proxies: no retry, no idempotency key.
type BrokerClient interface {
	// CreateAccount opens a brokerage account.
	CreateAccount(ctx context.Context, req *domain.AccountRequest) (*domain.BrokerAccount, error)

	// PlaceOrder submits an order for the given brokerage account.
	PlaceOrder(ctx context.Context, accountID string, order *domain.BrokerOrderRequest) (*domain.BrokerOrder, error)
}

// StatusBroadcaster pushes deposit status updates to connected clients.
type StatusBroadcaster interface {
	Broadcast(update *domain.DepositStatusUpdate) error
}
