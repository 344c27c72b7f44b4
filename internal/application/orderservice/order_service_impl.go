package orderservice

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/domain/interfaces"
	"github.com/Crypto1181/Caballo/internal/repositories/orderrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/profilerepo"
)

type orderService struct {
	orderRepo    orderrepo.IOrderRepository
	profileRepo  profilerepo.IProfileRepository
	brokerClient interfaces.BrokerClient
	logger       zerolog.Logger
}

func New(
	orderRepo orderrepo.IOrderRepository,
	profileRepo profilerepo.IProfileRepository,
	brokerClient interfaces.BrokerClient,
	logger zerolog.Logger,
) IOrderService {
	return &orderService{
		orderRepo:    orderRepo,
		profileRepo:  profileRepo,
		brokerClient: brokerClient,
		logger:       logger,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID string, req *domain.OrderRequest) (*domain.Order, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.AlpacaAccountID == "" {
		return nil, domain.ErrNoBrokerAccount
	}

	clientOrderID := newClientOrderID()

	placed, err := s.brokerClient.PlaceOrder(ctx, profile.AlpacaAccountID, &domain.BrokerOrderRequest{
		Symbol:        strings.ToUpper(req.Symbol),
		Qty:           req.Qty,
		Side:          req.Side,
		Type:          req.Type,
		TimeInForce:   req.TimeInForce,
		ClientOrderID: clientOrderID,
		LimitPrice:    req.LimitPrice,
		StopPrice:     req.StopPrice,
	})
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:        userID,
		AlpacaOrderID: placed.ID,
		ClientOrderID: clientOrderID,
		Symbol:        strings.ToUpper(req.Symbol),
		Qty:           decimal.NewFromFloat(req.Qty),
		Side:          req.Side,
		Type:          req.Type,
		TimeInForce:   req.TimeInForce,
		LimitPrice:    req.LimitPrice,
		StopPrice:     req.StopPrice,
		Status:        placed.Status,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("symbol", order.Symbol).
		Str("alpaca_order_id", placed.ID).
		Msg("Order placed")

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID, status string, limit int) ([]*domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID, status, limit)
}

func newClientOrderID() string {
	return fmt.Sprintf("caballo-%d-%06d", time.Now().UnixMilli(), rand.Intn(1000000))
}
