package orderrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/infrastructure/database"
)

type orderRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IOrderRepository {
	return &orderRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	var limitPrice, stopPrice sql.NullFloat64
	if order.LimitPrice != nil {
		limitPrice = sql.NullFloat64{Float64: *order.LimitPrice, Valid: true}
	}
	if order.StopPrice != nil {
		stopPrice = sql.NullFloat64{Float64: *order.StopPrice, Valid: true}
	}

	const query = `
		INSERT INTO orders (id, user_id, alpaca_order_id, client_order_id, symbol, qty, side, type, time_in_force, limit_price, stop_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.UserID,
		order.AlpacaOrderID,
		order.ClientOrderID,
		order.Symbol,
		order.Qty,
		order.Side,
		order.Type,
		order.TimeInForce,
		limitPrice,
		stopPrice,
		order.Status,
		now,
		now,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("client_order_id", order.ClientOrderID).Msg("Failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID, status string, limit int) ([]*domain.Order, error) {
	query := `
		SELECT id, user_id, alpaca_order_id, client_order_id, symbol, qty, side, type, time_in_force, limit_price, stop_price, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1`
	args := []interface{}{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		var limitPrice, stopPrice sql.NullFloat64
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.AlpacaOrderID,
			&order.ClientOrderID,
			&order.Symbol,
			&order.Qty,
			&order.Side,
			&order.Type,
			&order.TimeInForce,
			&limitPrice,
			&stopPrice,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if limitPrice.Valid {
			order.LimitPrice = &limitPrice.Float64
		}
		if stopPrice.Valid {
			order.StopPrice = &stopPrice.Float64
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}
