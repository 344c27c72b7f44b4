package ledgerrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/infrastructure/database"
)

type ledgerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) ILedgerRepository {
	return &ledgerRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *ledgerRepository) Get(ctx context.Context, userID, currencyCode string) (*domain.Balance, error) {
	const query = `
		SELECT id, user_id, currency, available, pending, updated_at
		FROM virtual_balances
		WHERE user_id = $1 AND currency = $2`

	var balance domain.Balance
	err := r.db.QueryRowContext(ctx, query, userID, currencyCode).Scan(
		&balance.ID,
		&balance.UserID,
		&balance.CurrencyCode,
		&balance.Available,
		&balance.Pending,
		&balance.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Str("currency", currencyCode).Msg("Failed to get balance")
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &balance, nil
}

func (r *ledgerRepository) Create(ctx context.Context, balance *domain.Balance) error {
	if balance.ID == "" {
		balance.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	const query = `
		INSERT INTO virtual_balances (id, user_id, currency, available, pending, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		balance.ID,
		balance.UserID,
		balance.CurrencyCode,
		balance.Available,
		balance.Pending,
		now,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", balance.UserID).Str("currency", balance.CurrencyCode).Msg("Failed to create balance")
		return fmt.Errorf("failed to create balance: %w", err)
	}

	balance.UpdatedAt = now
	return nil
}

func (r *ledgerRepository) SetAvailable(ctx context.Context, userID, currencyCode string, available decimal.Decimal) error {
	const query = `
		UPDATE virtual_balances
		SET available = $3, updated_at = $4
		WHERE user_id = $1 AND currency = $2`

	_, err := r.db.ExecContext(ctx, query, userID, currencyCode, available, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Str("currency", currencyCode).Msg("Failed to update balance")
		return fmt.Errorf("failed to update balance: %w", err)
	}

	return nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Balance, error) {
	const query = `
		SELECT id, user_id, currency, available, pending, updated_at
		FROM virtual_balances
		WHERE user_id = $1
		ORDER BY currency`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list balances")
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []*domain.Balance
	for rows.Next() {
		var balance domain.Balance
		if err := rows.Scan(
			&balance.ID,
			&balance.UserID,
			&balance.CurrencyCode,
			&balance.Available,
			&balance.Pending,
			&balance.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		balances = append(balances, &balance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	return balances, nil
}
