package depositrepo

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

type depositRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IDepositRepository {
	return &depositRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *depositRepository) Create(ctx context.Context, deposit *domain.Deposit) error {
	if deposit.ID == "" {
		deposit.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	const query = `
		INSERT INTO deposits (id, user_id, alpaca_account_id, stripe_payment_intent, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		deposit.ID,
		deposit.UserID,
		deposit.AlpacaAccountID,
		deposit.StripePaymentIntent,
		deposit.Amount,
		deposit.Status,
		now,
		now,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("payment_intent", deposit.StripePaymentIntent).Msg("Failed to create deposit")
		return fmt.Errorf("failed to create deposit: %w", err)
	}

	deposit.CreatedAt = now
	deposit.UpdatedAt = now
	return nil
}

func (r *depositRepository) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Deposit, error) {
	const query = `
		SELECT id, user_id, alpaca_account_id, stripe_payment_intent, amount, status, created_at, updated_at
		FROM deposits
		WHERE stripe_payment_intent = $1`

	var deposit domain.Deposit
	err := r.db.QueryRowContext(ctx, query, paymentIntentID).Scan(
		&deposit.ID,
		&deposit.UserID,
		&deposit.AlpacaAccountID,
		&deposit.StripePaymentIntent,
		&deposit.Amount,
		&deposit.Status,
		&deposit.CreatedAt,
		&deposit.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("payment_intent", paymentIntentID).Msg("Failed to get deposit")
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}

	return &deposit, nil
}

func (r *depositRepository) UpdateStatus(ctx context.Context, paymentIntentID string, status domain.DepositStatus) (int64, error) {
	const query = `
		UPDATE deposits
		SET status = $2, updated_at = $3
		WHERE stripe_payment_intent = $1`

	result, err := r.db.ExecContext(ctx, query, paymentIntentID, status, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Str("payment_intent", paymentIntentID).Str("status", string(status)).Msg("Failed to update deposit status")
		return 0, fmt.Errorf("failed to update deposit status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows, nil
}

func (r *depositRepository) UpdateStatusIfCurrently(ctx context.Context, paymentIntentID string, expected, status domain.DepositStatus) (bool, error) {
	const query = `
		UPDATE deposits
		SET status = $3, updated_at = $4
		WHERE stripe_payment_intent = $1 AND status = $2`

	result, err := r.db.ExecContext(ctx, query, paymentIntentID, expected, status, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Str("payment_intent", paymentIntentID).Str("status", string(status)).Msg("Failed to conditionally update deposit status")
		return false, fmt.Errorf("failed to conditionally update deposit status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *depositRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Deposit, error) {
	const query = `
		SELECT id, user_id, alpaca_account_id, stripe_payment_intent, amount, status, created_at, updated_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list deposits")
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []*domain.Deposit
	for rows.Next() {
		var deposit domain.Deposit
		if err := rows.Scan(
			&deposit.ID,
			&deposit.UserID,
			&deposit.AlpacaAccountID,
			&deposit.StripePaymentIntent,
			&deposit.Amount,
			&deposit.Status,
			&deposit.CreatedAt,
			&deposit.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, &deposit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return deposits, nil
}
