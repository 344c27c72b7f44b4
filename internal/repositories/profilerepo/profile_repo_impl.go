package profilerepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/infrastructure/database"
)

type profileRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IProfileRepository {
	return &profileRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
		SELECT id, email, COALESCE(alpaca_account_id, ''), COALESCE(privy_wallet_address, ''), updated_at
		FROM profiles
		WHERE id = $1`

	var profile domain.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.AlpacaAccountID,
		&profile.WalletAddress,
		&profile.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) SetAlpacaAccountID(ctx context.Context, userID, accountID string) error {
	const query = `
		UPDATE profiles
		SET alpaca_account_id = $2, updated_at = $3
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID, accountID, time.Now().UTC())
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to set alpaca account id")
		return fmt.Errorf("failed to set alpaca account id: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
