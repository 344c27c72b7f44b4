package eventrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/infrastructure/database"
)

type eventRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IEventRepository {
	return &eventRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *eventRepository) Record(ctx context.Context, event *domain.WebhookEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now().UTC()
	}

	var transactionID sql.NullString
	if event.TransactionID != "" {
		transactionID = sql.NullString{String: event.TransactionID, Valid: true}
	}

	const query = `
		INSERT INTO webhook_events (id, event_type, transaction_id, payload, received_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.EventType,
		transactionID,
		pqtype.NullRawMessage{RawMessage: event.Payload, Valid: event.Payload != nil},
		event.ReceivedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("event_type", event.EventType).Msg("Failed to record webhook event")
		return fmt.Errorf("failed to record webhook event: %w", err)
	}

	return nil
}
