package reconcilerservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/domain/interfaces"
	"github.com/Crypto1181/Caballo/internal/repositories/depositrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/eventrepo"
	"github.com/Crypto1181/Caballo/internal/repositories/ledgerrepo"
	"github.com/Crypto1181/Caballo/pkg/currency"
)

const ledgerCurrency = "USD"

type reconcilerService struct {
	depositRepo depositrepo.IDepositRepository
	ledgerRepo  ledgerrepo.ILedgerRepository
	eventRepo   eventrepo.IEventRepository
	broadcaster interfaces.StatusBroadcaster
	logger      zerolog.Logger
}

func New(
	depositRepo depositrepo.IDepositRepository,
	ledgerRepo ledgerrepo.ILedgerRepository,
	eventRepo eventrepo.IEventRepository,
	broadcaster interfaces.StatusBroadcaster,
	logger zerolog.Logger,
) IReconcilerService {
	return &reconcilerService{
		depositRepo: depositRepo,
		ledgerRepo:  ledgerRepo,
		eventRepo:   eventRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (s *reconcilerService) Reconcile(ctx context.Context, event domain.Event, rawPayload json.RawMessage) (Outcome, error) {
	s.recordEvent(ctx, event, rawPayload)

	switch e := event.(type) {
	case domain.PaymentSucceeded:
		return s.handlePaymentSucceeded(ctx, e)
	case domain.PaymentFailed:
		return s.handlePaymentFailed(ctx, e)
	case domain.DisputeCreated:
		return s.handleDisputeCreated(ctx, e)
	default:
		s.logger.Info().Str("event_type", event.Kind()).Msg("Unhandled webhook event type")
		return OutcomeIgnored, nil
	}
}

// handlePaymentSucceeded marks the deposit succeeded and credits the
// user's USD ledger. The status write and the balance write are
// independent; there is no pre-check for an already-processed transaction
// id, so a redelivered event credits the ledger again. The conditional
// UpdateStatusIfCurrently variant on the deposit repository is the hook
// for closing that gap.
func (s *reconcilerService) handlePaymentSucceeded(ctx context.Context, event domain.PaymentSucceeded) (Outcome, error) {
	if event.UserID == "" || event.AlpacaAccountID == "" {
		s.logger.Warn().
			Str("payment_intent", event.TransactionID).
			Msg("Payment intent missing user or account metadata, discarding event")
		return OutcomeDiscarded, nil
	}

	rows, err := s.depositRepo.UpdateStatus(ctx, event.TransactionID, domain.DepositSucceeded)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		s.logger.Warn().
			Str("payment_intent", event.TransactionID).
			Msg("No deposit row for succeeded payment intent")
	}

	amount := currency.CentsToDecimal(event.AmountCents)

	balance, err := s.ledgerRepo.Get(ctx, event.UserID, ledgerCurrency)
	if err != nil {
		return "", err
	}

	if balance != nil {
		if err := s.ledgerRepo.SetAvailable(ctx, event.UserID, ledgerCurrency, balance.Available.Add(amount)); err != nil {
			return "", err
		}
	} else {
		if err := s.ledgerRepo.Create(ctx, &domain.Balance{
			UserID:       event.UserID,
			CurrencyCode: ledgerCurrency,
			Available:    amount,
			Pending:      decimal.Zero,
		}); err != nil {
			return "", err
		}
	}

	s.logger.Info().
		Str("payment_intent", event.TransactionID).
		Str("user_id", event.UserID).
		Str("amount", currency.FormatUSD(amount)).
		Msg("Deposit succeeded")

	s.broadcastStatus(event.TransactionID, event.UserID, domain.DepositSucceeded)

	return OutcomeApplied, nil
}

func (s *reconcilerService) handlePaymentFailed(ctx context.Context, event domain.PaymentFailed) (Outcome, error) {
	rows, err := s.depositRepo.UpdateStatus(ctx, event.TransactionID, domain.DepositFailed)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		s.logger.Warn().
			Str("payment_intent", event.TransactionID).
			Msg("No deposit row for failed payment intent")
		return OutcomeDiscarded, nil
	}

	s.logger.Info().Str("payment_intent", event.TransactionID).Msg("Deposit failed")

	s.broadcastStatus(event.TransactionID, "", domain.DepositFailed)

	return OutcomeApplied, nil
}

// handleDisputeCreated only flags the deposit. Previously credited funds
// are not reversed.
func (s *reconcilerService) handleDisputeCreated(ctx context.Context, event domain.DisputeCreated) (Outcome, error) {
	rows, err := s.depositRepo.UpdateStatus(ctx, event.TransactionID, domain.DepositDisputed)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		s.logger.Warn().
			Str("payment_intent", event.TransactionID).
			Msg("No deposit row for disputed payment intent")
		return OutcomeDiscarded, nil
	}

	s.logger.Info().Str("payment_intent", event.TransactionID).Msg("Dispute created for deposit")

	s.broadcastStatus(event.TransactionID, "", domain.DepositDisputed)

	return OutcomeApplied, nil
}

func (s *reconcilerService) recordEvent(ctx context.Context, event domain.Event, rawPayload json.RawMessage) {
	transactionID := ""
	switch e := event.(type) {
	case domain.PaymentSucceeded:
		transactionID = e.TransactionID
	case domain.PaymentFailed:
		transactionID = e.TransactionID
	case domain.DisputeCreated:
		transactionID = e.TransactionID
	}

	if err := s.eventRepo.Record(ctx, &domain.WebhookEvent{
		EventType:     event.Kind(),
		TransactionID: transactionID,
		Payload:       rawPayload,
	}); err != nil {
		s.logger.Error().Err(err).Str("event_type", event.Kind()).Msg("Failed to record webhook event")
	}
}

func (s *reconcilerService) broadcastStatus(paymentIntentID, userID string, status domain.DepositStatus) {
	if s.broadcaster == nil {
		return
	}

	update := &domain.DepositStatusUpdate{
		Type:            "deposit_status",
		PaymentIntentID: paymentIntentID,
		UserID:          userID,
		Status:          status,
		Timestamp:       time.Now(),
	}

	if err := s.broadcaster.Broadcast(update); err != nil {
		s.logger.Error().Err(err).Str("payment_intent", paymentIntentID).Msg("Failed to broadcast deposit status update")
	}
}
