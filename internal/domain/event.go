package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventDisputeCreated   = "charge.dispute.created"
)

var (
	// ErrMalformedPayload marks a body that is not a valid event envelope.
	ErrMalformedPayload = errors.New("malformed webhook payload")
	// ErrMissingEventField marks a recognized event lacking a field its
	// variant requires. The event cannot be acted on but is acknowledged.
	ErrMissingEventField = errors.New("missing required event field")
)

// Event is the closed set of webhook event variants the reconciler
// dispatches on.
type Event interface {
	Kind() string
}

// PaymentSucceeded credits the user's ledger and marks the deposit
// succeeded. UserID and AlpacaAccountID come from the payment intent
// metadata and may be absent; the reconciler discards the event then.
type PaymentSucceeded struct {
	TransactionID   string
	AmountCents     int64
	UserID          string
	AlpacaAccountID string
}

func (PaymentSucceeded) Kind() string { return EventPaymentSucceeded }

type PaymentFailed struct {
	TransactionID string
}

func (PaymentFailed) Kind() string { return EventPaymentFailed }

type DisputeCreated struct {
	TransactionID string
}

func (DisputeCreated) Kind() string { return EventDisputeCreated }

// Unrecognized covers every event type the gateway does not act on.
type Unrecognized struct {
	Type string
}

func (e Unrecognized) Kind() string { return e.Type }

type eventEnvelope struct {
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type paymentIntentObject struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Metadata struct {
		UserID          string `json:"user_id"`
		AlpacaAccountID string `json:"alpaca_account_id"`
	} `json:"metadata"`
}

type disputeObject struct {
	PaymentIntent string `json:"payment_intent"`
}

// ParseEvent builds the event union from a verified webhook body. It fails
// closed: malformed JSON yields ErrMalformedPayload, a recognized type
// without its reconciliation key yields ErrMissingEventField.
func ParseEvent(body []byte) (Event, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if envelope.Type == "" {
		return nil, fmt.Errorf("%w: event type missing", ErrMalformedPayload)
	}

	switch envelope.Type {
	case EventPaymentSucceeded:
		var object paymentIntentObject
		if err := json.Unmarshal(envelope.Data.Object, &object); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if object.ID == "" {
			return nil, fmt.Errorf("%w: payment intent id", ErrMissingEventField)
		}
		return PaymentSucceeded{
			TransactionID:   object.ID,
			AmountCents:     object.Amount,
			UserID:          object.Metadata.UserID,
			AlpacaAccountID: object.Metadata.AlpacaAccountID,
		}, nil

	case EventPaymentFailed:
		var object paymentIntentObject
		if err := json.Unmarshal(envelope.Data.Object, &object); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if object.ID == "" {
			return nil, fmt.Errorf("%w: payment intent id", ErrMissingEventField)
		}
		return PaymentFailed{TransactionID: object.ID}, nil

	case EventDisputeCreated:
		var object disputeObject
		if err := json.Unmarshal(envelope.Data.Object, &object); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if object.PaymentIntent == "" {
			return nil, fmt.Errorf("%w: dispute payment intent", ErrMissingEventField)
		}
		return DisputeCreated{TransactionID: object.PaymentIntent}, nil

	default:
		return Unrecognized{Type: envelope.Type}, nil
	}
}

// WebhookEvent is the audit record kept for every verified delivery.
type WebhookEvent struct {
	ID            uuid.UUID
	EventType     string
	TransactionID string
	Payload       json.RawMessage
	ReceivedAt    time.Time
}
