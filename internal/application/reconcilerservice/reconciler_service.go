package reconcilerservice

import (
	"context"
	"encoding/json"

	"github.com/Crypto1181/Caballo/internal/domain"
)

// Outcome classifies what a reconcile call did with a verified event.
type Outcome string

const (
	// OutcomeApplied means the deposit record was mutated.
	OutcomeApplied Outcome = "applied"
	// OutcomeDiscarded means the event was recognized but could not be
	// acted on (missing metadata, no matching deposit row).
	OutcomeDiscarded Outcome = "discarded"
	// OutcomeIgnored means the event type is not one the gateway acts on.
	OutcomeIgnored Outcome = "ignored"
)

// IReconcilerService applies verified payment-processor events to the
// deposit record and the virtual ledger.
type IReconcilerService interface {
	// Reconcile dispatches event by kind and mutates storage. rawPayload
	// is the verified request body, kept for the audit trail. A non-nil
	// error means a storage write failed; every other condition is
	// resolved into an Outcome.
	Reconcile(ctx context.Context, event domain.Event, rawPayload json.RawMessage) (Outcome, error)
}
