package eventrepo

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

// IEventRepository keeps the audit trail of verified webhook deliveries.
// Recording is best-effort; reconciliation does not depend on it.
type IEventRepository interface {
	Record(ctx context.Context, event *domain.WebhookEvent) error
}
