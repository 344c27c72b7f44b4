package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the per-user, per-currency virtual ledger record. Available
// funds only ever grow under successful-deposit application; the row is
// created lazily on the first credit and never deleted.
type Balance struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"user_id" db:"user_id"`
	CurrencyCode string          `json:"currency_code" db:"currency_code"`
	Available    decimal.Decimal `json:"available" db:"available"`
	Pending      decimal.Decimal `json:"pending" db:"pending"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
