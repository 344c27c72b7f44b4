package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositSucceeded DepositStatus = "succeeded"
	DepositFailed    DepositStatus = "failed"
	DepositDisputed  DepositStatus = "disputed"
)

// Deposit represents one funding attempt. StripePaymentIntent is the
// reconciliation key joining webhook events back to the row; at most one
// deposit exists per payment intent.
type Deposit struct {
	ID                  string          `json:"id" db:"id"`
	UserID              string          `json:"user_id" db:"user_id"`
	AlpacaAccountID     string          `json:"alpaca_account_id" db:"alpaca_account_id"`
	StripePaymentIntent string          `json:"stripe_payment_intent" db:"stripe_payment_intent"`
	Amount              decimal.Decimal `json:"amount" db:"amount"`
	Status              DepositStatus   `json:"status" db:"status"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// DepositRequest is the authenticated funding request body.
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// DepositInitiation is returned to the app so it can confirm the payment
// with the processor client-side.
type DepositInitiation struct {
	ClientSecret    string  `json:"client_secret"`
	PaymentIntentID string  `json:"payment_intent_id"`
	Amount          float64 `json:"amount"`
}

// DepositStatusUpdate is pushed to connected websocket clients when a
// webhook event mutates a deposit.
type DepositStatusUpdate struct {
	Type            string        `json:"type"`
	PaymentIntentID string        `json:"payment_intent_id"`
	UserID          string        `json:"user_id,omitempty"`
	Status          DepositStatus `json:"status"`
	Timestamp       time.Time     `json:"timestamp"`
}
