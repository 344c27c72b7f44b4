package domain

import (
	"errors"
	"time"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrNoBrokerAccount      = errors.New("alpaca account not found")
	ErrBrokerAccountExists  = errors.New("alpaca account already exists")
	ErrDepositNotFound      = errors.New("deposit not found")
	ErrInvalidDepositAmount = errors.New("invalid deposit amount")
)

// Profile holds the app-side user record and its link to the broker
// account.
type Profile struct {
	ID              string    `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	AlpacaAccountID string    `json:"alpaca_account_id" db:"alpaca_account_id"`
	WalletAddress   string    `json:"privy_wallet_address" db:"privy_wallet_address"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// AccountRequest carries the KYC contact fields forwarded to the broker
// when opening an account.
type AccountRequest struct {
	ContactEmail       string `json:"contact_email" binding:"required"`
	ContactPhoneNumber string `json:"contact_phone_number" binding:"required"`
	ContactAddress     string `json:"contact_address" binding:"required"`
	ContactCity        string `json:"contact_city" binding:"required"`
	ContactState       string `json:"contact_state" binding:"required"`
	ContactPostalCode  string `json:"contact_postal_code" binding:"required"`
	ContactCountry     string `json:"contact_country" binding:"required"`
	GivenName          string `json:"given_name,omitempty"`
	FamilyName         string `json:"family_name,omitempty"`
	TaxID              string `json:"tax_id,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
}

// BrokerAccount is the broker API's account representation.
type BrokerAccount struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}
