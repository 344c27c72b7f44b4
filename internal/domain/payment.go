package domain

// PaymentIntentRequest is what the gateway sends to the payment processor
// when a funding attempt is initiated. Metadata travels with every webhook
// event the processor later emits for the intent.
type PaymentIntentRequest struct {
	AmountCents     int64
	Currency        string
	UserID          string
	AlpacaAccountID string
	WalletAddress   string
}

// PaymentIntent is the processor's response to an intent creation.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
