package domain

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// Claim is the identity-provider token payload the gateway verifies.
// Token issuance lives entirely with the provider.
type Claim struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	jwt.StandardClaims
}
