package authservice

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

// IAuthService verifies identity-provider bearer tokens. Token issuance
// stays with the provider.
type IAuthService interface {
	VerifyToken(ctx context.Context, tokenString string) (*domain.Claim, error)
}
