package profilerepo

import (
	"context"

	"github.com/Crypto1181/Caballo/internal/domain"
)

type IProfileRepository interface {
	// GetByID returns a user's profile, or domain.ErrProfileNotFound.
	GetByID(ctx context.Context, userID string) (*domain.Profile, error)

	// SetAlpacaAccountID links a broker account to the profile.
	SetAlpacaAccountID(ctx context.Context, userID, accountID string) error
}
