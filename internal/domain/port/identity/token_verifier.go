package identity

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// TokenVerifier validates bearer identity tokens issued by an external provider
type TokenVerifier interface {
	// Verify checks the token and returns the caller identity
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is empty
	// - ErrTokenExpired: If the token validity window has elapsed
	// - ErrAuthFailed: If the signature or claims are invalid
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
