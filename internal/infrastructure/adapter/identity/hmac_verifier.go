package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/identity"
	"github.com/golang-jwt/jwt/v4"
)

// IdentityClaims are the claims carried by HS256 tokens
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

// HMACVerifier verifies HS256 tokens signed with a shared secret.
// Used for local development and tests in place of Firebase.
type HMACVerifier struct {
	secret       []byte
	clockSkew    time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	parser       *jwt.Parser
}

var _ identityport.TokenVerifier = (*HMACVerifier)(nil)

// NewHMACVerifier creates a verifier for tokens signed with secret
func NewHMACVerifier(secret string, clockSkew time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *HMACVerifier {
	return &HMACVerifier{
		secret:       []byte(secret),
		clockSkew:    clockSkew,
		timeProvider: timeProvider,
		logger:       logger,
		parser:       jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation()),
	}
}

// Verify checks the signature and validity window of token
func (v *HMACVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errs.ErrInvalidToken
	}

	claims := &IdentityClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		v.logger.Warn("Identity token rejected", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", errs.ErrAuthFailed, err)
	}

	if err := validateTimedClaims(&claims.RegisteredClaims, 0, v.timeProvider.Now(), v.clockSkew); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid subject", errs.ErrAuthFailed)
	}

	return &entity.Identity{
		UID:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// NewHMACToken signs an HS256 token for id valid for ttl from issuedAt
func NewHMACToken(secret string, id entity.Identity, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		Email:         id.Email,
		EmailVerified: id.EmailVerified,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
