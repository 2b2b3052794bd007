package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/identity"
	"github.com/golang-jwt/jwt/v4"
)

const firebaseIssuerPrefix = "https://securetoken.google.com/"

// KeySource resolves a signing key by its key id
type KeySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// FirebaseClaims are the claims of a Firebase ID token this service reads
type FirebaseClaims struct {
	jwt.RegisteredClaims
	AuthTime      int64  `json:"auth_time"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// FirebaseVerifier verifies RS256 Firebase ID tokens against Google's published keys
type FirebaseVerifier struct {
	projectID    string
	keys         KeySource
	clockSkew    time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	parser       *jwt.Parser
}

var _ identityport.TokenVerifier = (*FirebaseVerifier)(nil)

// NewFirebaseVerifier creates a verifier for tokens issued to projectID
func NewFirebaseVerifier(projectID string, keys KeySource, clockSkew time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *FirebaseVerifier {
	return &FirebaseVerifier{
		projectID:    projectID,
		keys:         keys,
		clockSkew:    clockSkew,
		timeProvider: timeProvider,
		logger:       logger,
		// Time based claims are checked against the injected clock below
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithoutClaimsValidation()),
	}
}

// Verify checks the token signature and the Firebase claim rules
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errs.ErrInvalidToken
	}

	claims := &FirebaseClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		v.logger.Warn("Identity token rejected", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("%w: %v", errs.ErrAuthFailed, err)
	}

	if err := validateTimedClaims(&claims.RegisteredClaims, claims.AuthTime, v.timeProvider.Now(), v.clockSkew); err != nil {
		return nil, err
	}

	if !claims.VerifyAudience(v.projectID, true) {
		return nil, fmt.Errorf("%w: unexpected audience", errs.ErrAuthFailed)
	}
	if !claims.VerifyIssuer(firebaseIssuerPrefix+v.projectID, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", errs.ErrAuthFailed)
	}
	if claims.Subject == "" || len(claims.Subject) > 128 {
		return nil, fmt.Errorf("%w: invalid subject", errs.ErrAuthFailed)
	}

	return &entity.Identity{
		UID:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// validateTimedClaims applies exp, iat and auth_time with a symmetric skew
func validateTimedClaims(claims *jwt.RegisteredClaims, authTime int64, now time.Time, skew time.Duration) error {
	if claims.ExpiresAt == nil {
		return fmt.Errorf("%w: missing exp", errs.ErrAuthFailed)
	}
	if now.After(claims.ExpiresAt.Time.Add(skew)) {
		return errs.ErrTokenExpired
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Time.After(now.Add(skew)) {
		return fmt.Errorf("%w: token issued in the future", errs.ErrAuthFailed)
	}
	if authTime > 0 && time.Unix(authTime, 0).After(now.Add(skew)) {
		return fmt.Errorf("%w: auth_time in the future", errs.ErrAuthFailed)
	}
	return nil
}
