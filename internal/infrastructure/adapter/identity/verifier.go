package identity

import (
	"fmt"
	"net/http"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/identity"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/config"
)

// Supported providers
const (
	ProviderFirebase = "firebase"
	ProviderHMAC     = "hmac"
)

// NewTokenVerifier builds the verifier selected by the auth configuration
func NewTokenVerifier(cfg config.AuthConfig, client *http.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) (identityport.TokenVerifier, error) {
	switch cfg.Provider {
	case ProviderFirebase, "":
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("auth.projectId is required for the firebase provider")
		}
		certs := NewCertCache(cfg.CertsURL, client, cfg.CertsCacheTTL, timeProvider, logger)
		return NewFirebaseVerifier(cfg.ProjectID, certs, cfg.ClockSkew, timeProvider, logger), nil
	case ProviderHMAC:
		if len(cfg.HMACSecret) < 16 {
			return nil, fmt.Errorf("auth.hmacSecret must be at least 16 characters")
		}
		return NewHMACVerifier(cfg.HMACSecret, cfg.ClockSkew, timeProvider, logger), nil
	default:
		return nil, fmt.Errorf("unsupported auth provider: %s", cfg.Provider)
	}
}
