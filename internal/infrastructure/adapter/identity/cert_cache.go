package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/sync/singleflight"
)

// DefaultGoogleCertsURL publishes the x509 certificates that sign Firebase ID tokens
const DefaultGoogleCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// minUnknownKeyRefresh throttles refetches triggered by an unknown key id
const minUnknownKeyRefresh = time.Minute

// CertCache keeps the signing keys keyed by kid until the max-age the
// publisher advertises
type CertCache struct {
	url          string
	client       *http.Client
	defaultTTL   time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
	fetchedAt time.Time

	group singleflight.Group
}

// NewCertCache creates a cache over the certificate endpoint at url
func NewCertCache(url string, client *http.Client, defaultTTL time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *CertCache {
	if url == "" {
		url = DefaultGoogleCertsURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &CertCache{
		url:          url,
		client:       client,
		defaultTTL:   defaultTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Key returns the public key for kid, refreshing the set when it is stale
// or does not know kid yet
func (c *CertCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	now := c.timeProvider.Now()

	c.mu.RLock()
	key, ok := c.keys[kid]
	fresh := now.Before(c.expiresAt)
	recentlyFetched := now.Sub(c.fetchedAt) < minUnknownKeyRefresh
	c.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}
	if !ok && fresh && recentlyFetched {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}

	if _, err, _ := c.group.Do("certs", func() (any, error) {
		return nil, c.refresh(ctx)
	}); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if key, ok := c.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("unknown signing key %q", kid)
}

func (c *CertCache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build certificate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch signing certificates", map[string]any{
			"url":   c.url,
			"error": err.Error(),
		})
		return fmt.Errorf("failed to fetch signing certificates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Unexpected status from certificate endpoint", map[string]any{
			"url":    c.url,
			"status": resp.StatusCode,
		})
		return fmt.Errorf("certificate endpoint returned status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return fmt.Errorf("failed to decode signing certificates: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			c.logger.Warn("Skipping unparsable signing certificate", map[string]any{
				"kid":   kid,
				"error": err.Error(),
			})
			continue
		}
		keys[kid] = key
	}

	now := c.timeProvider.Now()
	ttl := maxAge(resp.Header.Get("Cache-Control"), c.defaultTTL)

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = now
	c.expiresAt = now.Add(ttl)
	c.mu.Unlock()

	c.logger.Info("Signing certificates refreshed", map[string]any{
		"keys": len(keys),
		"ttl":  ttl.String(),
	})
	return nil
}

// maxAge reads max-age from a Cache-Control header
func maxAge(cacheControl string, fallback time.Duration) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		value, found := strings.CutPrefix(directive, "max-age=")
		if !found {
			continue
		}
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fallback
		}
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
