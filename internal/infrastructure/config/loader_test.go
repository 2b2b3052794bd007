package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  allowedOrigins: ["https://app.example.com"]
database:
  driver: sqlite
  database: ledger.db
logger:
  level: debug
auth:
  provider: hmac
  hmacSecret: from-file
ledger:
  maxCoins: 5000
  dailyLimits:
    topup: 3
shop:
  allowRepurchase: false
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("file values and defaults", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Test, testYAML)

		// Act
		cfg, err := LoadConfigFrom(Test, dir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "hmac", cfg.Auth.Provider)
		assert.Equal(t, time.Minute, cfg.Auth.ClockSkew)
		assert.Equal(t, int64(5000), cfg.Ledger.MaxCoins)
		assert.Equal(t, int64(1000), cfg.Ledger.MaxTopup)
		assert.Equal(t, 3, cfg.Ledger.DailyLimits.Topup)
		assert.Equal(t, 20, cfg.Ledger.DailyLimits.GiftsSend)
		assert.Equal(t, 15*time.Minute, cfg.RateLimit.GlobalWindow)
		assert.Equal(t, 100, cfg.RateLimit.GlobalMax)
		assert.False(t, cfg.Shop.AllowRepurchase)
		assert.Equal(t, 7, cfg.Maintenance.RetentionDays)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Test, testYAML)
		t.Setenv("CL_AUTH_HMAC_SECRET", "from-env")
		t.Setenv("CL_SERVER_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
		t.Setenv("CL_SHOP_ALLOW_REPURCHASE", "true")
		t.Setenv("CL_DB_RETRY_ATTEMPTS", "0")

		// Act
		cfg, err := LoadConfigFrom(Test, dir)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Auth.HMACSecret)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
		assert.True(t, cfg.Shop.AllowRepurchase)
		assert.Equal(t, 0, cfg.Database.RetryAttempts)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFrom(Production, t.TempDir())

		assert.Error(t, err)
	})
}
