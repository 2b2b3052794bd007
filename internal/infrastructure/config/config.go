package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	RateLimit   RateLimitConfig   `mapstructure:"rateLimit"`
	Shop        ShopConfig        `mapstructure:"shop"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	TrustedProxies    []string      `mapstructure:"trustedProxies"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig selects and configures the identity token verifier
type AuthConfig struct {
	Provider      string        `mapstructure:"provider"` // firebase | hmac
	ProjectID     string        `mapstructure:"projectId"`
	CertsURL      string        `mapstructure:"certsUrl"`
	HMACSecret    string        `mapstructure:"hmacSecret"`
	ClockSkew     time.Duration `mapstructure:"clockSkew"`     // seconds
	CertsCacheTTL time.Duration `mapstructure:"certsCacheTtl"` // seconds, used when the response has no max-age
}

// LedgerConfig contains coin bounds and per-user daily limits
type LedgerConfig struct {
	MaxCoins       int64            `mapstructure:"maxCoins"`
	MinTopup       int64            `mapstructure:"minTopup"`
	MaxTopup       int64            `mapstructure:"maxTopup"`
	MinSpend       int64            `mapstructure:"minSpend"`
	MaxSpend       int64            `mapstructure:"maxSpend"`
	ReceivedLimit  int              `mapstructure:"receivedLimit"`
	MaxListedGifts int              `mapstructure:"maxListedGifts"`
	DailyLimits    DailyLimitConfig `mapstructure:"dailyLimits"`
}

// DailyLimitConfig holds the per-user daily attempt limits by action
type DailyLimitConfig struct {
	Topup       int `mapstructure:"topup"`
	Spend       int `mapstructure:"spend"`
	GiftsSend   int `mapstructure:"giftsSend"`
	GiftsRedeem int `mapstructure:"giftsRedeem"`
}

// RateLimitConfig contains the per-IP request limiter settings
type RateLimitConfig struct {
	GlobalWindow    time.Duration `mapstructure:"globalWindow"` // minutes
	GlobalMax       int           `mapstructure:"globalMax"`
	WalletPerMinute int           `mapstructure:"walletPerMinute"`
	GiftsPerMinute  int           `mapstructure:"giftsPerMinute"`
	ShopPerMinute   int           `mapstructure:"shopPerMinute"`
}

// ShopConfig contains shop purchase settings
type ShopConfig struct {
	AllowRepurchase bool `mapstructure:"allowRepurchase"`
}

// MaintenanceConfig contains background job settings
type MaintenanceConfig struct {
	RetentionDays int    `mapstructure:"retentionDays"`
	PruneSchedule string `mapstructure:"pruneSchedule"` // cron spec
}

// CatalogConfig points at the optional gift and shop item seed file
type CatalogConfig struct {
	SeedFile string `mapstructure:"seedFile"`
}
