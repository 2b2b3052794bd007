package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first matching path and applies
// CL_ environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.provider", "firebase")
	v.SetDefault("auth.certsUrl", "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com")
	v.SetDefault("auth.clockSkew", 60)       // seconds
	v.SetDefault("auth.certsCacheTtl", 3600) // seconds

	v.SetDefault("ledger.maxCoins", 10000)
	v.SetDefault("ledger.minTopup", 1)
	v.SetDefault("ledger.maxTopup", 1000)
	v.SetDefault("ledger.minSpend", 1)
	v.SetDefault("ledger.maxSpend", 5000)
	v.SetDefault("ledger.receivedLimit", 50)
	v.SetDefault("ledger.maxListedGifts", 200)
	v.SetDefault("ledger.dailyLimits.topup", 10)
	v.SetDefault("ledger.dailyLimits.spend", 50)
	v.SetDefault("ledger.dailyLimits.giftsSend", 20)
	v.SetDefault("ledger.dailyLimits.giftsRedeem", 10)

	v.SetDefault("rateLimit.globalWindow", 15) // minutes
	v.SetDefault("rateLimit.globalMax", 100)
	v.SetDefault("rateLimit.walletPerMinute", 10)
	v.SetDefault("rateLimit.giftsPerMinute", 5)
	v.SetDefault("rateLimit.shopPerMinute", 10)

	v.SetDefault("shop.allowRepurchase", true)

	v.SetDefault("maintenance.retentionDays", 7)
	v.SetDefault("maintenance.pruneSchedule", "15 3 * * *")
}

// getEnvironment determines the environment to use based on CL_ENV
func getEnvironment() string {
	env := os.Getenv("CL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"CL_DB_DRIVER":         "database.driver",
		"CL_DB_HOST":           "database.host",
		"CL_DB_PORT":           "database.port",
		"CL_DB_USERNAME":       "database.username",
		"CL_DB_PASSWORD":       "database.password",
		"CL_DB_NAME":           "database.database",
		"CL_DB_SSL_MODE":       "database.sslMode",
		"CL_SERVER_HOST":       "server.host",
		"CL_SERVER_PORT":       "server.port",
		"CL_LOGGER_LEVEL":      "logger.level",
		"CL_AUTH_PROVIDER":     "auth.provider",
		"CL_AUTH_PROJECT_ID":   "auth.projectId",
		"CL_AUTH_HMAC_SECRET":  "auth.hmacSecret",
		"CL_CATALOG_SEED_FILE": "catalog.seedFile",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv("CL_SERVER_ALLOWED_ORIGINS"); origins != "" {
		v.Set("server.allowedOrigins", splitList(origins))
	}

	intOverrides := map[string]string{
		"CL_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"CL_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"CL_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"CL_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"CL_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"CL_LEDGER_MAX_COINS":              "ledger.maxCoins",
		"CL_MAINTENANCE_RETENTION_DAYS":    "maintenance.retentionDays",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}

	// Zero is meaningful for retries
	if retryAttempts := getEnvInt("CL_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if retryDelay := getEnvInt("CL_DB_RETRY_DELAY_SECONDS", -1); retryDelay >= 0 {
		v.Set("database.retryDelay", retryDelay)
	}

	if repurchase := os.Getenv("CL_SHOP_ALLOW_REPURCHASE"); repurchase != "" {
		if allow, err := strconv.ParseBool(repurchase); err == nil {
			v.Set("shop.allowRepurchase", allow)
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.ClockSkew = time.Duration(config.Auth.ClockSkew) * time.Second
	config.Auth.CertsCacheTTL = time.Duration(config.Auth.CertsCacheTTL) * time.Second

	config.RateLimit.GlobalWindow = time.Duration(config.RateLimit.GlobalWindow) * time.Minute
}
