package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/gift"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/ratelimit"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/shop"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	if dbConfig.AutoMigrate {
		if err := dbManager.MigrationManager().MigrateAll(startupCtx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	uow := dbManager.CreateUnitOfWork()

	if err := seedCatalog(startupCtx, cfg.Catalog.SeedFile, uow, appLogger); err != nil {
		appLogger.Error("Failed to seed catalog", map[string]any{
			"file":  cfg.Catalog.SeedFile,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	verifier, err := identity.NewTokenVerifier(cfg.Auth, &http.Client{Timeout: 10 * time.Second}, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create token verifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize use cases
	ids := idgen.NewUUIDGenerator()
	limiter := ratelimit.NewRateLimitService(uow, tp, appLogger)

	walletService := wallet.NewWalletService(uow, limiter, ids, tp, appLogger, wallet.Policy{
		MaxCoins:     cfg.Ledger.MaxCoins,
		MinTopup:     cfg.Ledger.MinTopup,
		MaxTopup:     cfg.Ledger.MaxTopup,
		MinSpend:     cfg.Ledger.MinSpend,
		MaxSpend:     cfg.Ledger.MaxSpend,
		TopupsPerDay: int64(cfg.Ledger.DailyLimits.Topup),
		SpendsPerDay: int64(cfg.Ledger.DailyLimits.Spend),
	})
	giftService := gift.NewGiftService(uow, limiter, ids, tp, appLogger, gift.Policy{
		MaxCoins:       cfg.Ledger.MaxCoins,
		SendsPerDay:    int64(cfg.Ledger.DailyLimits.GiftsSend),
		RedeemsPerDay:  int64(cfg.Ledger.DailyLimits.GiftsRedeem),
		ReceivedLimit:  cfg.Ledger.ReceivedLimit,
		MaxListedGifts: cfg.Ledger.MaxListedGifts,
	})
	shopService := shop.NewShopService(uow, ids, tp, appLogger, shop.Policy{
		AllowRepurchase: cfg.Shop.AllowRepurchase,
	})

	// Background maintenance
	jobsCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	jobs := scheduler.NewScheduler(limiter, tp, appLogger, cfg.Maintenance.PruneSchedule, cfg.Maintenance.RetentionDays)
	if err := jobs.Start(jobsCtx); err != nil {
		appLogger.Error("Failed to start scheduler", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		appLogger.Error("Invalid trusted proxies", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	limiters := routes.NewLimiters(cfg.RateLimit, tp)
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, limiters)
	routes.SetupRoutes(router, routes.Handlers{
		Wallet: handler.NewWalletHandler(walletService, appLogger),
		Gift:   handler.NewGiftHandler(giftService, appLogger),
		Shop:   handler.NewShopHandler(shopService, appLogger),
		Health: handler.NewHealthHandler(dbManager.HealthChecker(), dbManager.PoolMonitor(), tp, appLogger),
	}, middleware.Auth(verifier, appLogger), limiters)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"auth_provider": cfg.Auth.Provider,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	cancelJobs()
	jobs.Stop()

	appLogger.Info("Server exited gracefully", nil)
}

// seedCatalog upserts the gifts and shop items of the optional seed file
func seedCatalog(ctx context.Context, path string, uow *database.UnitOfWork, appLogger coreport.Logger) error {
	if path == "" {
		return nil
	}

	catalog, err := migration.LoadCatalog(path)
	if err != nil {
		return err
	}
	return migration.NewCatalogSeeder(uow, appLogger).Seed(ctx, catalog)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if err := middleware.CORSConfig(cfg.Server.AllowedOrigins).Validate(); err != nil {
		return fmt.Errorf("invalid server.allowedOrigins: %w", err)
	}

	if cfg.Database.Driver != database.DriverSQLite {
		requireDB := func(value, key, envVar string) {
			if value == "" && os.Getenv(envVar) == "" {
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", key, envVar))
			}
		}
		requireDB(cfg.Database.Host, "database.host", "CL_DB_HOST")
		requireDB(cfg.Database.Port, "database.port", "CL_DB_PORT")
		requireDB(cfg.Database.Username, "database.username", "CL_DB_USERNAME")
		requireDB(cfg.Database.Database, "database.database", "CL_DB_NAME")
		if cfg.Environment == config.Production {
			requireDB(cfg.Database.Password, "database.password", "CL_DB_PASSWORD")
		}
	} else if cfg.Database.Database == "" && os.Getenv("CL_DB_NAME") == "" {
		missingConfigs = append(missingConfigs, "database.database")
	}

	switch cfg.Auth.Provider {
	case identity.ProviderFirebase, "":
		if cfg.Auth.ProjectID == "" {
			missingConfigs = append(missingConfigs, "auth.projectId (or CL_AUTH_PROJECT_ID environment variable)")
		}
	case identity.ProviderHMAC:
		if cfg.Auth.HMACSecret == "" {
			missingConfigs = append(missingConfigs, "auth.hmacSecret (or CL_AUTH_HMAC_SECRET environment variable)")
		}
		if cfg.Environment == config.Production {
			return fmt.Errorf("auth.provider %q is not allowed in production", cfg.Auth.Provider)
		}
	default:
		return fmt.Errorf("unsupported auth.provider %q", cfg.Auth.Provider)
	}

	if cfg.Ledger.MaxCoins <= 0 {
		missingConfigs = append(missingConfigs, "ledger.maxCoins")
	}
	if cfg.Ledger.MinTopup < 1 || cfg.Ledger.MaxTopup < cfg.Ledger.MinTopup {
		missingConfigs = append(missingConfigs, "ledger.minTopup/maxTopup")
	}
	if cfg.Ledger.MinSpend < 1 || cfg.Ledger.MaxSpend < cfg.Ledger.MinSpend {
		missingConfigs = append(missingConfigs, "ledger.minSpend/maxSpend")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing or invalid required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
