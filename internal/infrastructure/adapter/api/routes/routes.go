package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/config"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Wallet *handler.WalletHandler
	Gift   *handler.GiftHandler
	Shop   *handler.ShopHandler
	Health *handler.HealthHandler
}

// Limiters groups the per-IP request limiters
type Limiters struct {
	Global *middleware.IPRateLimiter
	Wallet *middleware.IPRateLimiter
	Gifts  *middleware.IPRateLimiter
	Shop   *middleware.IPRateLimiter
}

// NewLimiters builds the request limiters from configuration
func NewLimiters(cfg config.RateLimitConfig, timeProvider coreport.TimeProvider) Limiters {
	window := cfg.GlobalWindow
	if window <= 0 {
		window = 15 * time.Minute
	}

	return Limiters{
		Global: middleware.NewIPRateLimiter(cfg.GlobalMax, window, timeProvider),
		Wallet: middleware.NewIPRateLimiter(cfg.WalletPerMinute, time.Minute, timeProvider),
		Gifts:  middleware.NewIPRateLimiter(cfg.GiftsPerMinute, time.Minute, timeProvider),
		Shop:   middleware.NewIPRateLimiter(cfg.ShopPerMinute, time.Minute, timeProvider),
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, limiters Limiters) {
	handler.RegisterValidation()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RateLimit(limiters.Global, middleware.GlobalLimitMessage))
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, auth gin.HandlerFunc, limiters Limiters) {
	router.GET("/health", handlers.Health.Health)
	router.GET("/ready", handlers.Health.Ready)

	walletLimit := middleware.RateLimit(limiters.Wallet, middleware.WalletLimitMessage)
	walletRoutes := router.Group("/api/wallet")
	{
		walletRoutes.GET("/balance", auth, handlers.Wallet.GetBalance)
		walletRoutes.POST("/topup", walletLimit, auth, handlers.Wallet.Topup)
		walletRoutes.POST("/spend", walletLimit, auth, handlers.Wallet.Spend)
		walletRoutes.GET("/transactions", auth, handlers.Wallet.ListTransactions)
	}

	giftLimit := middleware.RateLimit(limiters.Gifts, middleware.GiftsLimitMessage)
	giftRoutes := router.Group("/api/gifts")
	{
		giftRoutes.POST("/send", giftLimit, auth, handlers.Gift.Send)
		giftRoutes.POST("/redeem", giftLimit, auth, handlers.Gift.Redeem)
		giftRoutes.GET("/received", auth, handlers.Gift.Received)
	}

	shopLimit := middleware.RateLimit(limiters.Shop, middleware.ShopLimitMessage)
	shopRoutes := router.Group("/api/shop")
	{
		shopRoutes.GET("/items", handlers.Shop.ListItems)
		shopRoutes.GET("/items/:itemId", handlers.Shop.GetItem)
		shopRoutes.POST("/purchase", shopLimit, auth, handlers.Shop.Purchase)
		shopRoutes.GET("/my-items", auth, handlers.Shop.MyItems)
	}

	router.NoRoute(middleware.NotFound())
}
