package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Check(ctx context.Context) error
}

// PoolMetricsSource reports the last sampled connection pool usage
type PoolMetricsSource interface {
	GetMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	checker      HealthChecker
	pool         PoolMetricsSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance. pool may be nil.
func NewHealthHandler(checker HealthChecker, pool PoolMetricsSource, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		checker:      checker,
		pool:         pool,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.timeProvider.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.checker.Check(c.Request.Context()); err != nil {
		h.logger.Warn("Readiness check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.ReadyResponse{Status: "unavailable", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.ReadyResponse{Status: "ready", Database: "up", Pool: h.poolStats()})
}

func (h *HealthHandler) poolStats() *dto.PoolStats {
	if h.pool == nil {
		return nil
	}
	metrics := h.pool.GetMetrics()
	return &dto.PoolStats{
		Open:      metrics.OpenConnections,
		InUse:     metrics.InUse,
		Idle:      metrics.IdleConnections,
		MaxOpen:   metrics.MaxOpenConnections,
		WaitCount: metrics.WaitCount,
	}
}
