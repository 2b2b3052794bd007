package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// DefaultPruneSchedule runs the counter pruning once a day at 03:15 UTC
const DefaultPruneSchedule = "15 3 * * *"

// Scheduler runs background maintenance jobs
type Scheduler struct {
	cron          *cron.Cron
	limiter       usecase.RateLimiter
	timeProvider  core.TimeProvider
	logger        core.Logger
	schedule      string
	retentionDays int
	timeout       time.Duration
}

// NewScheduler creates a scheduler pinned to UTC, matching the day keys of the counters
func NewScheduler(
	limiter usecase.RateLimiter,
	timeProvider core.TimeProvider,
	logger core.Logger,
	schedule string,
	retentionDays int,
) *Scheduler {
	if schedule == "" {
		schedule = DefaultPruneSchedule
	}
	if retentionDays < 1 {
		retentionDays = 1
	}

	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		limiter:       limiter,
		timeProvider:  timeProvider,
		logger:        logger,
		schedule:      schedule,
		retentionDays: retentionDays,
		timeout:       time.Minute,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.PruneCounters(ctx) }); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{
		"pruneSchedule": s.schedule,
		"retentionDays": s.retentionDays,
	})
	return nil
}

// PruneCounters deletes daily counters older than the retention window
func (s *Scheduler) PruneCounters(ctx context.Context) {
	cutoff := entity.DayKey(s.timeProvider.Now().AddDate(0, 0, -s.retentionDays))

	jobCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	removed, err := s.limiter.PruneBefore(jobCtx, cutoff)
	if err != nil {
		s.logger.Error("Failed to prune rate limit counters", map[string]any{
			"before": cutoff,
			"error":  err.Error(),
		})
		return
	}

	s.logger.Debug("Rate limit prune finished", map[string]any{
		"before":  cutoff,
		"removed": removed,
	})
}

// Stop stops the cron loop and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped", nil)
}
