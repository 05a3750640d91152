package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aouiniamine/devbox/internal/features/health/checker"
	"github.com/aouiniamine/devbox/internal/features/health/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type HealthService interface {
	Check(ctx context.Context) *dto.HealthStatus
}

type Options struct {
	// Timeout bounds each checker. Zero means no bound beyond the caller's ctx.
	Timeout  time.Duration
	Parallel bool
}

type healthService struct {
	db     checker.Checker
	cache  checker.Checker
	opts   Options
	logger *zap.Logger
}

func New(db, cache checker.Checker, opts Options, logger *zap.Logger) HealthService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &healthService{
		db:     db,
		cache:  cache,
		opts:   opts,
		logger: logger,
	}
}

// Check never fails: every dependency outcome ends up as a string field.
func (s *healthService) Check(ctx context.Context) *dto.HealthStatus {
	status := dto.NewHealthStatus()
	status.App = checker.StatusHealthy

	var dbResult, cacheResult checker.Result

	if s.opts.Parallel {
		var g errgroup.Group
		g.Go(func() error {
			dbResult = s.run(ctx, s.db)
			return nil
		})
		g.Go(func() error {
			cacheResult = s.run(ctx, s.cache)
			return nil
		})
		_ = g.Wait()
	} else {
		dbResult = s.run(ctx, s.db)
		cacheResult = s.run(ctx, s.cache)
	}

	status.DB = dbResult.String()
	status.Cache = cacheResult.String()

	return status
}

func (s *healthService) run(ctx context.Context, c checker.Checker) checker.Result {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	resultCh := make(chan checker.Result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- checker.Unhealthy(fmt.Errorf("panic: %v", r))
			}
		}()
		resultCh <- c.Check(ctx)
	}()

	var result checker.Result
	select {
	case result = <-resultCh:
	case <-ctx.Done():
		result = checker.Unhealthy(ctx.Err())
	}

	if !result.IsHealthy() {
		s.logger.Warn("dependency unhealthy",
			zap.String("dependency", c.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(result.Err()),
		)
	}

	return result
}
