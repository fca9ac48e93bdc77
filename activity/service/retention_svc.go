package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/activitylog/api/activity/domain"
	"github.com/activitylog/api/config"
	"github.com/activitylog/api/pkg/logger"
)

const (
	defaultRetentionInterval = time.Hour
	retentionInitialWait     = 5 * time.Second
)

// RetentionSweeper runs DeleteActivitiesOlderThan on a fixed interval.
type RetentionSweeper struct {
	svc         domain.Service
	days        int
	interval    time.Duration
	initialWait time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewRetentionSweeper(svc domain.Service, cfg config.RetentionConfig) *RetentionSweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultRetentionInterval
	}
	return &RetentionSweeper{
		svc:         svc,
		days:        cfg.Days,
		interval:    interval,
		initialWait: retentionInitialWait,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

func (s *RetentionSweeper) SweepOnce(ctx context.Context) (int64, error) {
	return s.svc.DeleteActivitiesOlderThan(ctx, s.days)
}

// Start launches the sweep loop. The first sweep runs after a short initial wait.
func (s *RetentionSweeper) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.doneCh)
		bgCtx := context.Background()
		logger.Logger(bgCtx).Info().Msgf("retention sweeper starting, keep %d days, interval %s", s.days, s.interval)

		select {
		case <-time.After(s.initialWait):
		case <-s.stopCh:
			return
		}
		s.sweep(bgCtx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(bgCtx)
			case <-s.stopCh:
				logger.Logger(bgCtx).Info().Msg("retention sweeper stopped")
				return
			}
		}
	}()
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	deleted, err := s.SweepOnce(ctx)
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Msg("retention sweep failed")
		return
	}
	logger.Logger(ctx).Debug().Int64("deleted", deleted).Msg("retention sweep finished")
}

// Stop ends the loop and waits for an in-flight sweep, or until ctx is done.
func (s *RetentionSweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })
	if !s.started.Load() {
		return nil
	}
	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
