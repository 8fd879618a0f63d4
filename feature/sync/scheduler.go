package sync

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Scheduler triggers sync runs on a fixed interval. It goes through the same
// Trigger gate as on-demand requests, so a tick that collides with an
// in-flight run is simply dropped.
type Scheduler struct {
	orchestrator *Orchestrator
	interval     time.Duration
	logger       *zap.Logger
}

// NewScheduler creates a new periodic scheduler.
func NewScheduler(o *Orchestrator, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{orchestrator: o, interval: interval, logger: logger}
}

// Run blocks, triggering a sync on every tick until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Sync scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return
		case <-ticker.C:
			s.trigger()
		}
	}
}

func (s *Scheduler) trigger() {
	runID, err := s.orchestrator.Trigger()
	if err != nil {
		var running *AlreadyRunningError
		if errors.As(err, &running) {
			s.logger.Debug("Scheduled sync skipped, run in flight",
				zap.String("run_id", running.RunID))
			return
		}
		s.logger.Error("Scheduled sync trigger failed", zap.Error(err))
		return
	}

	s.logger.Info("Scheduled sync triggered", zap.String("run_id", runID))
}
