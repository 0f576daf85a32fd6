// Package scheduler drives the recurring daily delivery run.
package scheduler

import (
	"context"
	"time"

	"github.com/astroline/astroline-server/internal/logger"
	"github.com/astroline/astroline-server/internal/service"
)

// DeliveryRunner is the slice of the delivery service the scheduler
// needs.
type DeliveryRunner interface {
	Run(ctx context.Context, date time.Time) (service.DeliveryReport, error)
}

// Scheduler triggers a delivery run on a fixed interval.
type Scheduler struct {
	delivery DeliveryRunner
	interval time.Duration
	logger   *logger.Logger
}

func New(delivery DeliveryRunner, interval time.Duration, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		delivery: delivery,
		interval: interval,
		logger:   logger,
	}
}

// Run loops until ctx is canceled. Run failures are logged, not fatal;
// the next tick retries with that day's content.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopping")
			return
		case now := <-ticker.C:
			s.tick(ctx, now)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	report, err := s.delivery.Run(ctx, now)
	if err != nil {
		s.logger.Error("delivery run failed", "error", err)
		return
	}

	s.logger.Info("delivery run finished",
		"candidates", report.Candidates,
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped)
}
