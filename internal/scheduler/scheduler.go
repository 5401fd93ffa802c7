package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
)

// Scheduler periodically runs the event notification dispatch.
type Scheduler struct {
	cron     *cron.Cron
	notifier ports.NotifierSvcFacade
	interval time.Duration
	logger   *slog.Logger
}

// New creates a scheduler that runs the notifier every interval.
func New(notifier ports.NotifierSvcFacade, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

// Start registers the dispatch job and starts the cron loop in its own
// goroutine.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.interval)
		defer cancel()
		if err := s.notifier.DispatchUpcoming(ctx); err != nil {
			s.logger.Error("Notification dispatch failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule notification dispatch: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Notification scheduler started", slog.String("interval", s.interval.String()))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Notification scheduler stopped")
}
