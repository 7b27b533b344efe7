package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/ZachChoo/grocery-inventory/pkg/config"
	"github.com/ZachChoo/grocery-inventory/pkg/logger"
)

// Runner is the orchestrator entry point the scheduler fires. Satisfied by
// *Service; a narrow interface keeps the scheduler testable with a fake.
type Runner interface {
	Run(ctx context.Context) (int, error)
}

// Scheduler fires the notification pipeline once per day at a fixed
// wall-clock time in a fixed timezone. It shares the exact Run contract with
// the on-demand admin trigger.
type Scheduler struct {
	runner Runner
	log    *logger.Logger
	hour   int
	minute int
	loc    *time.Location
}

// NewScheduler builds the daily scheduler from notification configuration.
func NewScheduler(runner Runner, log *logger.Logger, cfg config.NotifyConfig) (*Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	if cfg.Hour < 0 || cfg.Hour > 23 || cfg.Minute < 0 || cfg.Minute > 59 {
		return nil, fmt.Errorf("invalid fire time %02d:%02d", cfg.Hour, cfg.Minute)
	}
	return &Scheduler{
		runner: runner,
		log:    log,
		hour:   cfg.Hour,
		minute: cfg.Minute,
		loc:    loc,
	}, nil
}

// Start blocks until ctx is cancelled, running the pipeline at every daily
// fire time. Meant to run on its own goroutine, off any request-serving path.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info().
		Str("fire_time", fmt.Sprintf("%02d:%02d", s.hour, s.minute)).
		Str("timezone", s.loc.String()).
		Msg("daily notification scheduler started")

	for {
		next := NextRun(time.Now().In(s.loc), s.hour, s.minute)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info().Msg("daily notification scheduler stopped")
			return
		case <-timer.C:
			sent, err := s.runner.Run(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("daily notification check failed")
				continue
			}
			s.log.Info().Int("notifications_sent", sent).Msg("daily notification check finished")
		}
	}
}

// NextRun returns the next hh:mm fire time strictly after now, in now's
// location: today when the fire time is still ahead, otherwise tomorrow.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
