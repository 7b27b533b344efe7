// Package notification implements the expiring-sales digest: scanning the
// catalog for sales about to end, resolving manager recipients, formatting a
// plain+HTML report and dispatching it over mail.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
	"github.com/ZachChoo/grocery-inventory/internal/metrics"
	"github.com/ZachChoo/grocery-inventory/pkg/logger"
)

// DefaultLookaheadDays is the scan window when none is configured.
const DefaultLookaheadDays = 30

// DefaultHistoryLimit caps the in-memory send history.
const DefaultHistoryLimit = 100

// Outcome labels how one pipeline run ended. The values double as the
// metrics label for run counters.
type Outcome string

const (
	OutcomeSent           Outcome = "sent"
	OutcomeNoSales        Outcome = "no_sales"
	OutcomeNoRecipients   Outcome = "no_recipients"
	OutcomeDispatchFailed Outcome = "dispatch_failed"
	OutcomeStoreError     Outcome = "store_error"
)

// Record is one entry of the in-memory send history. Observability only:
// it does not survive a restart and is never a cross-process dedupe source.
type Record struct {
	SentAt     time.Time
	Recipients []string
	SaleCount  int
}

// Service orchestrates one notification run: scan, resolve, format, dispatch,
// record, strictly in that order. Runs serialize on an internal mutex so an
// admin-triggered run racing the daily timer cannot double-dispatch
// concurrently; each serialized run still sends (no cross-call dedupe).
type Service struct {
	sales     SaleScanner
	directory RecipientDirectory
	mailer    Mailer
	log       *logger.Logger
	recorder  metrics.Recorder

	lookaheadDays int
	now           func() time.Time

	mu           sync.Mutex
	history      []Record
	historyLimit int
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. For tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHistoryLimit overrides the send-history cap.
func WithHistoryLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService builds the orchestrator. lookaheadDays <= 0 falls back to the
// 30-day default.
func NewService(sales SaleScanner, directory RecipientDirectory, mailer Mailer, log *logger.Logger, lookaheadDays int, opts ...Option) *Service {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	s := &Service{
		sales:         sales,
		directory:     directory,
		mailer:        mailer,
		log:           log,
		recorder:      metrics.NopRecorder{},
		lookaheadDays: lookaheadDays,
		now:           time.Now,
		historyLimit:  DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full pipeline once and returns how many notifications went
// out (0 or 1). Store failures propagate as the error; dispatch failures are
// swallowed into a 0 count plus a log entry, per the best-effort policy.
// Timer and on-demand triggers both call exactly this method.
func (s *Service) Run(ctx context.Context) (int, error) {
	sent, _, err := s.RunWithOutcome(ctx)
	return sent, err
}

// RunWithOutcome is Run plus the label for how the run ended, so callers can
// report more than the bare count.
func (s *Service) RunWithOutcome(ctx context.Context) (int, Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	from := DateOf(now)
	to := from.AddDate(0, 0, s.lookaheadDays)

	expiring, err := s.sales.ExpiringBetween(ctx, from, to)
	if err != nil {
		s.recorder.RecordRun(string(OutcomeStoreError))
		return 0, OutcomeStoreError, fmt.Errorf("scan expiring sales: %w", err)
	}
	if len(expiring) == 0 {
		s.log.Info().Msg("no expiring sales found")
		s.recorder.RecordRun(string(OutcomeNoSales))
		return 0, OutcomeNoSales, nil
	}

	managers, err := s.directory.ManagersWithEmail(ctx)
	if err != nil {
		s.recorder.RecordRun(string(OutcomeStoreError))
		return 0, OutcomeStoreError, fmt.Errorf("resolve recipients: %w", err)
	}
	recipients := recipientEmails(managers)
	if len(recipients) == 0 {
		s.log.Warn().Int("expiring_sales", len(expiring)).Msg("no eligible recipients to notify")
		s.recorder.RecordRun(string(OutcomeNoRecipients))
		return 0, OutcomeNoRecipients, nil
	}

	report := BuildReport(expiring, now)

	if err := s.mailer.Send(ctx, recipients, report.Subject, report.PlainBody, report.HTMLBody); err != nil {
		s.log.Error().Err(err).Int("recipients", len(recipients)).Msg("dispatch failed")
		s.recorder.RecordRun(string(OutcomeDispatchFailed))
		return 0, OutcomeDispatchFailed, nil
	}

	s.appendRecord(Record{
		SentAt:     now,
		Recipients: recipients,
		SaleCount:  len(expiring),
	})
	s.recorder.RecordRun(string(OutcomeSent))
	s.recorder.RecordRecipients(len(recipients))
	s.log.Info().
		Int("recipients", len(recipients)).
		Int("expiring_sales", len(expiring)).
		Msg("expiring-sales notification sent")
	return 1, OutcomeSent, nil
}

// recipientEmails flattens eligible managers to their addresses. The query
// already filters, but a user with a blank email never slips through.
func recipientEmails(managers []*entity.User) []string {
	emails := make([]string, 0, len(managers))
	for _, m := range managers {
		if m.EligibleRecipient() {
			emails = append(emails, m.Email)
		}
	}
	return emails
}

func (s *Service) appendRecord(r Record) {
	s.history = append(s.history, r)
	if len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
}

// History returns a copy of the send history, oldest first.
func (s *Service) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}
