// Package metrics collects and exposes Prometheus metrics for the
// notification pipeline.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZachChoo/grocery-inventory/pkg/logger"
)

// Recorder is the metrics interface consumed by the notification service.
// The outcome is an opaque label from the caller's perspective.
type Recorder interface {
	RecordRun(outcome string)
	RecordRecipients(count int)
}

// Collector implements Recorder on Prometheus counters.
type Collector struct {
	runs       *prometheus.CounterVec
	recipients prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grocery_notification_runs_total",
			Help: "Notification pipeline runs by outcome.",
		}, []string{"outcome"}),
		recipients: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "grocery_notification_recipients_total",
			Help: "Total recipients the expiring-sales digest was sent to.",
		}),
	}
	reg.MustRegister(c.runs, c.recipients)
	return c
}

// RecordRun counts one pipeline run with its outcome.
func (c *Collector) RecordRun(outcome string) {
	c.runs.WithLabelValues(outcome).Inc()
}

// RecordRecipients counts recipients of a successful dispatch.
func (c *Collector) RecordRecipients(count int) {
	c.recipients.Add(float64(count))
}

// NopRecorder discards all metrics. Useful in tests and when the
// metrics listener is disabled.
type NopRecorder struct{}

func (NopRecorder) RecordRun(string)     {}
func (NopRecorder) RecordRecipients(int) {}

// Serve runs the /metrics endpoint on its own port until ctx is cancelled.
func Serve(ctx context.Context, addr string, reg *prometheus.Registry, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("metrics listener started")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("metrics listener stopped")
	}
}
