// Package jobs holds the background work scheduled next to the API.
package jobs

import (
	"context"
	"fmt"
	"time"

	"claims-backoffice/internal/domain/claim"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[claim.Status]int64, error)
}

type StatusGauge interface {
	SetStatusCounts(counts map[claim.Status]int64)
}

// StatsRefresher copies the per-status claim counts into a gauge.
type StatsRefresher struct {
	src     StatusCounter
	gauge   StatusGauge
	log     logrus.FieldLogger
	timeout time.Duration
}

func NewStatsRefresher(src StatusCounter, gauge StatusGauge, log logrus.FieldLogger) *StatsRefresher {
	return &StatsRefresher{src: src, gauge: gauge, log: log, timeout: 30 * time.Second}
}

// Refresh leaves the gauge untouched when counting fails.
func (r *StatsRefresher) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	counts, err := r.src.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("count claims by status: %w", err)
	}
	r.gauge.SetStatusCounts(counts)
	return nil
}

func (r *StatsRefresher) run() {
	start := time.Now()
	if err := r.Refresh(context.Background()); err != nil {
		r.log.WithError(err).Warn("stats refresh failed")
		return
	}
	r.log.WithField("latency_ms", time.Since(start).Milliseconds()).Debug("stats refreshed")
}

// Schedule registers the refresher under spec (standard cron or @every) on a
// new scheduler. The caller starts and stops it.
func Schedule(spec string, r *StatsRefresher) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{r.log}), cron.SkipIfStillRunning(cronLogger{r.log})))
	if _, err := c.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("schedule stats refresh %q: %w", spec, err)
	}
	return c, nil
}

// cronLogger adapts logrus to cron.Logger.
type cronLogger struct{ log logrus.FieldLogger }

func (l cronLogger) Info(msg string, kv ...any) {
	l.log.WithFields(fields(kv)).Debug("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, kv ...any) {
	l.log.WithError(err).WithFields(fields(kv)).Error("cron: " + msg)
}

func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}
