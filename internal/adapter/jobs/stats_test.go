package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/infrastructure/metrics"
	"claims-backoffice/internal/testutil/claimmock"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefresh_WritesGauge(t *testing.T) {
	repo := &claimmock.Repo{CountByStatusFn: func(context.Context) (map[claim.Status]int64, error) {
		return map[claim.Status]int64{claim.StatusPendingTriage: 4, claim.StatusClosed: 1}, nil
	}}
	m := metrics.New()
	log, _ := logtest.NewNullLogger()

	require.NoError(t, NewStatsRefresher(repo, m, log).Refresh(context.Background()))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "claims_backoffice_claims_by_status" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			got[metric.GetLabel()[0].GetValue()] = metric.GetGauge().GetValue()
		}
	}
	assert.Len(t, got, len(claim.Statuses()))
	assert.Equal(t, 4.0, got["PENDING_TRIAGE"])
	assert.Equal(t, 1.0, got["CLOSED"])
	assert.Zero(t, got["ACCEPTED"])
}

type recordingGauge struct{ calls atomic.Int32 }

func (g *recordingGauge) SetStatusCounts(map[claim.Status]int64) { g.calls.Add(1) }

func TestRefresh_ErrorKeepsGauge(t *testing.T) {
	repo := &claimmock.Repo{CountByStatusFn: func(context.Context) (map[claim.Status]int64, error) {
		return nil, errors.New("db down")
	}}
	g := &recordingGauge{}
	log, _ := logtest.NewNullLogger()

	err := NewStatsRefresher(repo, g, log).Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Zero(t, g.calls.Load())
}

func TestRun_LogsFailure(t *testing.T) {
	repo := &claimmock.Repo{CountByStatusFn: func(context.Context) (map[claim.Status]int64, error) {
		return nil, errors.New("db down")
	}}
	log, hook := logtest.NewNullLogger()

	NewStatsRefresher(repo, &recordingGauge{}, log).run()

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "stats refresh failed", hook.LastEntry().Message)
}

func TestSchedule(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	g := &recordingGauge{}
	repo := &claimmock.Repo{CountByStatusFn: func(context.Context) (map[claim.Status]int64, error) {
		return map[claim.Status]int64{}, nil
	}}

	_, err := Schedule("every tuesday", NewStatsRefresher(repo, g, log))
	assert.Error(t, err)

	c, err := Schedule("@every 1s", NewStatsRefresher(repo, g, log))
	require.NoError(t, err)
	c.Start()
	assert.Eventually(t, func() bool { return g.calls.Load() > 0 }, 3*time.Second, 20*time.Millisecond)
	<-c.Stop().Done()
}
