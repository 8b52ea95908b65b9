package metrics_test

import (
	"strings"
	"testing"

	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.LookupAttempt(metrics.AttemptSimulatedFailure)
	rec.LookupAttempt(metrics.AttemptSimulatedFailure)
	rec.LookupAttempt(metrics.AttemptFound)
	rec.LookupResult(metrics.ResultFound)
	rec.Resolution("prioritized")
	rec.Notification(metrics.NotificationSent)

	expected := `
# HELP orderdesk_lookup_attempts_total Internal order lookup attempts by outcome.
# TYPE orderdesk_lookup_attempts_total counter
orderdesk_lookup_attempts_total{outcome="found"} 1
orderdesk_lookup_attempts_total{outcome="simulated_failure"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "orderdesk_lookup_attempts_total"))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *metrics.Recorder

	assert.NotPanics(t, func() {
		rec.LookupAttempt(metrics.AttemptFound)
		rec.LookupResult(metrics.ResultFound)
		rec.Resolution("prioritized")
		rec.Notification(metrics.NotificationFailed)
	})
}
