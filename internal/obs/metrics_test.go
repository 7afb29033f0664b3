package obs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/obs"
)

func TestStatementMetricsObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewStatementMetrics("theater", registry)

	metrics.ObserveSuccess(3, 173000, 47)
	metrics.ObserveFailure()

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.RenderedTotal.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.RenderedTotal.WithLabelValues("error")))
	require.Equal(t, 3.0, testutil.ToFloat64(metrics.LinesTotal))
	require.Equal(t, 47.0, testutil.ToFloat64(metrics.VolumeCreditsTotal))
}

func TestStatementMetricsReuseRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := obs.NewStatementMetrics("theater", registry)
	second := obs.NewStatementMetrics("theater", registry)

	second.ObserveSuccess(1, 100, 2)
	require.Equal(t, 1.0, testutil.ToFloat64(first.LinesTotal))
}

func TestNilStatementMetricsIsNoop(t *testing.T) {
	var metrics *obs.StatementMetrics
	metrics.ObserveSuccess(1, 1, 1)
	metrics.ObserveFailure()
}

func TestWriteTextfile(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewStatementMetrics("theater", registry)
	metrics.ObserveSuccess(2, 100000, 10)

	path := filepath.Join(t.TempDir(), "theater.prom")
	require.NoError(t, obs.WriteTextfile(path, registry))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `theater_statements_rendered_total{result="ok"} 1`))
	require.True(t, strings.Contains(string(data), "theater_statement_lines_total 2"))
}
