package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.Completed(3, 0.5, 0, 1)
	m.Completed(2, 0.25, 0.5, 0.5, 0)
	m.Failed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Runs.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Runs.WithLabelValues(StatusError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Entropy.WithLabelValues("2", "2")))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.prometheus.Entropy.WithLabelValues("3", "1")))

	count, err := testutil.GatherAndCount(registry, "kmeans_iterations")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// a new run with the same k replaces the old gauges
	m.Completed(1, 0, 0.25, 0.75)
	assert.Equal(t, 0.75, testutil.ToFloat64(m.prometheus.Entropy.WithLabelValues("2", "2")))
}
