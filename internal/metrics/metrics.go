package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Observer is the process wide metrics collector.
var Observer = NewMetrics(prometheus.DefaultRegisterer)

// Metrics records the outcome of clustering runs.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// NewMetrics creates the collectors and registers them with the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	p := NewPrometheusMetrics()
	registerer.MustRegister(p.collectors()...)
	return &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: p,
	}
}

// Failed records a run that could not complete.
func (m *Metrics) Failed() {
	m.prometheus.Runs.WithLabelValues(StatusError).Inc()
}

// Completed records a finished run with its iterations, final metric and cluster entropies.
func (m *Metrics) Completed(iterations int, sse float64, entropy ...float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Runs.WithLabelValues(StatusOK).Inc()
	m.prometheus.Iterations.Observe(float64(iterations))
	m.prometheus.SSE.Observe(sse)
	k := strconv.Itoa(len(entropy))
	m.prometheus.Entropy.DeletePartialMatch(prometheus.Labels{"k": k})
	for i, e := range entropy {
		m.prometheus.Entropy.WithLabelValues(k, strconv.Itoa(i+1)).Set(e)
	}
}

// Serve exposes the default registry on the given port in the background.
func Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
}
