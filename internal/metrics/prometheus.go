package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "kmeans"

// Prometheus holds the collectors for clustering runs.
type Prometheus struct {
	Runs       *prometheus.CounterVec
	Iterations prometheus.Histogram
	SSE        prometheus.Histogram
	Entropy    *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "clustering runs by outcome",
			}, []string{"status"}),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "iterations",
				Help:      "iterations needed per run",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			}),
		SSE: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sse",
				Help:      "final sum of squared residuals per run",
				Buckets:   prometheus.ExponentialBuckets(0.01, 4, 12),
			}),
		Entropy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cluster_entropy",
				Help:      "label entropy of every cluster of the last run",
			}, []string{"k", "cluster"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Runs, p.Iterations, p.SSE, p.Entropy}
}
