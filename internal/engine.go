package means

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/drakos74/free-means/internal/math/ml"
	"github.com/drakos74/free-means/internal/metrics"
	"github.com/drakos74/free-means/internal/model"
	"github.com/drakos74/free-means/internal/report"
	"github.com/drakos74/free-means/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Source provides the dataset for a run.
type Source interface {
	Dataset() (*model.Dataset, error)
}

// Engine executes clustering runs against a source.
// Every run loads the dataset again and starts from scratch.
type Engine struct {
	source  Source
	config  ml.Config
	seed    int64
	store   storage.Persistence
	metrics *metrics.Metrics
}

// NewEngine creates a new engine that does not store its reports.
func NewEngine(source Source, config ml.Config) *Engine {
	return &Engine{
		source:  source,
		config:  config,
		store:   storage.NewVoidStorage(),
		metrics: metrics.Observer,
	}
}

// WithSeed fixes the seed of the random source for all runs.
// Zero means a new seed for every run.
func (e *Engine) WithSeed(seed int64) *Engine {
	e.seed = seed
	return e
}

// WithStore stores the report of every run in the given storage.
func (e *Engine) WithStore(store storage.Persistence) *Engine {
	e.store = store
	return e
}

// WithMetrics records the runs on the given metrics.
func (e *Engine) WithMetrics(m *metrics.Metrics) *Engine {
	e.metrics = m
	return e
}

// Run clusters the dataset of the source into k clusters.
func (e *Engine) Run(k int) (report.Report, error) {
	id := uuid.New().String()

	ds, err := e.source.Dataset()
	if err != nil {
		e.metrics.Failed()
		return report.Report{}, fmt.Errorf("could not load dataset for run %s: %w", id, err)
	}

	seed := e.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	result, err := ml.Run(ds, k, rand.New(rand.NewSource(seed)), e.config)
	if err != nil {
		e.metrics.Failed()
		log.Error().
			Err(err).
			Str("run", id).
			Str("dataset", ds.Name).
			Int("k", k).
			Msg("could not run k-means")
		return report.Report{}, fmt.Errorf("could not cluster '%s' with k = %d: %w", ds.Name, k, err)
	}

	r, err := report.New(id, ds, seed, result)
	if err != nil {
		e.metrics.Failed()
		return report.Report{}, fmt.Errorf("could not report '%s' with k = %d: %w", ds.Name, k, err)
	}
	e.metrics.Completed(r.Iterations, r.SSE, r.Entropy()...)

	log.Info().
		Str("run", id).
		Str("dataset", ds.Name).
		Int("records", ds.Len()).
		Int("k", k).
		Int64("seed", seed).
		Int("iterations", r.Iterations).
		Float64("sse", r.SSE).
		Bool("converged", r.Converged).
		Dur("duration", time.Since(start)).
		Msg("k-means run finished")

	key := Key(ds, k, id)
	if err := e.store.Store(key, r); err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", key)).
			Msg("could not store report")
	}

	return r, nil
}

// Key is the storage key of the report of a run.
func Key(ds *model.Dataset, k int, id string) storage.Key {
	return storage.Key{
		Hash:    ds.Hash,
		Dataset: ds.Name,
		Label:   fmt.Sprintf("k%d_%s", k, id),
	}
}
