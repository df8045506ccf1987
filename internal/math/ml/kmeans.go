package ml

import (
	"fmt"
	"math"

	fmath "github.com/drakos74/free-means/internal/math"
	"github.com/drakos74/free-means/internal/model"
	"github.com/rs/zerolog/log"
)

// DefaultEpsilon is the SSE delta below which a run is considered converged.
const DefaultEpsilon = 0.0001

var (
	// ConfigurationErr is the umbrella for all errors that prevent a run from starting.
	ConfigurationErr = model.ConfigurationErr
	// InvalidKErr signals a cluster count below one.
	InvalidKErr = fmt.Errorf("%w: k must be at least 1", ConfigurationErr)
	// InvalidEpsilonErr signals a negative convergence threshold.
	InvalidEpsilonErr = fmt.Errorf("%w: epsilon must not be negative", ConfigurationErr)
)

// Random is the source for picking the initial centroids.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Config holds the parameters of a k-means run.
type Config struct {
	Epsilon float64 `json:"epsilon"`
	// MaxIterations caps the loop, zero means iterate until converged.
	MaxIterations int `json:"max_iterations"`
}

// DefaultConfig returns the config for an unbounded run with the default epsilon.
func DefaultConfig() Config {
	return Config{
		Epsilon: DefaultEpsilon,
	}
}

// Result is the outcome of a k-means run.
type Result struct {
	Clusters   []*model.Cluster
	Iterations int
	// History is the SSE after every iteration.
	History   []float64
	Converged bool
}

// SSE returns the metric of the last iteration.
func (r Result) SSE() float64 {
	if len(r.History) == 0 {
		return 0
	}
	return r.History[len(r.History)-1]
}

// Initialize creates k clusters, each seeded with the attributes of a record picked uniformly at random.
// Records are picked with replacement, so two clusters may start from the same point.
func Initialize(ds *model.Dataset, k int, rng Random) ([]*model.Cluster, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("could not initialize clusters: %w", model.EmptyDatasetErr)
	}
	if k < 1 {
		return nil, fmt.Errorf("could not initialize %d clusters: %w", k, InvalidKErr)
	}
	clusters := make([]*model.Cluster, k)
	for i := 0; i < k; i++ {
		r := ds.At(rng.Intn(ds.Len()))
		clusters[i] = model.NewCluster(i, r.Attributes())
	}
	return clusters, nil
}

// Assign rebuilds the membership of all clusters, moving every record to the cluster with the nearest centroid.
// On equal distance the cluster that comes first wins.
func Assign(ds *model.Dataset, clusters []*model.Cluster) error {
	if err := validate(ds, clusters); err != nil {
		return err
	}
	for _, c := range clusters {
		c.Reset()
	}
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		closest := 0
		minDistance := fmath.Euclidean(r.Attributes(), clusters[0].Centroid())
		for j := 1; j < len(clusters); j++ {
			d := fmath.Euclidean(r.Attributes(), clusters[j].Centroid())
			if d < minDistance {
				minDistance = d
				closest = j
			}
		}
		clusters[closest].Add(i, r)
	}
	return nil
}

// Update moves every cluster centroid to the mean of its members.
// A cluster without members keeps its previous centroid.
func Update(ds *model.Dataset, clusters []*model.Cluster) error {
	for _, c := range clusters {
		if c.Size() == 0 {
			continue
		}
		members := c.Members()
		vectors := make([][]float64, len(members))
		for i, m := range members {
			vectors[i] = ds.At(m).Attributes()
		}
		centroid := make([]float64, ds.Dim())
		fmath.Mean(centroid, vectors...)
		if err := c.Move(centroid); err != nil {
			return fmt.Errorf("could not move centroid of cluster %d: %w", c.Index, err)
		}
	}
	return nil
}

// SSE returns the sum of squared distances of all members to their cluster centroid.
func SSE(ds *model.Dataset, clusters []*model.Cluster) float64 {
	sum := 0.0
	for _, c := range clusters {
		for _, m := range c.Members() {
			sum += fmath.SquaredEuclidean(ds.At(m).Attributes(), c.Centroid())
		}
	}
	return sum
}

// Run clusters the dataset into k groups with Lloyd's algorithm.
// It iterates until the SSE of two consecutive iterations differs by no more than the configured epsilon.
func Run(ds *model.Dataset, k int, rng Random, cfg Config) (Result, error) {
	if cfg.Epsilon < 0 {
		return Result{}, fmt.Errorf("could not run with epsilon %v: %w", cfg.Epsilon, InvalidEpsilonErr)
	}
	clusters, err := Initialize(ds, k, rng)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Clusters: clusters,
		History:  make([]float64, 0),
	}

	previous, current := math.MaxFloat64, 0.0
	for math.Abs(previous-current) > cfg.Epsilon {
		if cfg.MaxIterations > 0 && result.Iterations >= cfg.MaxIterations {
			log.Warn().
				Int("k", k).
				Int("iterations", result.Iterations).
				Float64("delta", math.Abs(previous-current)).
				Msg("k-means stopped before converging")
			return result, nil
		}
		previous = current
		if err := Assign(ds, clusters); err != nil {
			return result, fmt.Errorf("could not assign records at iteration %d: %w", result.Iterations+1, err)
		}
		if err := Update(ds, clusters); err != nil {
			return result, fmt.Errorf("could not update centroids at iteration %d: %w", result.Iterations+1, err)
		}
		current = SSE(ds, clusters)
		result.Iterations++
		result.History = append(result.History, current)
		log.Debug().
			Int("k", k).
			Int("iteration", result.Iterations).
			Float64("sse", current).
			Float64("delta", math.Abs(previous-current)).
			Msg("k-means iteration")
	}
	result.Converged = true
	return result, nil
}

func validate(ds *model.Dataset, clusters []*model.Cluster) error {
	if ds == nil || ds.Len() == 0 {
		return model.EmptyDatasetErr
	}
	if len(clusters) == 0 {
		return fmt.Errorf("no clusters to assign to: %w", InvalidKErr)
	}
	for _, c := range clusters {
		if len(c.Centroid()) != ds.Dim() {
			return fmt.Errorf("cluster %d has %d dimensions instead of %d: %w", c.Index, len(c.Centroid()), ds.Dim(), model.DimensionMismatchErr)
		}
	}
	return nil
}
