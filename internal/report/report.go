package report

import (
	"fmt"
	"time"

	"github.com/drakos74/free-means/internal/buffer"
	fmath "github.com/drakos74/free-means/internal/math"
	"github.com/drakos74/free-means/internal/math/ml"
	"github.com/drakos74/free-means/internal/model"
)

// Distance summarises how far the members of a cluster are from its centroid.
type Distance struct {
	Avg   float64 `json:"avg"`
	StDev float64 `json:"stdev"`
	Max   float64 `json:"max"`
}

// Cluster is the reported state of a single cluster.
type Cluster struct {
	Index    int                `json:"index"`
	Size     int                `json:"size"`
	Entropy  float64            `json:"entropy"`
	Centroid []float64          `json:"centroid"`
	Members  []string           `json:"members"`
	Labels   []model.LabelCount `json:"labels"`
	Distance Distance           `json:"distance"`
	// Spread is the standard deviation of the members per attribute.
	Spread []float64 `json:"spread"`
}

// Report is the outcome of one clustering run.
type Report struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Dataset    string    `json:"dataset"`
	Hash       uint64    `json:"hash"`
	Records    int       `json:"records"`
	K          int       `json:"k"`
	Seed       int64     `json:"seed"`
	Iterations int       `json:"iterations"`
	History    []float64 `json:"history"`
	SSE        float64   `json:"sse"`
	Converged  bool      `json:"converged"`
	Clusters   []Cluster `json:"clusters"`
}

// New creates the report for the result of a run on the given dataset.
func New(id string, ds *model.Dataset, seed int64, result ml.Result) (Report, error) {
	clusters := make([]Cluster, len(result.Clusters))
	for i, c := range result.Clusters {
		cluster, err := newCluster(ds, c)
		if err != nil {
			return Report{}, fmt.Errorf("could not report cluster %d: %w", c.Index+1, err)
		}
		clusters[i] = cluster
	}
	return Report{
		ID:         id,
		Time:       time.Now(),
		Dataset:    ds.Name,
		Hash:       ds.Hash,
		Records:    ds.Len(),
		K:          len(result.Clusters),
		Seed:       seed,
		Iterations: result.Iterations,
		History:    result.History,
		SSE:        result.SSE(),
		Converged:  result.Converged,
		Clusters:   clusters,
	}, nil
}

func newCluster(ds *model.Dataset, c *model.Cluster) (Cluster, error) {
	distance := buffer.NewStats()
	spread := buffer.NewStatsCollector(ds.Dim())
	members := c.Members()
	labels := make([]string, len(members))
	for i, m := range members {
		r := ds.At(m)
		labels[i] = r.Label()
		distance.Push(fmath.Euclidean(r.Attributes(), c.Centroid()))
		if err := spread.Push(r.Attributes()...); err != nil {
			return Cluster{}, err
		}
	}
	centroid := make([]float64, len(c.Centroid()))
	copy(centroid, c.Centroid())
	return Cluster{
		Index:    c.Index + 1,
		Size:     c.Size(),
		Entropy:  c.Entropy(),
		Centroid: centroid,
		Members:  labels,
		Labels:   c.Histogram().Entries(),
		Distance: Distance{
			Avg:   distance.Avg(),
			StDev: distance.StDev(),
			Max:   distance.Max(),
		},
		Spread: spread.StDev(),
	}, nil
}

// Entropy returns the entropy of every cluster in order.
func (r Report) Entropy() []float64 {
	ee := make([]float64, len(r.Clusters))
	for i, c := range r.Clusters {
		ee[i] = c.Entropy
	}
	return ee
}
