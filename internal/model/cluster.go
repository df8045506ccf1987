package model

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/drakos74/free-means/internal/math"
)

// Cluster is a centroid together with the records currently assigned to it.
// Members are indices into the Dataset the cluster was built for.
type Cluster struct {
	Index     int
	centroid  []float64
	members   *roaring.Bitmap
	histogram *Histogram
}

// NewCluster creates an empty cluster with a copy of the given centroid.
func NewCluster(index int, centroid []float64) *Cluster {
	c := make([]float64, len(centroid))
	copy(c, centroid)
	return &Cluster{
		Index:     index,
		centroid:  c,
		members:   roaring.New(),
		histogram: NewHistogram(),
	}
}

// Centroid returns the current centroid.
// The returned slice is shared and must not be modified.
func (c *Cluster) Centroid() []float64 {
	return c.centroid
}

// Move replaces the centroid with the given vector.
func (c *Cluster) Move(centroid []float64) error {
	if len(centroid) != len(c.centroid) {
		return fmt.Errorf("centroid of cluster %d has %d dimensions instead of %d: %w", c.Index, len(centroid), len(c.centroid), DimensionMismatchErr)
	}
	copy(c.centroid, centroid)
	return nil
}

// Reset drops all members and label counts, the centroid is kept.
func (c *Cluster) Reset() {
	c.members.Clear()
	c.histogram.Reset()
}

// Add assigns the record at index i of the dataset to the cluster.
func (c *Cluster) Add(i int, r Record) {
	c.members.Add(uint32(i))
	c.histogram.Add(r.label)
}

// Contains checks if the record at index i is a member.
func (c *Cluster) Contains(i int) bool {
	return c.members.Contains(uint32(i))
}

// Size returns the number of members.
func (c *Cluster) Size() int {
	return int(c.members.GetCardinality())
}

// Members returns the member indices in dataset order.
func (c *Cluster) Members() []int {
	mm := make([]int, 0, c.Size())
	it := c.members.Iterator()
	for it.HasNext() {
		mm = append(mm, int(it.Next()))
	}
	return mm
}

// Histogram returns the label counts of the current members.
func (c *Cluster) Histogram() *Histogram {
	return c.histogram
}

// Entropy returns the base-2 Shannon entropy of the member labels.
func (c *Cluster) Entropy() float64 {
	return math.Entropy(c.histogram.Counts()...)
}
