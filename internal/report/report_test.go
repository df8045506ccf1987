package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/drakos74/free-means/internal/math/ml"
	"github.com/drakos74/free-means/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type script []int

func (s *script) Intn(n int) int {
	v := (*s)[0]
	*s = (*s)[1:]
	return v % n
}

func run(t *testing.T, picks ...int) (*model.Dataset, ml.Result) {
	ds, err := model.NewDataset("four", 42,
		model.NewRecord("A", 0, 0),
		model.NewRecord("A", 0, 1),
		model.NewRecord("B", 10, 10),
		model.NewRecord("B", 10, 11),
	)
	require.NoError(t, err)
	s := script(picks)
	result, err := ml.Run(ds, 2, &s, ml.DefaultConfig())
	require.NoError(t, err)
	return ds, result
}

func TestNew(t *testing.T) {
	ds, result := run(t, 0, 2)

	r, err := New("run-id", ds, 7, result)
	require.NoError(t, err)
	assert.Equal(t, "run-id", r.ID)
	assert.Equal(t, "four", r.Dataset)
	assert.Equal(t, uint64(42), r.Hash)
	assert.Equal(t, 4, r.Records)
	assert.Equal(t, 2, r.K)
	assert.Equal(t, int64(7), r.Seed)
	assert.Equal(t, 2, r.Iterations)
	assert.Equal(t, 1.0, r.SSE)
	assert.True(t, r.Converged)
	assert.Equal(t, []float64{0, 0}, r.Entropy())

	require.Len(t, r.Clusters, 2)
	first := r.Clusters[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, first.Size)
	assert.Equal(t, []float64{0, 0.5}, first.Centroid)
	assert.Equal(t, []string{"A", "A"}, first.Members)
	assert.Equal(t, []model.LabelCount{{Label: "A", Count: 2}}, first.Labels)
	assert.Equal(t, Distance{Avg: 0.5, StDev: 0, Max: 0.5}, first.Distance)
	assert.Equal(t, []float64{0, 0.5}, first.Spread)

	second := r.Clusters[1]
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, []float64{10, 10.5}, second.Centroid)
	assert.Equal(t, []string{"B", "B"}, second.Members)
}

func TestFormat(t *testing.T) {
	ds, result := run(t, 0, 2)
	r, err := New("run-id", ds, 7, result)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, r, DefaultOptions()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "iteration 1: sse = 1.0000\niteration 2: sse = 1.0000\n"))
	assert.Contains(t, out, "clusters for k = 2 on four (4 records, seed 7):")
	assert.Contains(t, out, "cluster 1:\nsize: 2\nentropy: 0.0000\ncentroid: (0.0000, 0.5000)\n")
	assert.Contains(t, out, "cluster 2:\nsize: 2\nentropy: 0.0000\ncentroid: (10.0000, 10.5000)\n")
	assert.Contains(t, out, "members:\nA\nA\n")
	assert.Contains(t, out, "members:\nB\nB\n")
	assert.Contains(t, out, "LABEL")
	assert.NotContains(t, out, "without converging")
	assert.Less(t, strings.Index(out, "cluster 1:"), strings.Index(out, "cluster 2:"))
}

func TestFormat_Options(t *testing.T) {
	ds, result := run(t, 0, 0)
	r, err := New("run-id", ds, 7, result)
	require.NoError(t, err)
	r.Converged = false

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, r, Options{Plot: true, Precision: 2}))
	out := buf.String()

	assert.NotContains(t, out, "members:")
	assert.Contains(t, out, "sse per iteration")
	assert.Contains(t, out, "without converging")
	assert.Contains(t, out, "entropy: ")
}

func TestVaries(t *testing.T) {
	assert.False(t, varies(nil))
	assert.False(t, varies([]float64{0.5, 0.5}))
	assert.True(t, varies([]float64{201, 1, 1}))
}
