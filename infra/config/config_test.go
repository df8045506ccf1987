package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-means/internal/math/ml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad(t *testing.T) {

	type test struct {
		file    string
		content string
		err     bool
	}

	tests := map[string]test{
		"json": {
			file:    "kmeans.json",
			content: `{"data":"data/iris.txt","epsilon":0.01,"seed":42,"max_iterations":50,"members":false,"output":"runs","metrics":9090}`,
		},
		"toml": {
			file: "kmeans.toml",
			content: `data = "data/iris.txt"
epsilon = 0.01
seed = 42
max_iterations = 50
members = false
output = "runs"
metrics = 9090
`,
		},
		"broken-json": {
			file:    "kmeans.json",
			content: `{"data":`,
			err:     true,
		},
		"unknown": {
			file:    "kmeans.yaml",
			content: `data: iris.txt`,
			err:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			err := Load(write(t, tt.file, tt.content), &cfg)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Config{
				Data:          "data/iris.txt",
				Epsilon:       0.01,
				MaxIterations: 50,
				Seed:          42,
				Members:       false,
				Output:        "runs",
				Metrics:       9090,
			}, cfg)
			assert.Equal(t, ml.Config{Epsilon: 0.01, MaxIterations: 50}, cfg.KMeans())
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg := Default()
	err := Load(filepath.Join(t.TempDir(), "missing.json"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ml.DefaultEpsilon, cfg.Epsilon)
	assert.True(t, cfg.Members)
	assert.Equal(t, ml.DefaultConfig(), cfg.KMeans())
}

func TestMustLoad_Missing(t *testing.T) {
	assert.False(t, Exists("missing"))
	assert.Panics(t, func() {
		cfg := Default()
		MustLoad("missing", &cfg)
	})
}
