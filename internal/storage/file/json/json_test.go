package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-means/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	K       int       `json:"k"`
	History []float64 `json:"history"`
}

func TestBlobStorage(t *testing.T) {
	root := t.TempDir()
	store := NewJsonBlob(root, "runs", true)

	key := storage.Key{
		Hash:    0xabc,
		Dataset: "iris.txt",
		Label:   "k3",
	}
	value := payload{K: 3, History: []float64{10.5, 7.25, 7.25}}
	require.NoError(t, store.Store(key, value))

	_, err := os.Stat(filepath.Join(root, "runs", "iris.txt_abc_k3.json"))
	require.NoError(t, err)

	var loaded payload
	require.NoError(t, store.Load(key, &loaded))
	assert.Equal(t, value, loaded)

	err = store.Load(storage.Key{Dataset: "other"}, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}

func TestLoad_Corrupt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.json"), []byte("{"), 0644))

	var loaded payload
	err := Load(root, "broken", &loaded)
	assert.ErrorIs(t, err, storage.CouldNotLoadErr)
}

func TestSave_NotADirectory(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	assert.Error(t, Save(p, "value", payload{}))
}

func TestNewJsonBlob_DefaultDir(t *testing.T) {
	store := NewJsonBlob("", "runs", false)
	assert.Equal(t, storage.DefaultDir, store.path)
}
