package storage

import (
	"errors"
	"fmt"
)

// DefaultDir is the root directory for file based storage.
var DefaultDir = "file-storage"

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a clustering run.
type Key struct {
	// Hash is the fingerprint of the dataset the run was made on.
	Hash    uint64 `json:"hash"`
	Dataset string `json:"dataset"`
	Label   string `json:"label"`
}

// Path returns the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%x_%s", k.Dataset, k.Hash, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
