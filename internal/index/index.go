// Package index owns the persisted vector store. The builder replaces it
// wholesale on every ingestion run; query-time access is read-only.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philippgille/chromem-go"
)

const (
	collectionName = "knowledge"
	manifestFile   = "manifest.json"
	storeSubdir    = "store"
)

// ErrMissing is returned when no index exists at the configured location.
var ErrMissing = errors.New("vector index not found, run the indexer first")

// Manifest describes a built index. EmbeddingModel is checked against the
// configured model on open, so a store embedded with one model is never
// queried with vectors from another.
type Manifest struct {
	EmbeddingModel string    `json:"embedding_model"`
	Units          int       `json:"units"`
	BuiltAt        time.Time `json:"built_at"`
}

// Index is a read-only handle to a previously built store.
type Index struct {
	coll     *chromem.Collection
	manifest Manifest
}

// Open loads the index at dir for querying. It fails with ErrMissing when
// the directory does not exist and with an explicit error when the store
// was built with a different embedding model.
func Open(dir string, embedFn chromem.EmbeddingFunc, model string) (*Index, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissing
		}
		return nil, err
	}

	m, err := readManifest(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("read index manifest: %w", err)
	}
	if m.EmbeddingModel != model {
		return nil, fmt.Errorf(
			"index was built with embedding model %s but %s is configured; rebuild the index",
			m.EmbeddingModel, model)
	}

	db, err := chromem.NewPersistentDB(filepath.Join(dir, storeSubdir), false)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	coll := db.GetCollection(collectionName, embedFn)
	if coll == nil {
		return nil, fmt.Errorf("collection %q missing from index at %s", collectionName, dir)
	}
	return &Index{coll: coll, manifest: m}, nil
}

// Collection exposes the underlying store for similarity search.
func (ix *Index) Collection() *chromem.Collection { return ix.coll }

func (ix *Index) Manifest() Manifest { return ix.manifest }

func (ix *Index) Count() int { return ix.coll.Count() }

func readManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func writeManifest(path string, m Manifest) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
