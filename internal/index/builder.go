package index

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/philippgille/chromem-go"

	"shopchat/internal/corpus"
)

// Builder embeds retrievable units and persists them as a new index.
type Builder struct {
	dir   string
	embed chromem.EmbeddingFunc
	model string
}

func NewBuilder(dir string, embedFn chromem.EmbeddingFunc, model string) *Builder {
	return &Builder{dir: dir, embed: embedFn, model: model}
}

// Build replaces the index at the builder's directory with one holding
// exactly the given units. The new store is assembled in a temporary
// directory and swapped in only once complete, so a failed build never
// leaves the system without a usable index. An empty unit set skips the
// rebuild entirely: an accidentally empty corpus must not destroy a good
// index. Returns the number of units indexed.
func (b *Builder) Build(ctx context.Context, units []corpus.Unit) (int, error) {
	if len(units) == 0 {
		log.Printf("no units to index, keeping index at %s untouched", b.dir)
		return 0, nil
	}

	tmp := b.dir + ".tmp"
	if err := os.RemoveAll(tmp); err != nil {
		return 0, fmt.Errorf("clean temp dir: %w", err)
	}

	db, err := chromem.NewPersistentDB(filepath.Join(tmp, storeSubdir), false)
	if err != nil {
		return 0, fmt.Errorf("create store: %w", err)
	}
	coll, err := db.CreateCollection(collectionName, map[string]string{"embedding_model": b.model}, b.embed)
	if err != nil {
		return 0, fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, 0, len(units))
	for i, u := range units {
		docs = append(docs, chromem.Document{
			ID:       unitID(i, u),
			Content:  u.Content,
			Metadata: u.Metadata(),
		})
	}
	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return 0, fmt.Errorf("embed and store units: %w", err)
	}

	m := Manifest{EmbeddingModel: b.model, Units: len(units), BuiltAt: time.Now()}
	if err := writeManifest(filepath.Join(tmp, manifestFile), m); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}

	if err := os.RemoveAll(b.dir); err != nil {
		return 0, fmt.Errorf("remove previous index: %w", err)
	}
	if err := os.Rename(tmp, b.dir); err != nil {
		return 0, fmt.Errorf("activate new index: %w", err)
	}
	return len(units), nil
}

// unitID derives a stable store key from content and source. The ordinal
// keeps duplicate rows as distinct entries instead of collapsing them.
func unitID(i int, u corpus.Unit) string {
	h := sha256.Sum256([]byte(u.Content + u.Source))
	return fmt.Sprintf("%04d-%x", i, h[:6])
}
