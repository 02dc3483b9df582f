package retrieve

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"

	"shopchat/internal/corpus"
	"shopchat/internal/index"
)

// Result is one retrieved unit with its similarity to the query.
type Result struct {
	Unit       corpus.Unit
	Similarity float32
}

// Retriever performs top-k similarity search over an opened index.
type Retriever struct {
	coll *chromem.Collection
	topK int
}

func New(ix *index.Index, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{coll: ix.Collection(), topK: topK}
}

// Retrieve embeds the query and returns up to topK units ranked by
// similarity. A store holding fewer than topK entries returns all of
// them; an empty store returns no results and no error.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]Result, error) {
	n := r.topK
	if c := r.coll.Count(); c < n {
		n = c
	}
	if n == 0 {
		return nil, nil
	}

	hits, err := r.coll.Query(ctx, query, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		u, err := corpus.FromEntry(h.Content, h.Metadata)
		if err != nil {
			return nil, fmt.Errorf("corrupt index entry %s: %w", h.ID, err)
		}
		results = append(results, Result{Unit: u, Similarity: h.Similarity})
	}
	return results, nil
}
