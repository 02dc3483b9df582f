// Package chunker splits free-text units into overlapping fixed-size
// windows so that no retrievable unit exceeds a predictable size. The
// overlap keeps context that straddles a window boundary retrievable from
// both sides. Structured product units pass through untouched: splitting
// them would break metadata-based answers.
package chunker

import "shopchat/internal/corpus"

// Chunker cuts content into windows of at most WindowSize runes with
// Overlap runes shared between consecutive windows.
type Chunker struct {
	windowSize int
	overlap    int
}

func New(windowSize, overlap int) *Chunker {
	if windowSize <= 0 {
		windowSize = 800
	}
	if overlap < 0 {
		overlap = 0
	}
	// the window must advance on every step
	if overlap >= windowSize {
		overlap = windowSize / 2
	}
	return &Chunker{windowSize: windowSize, overlap: overlap}
}

// Split cuts a document unit into overlapping windows, preserving its
// metadata on every fragment. Content no longer than one window yields
// exactly one fragment equal to the original. Non-document units are
// returned as-is.
func (c *Chunker) Split(u corpus.Unit) []corpus.Unit {
	if u.Kind != corpus.KindDocument {
		return []corpus.Unit{u}
	}
	runes := []rune(u.Content)
	if len(runes) <= c.windowSize {
		return []corpus.Unit{u}
	}

	var out []corpus.Unit
	step := c.windowSize - c.overlap
	for i := 0; i < len(runes); i += step {
		end := i + c.windowSize
		if end > len(runes) {
			end = len(runes)
		}
		frag := u
		frag.Content = string(runes[i:end])
		out = append(out, frag)
		if end >= len(runes) {
			break
		}
	}
	return out
}

// SplitAll splits a batch of units, preserving the order of fragments
// within each source.
func (c *Chunker) SplitAll(units []corpus.Unit) []corpus.Unit {
	var out []corpus.Unit
	for _, u := range units {
		out = append(out, c.Split(u)...)
	}
	return out
}
