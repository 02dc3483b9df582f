// Package embed resolves the configured embedding provider into a
// chromem EmbeddingFunc. The same function must be used at index time and
// at query time: vectors from different models share no space, and a
// mismatch degrades relevance without any error signal. The returned
// identifier is recorded in the index manifest so the mismatch can be
// rejected at query startup.
package embed

import (
	"errors"
	"fmt"

	"github.com/philippgille/chromem-go"

	"shopchat/internal/config"
)

var ErrNoCredential = errors.New("OPENAI_API_KEY is not set")

// New returns the embedding function and its provider/model identifier.
// A missing credential is fatal here, before anything is embedded.
func New(cfg *config.Config) (chromem.EmbeddingFunc, string, error) {
	switch cfg.EmbedProvider {
	case "", "openai":
		if cfg.OpenAIKey == "" {
			return nil, "", ErrNoCredential
		}
		fn := chromem.NewEmbeddingFuncOpenAI(cfg.OpenAIKey, chromem.EmbeddingModelOpenAI(cfg.EmbedModel))
		return fn, "openai/" + cfg.EmbedModel, nil
	case "ollama":
		fn := chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, cfg.OllamaURL+"/api")
		return fn, "ollama/" + cfg.OllamaEmbedModel, nil
	default:
		return nil, "", fmt.Errorf("unknown embedding provider %q", cfg.EmbedProvider)
	}
}
