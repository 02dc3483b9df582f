package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	KnowledgeDir string `env:"KNOWLEDGE_DIR" envDefault:"./knowledge-base"`
	IndexDir     string `env:"INDEX_DIR" envDefault:"./vector-store"`

	EmbedProvider    string `env:"EMBED_PROVIDER" envDefault:"openai"`
	OpenAIKey        string `env:"OPENAI_API_KEY"`
	EmbedModel       string `env:"EMBED_MODEL" envDefault:"text-embedding-3-small"`
	OllamaURL        string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`

	LLMURL      string  `env:"LLM_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel    string  `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMKey      string  `env:"LLM_API_KEY"`
	Temperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.3"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS" envDefault:"1024"`

	ChunkSize    int `env:"CHUNK_SIZE" envDefault:"800"`
	ChunkOverlap int `env:"CHUNK_OVERLAP" envDefault:"100"`
	TopK         int `env:"TOP_K" envDefault:"5"`
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"10"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
