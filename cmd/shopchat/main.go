package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"shopchat/internal/chat"
	"shopchat/internal/config"
	"shopchat/internal/embed"
	"shopchat/internal/history"
	"shopchat/internal/index"
	"shopchat/internal/llm"
	"shopchat/internal/retrieve"
	"shopchat/internal/tui"
)

func main() {
	indexDir := flag.String("index", "", "Index directory (overrides INDEX_DIR)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *indexDir != "" {
		cfg.IndexDir = *indexDir
	}

	embedFn, model, err := embed.New(&cfg)
	if err != nil {
		log.Fatalf("embedding service: %v", err)
	}

	ix, err := index.Open(cfg.IndexDir, embedFn, model)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	log.Printf("index loaded: %d units, built %s", ix.Count(), ix.Manifest().BuiltAt.Format("2006-01-02 15:04:05"))

	llmKey := cfg.LLMKey
	if llmKey == "" {
		llmKey = cfg.OpenAIKey
	}
	client := llm.New(llm.Config{
		BaseURL:     cfg.LLMURL,
		APIKey:      llmKey,
		Model:       cfg.LLMModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})

	orch := chat.New(retrieve.New(ix, cfg.TopK), client, history.New(cfg.HistoryLimit))

	p := tea.NewProgram(tui.New(orch, ix.Count()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("ui error: %v", err)
	}
}
