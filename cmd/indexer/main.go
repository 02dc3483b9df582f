package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"shopchat/internal/chunker"
	"shopchat/internal/config"
	"shopchat/internal/corpus"
	"shopchat/internal/embed"
	"shopchat/internal/index"
)

func main() {
	knowledgeDir := flag.String("knowledge", "", "Knowledge base directory (overrides KNOWLEDGE_DIR)")
	indexDir := flag.String("index", "", "Index directory (overrides INDEX_DIR)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *knowledgeDir != "" {
		cfg.KnowledgeDir = *knowledgeDir
	}
	if *indexDir != "" {
		cfg.IndexDir = *indexDir
	}

	if _, err := os.Stat(cfg.KnowledgeDir); os.IsNotExist(err) {
		log.Fatalf("knowledge base directory not found: %s", cfg.KnowledgeDir)
	}

	// Missing credential is fatal before anything is read or embedded.
	embedFn, model, err := embed.New(&cfg)
	if err != nil {
		log.Fatalf("embedding service: %v", err)
	}

	products, docs, err := corpus.Load(cfg.KnowledgeDir)
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}

	fragments := chunker.New(cfg.ChunkSize, cfg.ChunkOverlap).SplitAll(docs)

	units := make([]corpus.Unit, 0, len(products)+len(fragments))
	units = append(units, products...)
	units = append(units, fragments...)

	log.Printf("========== SUMMARY ==========")
	log.Printf("Products:  %d", len(products))
	log.Printf("Documents: %d", len(fragments))
	log.Printf("TOTAL:     %d", len(units))
	log.Printf("=============================")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := index.NewBuilder(cfg.IndexDir, embedFn, model).Build(ctx, units)
	if err != nil {
		log.Fatalf("failed to build index: %v", err)
	}
	if n == 0 {
		log.Printf("nothing to index")
		return
	}
	log.Printf("✅ index ready: %d units at %s (model %s)", n, cfg.IndexDir, model)
}
