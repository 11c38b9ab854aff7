package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"enlighten/api"
	"enlighten/config"
	"enlighten/news"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.NewsAPIKey == "" && cfg.GuardianAPIKey == "" && cfg.MediaStackAPIKey == "" {
		log.Println("⚠️ No provider API keys configured; every fetch will fail")
	}

	newsAPI := news.NewNewsAPI(news.NewsAPIConfig{APIKey: cfg.NewsAPIKey})
	guardian := news.NewGuardian(news.GuardianConfig{APIKey: cfg.GuardianAPIKey})
	mediaStack := news.NewMediaStack(news.MediaStackConfig{APIKey: cfg.MediaStackAPIKey})

	// Priority order: NewsAPI, then Guardian, then MediaStack. MediaStack has
	// no detail lookup, so the resolver only probes the first two.
	aggregator := news.NewAggregator(newsAPI, guardian, mediaStack)
	resolver := news.NewResolver(newsAPI, guardian)

	r := api.NewRouter(api.NewNewsController(aggregator, resolver, newsAPI, guardian, mediaStack))

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/news")
	log.Println("  GET  /api/news/all")
	log.Println("  GET  /api/news/newsapi")
	log.Println("  GET  /api/news/guardian")
	log.Println("  GET  /api/news/mediastack")
	log.Println("  GET  /api/news/article/:id")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
