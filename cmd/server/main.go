package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ecolens/backend/config"
	"github.com/ecolens/backend/internal/delivery/http"
	"github.com/ecolens/backend/internal/domain"
	"github.com/ecolens/backend/internal/infrastructure/cache"
	"github.com/ecolens/backend/internal/infrastructure/extract"
	"github.com/ecolens/backend/internal/infrastructure/groq"
	"github.com/ecolens/backend/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EcoLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize cache backend
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to create Redis cache: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			cancel()
			log.Fatalf("Failed to reach Redis: %v", err)
		}
		cancel()
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Narrative enrichment is optional: without an API key the engine runs
	// deterministic-only
	var narrativeClient domain.NarrativeClient
	if cfg.Groq.APIKey != "" {
		groqClient := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.BaseURL, cfg.Groq.Model)
		if cfg.Server.Environment == "development" {
			groqClient.SetDebug(true)
			log.Printf("Groq client debug mode enabled")
		}
		narrativeClient = groqClient
		log.Printf("Narrative enrichment configured: %s (model: %s)", cfg.Groq.BaseURL, cfg.Groq.Model)
	} else {
		log.Printf("Narrative enrichment disabled (no ECOLENS_GROQ_API_KEY set)")
	}

	// Initialize usecase layer
	scoringService := usecase.NewScoringService(
		cacheRepo,
		narrativeClient,
		usecase.ScoringServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Scoring.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := http.NewHandler(scoringService, extract.NewFetcher())

	// Setup router
	router := http.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Local development reads secrets from .env; missing file is fine
	_ = godotenv.Load()

	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
