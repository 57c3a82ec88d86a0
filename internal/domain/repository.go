package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// NarrativeRequest carries the deterministic scoring result that the LLM
// narrates. The LLM never influences the score itself.
type NarrativeRequest struct {
	ProductName string
	Score       int
	Grade       string
}

// Narrative is the validated LLM output: decorative text only
type Narrative struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}

// NarrativeClient defines the interface for the LLM narrative-enrichment service
type NarrativeClient interface {
	GenerateNarrative(ctx context.Context, req *NarrativeRequest) (*Narrative, error)
}

// PageFetcher fetches and extracts product text server-side when the
// extension could not supply enough page text itself
type PageFetcher interface {
	FetchProductText(ctx context.Context, pageURL string) (*ProductText, error)
}
