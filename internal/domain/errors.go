package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrNarrativeDisabled is returned when no LLM API key is configured.
	// This is a normal condition, not a failure: scoring proceeds without narrative.
	ErrNarrativeDisabled = errors.New("narrative enrichment disabled")

	// ErrNarrativeFailure is returned when the LLM API call fails or returns
	// a response that does not validate
	ErrNarrativeFailure = errors.New("narrative enrichment failed")

	// ErrPageFetchFailure is returned when the fallback page fetch fails
	ErrPageFetchFailure = errors.New("product page fetch failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
