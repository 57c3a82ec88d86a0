package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/ecolens/backend/internal/domain"
)

// Default aggregation weights. Materials dominate because they are the
// strongest deterministic signal in listing text.
const (
	weightMaterials      = 0.40
	weightPackaging      = 0.20
	weightManufacturing  = 0.20
	weightCarbon         = 0.10
	weightCertifications = 0.10

	// Natural food override: formal certification is rare and non-indicative
	// for raw agricultural goods, so its weight shifts to materials
	naturalFoodWeightMaterials      = 0.45
	naturalFoodWeightCertifications = 0.05
)

// defaultTips is the fixed fallback triplet used when nothing more specific
// applies
var defaultTips = []string{
	"Use responsibly",
	"Recycle properly",
	"Choose certified products",
}

// ScoringServiceConfig holds configuration for the scoring service
type ScoringServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// ScoringService runs the deterministic eco-score rule engine and merges the
// optional LLM narrative. Every call is independent: there is no shared
// mutable state between scoring requests.
type ScoringService struct {
	cache      domain.CacheRepository
	narrative  domain.NarrativeClient // nil when enrichment is unavailable
	normalizer *Normalizer
	cacheTTL   time.Duration
	debug      bool
}

// NewScoringService creates a new scoring service with dependencies.
// narrative may be nil; scoring then runs deterministic-only.
func NewScoringService(
	cache domain.CacheRepository,
	narrative domain.NarrativeClient,
	config ScoringServiceConfig,
) *ScoringService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // Default 7 days
	}

	return &ScoringService{
		cache:      cache,
		narrative:  narrative,
		normalizer: NewNormalizer(),
		cacheTTL:   cacheTTL,
		debug:      config.EnableDebugLogging,
	}
}

// AnalyzeProduct scores a product.
// Flow: normalize -> check cache -> rule engine -> narrative merge -> cache -> return.
// The narrative call is best-effort: any failure degrades to deterministic
// summary and tips, never to a scoring error.
func (s *ScoringService) AnalyzeProduct(
	ctx context.Context,
	product *domain.ProductText,
) (*domain.ScoreRecord, error) {
	if product == nil {
		return nil, domain.ErrInvalidRequest
	}

	text := s.normalizer.Normalize(product)
	cacheKey := scoreCacheKey(text)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		cached.Source = "cache"
		return cached, nil
	}

	record := s.scoreDeterministic(text)

	if s.narrative != nil {
		s.mergeNarrative(ctx, product, record)
	}

	if err := s.setInCache(ctx, cacheKey, record); err != nil && s.debug {
		log.Printf("[SCORE] Cache write failed: %v", err)
	}

	return record, nil
}

// scoreDeterministic runs the full rule engine over normalized text.
// Pure function of its input: identical text always yields an identical
// score, grade and breakdown.
func (s *ScoringService) scoreDeterministic(text string) *domain.ScoreRecord {
	materials, materialReason := scoreMaterials(text)
	certsFound := findCertifications(text)
	certifications := scoreCertifications(text, certsFound)
	manufacturing := scoreManufacturing(text)
	packaging := scorePackaging(text)
	carbon := scoreCarbonFootprint(text)

	wMaterials, wCertifications := weightMaterials, weightCertifications
	if isNaturalFoodProduct(text) {
		wMaterials = naturalFoodWeightMaterials
		wCertifications = naturalFoodWeightCertifications
		if s.debug {
			log.Printf("[SCORE] Natural food product detected, reweighting materials/certifications")
		}
	}

	raw := float64(materials)*wMaterials +
		float64(packaging)*weightPackaging +
		float64(manufacturing)*weightManufacturing +
		float64(carbon)*weightCarbon +
		float64(certifications)*wCertifications

	score := domain.ClampScore(int(math.Round(raw)))
	greenwash, greenwashReason := detectGreenwash(text, certsFound)

	breakdown := domain.CategoryBreakdown{
		Materials:       domain.ClampScore(materials),
		Manufacturing:   domain.ClampScore(manufacturing),
		Packaging:       domain.ClampScore(packaging),
		Certifications:  domain.ClampScore(certifications),
		CarbonFootprint: domain.ClampScore(carbon),
	}

	if s.debug {
		log.Printf("[SCORE] materials=%d manufacturing=%d packaging=%d certifications=%d carbon=%d -> score=%d",
			materials, manufacturing, packaging, certifications, carbon, score)
	}

	return &domain.ScoreRecord{
		Score:               score,
		Grade:               domain.GradeFor(score),
		Breakdown:           breakdown,
		Summary:             buildSummary(materialReason, score, greenwash),
		Greenwash:           greenwash,
		GreenwashReason:     greenwashReason,
		CertificationsFound: certsFound,
		Tips:                buildTips(breakdown, certsFound, greenwash),
		Source:              "rules",
		ScoredAt:            time.Now(),
	}
}

// mergeNarrative asks the LLM for summary and tips and merges them into the
// record. Score, grade and breakdown are never taken from the LLM, even if
// its response carries fields with those names: the deterministic engine is
// authoritative and the narrative is decorative only.
func (s *ScoringService) mergeNarrative(
	ctx context.Context,
	product *domain.ProductText,
	record *domain.ScoreRecord,
) {
	name := product.Name
	if name == "" {
		name = "Unknown Product"
	}

	narrative, err := s.narrative.GenerateNarrative(ctx, &domain.NarrativeRequest{
		ProductName: name,
		Score:       record.Score,
		Grade:       record.Grade,
	})
	if err != nil {
		if s.debug {
			log.Printf("[SCORE] Narrative enrichment unavailable: %v", err)
		}
		return
	}

	if summary := narrative.Summary; summary != "" {
		record.Summary = summary
	}
	if len(narrative.Tips) >= 3 {
		record.Tips = narrative.Tips[:3]
	}
	record.Source = "rules+llm"
}

// buildSummary produces the deterministic fallback summary
func buildSummary(materialReason string, score int, greenwash bool) string {
	summary := fmt.Sprintf("%s. Overall eco-score %d (%s) across materials, manufacturing, packaging, certifications and carbon footprint.",
		materialReason, score, domain.GradeFor(score))
	if greenwash {
		summary += " Sustainability claims on this listing lack verifiable evidence."
	}
	return summary
}

// buildTips derives exactly 3 actionable tips from the weakest categories,
// padding with the fixed default triplet when fewer apply
func buildTips(b domain.CategoryBreakdown, certs []string, greenwash bool) []string {
	var tips []string
	if b.Materials < 50 {
		tips = append(tips, "Prefer natural or recycled materials over synthetics")
	}
	if b.Packaging < 50 {
		tips = append(tips, "Look for minimal or plastic-free packaging")
	}
	if greenwash {
		tips = append(tips, "Verify sustainability claims against recognized certifications")
	}
	if len(certs) == 0 {
		tips = append(tips, "Look for eco certifications such as GOTS or Fair Trade")
	}
	if b.CarbonFootprint < 50 {
		tips = append(tips, "Favor carbon-neutral or locally produced alternatives")
	}

	for _, t := range defaultTips {
		if len(tips) >= 3 {
			break
		}
		tips = append(tips, t)
	}
	return tips[:3]
}

// scoreCacheKey derives a stable cache key from the normalized text.
// Format: "ecoscore:{sha256 prefix}"
func scoreCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "ecoscore:" + hex.EncodeToString(sum[:8])
}

// getFromCache retrieves a score record from cache. The memory cache JSON
// round-trips values, so records may come back as generic maps.
func (s *ScoringService) getFromCache(ctx context.Context, key string) (*domain.ScoreRecord, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if record, ok := value.(*domain.ScoreRecord); ok {
		return record, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}
	var record domain.ScoreRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &record, nil
}

// setInCache stores a score record in cache
func (s *ScoringService) setInCache(ctx context.Context, key string, record *domain.ScoreRecord) error {
	return s.cache.Set(ctx, key, record, s.cacheTTL)
}
