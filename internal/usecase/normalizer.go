package usecase

import (
	"regexp"
	"strings"

	"github.com/ecolens/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var whitespaceRegex = regexp.MustCompile(`\s+`)

const (
	// Descriptions shorter than this are near-empty boilerplate; scoring falls
	// back to name + brand instead
	minDescriptionLength = 20

	// Flipkart extraction pulls whole-body text and needs a larger cap
	maxTextDefault  = 3000
	maxTextFlipkart = 6000

	defaultProductName = "Unknown Product"
)

// Normalizer produces the single lower-cased, whitespace-collapsed,
// length-bounded text blob that the scoring engine matches against
type Normalizer struct{}

// NewNormalizer creates a new text normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize builds the scoring text from raw extracted fields.
// It never fails: missing fields default to empty strings and an empty name
// defaults to "Unknown Product".
func (n *Normalizer) Normalize(p *domain.ProductText) string {
	if p == nil {
		return strings.ToLower(defaultProductName)
	}

	name := collapseWhitespace(p.Name)
	if name == "" {
		name = defaultProductName
	}
	brand := collapseWhitespace(p.Brand)

	description := collapseWhitespace(p.Description)
	if specs := collapseWhitespace(p.Specifications); specs != "" {
		description = strings.TrimSpace(description + " " + specs)
	}

	// Near-empty descriptions score worse than no description: fall back to
	// the fields we trust
	if len(description) < minDescriptionLength {
		description = strings.TrimSpace(name + " " + brand)
	}

	full := strings.ToLower(collapseWhitespace(name + " " + brand + " " + description))

	// Hard substring cut, not word-boundary aware
	limit := maxTextDefault
	if p.Platform == domain.PlatformFlipkart {
		limit = maxTextFlipkart
	}
	if len(full) > limit {
		full = full[:limit]
	}

	return full
}

// collapseWhitespace collapses runs of whitespace (including newlines and
// tabs) to single spaces and trims the ends
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
