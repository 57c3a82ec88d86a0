package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// Category sub-score bands. Unlike materials these categories don't overlap,
// so simple independent keyword checks are enough.
const (
	certScoreCertified   = 82 // formal certification found
	certScoreNatural     = 60 // naturally organic/natural but uncertified
	certScoreSynthetic   = 30 // synthetic and uncertified
	certScoreUnknown     = 40
	manufacturingEthical = 72
	manufacturingPoor    = 30
	manufacturingUnknown = 50
	packagingEco         = 80
	packagingPlastic     = 20
	packagingUnknown     = 50
	carbonNeutralClaim   = 80
	carbonNatural        = 60
	carbonPlasticHeavy   = 30
	carbonDefault        = 40
)

// certificationVocabulary maps lowercase keywords to display labels. The scan
// is substring-based over normalized text; results are ordered by first
// appearance in the text.
var certificationVocabulary = []struct {
	keyword string
	label   string
}{
	{"fsc", "FSC"},
	{"gots", "GOTS"},
	{"bis certified", "BIS"},
	{"iso 14001", "ISO 14001"},
	{"b corp", "B Corp"},
	{"fair trade", "Fair Trade"},
	{"energy star", "Energy Star"},
	{"oeko-tex", "OEKO-TEX"},
	{"oeko tex", "OEKO-TEX"},
	{"usda organic", "USDA Organic"},
}

var naturalKeywords = []string{
	"organic", "natural", "bamboo", "hemp", "linen", "jute", "cork",
	"plant-based", "plant based", "neem", "herbal",
}

var syntheticKeywords = []string{
	"plastic", "polyester", "nylon", "acrylic", "synthetic", "pvc",
}

var ethicalManufacturingKeywords = []string{
	"handmade", "hand made", "handcrafted", "locally made", "local artisan",
	"artisan", "small batch", "ethically made", "ethically sourced", "fair wage",
}

var poorManufacturingKeywords = []string{
	"sweatshop", "mass produced", "mass-produced", "fast fashion", "child labor",
}

var ecoPackagingKeywords = []string{
	"plastic-free packaging", "plastic free packaging", "recyclable packaging",
	"eco packaging", "eco-friendly packaging", "minimal packaging",
	"paper packaging", "cardboard", "compostable packaging", "zero waste",
}

var plasticPackagingKeywords = []string{
	"plastic packaging", "bubble wrap", "blister pack", "shrink wrap",
	"poly bag", "polybag",
}

var carbonNeutralKeywords = []string{
	"carbon neutral", "carbon-neutral", "climate neutral", "net zero", "net-zero",
}

// vagueClaimKeywords are marketing terms that assert environmental benefit
// without naming anything verifiable
var vagueClaimKeywords = []string{
	"eco-friendly", "eco friendly", "green", "natural", "sustainable",
	"earth-friendly", "environmentally friendly",
}

// evidenceMaterialKeywords are specific material claims that count as
// supporting evidence against greenwashing
var evidenceMaterialKeywords = []string{
	"organic", "bamboo", "hemp", "linen", "jute", "cork", "cotton",
	"recycled", "wood", "wooden", "biodegradable", "compostable",
}

// quantifiedClaimRegex matches numeric sustainability claims like
// "made from 70% recycled fibers"
var quantifiedClaimRegex = regexp.MustCompile(`\d+\s*%`)

// naturalFoodKeywords identify raw agricultural goods (spices, herbs,
// powders) where formal certification is rare and non-indicative
var naturalFoodKeywords = []string{
	"spice", "spices", "herb", "herbs", "powder", "masala", "turmeric",
	"neem", "tea", "seeds", "ayurvedic", "ayurveda",
}

// findCertifications scans the normalized text for the fixed certification
// vocabulary. The result is deduplicated and ordered by first appearance in
// the text.
func findCertifications(text string) []string {
	type hit struct {
		label string
		index int
	}

	var hits []hit
	seen := make(map[string]bool)
	for _, cert := range certificationVocabulary {
		idx := strings.Index(text, cert.keyword)
		if idx < 0 {
			continue
		}
		if seen[cert.label] {
			// Keep the earliest position for labels with multiple spellings
			for i := range hits {
				if hits[i].label == cert.label && idx < hits[i].index {
					hits[i].index = idx
				}
			}
			continue
		}
		seen[cert.label] = true
		hits = append(hits, hit{label: cert.label, index: idx})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].index < hits[j].index })

	labels := make([]string, 0, len(hits))
	for _, h := range hits {
		labels = append(labels, h.label)
	}
	return labels
}

// scoreCertifications assigns the certifications sub-score. Products that are
// naturally organic but uncertified score mid-band rather than low, since
// formal certification is not expected for them.
func scoreCertifications(text string, found []string) int {
	switch {
	case len(found) > 0:
		return certScoreCertified
	case hasAny(text, naturalKeywords...):
		return certScoreNatural
	case hasAny(text, syntheticKeywords...):
		return certScoreSynthetic
	default:
		return certScoreUnknown
	}
}

// scoreManufacturing assigns the manufacturing sub-score from labor and
// origin language
func scoreManufacturing(text string) int {
	switch {
	case hasAny(text, ethicalManufacturingKeywords...):
		return manufacturingEthical
	case hasAny(text, poorManufacturingKeywords...):
		return manufacturingPoor
	default:
		return manufacturingUnknown
	}
}

// scorePackaging assigns the packaging sub-score
func scorePackaging(text string) int {
	switch {
	case hasAny(text, ecoPackagingKeywords...):
		return packagingEco
	case hasAny(text, plasticPackagingKeywords...):
		return packagingPlastic
	default:
		return packagingUnknown
	}
}

// scoreCarbonFootprint assigns the carbon footprint sub-score. An explicit
// carbon-neutral claim outranks the natural/plant-based band.
func scoreCarbonFootprint(text string) int {
	switch {
	case hasAny(text, carbonNeutralKeywords...):
		return carbonNeutralClaim
	case hasAny(text, naturalKeywords...):
		return carbonNatural
	case hasAny(text, syntheticKeywords...):
		return carbonPlasticHeavy
	default:
		return carbonDefault
	}
}

// detectGreenwash flags text that makes vague sustainability claims with no
// supporting evidence: no certification, no specific material keyword and no
// quantified claim. Both conditions must hold.
func detectGreenwash(text string, certsFound []string) (bool, string) {
	if !hasAny(text, vagueClaimKeywords...) {
		return false, ""
	}
	if len(certsFound) > 0 {
		return false, ""
	}
	if hasAny(text, evidenceMaterialKeywords...) {
		return false, ""
	}
	if quantifiedClaimRegex.MatchString(text) {
		return false, ""
	}
	return true, "Vague sustainability claims without supporting evidence: no certifications, specific materials or quantified claims found"
}

// isNaturalFoodProduct detects raw agricultural goods that trigger the
// certification weight reduction
func isNaturalFoodProduct(text string) bool {
	return hasAny(text, naturalFoodKeywords...)
}
