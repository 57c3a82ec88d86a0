package usecase

import "strings"

// materialRule is one entry in the ordered materials cascade. Rules are
// evaluated in order and the first match wins, so more specific patterns
// ("organic cotton") must be listed before generic ones ("cotton").
type materialRule struct {
	name   string
	match  func(text string) bool
	score  int
	reason string
}

// materialsFallbackScore applies when no rule matches
const materialsFallbackScore = 50

const materialsFallbackReason = "Product details unclear"

// materialRules is the canonical ordered cascade for the materials sub-score.
// Reordering entries changes scoring behavior.
var materialRules = []materialRule{
	{
		name: "certified organic cotton",
		match: func(t string) bool {
			return has(t, "organic cotton") && hasAny(t, "certified", "fair trade", "usda")
		},
		score:  92,
		reason: "Certified organic cotton - excellent eco choice",
	},
	{
		name:   "organic cotton",
		match:  func(t string) bool { return has(t, "organic cotton") },
		score:  88,
		reason: "Organic cotton material",
	},
	{
		name: "organic fabric",
		match: func(t string) bool {
			return has(t, "organic") && hasAny(t, "fabric", "cloth", "cotton")
		},
		score:  87,
		reason: "Organic fabric material",
	},
	{
		name:   "organic",
		match:  func(t string) bool { return has(t, "organic") },
		score:  85,
		reason: "Organic material product",
	},
	{
		name:   "organic bamboo",
		match:  func(t string) bool { return has(t, "bamboo") && has(t, "organic") },
		score:  82,
		reason: "Organic bamboo - sustainable",
	},
	{
		name:   "bamboo",
		match:  func(t string) bool { return has(t, "bamboo") },
		score:  78,
		reason: "Bamboo material - good eco choice",
	},
	{
		name:   "hemp or linen",
		match:  func(t string) bool { return hasAny(t, "hemp", "linen") },
		score:  80,
		reason: "Natural hemp/linen material",
	},
	{
		name:   "recycled non-plastic",
		match:  func(t string) bool { return has(t, "recycled") && !has(t, "plastic") },
		score:  75,
		reason: "Recycled material product",
	},
	{
		name: "pure cotton",
		match: func(t string) bool {
			return has(t, "cotton") && !hasAny(t, "polyester", "blend")
		},
		score:  68,
		reason: "Cotton material - moderate impact",
	},
	{
		name:   "wood",
		match:  func(t string) bool { return hasAny(t, "wood", "wooden") },
		score:  70,
		reason: "Wooden product",
	},
	{
		name:   "paper or cardboard",
		match:  func(t string) bool { return hasAny(t, "paper", "cardboard") },
		score:  72,
		reason: "Paper/cardboard material",
	},
	{
		name:   "unspecified fabric",
		match:  func(t string) bool { return hasAny(t, "fabric", "cloth") },
		score:  52,
		reason: "Material type unclear - needs info",
	},
	{
		name:   "synthetic",
		match:  func(t string) bool { return hasAny(t, "polyester", "nylon", "acrylic") },
		score:  35,
		reason: "Synthetic materials - low eco score",
	},
	{
		name:   "plastic",
		match:  func(t string) bool { return has(t, "plastic") },
		score:  20,
		reason: "Plastic product - poor for environment",
	},
}

// scoreMaterials runs the ordered cascade against normalized text and returns
// the materials sub-score plus a one-line reason for the summary
func scoreMaterials(text string) (int, string) {
	for _, rule := range materialRules {
		if rule.match(text) {
			return rule.score, rule.reason
		}
	}
	return materialsFallbackScore, materialsFallbackReason
}

// has reports whether the normalized text contains the keyword.
// Text is already lower-cased by the normalizer, so this is a plain
// substring check.
func has(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// hasAny reports whether the text contains at least one of the keywords
func hasAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
