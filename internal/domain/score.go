package domain

import "time"

// CategoryBreakdown holds the per-category sub-scores. The five categories are
// fixed; each value is an integer in [0,100].
type CategoryBreakdown struct {
	Materials       int `json:"materials"`
	Manufacturing   int `json:"manufacturing"`
	Packaging       int `json:"packaging"`
	Certifications  int `json:"certifications"`
	CarbonFootprint int `json:"carbon_footprint"`
}

// ScoreRecord is the complete result of one eco-score analysis.
// Score, Grade and Breakdown are always computed by the local rule engine;
// Summary and Tips may be replaced by LLM-generated narrative after validation.
type ScoreRecord struct {
	Score               int               `json:"score"`
	Grade               string            `json:"grade"`
	Breakdown           CategoryBreakdown `json:"breakdown"`
	Summary             string            `json:"summary"`
	Greenwash           bool              `json:"greenwash"`
	GreenwashReason     string            `json:"greenwash_reason,omitempty"`
	CertificationsFound []string          `json:"certifications_found"`
	Tips                []string          `json:"tips"`
	Source              string            `json:"source"` // "rules", "rules+llm" or "cache"
	ScoredAt            time.Time         `json:"scoredAt,omitempty"`
}

// GradeFor maps an overall score to its letter grade. This is the canonical
// scale for the whole service; grades are never set independently of the score.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 55:
		return "C+"
	case score >= 45:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// ClampScore bounds a score value to the valid [0,100] range
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
