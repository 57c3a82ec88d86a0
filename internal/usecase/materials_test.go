package usecase

import "testing"

func TestScoreMaterials(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantScore int
	}{
		{
			name:      "certified organic cotton wins over later rules",
			text:      "organic cotton t-shirt, gots certified",
			wantScore: 92,
		},
		{
			name:      "organic cotton with fair trade",
			text:      "organic cotton fair trade towel",
			wantScore: 92,
		},
		{
			name:      "organic cotton without certification terms",
			text:      "soft organic cotton bedsheet",
			wantScore: 88,
		},
		{
			name:      "organic fabric",
			text:      "organic fabric cushion cover",
			wantScore: 87,
		},
		{
			name:      "organic alone",
			text:      "organic soap bar",
			wantScore: 85,
		},
		{
			name:      "bamboo",
			text:      "bamboo toothbrush with charcoal bristles",
			wantScore: 78,
		},
		{
			name:      "hemp",
			text:      "hemp tote bag for groceries",
			wantScore: 80,
		},
		{
			name:      "linen",
			text:      "linen table runner",
			wantScore: 80,
		},
		{
			name:      "recycled without plastic",
			text:      "notebook made from recycled paper",
			wantScore: 75,
		},
		{
			name:      "recycled plastic falls through to plastic rule",
			text:      "bottle made from recycled plastic",
			wantScore: 20,
		},
		{
			name:      "pure cotton",
			text:      "cotton t-shirt regular fit",
			wantScore: 68,
		},
		{
			name:      "cotton polyester blend counts as synthetic",
			text:      "cotton polyester blend hoodie",
			wantScore: 35,
		},
		{
			name:      "wooden",
			text:      "wooden serving spoon",
			wantScore: 70,
		},
		{
			name:      "cardboard",
			text:      "cardboard storage box",
			wantScore: 72,
		},
		{
			name:      "unspecified fabric",
			text:      "soft cloth for cleaning",
			wantScore: 52,
		},
		{
			name:      "nylon",
			text:      "nylon windbreaker jacket",
			wantScore: 35,
		},
		{
			name:      "plastic alone",
			text:      "plastic food container set",
			wantScore: 20,
		},
		{
			name:      "no recognized keywords falls back to neutral",
			text:      "stainless steel water bottle 1 liter",
			wantScore: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reason := scoreMaterials(tt.text)
			if score != tt.wantScore {
				t.Errorf("scoreMaterials(%q) = %d, want %d", tt.text, score, tt.wantScore)
			}
			if reason == "" {
				t.Error("scoreMaterials() returned empty reason")
			}
		})
	}
}

func TestMaterialRulesOrdering(t *testing.T) {
	// The cascade depends on specific-before-generic ordering. Guard the
	// anchor points so a reordering shows up as a test failure.
	ruleIndex := func(name string) int {
		for i, r := range materialRules {
			if r.name == name {
				return i
			}
		}
		t.Fatalf("rule %q not found", name)
		return -1
	}

	pairs := [][2]string{
		{"certified organic cotton", "organic cotton"},
		{"organic cotton", "organic fabric"},
		{"organic fabric", "organic"},
		{"organic", "pure cotton"},
		{"recycled non-plastic", "plastic"},
		{"unspecified fabric", "synthetic"},
		{"synthetic", "plastic"},
	}

	for _, p := range pairs {
		if ruleIndex(p[0]) >= ruleIndex(p[1]) {
			t.Errorf("rule %q must come before %q", p[0], p[1])
		}
	}
}

func TestScoreMaterialsFirstMatchWins(t *testing.T) {
	// Text matching several rules must take the earliest one only
	score, _ := scoreMaterials("organic cotton certified, ships in plastic wrap with polyester thread")
	if score != 92 {
		t.Errorf("score = %d, want 92 (first matching rule)", score)
	}
}
