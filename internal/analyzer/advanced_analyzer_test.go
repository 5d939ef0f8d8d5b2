package analyzer

import "testing"

func TestAnalyzeAdvancedRuleOrderAndCategories(t *testing.T) {
	findings := AnalyzeAdvanced(AdvancedFeatures{DomainAge: DomainAgeUnknown})

	expected := []struct {
		feature  string
		category Category
	}{
		{"entropyScore", CategoryEntropy},
		{"hasHomographChars", CategoryImpersonation},
		{"brandImpersonation", CategoryImpersonation},
		{"typosquattingScore", CategoryImpersonation},
		{"suspiciousTLD", CategoryReputation},
		{"punycodeDomain", CategoryImpersonation},
		{"shortenedURL", CategoryStructure},
		{"redirectRisk", CategoryStructure},
		{"portAnomalies", CategoryStructure},
	}

	if len(findings) != len(expected) {
		t.Fatalf("got %d findings, want %d", len(findings), len(expected))
	}
	for i, exp := range expected {
		if findings[i].Feature != exp.feature {
			t.Errorf("finding %d = %q, want %q", i, findings[i].Feature, exp.feature)
		}
		if findings[i].Category != exp.category {
			t.Errorf("finding %d category = %q, want %q", i, findings[i].Category, exp.category)
		}
	}
}

func TestAnalyzeAdvancedThresholds(t *testing.T) {
	testCases := []struct {
		name           string
		features       AdvancedFeatures
		feature        string
		expectedLevel  RiskLevel
		expectedWeight float64
	}{
		{name: "entropy 3.0 is safe", features: AdvancedFeatures{EntropyScore: 3.0}, feature: "entropyScore", expectedLevel: RiskSafe, expectedWeight: 0},
		{name: "entropy 3.01 is warning", features: AdvancedFeatures{EntropyScore: 3.01}, feature: "entropyScore", expectedLevel: RiskWarning, expectedWeight: 1},
		{name: "entropy 4.0 is warning", features: AdvancedFeatures{EntropyScore: 4.0}, feature: "entropyScore", expectedLevel: RiskWarning, expectedWeight: 1},
		{name: "entropy 4.01 is danger", features: AdvancedFeatures{EntropyScore: 4.01}, feature: "entropyScore", expectedLevel: RiskDanger, expectedWeight: 2.5},
		{name: "homograph chars are danger", features: AdvancedFeatures{HasHomographChars: true}, feature: "hasHomographChars", expectedLevel: RiskDanger, expectedWeight: 3},
		{name: "brand impersonation is danger", features: AdvancedFeatures{BrandImpersonation: "PayPal"}, feature: "brandImpersonation", expectedLevel: RiskDanger, expectedWeight: 3.5},
		{name: "typosquatting 20 is safe", features: AdvancedFeatures{TyposquattingScore: 20}, feature: "typosquattingScore", expectedLevel: RiskSafe, expectedWeight: 0},
		{name: "typosquatting 21 is warning", features: AdvancedFeatures{TyposquattingScore: 21}, feature: "typosquattingScore", expectedLevel: RiskWarning, expectedWeight: 1},
		{name: "typosquatting 51 is danger", features: AdvancedFeatures{TyposquattingScore: 51}, feature: "typosquattingScore", expectedLevel: RiskDanger, expectedWeight: 2.5},
		{name: "suspicious tld is warning", features: AdvancedFeatures{SuspiciousTLD: true}, feature: "suspiciousTLD", expectedLevel: RiskWarning, expectedWeight: 1.5},
		{name: "punycode is danger", features: AdvancedFeatures{PunycodeDomain: true}, feature: "punycodeDomain", expectedLevel: RiskDanger, expectedWeight: 2},
		{name: "shortener is warning", features: AdvancedFeatures{ShortenedURL: true}, feature: "shortenedURL", expectedLevel: RiskWarning, expectedWeight: 1.5},
		{name: "redirect risk is warning", features: AdvancedFeatures{RedirectRisk: true}, feature: "redirectRisk", expectedLevel: RiskWarning, expectedWeight: 1},
		{name: "port anomaly is warning", features: AdvancedFeatures{PortAnomalies: true}, feature: "portAnomalies", expectedLevel: RiskWarning, expectedWeight: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finding := findAdvancedByFeature(t, AnalyzeAdvanced(tc.features), tc.feature)
			if finding.RiskLevel != tc.expectedLevel {
				t.Errorf("risk level = %q, want %q", finding.RiskLevel, tc.expectedLevel)
			}
			if finding.Weight != tc.expectedWeight {
				t.Errorf("weight = %v, want %v", finding.Weight, tc.expectedWeight)
			}
		})
	}
}

func TestAdvancedScore(t *testing.T) {
	testCases := []struct {
		name     string
		features AdvancedFeatures
		expected int
	}{
		{name: "nothing triggered", features: AdvancedFeatures{}, expected: 0},
		{name: "shortener alone", features: AdvancedFeatures{ShortenedURL: true}, expected: 8},  // 1.5/18.5
		{name: "punycode alone", features: AdvancedFeatures{PunycodeDomain: true}, expected: 11}, // 2/18.5
		{
			name: "every rule at maximum saturates to 100",
			features: AdvancedFeatures{
				EntropyScore:       4.5,
				HasHomographChars:  true,
				BrandImpersonation: "PayPal",
				TyposquattingScore: 90,
				SuspiciousTLD:      true,
				PunycodeDomain:     true,
				ShortenedURL:       true,
				RedirectRisk:       true,
				PortAnomalies:      true,
			},
			expected: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdvancedScore(AnalyzeAdvanced(tc.features)); got != tc.expected {
				t.Errorf("AdvancedScore = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestAdvancedScoreMonotonicity(t *testing.T) {
	base := AdvancedFeatures{ShortenedURL: true}
	before := AdvancedScore(AnalyzeAdvanced(base))

	base.PortAnomalies = true
	after := AdvancedScore(AnalyzeAdvanced(base))

	if after < before {
		t.Errorf("score dropped from %d to %d after triggering an extra rule", before, after)
	}
}

func findAdvancedByFeature(t *testing.T, findings []AdvancedFinding, feature string) AdvancedFinding {
	t.Helper()
	for _, f := range findings {
		if f.Feature == feature {
			return f
		}
	}
	t.Fatalf("no finding for feature %q", feature)
	return AdvancedFinding{}
}
