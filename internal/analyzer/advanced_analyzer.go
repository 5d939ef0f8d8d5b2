package analyzer

import "fmt"

// advancedRule evaluates one AdvancedFeatures field into a categorized
// finding. As with the basic table, MaxWeight feeds the derived score
// normalizer.
type advancedRule struct {
	Feature   string
	Category  Category
	MaxWeight float64
	Evaluate  func(f AdvancedFeatures) (value interface{}, level RiskLevel, weight float64, description string)
}

// advancedRules is evaluated in order on every call.
var advancedRules = []advancedRule{
	{
		Feature:   "entropyScore",
		Category:  CategoryEntropy,
		MaxWeight: 2.5,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			switch {
			case f.EntropyScore > 4:
				return f.EntropyScore, RiskDanger, 2.5, "Hostname looks randomly generated (very high character entropy)"
			case f.EntropyScore > 3:
				return f.EntropyScore, RiskWarning, 1, "Hostname entropy is above what legitimate domains typically show"
			default:
				return f.EntropyScore, RiskSafe, 0, "Hostname entropy is in the normal range"
			}
		},
	},
	{
		Feature:   "hasHomographChars",
		Category:  CategoryImpersonation,
		MaxWeight: 3,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasHomographChars {
				return true, RiskDanger, 3, "Hostname contains characters that visually imitate Latin letters"
			}
			return false, RiskSafe, 0, "No look-alike characters in the hostname"
		},
	},
	{
		Feature:   "brandImpersonation",
		Category:  CategoryImpersonation,
		MaxWeight: 3.5,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.BrandImpersonation != "" {
				return f.BrandImpersonation, RiskDanger, 3.5,
					fmt.Sprintf("Appears to imitate %s without being its official domain", f.BrandImpersonation)
			}
			return "none", RiskSafe, 0, "No brand imitation detected"
		},
	},
	{
		Feature:   "typosquattingScore",
		Category:  CategoryImpersonation,
		MaxWeight: 2.5,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			switch {
			case f.TyposquattingScore > 50:
				return f.TyposquattingScore, RiskDanger, 2.5, "Strong typosquatting signals (digits, look-alikes or brand imitation)"
			case f.TyposquattingScore > 20:
				return f.TyposquattingScore, RiskWarning, 1, "Some typosquatting signals present"
			default:
				return f.TyposquattingScore, RiskSafe, 0, "No meaningful typosquatting signals"
			}
		},
	},
	{
		Feature:   "suspiciousTLD",
		Category:  CategoryReputation,
		MaxWeight: 1.5,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.SuspiciousTLD {
				return true, RiskWarning, 1.5, "Top-level domain is frequently abused for phishing registrations"
			}
			return false, RiskSafe, 0, "Top-level domain is not on the low-reputation list"
		},
	},
	{
		Feature:   "punycodeDomain",
		Category:  CategoryImpersonation,
		MaxWeight: 2,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.PunycodeDomain {
				return true, RiskDanger, 2, "Punycode-encoded hostname can disguise an internationalized look-alike domain"
			}
			return false, RiskSafe, 0, "No punycode encoding in the hostname"
		},
	},
	{
		Feature:   "shortenedURL",
		Category:  CategoryStructure,
		MaxWeight: 1.5,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.ShortenedURL {
				return true, RiskWarning, 1.5, "Link shortener hides the final destination"
			}
			return false, RiskSafe, 0, "Not a known link shortener"
		},
	},
	{
		Feature:   "redirectRisk",
		Category:  CategoryStructure,
		MaxWeight: 1,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.RedirectRisk {
				return true, RiskWarning, 1, "Contains redirect parameters that can bounce visitors to another site"
			}
			return false, RiskSafe, 0, "No redirect parameters"
		},
	},
	{
		Feature:   "portAnomalies",
		Category:  CategoryStructure,
		MaxWeight: 1,
		Evaluate: func(f AdvancedFeatures) (interface{}, RiskLevel, float64, string) {
			if f.PortAnomalies {
				return true, RiskWarning, 1, "Specifies an explicit port outside the common set"
			}
			return false, RiskSafe, 0, "No unusual explicit port"
		},
	},
}

// advancedMaxWeight is derived from the table: 18.5. The original
// implementation normalized by 18, mildly over-saturating high scores;
// the derived divisor is used instead so the table stays the single
// source of truth.
var advancedMaxWeight = func() float64 {
	var sum float64
	for _, rule := range advancedRules {
		sum += rule.MaxWeight
	}
	return sum
}()

// AnalyzeAdvanced scores extracted features against the advanced rule
// table. The result always has one finding per rule, in table order.
func AnalyzeAdvanced(f AdvancedFeatures) []AdvancedFinding {
	findings := make([]AdvancedFinding, 0, len(advancedRules))
	for _, rule := range advancedRules {
		value, level, weight, description := rule.Evaluate(f)
		findings = append(findings, AdvancedFinding{
			Finding: Finding{
				Feature:     rule.Feature,
				Value:       value,
				RiskLevel:   level,
				Description: description,
				Weight:      weight,
			},
			Category: rule.Category,
		})
	}
	return findings
}

// AdvancedScore normalizes the triggered weights to an integer in [0,100].
func AdvancedScore(findings []AdvancedFinding) int {
	var total float64
	for _, f := range findings {
		total += f.Weight
	}
	return normalizeScore(total, advancedMaxWeight)
}
