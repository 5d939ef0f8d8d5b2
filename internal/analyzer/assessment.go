package analyzer

import "math"

// Assessment is the complete verdict for one URL: both layer scores,
// the combined classification, and every per-rule finding for display.
type Assessment struct {
	URL              string            `json:"url"`
	Classification   Classification    `json:"classification"`
	BasicScore       int               `json:"basic_score"`
	AdvancedScore    int               `json:"advanced_score"`
	CombinedScore    int               `json:"combined_score"`
	Findings         []Finding         `json:"findings"`
	AdvancedFindings []AdvancedFinding `json:"advanced_findings"`
}

// Analyze runs both pipelines over rawURL and combines their scores.
// It is a pure function of the input string: no network, no state.
func Analyze(rawURL string) *Assessment {
	basicFindings := AnalyzeBasic(ExtractBasic(rawURL))
	advancedFindings := AnalyzeAdvanced(ExtractAdvanced(rawURL))
	return Combine(rawURL, basicFindings, advancedFindings)
}

// Combine joins the two pipelines' findings into one Assessment. Both
// pipelines must have completed; the caller may have run them in
// parallel since they share no state.
func Combine(rawURL string, findings []Finding, advanced []AdvancedFinding) *Assessment {
	basicScore := BasicScore(findings)
	advancedScore := AdvancedScore(advanced)
	combined := CombineScores(basicScore, advancedScore)
	return &Assessment{
		URL:              rawURL,
		Classification:   Classify(combined),
		BasicScore:       basicScore,
		AdvancedScore:    advancedScore,
		CombinedScore:    combined,
		Findings:         findings,
		AdvancedFindings: advanced,
	}
}

// CombineScores weighs the advanced layer slightly above the basic one.
func CombineScores(basicScore, advancedScore int) int {
	combined := math.Round(float64(basicScore)*0.4 + float64(advancedScore)*0.6)
	return clampScore(int(combined))
}

// Classify maps any 0-100 score onto the three-way verdict. It applies
// to the combined score and equally to either layer's score when shown
// alone.
func Classify(score int) Classification {
	switch {
	case score < 25:
		return ClassLegitimate
	case score < 50:
		return ClassSuspicious
	default:
		return ClassPhishing
	}
}

// normalizeScore maps a weight sum onto [0,100] against the table's
// maximum achievable weight.
func normalizeScore(total, maxWeight float64) int {
	if maxWeight <= 0 {
		return 0
	}
	score := math.Round(math.Min(100, total/maxWeight*100))
	return clampScore(int(score))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
