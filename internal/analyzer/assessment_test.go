package analyzer

import (
	"strings"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	testCases := []struct {
		score    int
		expected Classification
	}{
		{score: 0, expected: ClassLegitimate},
		{score: 24, expected: ClassLegitimate},
		{score: 25, expected: ClassSuspicious},
		{score: 49, expected: ClassSuspicious},
		{score: 50, expected: ClassPhishing},
		{score: 100, expected: ClassPhishing},
	}

	for _, tc := range testCases {
		if got := Classify(tc.score); got != tc.expected {
			t.Errorf("Classify(%d) = %q, want %q", tc.score, got, tc.expected)
		}
	}
}

func TestCombineScores(t *testing.T) {
	testCases := []struct {
		basic, advanced, expected int
	}{
		{basic: 0, advanced: 0, expected: 0},
		{basic: 100, advanced: 100, expected: 100},
		{basic: 50, advanced: 50, expected: 50},
		{basic: 41, advanced: 22, expected: 30}, // 16.4 + 13.2 rounds up
		{basic: 100, advanced: 0, expected: 40},
		{basic: 0, advanced: 100, expected: 60},
	}

	for _, tc := range testCases {
		if got := CombineScores(tc.basic, tc.advanced); got != tc.expected {
			t.Errorf("CombineScores(%d, %d) = %d, want %d", tc.basic, tc.advanced, got, tc.expected)
		}
	}
}

func TestAnalyzeGoogleIsLegitimate(t *testing.T) {
	result := Analyze("https://www.google.com")

	if result.Classification != ClassLegitimate {
		t.Errorf("classification = %q, want %q", result.Classification, ClassLegitimate)
	}
	if result.BasicScore != 9 { // only the keyword rule fires: 1.5/17
		t.Errorf("basic score = %d, want 9", result.BasicScore)
	}
	if result.AdvancedScore != 0 {
		t.Errorf("advanced score = %d, want 0", result.AdvancedScore)
	}
}

func TestAnalyzeRawIPLogin(t *testing.T) {
	result := Analyze("http://192.168.1.1/login/verify-account")

	// IP address (3) + plain http (1.5) + two subdomain-equivalent
	// labels (1) + keywords (1.5) = 7/17.
	if result.BasicScore != 41 {
		t.Errorf("basic score = %d, want 41", result.BasicScore)
	}
	// Digit look-alikes flag homograph (3) and lift typosquatting to a
	// warning (1) = 4/18.5.
	if result.AdvancedScore != 22 {
		t.Errorf("advanced score = %d, want 22", result.AdvancedScore)
	}
	if result.CombinedScore != 30 {
		t.Errorf("combined score = %d, want 30", result.CombinedScore)
	}
	if result.Classification != ClassSuspicious {
		t.Errorf("classification = %q, want %q", result.Classification, ClassSuspicious)
	}

	ip := findByFeature(t, result.Findings, "hasIPAddress")
	if ip.RiskLevel != RiskDanger {
		t.Errorf("hasIPAddress level = %q, want danger", ip.RiskLevel)
	}
	https := findByFeature(t, result.Findings, "isHTTPS")
	if https.RiskLevel != RiskWarning {
		t.Errorf("isHTTPS level = %q, want warning", https.RiskLevel)
	}
}

func TestAnalyzePayPalImpersonation(t *testing.T) {
	result := Analyze("https://secure-login-paypal.suspicious-domain.com/account")

	brand := findAdvancedByFeature(t, result.AdvancedFindings, "brandImpersonation")
	if brand.Value != "PayPal" {
		t.Errorf("brand value = %v, want PayPal", brand.Value)
	}
	if brand.RiskLevel != RiskDanger {
		t.Errorf("brand level = %q, want danger", brand.RiskLevel)
	}

	// Length (1) + dash (1) + keywords (1.5) = 3.5/17.
	if result.BasicScore != 21 {
		t.Errorf("basic score = %d, want 21", result.BasicScore)
	}
	// Entropy warning (1) + brand (3.5) + typosquatting warning (1) = 5.5/18.5.
	if result.AdvancedScore != 30 {
		t.Errorf("advanced score = %d, want 30", result.AdvancedScore)
	}
	if result.CombinedScore != 26 {
		t.Errorf("combined score = %d, want 26", result.CombinedScore)
	}
	if result.Classification != ClassSuspicious {
		t.Errorf("classification = %q, want %q", result.Classification, ClassSuspicious)
	}
}

func TestAnalyzeShortener(t *testing.T) {
	result := Analyze("https://bit.ly/3xYz")

	shortened := findAdvancedByFeature(t, result.AdvancedFindings, "shortenedURL")
	if shortened.RiskLevel != RiskWarning {
		t.Errorf("shortenedURL level = %q, want warning", shortened.RiskLevel)
	}
	redirect := findAdvancedByFeature(t, result.AdvancedFindings, "redirectRisk")
	if redirect.RiskLevel != RiskSafe {
		t.Errorf("redirectRisk level = %q, want safe", redirect.RiskLevel)
	}
	if result.BasicScore != 0 {
		t.Errorf("basic score = %d, want 0", result.BasicScore)
	}
	if result.AdvancedScore != 8 {
		t.Errorf("advanced score = %d, want 8", result.AdvancedScore)
	}
}

func TestAnalyzeAlwaysCompleteAndClamped(t *testing.T) {
	inputs := []string{
		"https://www.google.com",
		"not a url at all",
		"://///",
		"ftp://weird.example/??",
		strings.Repeat("a", 500),
		"https://ex ample.com/%%%",
		"xn--pple-43d.com@127.0.0.1:99999//login%00",
		"пример.рф",
	}

	for _, input := range inputs {
		result := Analyze(input)
		if result == nil {
			t.Fatalf("Analyze(%q) returned nil", input)
		}
		if len(result.Findings) != 9 {
			t.Errorf("Analyze(%q): %d findings, want 9", input, len(result.Findings))
		}
		if len(result.AdvancedFindings) != 9 {
			t.Errorf("Analyze(%q): %d advanced findings, want 9", input, len(result.AdvancedFindings))
		}
		for _, score := range []int{result.BasicScore, result.AdvancedScore, result.CombinedScore} {
			if score < 0 || score > 100 {
				t.Errorf("Analyze(%q): score %d outside [0,100]", input, score)
			}
		}
		if result.Classification != ClassLegitimate &&
			result.Classification != ClassSuspicious &&
			result.Classification != ClassPhishing {
			t.Errorf("Analyze(%q): unexpected classification %q", input, result.Classification)
		}
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	url := "http://paypa1.com:9999/login?redirect=http://evil.tk/x"
	first := Analyze(url)
	for i := 0; i < 5; i++ {
		again := Analyze(url)
		if again.CombinedScore != first.CombinedScore || again.Classification != first.Classification {
			t.Fatalf("run %d differed: %d/%q vs %d/%q", i,
				again.CombinedScore, again.Classification,
				first.CombinedScore, first.Classification)
		}
	}
}
