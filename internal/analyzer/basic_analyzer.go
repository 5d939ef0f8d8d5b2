package analyzer

// basicRule evaluates one BasicFeatures field into a Finding. MaxWeight
// is the largest weight the rule can contribute; the score normalizer
// is derived from these so the table can change without silent drift.
type basicRule struct {
	Feature   string
	MaxWeight float64
	Evaluate  func(f BasicFeatures) (value interface{}, level RiskLevel, weight float64, description string)
}

// basicRules is evaluated in order on every call; the findings list
// always has one entry per rule so output is stable across calls.
var basicRules = []basicRule{
	{
		Feature:   "urlLength",
		MaxWeight: 2,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			switch {
			case f.URLLength > 75:
				return f.URLLength, RiskDanger, 2, "URL is unusually long; very long URLs often hide the real destination"
			case f.URLLength > 54:
				return f.URLLength, RiskWarning, 1, "URL is longer than most legitimate addresses"
			default:
				return f.URLLength, RiskSafe, 0, "URL length is within the normal range"
			}
		},
	},
	{
		Feature:   "hasAtSymbol",
		MaxWeight: 3,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasAtSymbol {
				return true, RiskDanger, 3, "Contains an @ symbol; browsers ignore everything before it when resolving the host"
			}
			return false, RiskSafe, 0, "No @ symbol in the URL"
		},
	},
	{
		Feature:   "hasDoubleSlash",
		MaxWeight: 1.5,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasDoubleSlash {
				return true, RiskWarning, 1.5, "Contains a double slash after the scheme, a common redirect trick"
			}
			return false, RiskSafe, 0, "No stray double slashes"
		},
	},
	{
		Feature:   "hasDash",
		MaxWeight: 1,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasDash {
				return true, RiskWarning, 1, "Hostname contains a dash, common in look-alike domains"
			}
			return false, RiskSafe, 0, "No dashes in the hostname"
		},
	},
	{
		Feature:   "hasIPAddress",
		MaxWeight: 3,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasIPAddress {
				return true, RiskDanger, 3, "Uses a raw IP address instead of a domain name"
			}
			return false, RiskSafe, 0, "Uses a domain name, not a raw IP address"
		},
	},
	{
		Feature:   "isHTTPS",
		MaxWeight: 1.5,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if !f.IsHTTPS {
				return false, RiskWarning, 1.5, "Connection is not HTTPS; traffic can be read or altered in transit"
			}
			return true, RiskSafe, 0, "Uses an encrypted HTTPS connection"
		},
	},
	{
		Feature:   "subdomainCount",
		MaxWeight: 2.5,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			switch {
			case f.SubdomainCount > 2:
				return f.SubdomainCount, RiskDanger, 2.5, "Deeply nested subdomains often imitate a legitimate domain"
			case f.SubdomainCount == 2:
				return f.SubdomainCount, RiskWarning, 1, "More subdomains than typical legitimate sites use"
			default:
				return f.SubdomainCount, RiskSafe, 0, "Normal subdomain depth"
			}
		},
	},
	{
		Feature:   "hasSuspiciousKeywords",
		MaxWeight: 1.5,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasSuspiciousKeywords {
				return true, RiskWarning, 1.5, "Contains wording frequently seen in credential-phishing links"
			}
			return false, RiskSafe, 0, "No suspicious keywords found"
		},
	},
	{
		Feature:   "hasEncodedChars",
		MaxWeight: 1,
		Evaluate: func(f BasicFeatures) (interface{}, RiskLevel, float64, string) {
			if f.HasEncodedChars {
				return true, RiskWarning, 1, "Contains percent-encoded characters that may obscure the real destination"
			}
			return false, RiskSafe, 0, "No percent-encoded characters"
		},
	},
}

// basicMaxWeight is the normalization divisor for the basic score,
// derived from the rule table rather than hardcoded.
var basicMaxWeight = func() float64 {
	var sum float64
	for _, rule := range basicRules {
		sum += rule.MaxWeight
	}
	return sum
}()

// AnalyzeBasic scores extracted features against the basic rule table.
// The result always has one Finding per rule, in table order.
func AnalyzeBasic(f BasicFeatures) []Finding {
	findings := make([]Finding, 0, len(basicRules))
	for _, rule := range basicRules {
		value, level, weight, description := rule.Evaluate(f)
		findings = append(findings, Finding{
			Feature:     rule.Feature,
			Value:       value,
			RiskLevel:   level,
			Description: description,
			Weight:      weight,
		})
	}
	return findings
}

// BasicScore normalizes the triggered weights to an integer in [0,100].
func BasicScore(findings []Finding) int {
	var total float64
	for _, f := range findings {
		total += f.Weight
	}
	return normalizeScore(total, basicMaxWeight)
}
