package analyzer

// RiskLevel grades a single finding.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskWarning RiskLevel = "warning"
	RiskDanger  RiskLevel = "danger"
)

// Category groups advanced findings for display.
type Category string

const (
	CategoryEntropy       Category = "entropy"
	CategoryImpersonation Category = "impersonation"
	CategoryStructure     Category = "structure"
	CategoryReputation    Category = "reputation"
)

// Classification is the final three-way verdict for a URL.
type Classification string

const (
	ClassLegitimate Classification = "legitimate"
	ClassSuspicious Classification = "suspicious"
	ClassPhishing   Classification = "phishing"
)

// Finding is the outcome of one scoring rule: what was observed, how
// risky it is, and the weight it contributed to the score.
type Finding struct {
	Feature     string      `json:"feature"`
	Value       interface{} `json:"value"`
	RiskLevel   RiskLevel   `json:"risk_level"`
	Description string      `json:"description"`
	Weight      float64     `json:"weight"`
}

// AdvancedFinding is a Finding tagged with its analysis category.
type AdvancedFinding struct {
	Finding
	Category Category `json:"category"`
}
