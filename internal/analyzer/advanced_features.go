package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// DomainAge is the registration-age bucket for a domain. Without WHOIS
// or registry lookups it is always DomainAgeUnknown.
type DomainAge string

const (
	DomainAgeNew         DomainAge = "new"
	DomainAgeEstablished DomainAge = "established"
	DomainAgeUnknown     DomainAge = "unknown"
)

// AdvancedFeatures captures the similarity and reputation facts of a
// URL that the advanced rule table scores.
type AdvancedFeatures struct {
	EntropyScore       float64   `json:"entropy_score"`
	HasHomographChars  bool      `json:"has_homograph_chars"`
	TyposquattingScore int       `json:"typosquatting_score"`
	SuspiciousTLD      bool      `json:"suspicious_tld"`
	DomainAge          DomainAge `json:"domain_age"`
	RedirectRisk       bool      `json:"redirect_risk"`
	PortAnomalies      bool      `json:"port_anomalies"`
	PunycodeDomain     bool      `json:"punycode_domain"`
	BrandImpersonation string    `json:"brand_impersonation,omitempty"`
	ShortenedURL       bool      `json:"shortened_url"`
}

// redirectPatterns match query parameters that bounce visitors to
// another site.
var redirectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)redirect[=/]`),
	regexp.MustCompile(`(?i)redir[=/]`),
	regexp.MustCompile(`(?i)url[=/]http`),
	regexp.MustCompile(`(?i)goto[=/]`),
	regexp.MustCompile(`(?i)return[=/]http`),
	regexp.MustCompile(`(?i)next[=/]http`),
	regexp.MustCompile(`(?i)continue[=/]http`),
}

// ExtractAdvanced derives the similarity and reputation feature set
// from a raw URL string, with the same lenient hostname fallback as
// ExtractBasic. It never fails.
func ExtractAdvanced(rawURL string) AdvancedFeatures {
	p := parseLenient(rawURL)
	host := p.Hostname
	lowerURL := strings.ToLower(rawURL)

	homograph := hasHomographChars(host)
	brand := detectBrandImpersonation(lowerURL, host)

	return AdvancedFeatures{
		EntropyScore:       Entropy(host),
		HasHomographChars:  homograph,
		TyposquattingScore: typosquattingScore(lowerURL, host, brand, homograph),
		SuspiciousTLD:      hasSuspiciousTLD(lowerURL),
		DomainAge:          DomainAgeUnknown, // no WHOIS or registry lookups
		RedirectRisk:       hasRedirectPattern(lowerURL),
		PortAnomalies:      standardPortMissing(p.Port),
		PunycodeDomain:     strings.Contains(lowerURL, "xn--"),
		BrandImpersonation: brand,
		ShortenedURL:       isShortenedURL(lowerURL),
	}
}

// hasHomographChars scans the hostname for confusable characters. For
// punycode hosts the IDNA-decoded form is scanned too, so confusables
// masked behind xn-- encoding are still caught.
func hasHomographChars(host string) bool {
	if containsHomographRune(host) {
		return true
	}
	if strings.Contains(host, "xn--") {
		if decoded, err := idna.ToUnicode(host); err == nil && decoded != host {
			return containsHomographRune(decoded)
		}
	}
	return false
}

func containsHomographRune(s string) bool {
	for _, r := range s {
		if _, ok := homographRunes[r]; ok {
			return true
		}
	}
	return false
}

// detectBrandImpersonation returns the name of the first brand the URL
// appears to imitate, or "" when none matches. A brand matches when the
// URL contains one of its patterns without the official domain, or when
// the registrable domain label is close to (but not exactly) the
// brand's canonical name.
func detectBrandImpersonation(lowerURL, host string) string {
	label := firstDomainLabel(host)
	for _, brand := range brandPatterns {
		if !strings.Contains(lowerURL, brand.OfficialDomain) {
			for _, pattern := range brand.Patterns {
				if strings.Contains(lowerURL, pattern) {
					return brand.Name
				}
			}
		}
		if label != "" {
			// Open interval: exactly 1 is the official domain itself.
			if sim := Similarity(label, brand.Patterns[0]); sim > 0.7 && sim < 1 {
				return brand.Name
			}
		}
	}
	return ""
}

// firstDomainLabel returns the label immediately left of the public
// suffix, e.g. "paypa1" for "login.paypa1.co.uk". When no registrable
// domain can be derived, it falls back to the first hostname label.
func firstDomainLabel(host string) string {
	if host == "" {
		return ""
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		if i := strings.Index(etld1, "."); i > 0 {
			return etld1[:i]
		}
		return etld1
	}
	return hostLabels(host)[0]
}

// typosquattingScore accumulates typosquatting signals into 0-100.
func typosquattingScore(lowerURL, host, brand string, homograph bool) int {
	score := 0
	if strings.ContainsAny(host, "0123456789") {
		score += 20
	}
	if brand != "" {
		score += 40
	}
	if homograph {
		score += 30
	}
	if hasRepeatedRun(lowerURL) {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// hasRepeatedRun reports whether s contains the same character three or
// more times in a row.
func hasRepeatedRun(s string) bool {
	run := 0
	var prev rune
	for _, r := range s {
		if run > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

func hasSuspiciousTLD(lowerURL string) bool {
	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(lowerURL, tld) || strings.Contains(lowerURL, tld+"/") {
			return true
		}
	}
	return false
}

func isShortenedURL(lowerURL string) bool {
	for _, domain := range shortenerDomains {
		if strings.Contains(lowerURL, domain) {
			return true
		}
	}
	return false
}

func hasRedirectPattern(lowerURL string) bool {
	for _, pattern := range redirectPatterns {
		if pattern.MatchString(lowerURL) {
			return true
		}
	}
	return false
}

// standardPortMissing reports whether an explicit port outside the
// common set (80, 443, 8080, 8443) was specified.
func standardPortMissing(port string) bool {
	return port != "" && !standardPorts[port]
}
