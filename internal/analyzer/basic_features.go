package analyzer

import "strings"

// BasicFeatures captures the lexical and structural facts of a URL that
// the basic rule table scores.
type BasicFeatures struct {
	URLLength             int  `json:"url_length"`
	HasAtSymbol           bool `json:"has_at_symbol"`
	HasDoubleSlash        bool `json:"has_double_slash"`
	HasDash               bool `json:"has_dash"`
	HasIPAddress          bool `json:"has_ip_address"`
	IsHTTPS               bool `json:"is_https"`
	SubdomainCount        int  `json:"subdomain_count"`
	HasMultipleSubdomains bool `json:"has_multiple_subdomains"`
	HasSuspiciousKeywords bool `json:"has_suspicious_keywords"`
	DomainLength          int  `json:"domain_length"`
	PathLength            int  `json:"path_length"`
	HasEncodedChars       bool `json:"has_encoded_chars"`
	HasTooManyDots        bool `json:"has_too_many_dots"`
}

// ExtractBasic derives the lexical feature set from a raw URL string.
// It never fails: malformed input goes through the lenient parse
// fallback and still yields a complete feature set.
func ExtractBasic(rawURL string) BasicFeatures {
	p := parseLenient(rawURL)
	host := p.Hostname

	subdomains := len(hostLabels(host)) - 2
	if subdomains < 0 {
		subdomains = 0
	}

	return BasicFeatures{
		URLLength:             len(rawURL),
		HasAtSymbol:           strings.Contains(rawURL, "@"),
		HasDoubleSlash:        hasDoubleSlashAfterScheme(rawURL),
		HasDash:               strings.Contains(host, "-"),
		HasIPAddress:          isDottedIPv4(host),
		IsHTTPS:               p.Scheme == "https",
		SubdomainCount:        subdomains,
		HasMultipleSubdomains: subdomains > 2,
		HasSuspiciousKeywords: containsAnyKeyword(strings.ToLower(rawURL)),
		DomainLength:          len(host),
		PathLength:            len(p.Path),
		HasEncodedChars:       strings.Contains(rawURL, "%"),
		HasTooManyDots:        strings.Count(host, ".") > 4,
	}
}

// hasDoubleSlashAfterScheme reports whether a "//" occurs anywhere
// after the scheme separator (or anywhere at all for scheme-less input).
func hasDoubleSlashAfterScheme(rawURL string) bool {
	rest := rawURL
	if i := strings.Index(rawURL, "://"); i >= 0 {
		rest = rawURL[i+3:]
	}
	return strings.Contains(rest, "//")
}

func containsAnyKeyword(lowerURL string) bool {
	for _, keyword := range suspiciousKeywords {
		if strings.Contains(lowerURL, keyword) {
			return true
		}
	}
	return false
}
