package analyzer

import (
	"net/url"
	"strconv"
	"strings"
)

// parsedURL holds the pieces both extractors work from. A scheme is
// prepended when missing so bare hostnames parse like full URLs.
type parsedURL struct {
	Raw      string
	Scheme   string
	Hostname string // lower-cased, without port
	Port     string // empty when no explicit port
	Path     string
	Fallback bool // true when net/url could not parse the input
}

// parseLenient never fails: when structured parsing rejects the input,
// the raw string is carved into a pseudo-hostname and path by substring
// operations. A malformed URL is evidence, not an extraction error.
func parseLenient(rawURL string) parsedURL {
	p := parsedURL{Raw: rawURL}

	withScheme := rawURL
	if !strings.Contains(rawURL, "://") {
		withScheme = "https://" + rawURL
	}

	if u, err := url.Parse(withScheme); err == nil && u.Hostname() != "" {
		p.Scheme = strings.ToLower(u.Scheme)
		p.Hostname = strings.ToLower(u.Hostname())
		p.Port = u.Port()
		p.Path = u.EscapedPath()
		return p
	}

	// Fallback: scheme is whatever precedes "://", hostname is the rest
	// up to the first path/query/fragment delimiter.
	p.Fallback = true
	sep := strings.Index(withScheme, "://")
	p.Scheme = strings.ToLower(withScheme[:sep])
	rest := withScheme[sep+3:]

	host := rest
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
		if rest[i] == '/' {
			path := rest[i:]
			if j := strings.IndexAny(path, "?#"); j >= 0 {
				path = path[:j]
			}
			p.Path = path
		}
	}

	// Strip userinfo and an explicit numeric port.
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.LastIndex(host, ":"); i >= 0 && isDigits(host[i+1:]) {
		p.Port = host[i+1:]
		host = host[:i]
	}
	p.Hostname = strings.ToLower(host)
	return p
}

// hostLabels splits a hostname into its dot-separated labels.
func hostLabels(hostname string) []string {
	if hostname == "" {
		return nil
	}
	return strings.Split(hostname, ".")
}

// isDottedIPv4 reports whether hostname is a strict dotted-decimal IPv4
// address: four octets, digits only, each in 0-255.
func isDottedIPv4(hostname string) bool {
	parts := strings.Split(hostname, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 3 || !isDigits(part) {
			return false
		}
		octet, err := strconv.Atoi(part)
		if err != nil || octet > 255 {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
