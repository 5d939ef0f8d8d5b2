package analyzer

// Static rule data: keyword, TLD, shortener, homograph and brand tables.
// These are configuration, not behavior; the extractors read them but
// never modify them.

// suspiciousKeywords are words that frequently appear in
// credential-phishing links. Matched case-insensitively against the
// whole URL.
var suspiciousKeywords = []string{
	"login", "signin", "verify", "account", "update", "secure",
	"banking", "paypal", "ebay", "amazon", "apple", "microsoft",
	"google", "facebook", "instagram", "netflix", "password",
	"confirm", "suspend", "wallet", "credit", "debit",
}

// suspiciousTLDs are low-reputation top-level domains with a high share
// of abusive registrations (cheap or free to register).
var suspiciousTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".club",
	".work", ".date", ".loan", ".online", ".site", ".website",
	".space", ".win", ".bid", ".stream", ".racing", ".download",
}

// shortenerDomains are known URL shortening services. A shortened link
// hides its final destination from the reader.
var shortenerDomains = []string{
	"bit.ly", "tinyurl.com", "t.co", "goo.gl", "ow.ly", "is.gd",
	"buff.ly", "j.mp", "short.link", "rb.gy", "cutt.ly", "shorturl.at",
}

// standardPorts are explicit ports that do not count as anomalous.
var standardPorts = map[string]bool{
	"80":   true,
	"443":  true,
	"8080": true,
	"8443": true,
}

// homographRunes maps confusable characters (Cyrillic and digit
// look-alikes) to the Latin letter they imitate.
var homographRunes = map[rune]rune{
	'а': 'a', // Cyrillic a
	'е': 'e', // Cyrillic e
	'о': 'o', // Cyrillic o
	'р': 'p', // Cyrillic er
	'с': 'c', // Cyrillic es
	'у': 'y', // Cyrillic u
	'х': 'x', // Cyrillic ha
	'і': 'i', // Cyrillic dotted i
	'ј': 'j', // Cyrillic je
	'ѕ': 's', // Cyrillic dze
	'ԁ': 'd', // Cyrillic komi de
	'ԛ': 'q', // Cyrillic qa
	'ɡ': 'g', // Latin script g
	'ν': 'v', // Greek nu
	'0': 'o',
	'1': 'l',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'8': 'b',
}

// brandPattern describes one protected brand: its official domain and
// the patterns (canonical name first, then known homoglyph variants)
// that signal imitation when the official domain is absent.
type brandPattern struct {
	Name           string
	OfficialDomain string
	Patterns       []string
}

// brandPatterns is checked in order; the first matching brand wins.
var brandPatterns = []brandPattern{
	{Name: "PayPal", OfficialDomain: "paypal.com", Patterns: []string{"paypal", "paypa1", "pаypal"}},
	{Name: "Amazon", OfficialDomain: "amazon.com", Patterns: []string{"amazon", "amaz0n"}},
	{Name: "Apple", OfficialDomain: "apple.com", Patterns: []string{"apple", "app1e"}},
	{Name: "Microsoft", OfficialDomain: "microsoft.com", Patterns: []string{"microsoft", "micr0soft"}},
	{Name: "Google", OfficialDomain: "google.com", Patterns: []string{"google", "g00gle"}},
	{Name: "Netflix", OfficialDomain: "netflix.com", Patterns: []string{"netflix", "netf1ix"}},
	{Name: "Facebook", OfficialDomain: "facebook.com", Patterns: []string{"facebook", "faceb00k"}},
	{Name: "Instagram", OfficialDomain: "instagram.com", Patterns: []string{"instagram", "1nstagram"}},
	{Name: "Twitter", OfficialDomain: "twitter.com", Patterns: []string{"twitter", "tw1tter"}},
	{Name: "LinkedIn", OfficialDomain: "linkedin.com", Patterns: []string{"linkedin", "l1nkedin"}},
	{Name: "Chase", OfficialDomain: "chase.com", Patterns: []string{"chase", "chas3"}},
	{Name: "Bank of America", OfficialDomain: "bankofamerica.com", Patterns: []string{"bankofamerica"}},
	{Name: "Wells Fargo", OfficialDomain: "wellsfargo.com", Patterns: []string{"wellsfargo"}},
}
