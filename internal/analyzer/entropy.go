package analyzer

import "math"

// Entropy returns the Shannon entropy of s in bits per character,
// rounded to two decimals. An empty string has zero entropy.
func Entropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	// Count character frequencies
	freq := make(map[rune]int)
	total := 0
	for _, r := range s {
		freq[r]++
		total++
	}

	// -Σ p(c)·log2(p(c)) over each distinct character
	n := float64(total)
	var entropy float64
	for _, count := range freq {
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}

	return round2(entropy)
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
