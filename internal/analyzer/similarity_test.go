package analyzer

import "testing"

func TestEditDistance(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "classic kitten sitting", a: "kitten", b: "sitting", expected: 3},
		{name: "identical strings", a: "paypal", b: "paypal", expected: 0},
		{name: "empty to word", a: "", b: "abc", expected: 3},
		{name: "word to empty", a: "abc", b: "", expected: 3},
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "single substitution", a: "paypal", b: "paypa1", expected: 1},
		{name: "single insertion", a: "paypal", b: "paypall", expected: 1},
		{name: "unicode runes count as single edits", a: "pаypal", b: "paypal", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EditDistance(tc.a, tc.b); got != tc.expected {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestEditDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"google", "g00gle"},
		{"", "anything"},
		{"amazon", "amaz0n"},
	}
	for _, pair := range pairs {
		ab := EditDistance(pair[0], pair[1])
		ba := EditDistance(pair[1], pair[0])
		if ab != ba {
			t.Errorf("EditDistance(%q, %q) = %d but reversed = %d", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSimilarity(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "identical", a: "paypal", b: "paypal", expected: 1},
		{name: "completely different length three", a: "abc", b: "", expected: 0},
		{name: "one edit over seven characters", a: "paypall", b: "paypal", expected: 1 - 1.0/7},
		{name: "both empty", a: "", b: "", expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.a, tc.b)
			if got != tc.expected {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"a", "zzzzzzzzzz"},
		{"secure-login", "paypal"},
	}
	for _, pair := range pairs {
		got := Similarity(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, want within [0,1]", pair[0], pair[1], got)
		}
	}
}
