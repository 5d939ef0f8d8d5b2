package report

import (
	"strings"
	"testing"

	"github.com/olegrjumin/phishlens/internal/analyzer"
)

func TestWriteCSV(t *testing.T) {
	results := []*analyzer.Assessment{
		{URL: "https://www.google.com", Classification: analyzer.ClassLegitimate, BasicScore: 9, AdvancedScore: 0, CombinedScore: 4},
		{URL: "http://paypa1.com/login,signin", Classification: analyzer.ClassPhishing, BasicScore: 60, AdvancedScore: 75, CombinedScore: 69},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "URL,Classification,Basic Score,Advanced Score,Combined Score" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"https://www.google.com",LEGITIMATE,9,0,4` {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `"http://paypa1.com/login,signin",PHISHING,60,75,69` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVEscapesQuotes(t *testing.T) {
	results := []*analyzer.Assessment{
		{URL: `https://example.org/?q="x"`, Classification: analyzer.ClassSuspicious, BasicScore: 30, AdvancedScore: 30, CombinedScore: 30},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(sb.String(), `"https://example.org/?q=""x""",SUSPICIOUS`) {
		t.Errorf("embedded quotes not doubled: %q", sb.String())
	}
}

func TestWriteCSVSkipsNilResults(t *testing.T) {
	results := []*analyzer.Assessment{
		nil,
		{URL: "https://example.org", Classification: analyzer.ClassLegitimate},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("got %d lines, want header plus one row", len(lines))
	}
}
