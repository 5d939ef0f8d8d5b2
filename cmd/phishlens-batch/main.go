// phishlens-batch assesses a list of URLs and writes the CSV report.
// URLs come from -input (one per line, blank lines and # comments
// skipped) or stdin; the report goes to -output or stdout.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/olegrjumin/phishlens/internal/analyzer"
	"github.com/olegrjumin/phishlens/internal/logging"
	"github.com/olegrjumin/phishlens/internal/report"
	"github.com/olegrjumin/phishlens/internal/service"
)

func main() {
	inputPath := flag.String("input", "", "file with one URL per line (default stdin)")
	outputPath := flag.String("output", "", "CSV output path (default stdout)")
	workers := flag.Int("workers", 4, "concurrent assessments")
	logLevel := flag.String("log-level", "info", "log level (info or debug)")
	flag.Parse()

	logger := logging.New(*logLevel)

	urls, err := readURLs(*inputPath)
	if err != nil {
		logger.Error("Failed to read input", "error", err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		logger.Error("No URLs to assess")
		os.Exit(1)
	}

	svc := service.New(logger, nil, *workers)
	results := svc.AssessBatch(context.Background(), urls)

	out := io.Writer(os.Stdout)
	if *outputPath != "" {
		file, err := os.Create(*outputPath)
		if err != nil {
			logger.Error("Failed to create output file", "path", *outputPath, "error", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := report.WriteCSV(out, results); err != nil {
		logger.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	counts := map[analyzer.Classification]int{}
	for _, result := range results {
		if result != nil {
			counts[result.Classification]++
		}
	}
	logger.Info("Batch complete",
		"total", len(urls),
		"legitimate", counts[analyzer.ClassLegitimate],
		"suspicious", counts[analyzer.ClassSuspicious],
		"phishing", counts[analyzer.ClassPhishing],
	)
}

// readURLs loads URLs from a file or stdin, trimming whitespace and
// skipping blank lines and # comments.
func readURLs(path string) ([]string, error) {
	in := io.Reader(os.Stdin)
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	var urls []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
