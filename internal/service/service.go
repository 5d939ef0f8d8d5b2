// Package service provides the business logic layer between the HTTP
// transport and the scoring engine.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/olegrjumin/phishlens/internal/analyzer"
	"github.com/olegrjumin/phishlens/internal/history"
	"github.com/olegrjumin/phishlens/internal/logging"
)

// Service orchestrates URL assessments: it runs both analysis
// pipelines, records results in the scan history, and fans batches out
// over a bounded worker pool.
type Service struct {
	logger  *logging.Logger
	history history.Repository // nil disables history recording
	workers int
}

// New creates a Service. workers bounds batch concurrency; values
// below 1 mean sequential processing.
func New(logger *logging.Logger, repo history.Repository, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		logger:  logger,
		history: repo,
		workers: workers,
	}
}

// Assess analyzes one URL. The basic and advanced pipelines share no
// state, so they run in parallel and join before combining.
func (s *Service) Assess(ctx context.Context, rawURL string) *analyzer.Assessment {
	start := time.Now()

	var (
		wg               sync.WaitGroup
		basicFindings    []analyzer.Finding
		advancedFindings []analyzer.AdvancedFinding
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		basicFindings = analyzer.AnalyzeBasic(analyzer.ExtractBasic(rawURL))
	}()
	go func() {
		defer wg.Done()
		advancedFindings = analyzer.AnalyzeAdvanced(analyzer.ExtractAdvanced(rawURL))
	}()
	wg.Wait()

	result := analyzer.Combine(rawURL, basicFindings, advancedFindings)

	s.logger.Info("Assessment completed",
		"url", rawURL,
		"classification", result.Classification,
		"basic_score", result.BasicScore,
		"advanced_score", result.AdvancedScore,
		"combined_score", result.CombinedScore,
		"total_ms", time.Since(start).Milliseconds(),
	)

	s.record(ctx, result)
	return result
}

// record appends the assessment to the scan history. History failures
// are logged, never surfaced: the assessment itself already succeeded.
func (s *Service) record(ctx context.Context, result *analyzer.Assessment) {
	if s.history == nil {
		return
	}
	_, err := s.history.Append(ctx, history.Entry{
		URL:            result.URL,
		Classification: string(result.Classification),
		RiskScore:      result.CombinedScore,
		Timestamp:      time.Now(),
	})
	if err != nil {
		s.logger.Error("Failed to record scan history", "url", result.URL, "error", err)
	}
}

// AssessBatch analyzes every URL with a bounded worker pool. Results
// come back in input order and each is identical to what Assess would
// return for that URL alone. Cancelling ctx stops scheduling remaining
// URLs (their slots stay nil); in-flight work always completes.
func (s *Service) AssessBatch(ctx context.Context, urls []string) []*analyzer.Assessment {
	results := make([]*analyzer.Assessment, len(urls))
	if len(urls) == 0 {
		return results
	}

	workers := s.workers
	if workers > len(urls) {
		workers = len(urls)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.Assess(ctx, urls[i])
			}
		}()
	}

dispatch:
	for i := range urls {
		// Checked before the send: a select alone could still pick the
		// send case when both are ready.
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
