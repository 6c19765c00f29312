package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/contentscan/contentscan/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent analysis of multiple site roots.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-site execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline for each site root.
	// Analyzer state is per-site, so pipelines cannot be shared.
	pipelineFactory func(siteRoot string) *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports. Access is synchronized via mutex.
	results []*model.AnalysisReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each site root to create a
// fresh pipeline instance, so state never leaks between analyses.
func NewBatchProcessor(pipelineFactory func(siteRoot string) *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
		results:         make([]*model.AnalysisReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes multiple site roots concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
//
// Returns all reports in input order, even for sites whose analysis
// failed; failures are recorded on their report. The error return
// indicates cancellation of the whole batch.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, siteRoots []string) ([]*model.AnalysisReport, error) {
	bp.logger.Debug("starting batch analysis",
		"total_sites", len(siteRoots),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order.
	bp.results = make([]*model.AnalysisReport, len(siteRoots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, siteRoot := range siteRoots {
		i, siteRoot := i, siteRoot
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("analyzing site",
				"site", siteRoot,
				"index", i+1,
				"total", len(siteRoots),
			)

			report := model.NewAnalysisReport(siteRoot)
			p := bp.pipelineFactory(siteRoot)
			err := p.Execute(ctx, report)

			// Store result regardless of error; the report carries the
			// failure information.
			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("site analysis failed",
					"site", siteRoot,
					"error", err,
				)
				// Other sites should still be analyzed.
				return nil
			}

			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch analysis complete",
		"total_sites", len(siteRoots),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

// ProcessBatchWithCallback analyzes multiple site roots and calls a
// callback for each completed analysis. This is useful for streaming
// reports as they finish.
//
// The callback is called from the goroutine that completed the analysis,
// so it must be safe for concurrent use if it touches shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	siteRoots []string,
	callback func(report *model.AnalysisReport, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, siteRoot := range siteRoots {
		i, siteRoot := i, siteRoot
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewAnalysisReport(siteRoot)
			p := bp.pipelineFactory(siteRoot)
			_ = p.Execute(ctx, report) //nolint:errcheck // Error is stored in report

			callback(report, i)
			return nil
		})
	}

	return g.Wait()
}
