package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contentscan/contentscan/internal/analyzer"
	"github.com/contentscan/contentscan/internal/health"
	"github.com/contentscan/contentscan/internal/model"
)

// IndexStep builds the content index: it loads every document from the
// analyzer's source, extracts keywords, and attaches the index to the
// report.
//
// Design decision: Loading and keyword extraction are one step because
// the analyzer's one-time initialization performs both; splitting them
// would expose a half-built index to the pipeline.
type IndexStep struct {
	// analyzer owns the index being built.
	analyzer *analyzer.Analyzer

	// logger for structured logging.
	logger *slog.Logger
}

// IndexStepOption configures an IndexStep.
type IndexStepOption func(*IndexStep)

// WithIndexLogger sets a custom logger for the index step.
func WithIndexLogger(logger *slog.Logger) IndexStepOption {
	return func(s *IndexStep) {
		s.logger = logger
	}
}

// NewIndexStep creates a new index-building step.
func NewIndexStep(a *analyzer.Analyzer, opts ...IndexStepOption) *IndexStep {
	s := &IndexStep{
		analyzer: a,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *IndexStep) Name() string {
	return "index"
}

// Do builds the index and stores it on the report.
func (s *IndexStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	index, err := s.analyzer.Index(ctx)
	if err != nil {
		return fmt.Errorf("building content index: %w", err)
	}

	report.SetIndex(index)
	s.logger.Debug("index built",
		"site", report.SiteRoot,
		"documents", index.Len(),
	)
	return nil
}

// RelateStep computes the related-content map for every indexed document.
// This is the artifact the site's client-side widgets consume.
type RelateStep struct {
	// analyzer answers the related-content queries.
	analyzer *analyzer.Analyzer

	// maxPerDocument caps the entries per document.
	maxPerDocument int

	// logger for structured logging.
	logger *slog.Logger
}

// RelateStepOption configures a RelateStep.
type RelateStepOption func(*RelateStep)

// WithRelateLogger sets a custom logger for the relate step.
func WithRelateLogger(logger *slog.Logger) RelateStepOption {
	return func(s *RelateStep) {
		s.logger = logger
	}
}

// NewRelateStep creates a new related-content step.
func NewRelateStep(a *analyzer.Analyzer, maxPerDocument int, opts ...RelateStepOption) *RelateStep {
	s := &RelateStep{
		analyzer:       a,
		maxPerDocument: maxPerDocument,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RelateStep) Name() string {
	return "relate"
}

// Do computes the related map and stores it on the report.
func (s *RelateStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	related, err := s.analyzer.RelatedMap(ctx, s.maxPerDocument)
	if err != nil {
		return fmt.Errorf("computing related-content map: %w", err)
	}

	report.RelatedMap = related
	s.logger.Debug("related map computed",
		"site", report.SiteRoot,
		"documents", len(related),
	)
	return nil
}

// HealthStep runs the content-health checks over the analyzed site and
// records the findings on the report. It requires the index and related
// map produced by earlier steps.
type HealthStep struct {
	// checker coordinates the individual checks.
	checker *health.Checker

	// logger for structured logging.
	logger *slog.Logger
}

// HealthStepOption configures a HealthStep.
type HealthStepOption func(*HealthStep)

// WithHealthLogger sets a custom logger for the health step.
func WithHealthLogger(logger *slog.Logger) HealthStepOption {
	return func(s *HealthStep) {
		s.logger = logger
	}
}

// NewHealthStep creates a new content-health step.
func NewHealthStep(checker *health.Checker, opts ...HealthStepOption) *HealthStep {
	s := &HealthStep{
		checker: checker,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *HealthStep) Name() string {
	return "health"
}

// Do runs the checks against the report's index and related map.
func (s *HealthStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	if report.Index == nil {
		return fmt.Errorf("health step requires a built index")
	}

	data := &health.Data{
		Index:    report.Index,
		Related:  report.RelatedMap,
		SiteRoot: report.SiteRoot,
		Report:   report,
	}
	if err := s.checker.Run(ctx, data); err != nil {
		return fmt.Errorf("running health checks: %w", err)
	}

	s.logger.Debug("health checks complete",
		"site", report.SiteRoot,
		"findings", report.TotalFindings(),
	)
	return nil
}

// Ensure all steps implement Step.
var (
	_ Step = (*IndexStep)(nil)
	_ Step = (*RelateStep)(nil)
	_ Step = (*HealthStep)(nil)
)
