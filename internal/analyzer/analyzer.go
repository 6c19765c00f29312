package analyzer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/contentscan/contentscan/internal/model"
)

// Source supplies the documents the analyzer indexes.
// Implementations load from the site source tree, the configuration
// content table, or test fixtures.
type Source interface {
	// Load returns all documents in a stable order.
	// Partial results with a nil error are acceptable: a malformed
	// document must not prevent the others from being indexed.
	Load(ctx context.Context) ([]model.Document, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]model.Document, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) ([]model.Document, error) {
	return f(ctx)
}

// Analyzer is the content relationship service. It owns an immutable
// content index built once by Initialize and answers related-content and
// suggestion queries against it.
//
// Design decision: The analyzer is an explicitly constructed instance
// passed by dependency injection, not a package-level singleton. The index
// is never written after initialization, so queries need no locking; the
// only synchronization is the one-time build guarded by sync.Once.
type Analyzer struct {
	// source supplies the documents at initialization time.
	source Source

	// opts holds the scoring parameters.
	opts Options

	// logger for structured diagnostics.
	logger *slog.Logger

	// once guards the one-time index build.
	once sync.Once

	// index is the immutable content index; nil until Initialize succeeds.
	index *model.ContentIndex

	// initErr records the initialization outcome for repeat callers.
	initErr error
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithOptions sets the scoring parameters.
func WithOptions(opts Options) AnalyzerOption {
	return func(a *Analyzer) {
		a.opts = opts
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer reading documents from the given source.
func New(source Source, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		source: source,
		opts:   DefaultOptions(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Initialize builds the content index. It is idempotent and safe to call
// from multiple goroutines: the first call performs the build, later calls
// are no-ops returning the recorded outcome. Queries call Initialize
// implicitly, so explicit calls are only needed to front-load the work.
func (a *Analyzer) Initialize(ctx context.Context) error {
	a.once.Do(func() {
		a.initErr = a.buildIndex(ctx)
	})
	return a.initErr
}

// buildIndex loads all documents and registers them with their extracted
// keywords. A document that fails registration is logged and skipped; one
// bad entry never aborts the whole build.
func (a *Analyzer) buildIndex(ctx context.Context) error {
	docs, err := a.source.Load(ctx)
	if err != nil {
		return err
	}

	index := model.NewContentIndex()
	for _, doc := range docs {
		keywords := ExtractKeywords(doc.CombinedText())
		if err := index.Add(doc, keywords); err != nil {
			a.logger.Warn("skipping unindexable document",
				"id", doc.ID,
				"source", doc.SourcePath,
				"error", err,
			)
			continue
		}
	}

	a.logger.Debug("content index built", "documents", index.Len())
	a.index = index
	return nil
}

// Index returns the built content index, initializing it first if needed.
func (a *Analyzer) Index(ctx context.Context) (*model.ContentIndex, error) {
	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}
	return a.index, nil
}

// RelatedContent returns up to max documents related to the source
// document, ranked by descending similarity. An unknown source ID is
// non-fatal: it logs a diagnostic and returns an empty result.
func (a *Analyzer) RelatedContent(ctx context.Context, sourceID string, max int) ([]model.ScoredDocument, error) {
	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}

	if !a.index.Has(sourceID) {
		a.logger.Warn("related-content query for unknown document", "id", sourceID)
		return []model.ScoredDocument{}, nil
	}
	return RelatedTo(a.index, sourceID, max, a.opts), nil
}

// Suggestions returns up to max documents matching the query keywords,
// excluding excludeID, ranked by the additive suggestion score.
func (a *Analyzer) Suggestions(ctx context.Context, keywords []string, excludeID string, max int) ([]model.ScoredDocument, error) {
	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}
	return SuggestFor(a.index, keywords, excludeID, max), nil
}

// RelatedMap computes the full related-content map for every indexed
// document. This is what the analyze pipeline publishes for the site's
// widgets.
func (a *Analyzer) RelatedMap(ctx context.Context, maxPerDocument int) (map[string][]model.ScoredDocument, error) {
	if err := a.Initialize(ctx); err != nil {
		return nil, err
	}

	result := make(map[string][]model.ScoredDocument, a.index.Len())
	for _, id := range a.index.IDs() {
		result[id] = RelatedTo(a.index, id, maxPerDocument, a.opts)
	}
	return result, nil
}
