package search

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/contentscan/contentscan/internal/model"
)

// DefaultMaxResults is the result cap when the caller passes no limit.
const DefaultMaxResults = 10

// indexedEntry is the flat document shape stored in the bleve index.
type indexedEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Tags        string `json:"tags"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

// Index is the slice of bleve.Index the searcher actually depends on.
// Keeping the surface this narrow lets tests substitute a fake index for
// the failure paths a real in-memory index never takes.
type Index interface {
	// Search executes a search request against the indexed documents.
	Search(req *bleve.SearchRequest) (*bleve.SearchResult, error)

	// DocCount returns the number of indexed documents.
	DocCount() (uint64, error)

	// Close releases the index resources.
	Close() error
}

// Hit is a single full-text search result.
type Hit struct {
	// ID is the matched document's identifier.
	ID string `json:"id"`

	// Title is the document title.
	Title string `json:"title"`

	// URL is the resolved site URL.
	URL string `json:"url"`

	// Type classifies the document.
	Type string `json:"type"`

	// Score is bleve's relevance score for the hit.
	Score float64 `json:"score"`
}

// Searcher answers free-text queries over the analyzed documents.
//
// Design decision: The index lives purely in memory and is rebuilt from
// the content index each run. Analysis runs are short-lived and the
// corpus is small, so persisting the bleve index would only add cache
// invalidation problems.
type Searcher struct {
	index  Index
	logger *slog.Logger
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithLogger sets the searcher's logger.
func WithLogger(logger *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearcher builds an in-memory full-text index over the content index.
func NewSearcher(contentIndex *model.ContentIndex, opts ...SearcherOption) (*Searcher, error) {
	s := &Searcher{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	mapping := bleve.NewIndexMapping()
	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	batch := index.NewBatch()
	contentIndex.Each(func(doc *model.IndexedDocument) bool {
		entry := indexedEntry{
			Title:       doc.Document.Title,
			Description: doc.Document.Description,
			Body:        doc.Document.Body,
			Tags:        strings.Join(doc.Document.Tags, " "),
			URL:         doc.Document.URL,
			Type:        string(doc.Document.Type),
		}
		if err = batch.Index(doc.Document.ID, entry); err != nil {
			return false
		}
		return true
	})
	if err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("indexing documents: %w", err)
	}

	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("committing search index: %w", err)
	}

	s.index = index
	s.logger.Debug("search index built", "documents", contentIndex.Len())
	return s, nil
}

// Search runs a match query and returns up to max hits by descending
// relevance. A max of zero or less falls back to DefaultMaxResults.
func (s *Searcher) Search(query string, max int) ([]Hit, error) {
	if max <= 0 {
		max = DefaultMaxResults
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = max
	req.Fields = []string{"title", "url", "type"}

	result, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		h := Hit{ID: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields["title"].(string); ok {
			h.Title = title
		}
		if url, ok := hit.Fields["url"].(string); ok {
			h.URL = url
		}
		if docType, ok := hit.Fields["type"].(string); ok {
			h.Type = docType
		}
		hits = append(hits, h)
	}

	return hits, nil
}

// DocCount returns the number of indexed documents.
func (s *Searcher) DocCount() (uint64, error) {
	return s.index.DocCount()
}

// Close releases the underlying index.
func (s *Searcher) Close() error {
	return s.index.Close()
}
