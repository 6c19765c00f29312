package search

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/blevesearch/bleve/v2"

	"github.com/contentscan/contentscan/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildSearcher(t *testing.T) *Searcher {
	t.Helper()

	index := model.NewContentIndex()
	docs := []model.Document{
		{ID: "guide.md", Title: "Widget Guide", Description: "How to assemble widgets",
			Body: "Assembling a widget requires a calibrated flange wrench.",
			Tags: []string{"widgets", "assembly"}, URL: "/guide", Type: model.TypePage},
		{ID: "faq.md", Title: "FAQ", Description: "Common questions",
			Body: "Why does my widget rattle? Loose flange bolts are the usual cause.",
			Tags: []string{"support"}, URL: "/faq", Type: model.TypePage},
		{ID: "#pricing", Title: "Pricing", Description: "Plans and pricing tiers",
			Body: "Monthly and annual billing for every plan.",
			URL:  "/#pricing", Type: model.TypeSection},
	}
	for _, d := range docs {
		if err := index.Add(d, nil); err != nil {
			t.Fatal(err)
		}
	}

	s, err := NewSearcher(index, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewSearcher() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestNewSearcher(t *testing.T) {
	t.Parallel()

	t.Run("indexes every document", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		count, err := s.DocCount()
		if err != nil {
			t.Fatalf("DocCount() error = %v", err)
		}
		if count != 3 {
			t.Errorf("DocCount() = %d, want 3", count)
		}
	})

	t.Run("empty index is valid", func(t *testing.T) {
		t.Parallel()

		s, err := NewSearcher(model.NewContentIndex(), WithLogger(quietLogger()))
		if err != nil {
			t.Fatalf("NewSearcher() error = %v", err)
		}
		defer s.Close()

		hits, err := s.Search("anything", 5)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(hits) != 0 {
			t.Errorf("hits = %d, want 0", len(hits))
		}
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("matches body text", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		hits, err := s.Search("flange", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(hits) != 2 {
			t.Fatalf("hits = %d, want 2", len(hits))
		}
		for _, h := range hits {
			if h.ID != "guide.md" && h.ID != "faq.md" {
				t.Errorf("unexpected hit %q", h.ID)
			}
			if h.Score <= 0 {
				t.Errorf("hit %q has non-positive score %v", h.ID, h.Score)
			}
		}
	})

	t.Run("stored fields populated", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		hits, err := s.Search("pricing", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(hits) != 1 {
			t.Fatalf("hits = %d, want 1", len(hits))
		}
		hit := hits[0]
		if hit.ID != "#pricing" {
			t.Errorf("ID = %q, want #pricing", hit.ID)
		}
		if hit.Title != "Pricing" {
			t.Errorf("Title = %q, want Pricing", hit.Title)
		}
		if hit.URL != "/#pricing" {
			t.Errorf("URL = %q, want /#pricing", hit.URL)
		}
		if hit.Type != string(model.TypeSection) {
			t.Errorf("Type = %q, want %q", hit.Type, model.TypeSection)
		}
	})

	t.Run("max limits results", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		hits, err := s.Search("widget", 1)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(hits) != 1 {
			t.Errorf("hits = %d, want 1", len(hits))
		}
	})

	t.Run("zero max falls back to default", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		if _, err := s.Search("widget", 0); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()

		s := buildSearcher(t)
		hits, err := s.Search("zeppelin", 10)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		if len(hits) != 0 {
			t.Errorf("hits = %d, want 0", len(hits))
		}
	})
}

// failingIndex satisfies Index and fails every query, standing in for a
// closed or corrupted underlying index.
type failingIndex struct{ err error }

func (f failingIndex) Search(*bleve.SearchRequest) (*bleve.SearchResult, error) {
	return nil, f.err
}

func (f failingIndex) DocCount() (uint64, error) { return 0, f.err }

func (f failingIndex) Close() error { return nil }

// TestSearchIndexError tests that index failures surface as wrapped errors.
func TestSearchIndexError(t *testing.T) {
	t.Parallel()

	indexErr := errors.New("index closed")
	s := &Searcher{index: failingIndex{err: indexErr}, logger: quietLogger()}

	if _, err := s.Search("widget", 5); !errors.Is(err, indexErr) {
		t.Errorf("Search() error = %v, want wrapped %v", err, indexErr)
	}
	if _, err := s.DocCount(); !errors.Is(err, indexErr) {
		t.Errorf("DocCount() error = %v, want %v", err, indexErr)
	}
}
