package model

import (
	"errors"
	"testing"
)

func TestContentIndexAdd(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty document ID", func(t *testing.T) {
		t.Parallel()
		ci := NewContentIndex()
		err := ci.Add(Document{URL: "/docs/a.html"}, nil)
		if !errors.Is(err, ErrEmptyDocumentID) {
			t.Errorf("expected ErrEmptyDocumentID, got %v", err)
		}
	})

	t.Run("rejects empty document URL", func(t *testing.T) {
		t.Parallel()
		ci := NewContentIndex()
		err := ci.Add(Document{ID: "docs/a.md"}, nil)
		if !errors.Is(err, ErrEmptyDocumentURL) {
			t.Errorf("expected ErrEmptyDocumentURL, got %v", err)
		}
	})

	t.Run("truncates keyword list to the per-document maximum", func(t *testing.T) {
		t.Parallel()
		ci := NewContentIndex()
		keywords := make([]Keyword, MaxKeywordsPerDocument+5)
		for i := range keywords {
			keywords[i] = Keyword{Token: string(rune('a' + i)), Count: 1}
		}
		if err := ci.Add(Document{ID: "big", URL: "/big"}, keywords); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(ci.Get("big").Keywords); got != MaxKeywordsPerDocument {
			t.Errorf("expected %d keywords, got %d", MaxKeywordsPerDocument, got)
		}
	})

	t.Run("duplicate ID keeps original insertion position", func(t *testing.T) {
		t.Parallel()
		ci := NewContentIndex()
		for _, id := range []string{"a", "b", "c"} {
			if err := ci.Add(Document{ID: id, URL: "/" + id}, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := ci.Add(Document{ID: "a", URL: "/a2"}, []Keyword{{Token: "new", Count: 1}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ids := ci.IDs()
		if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
			t.Errorf("expected insertion order [a b c], got %v", ids)
		}
		if !ci.Get("a").HasKeyword("new") {
			t.Error("expected re-added document to carry the new keywords")
		}
	})
}

func TestContentIndexIteration(t *testing.T) {
	t.Parallel()

	ci := NewContentIndex()
	order := []string{"installation", "quick-start", "faq", "#features"}
	for _, id := range order {
		if err := ci.Add(Document{ID: id, URL: "/" + id}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("Each visits documents in insertion order", func(t *testing.T) {
		t.Parallel()
		var visited []string
		ci.Each(func(doc *IndexedDocument) bool {
			visited = append(visited, doc.Document.ID)
			return true
		})
		for i, id := range order {
			if visited[i] != id {
				t.Fatalf("expected %v at position %d, got %v", id, i, visited[i])
			}
		}
	})

	t.Run("Each stops when fn returns false", func(t *testing.T) {
		t.Parallel()
		count := 0
		ci.Each(func(*IndexedDocument) bool {
			count++
			return count < 2
		})
		if count != 2 {
			t.Errorf("expected iteration to stop after 2 documents, got %d", count)
		}
	})

	t.Run("Len reports document count", func(t *testing.T) {
		t.Parallel()
		if ci.Len() != len(order) {
			t.Errorf("expected %d documents, got %d", len(order), ci.Len())
		}
	})
}

func TestIndexedDocumentKeywordSet(t *testing.T) {
	t.Parallel()

	ci := NewContentIndex()
	err := ci.Add(
		Document{ID: "docs/install.md", URL: "/docs/install.html"},
		[]Keyword{{Token: "install", Count: 4}, {Token: "setup", Count: 2}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := ci.Get("docs/install.md")
	if !doc.HasKeyword("install") || !doc.HasKeyword("setup") {
		t.Error("expected keyword set to contain extracted tokens")
	}
	if doc.HasKeyword("python") {
		t.Error("did not expect keyword set to contain absent token")
	}
	if len(doc.KeywordSet()) != 2 {
		t.Errorf("expected keyword set of size 2, got %d", len(doc.KeywordSet()))
	}
}
