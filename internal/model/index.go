package model

import (
	"errors"
	"fmt"
)

// MaxKeywordsPerDocument is the maximum number of keywords retained per
// document. Only the most frequent tokens are kept; ties are broken by
// first-encountered order during extraction.
const MaxKeywordsPerDocument = 20

// ErrEmptyDocumentID is returned when a document without an identifier is
// added to the index.
var ErrEmptyDocumentID = errors.New("document has empty identifier")

// ErrEmptyDocumentURL is returned when a document without a resolvable URL
// is added to the index.
var ErrEmptyDocumentURL = errors.New("document has empty URL")

// IndexedDocument pairs a document with its derived keyword data.
type IndexedDocument struct {
	// Document is the indexed content unit.
	Document Document `json:"document"`

	// Keywords are the top extracted (token, count) pairs, at most
	// MaxKeywordsPerDocument entries, ordered by descending count.
	Keywords []Keyword `json:"keywords,omitempty"`

	// keywordSet caches the keyword tokens for O(1) membership checks
	// during similarity scoring. Derived from Keywords, counts ignored.
	keywordSet map[string]struct{}
}

// KeywordSet returns the set of keyword tokens (counts ignored).
// The returned map must not be modified by callers.
func (id *IndexedDocument) KeywordSet() map[string]struct{} {
	return id.keywordSet
}

// HasKeyword reports whether the document's keyword list contains the token.
func (id *IndexedDocument) HasKeyword(token string) bool {
	_, ok := id.keywordSet[token]
	return ok
}

// ContentIndex is the in-memory collection of all documents and their
// derived keywords. It is built once at analyzer initialization and is
// read-only afterward, so no locking discipline is required for queries.
//
// Design decision: We keep an explicit ordered ID slice alongside the map
// because ranking ties are broken by insertion order, and Go map iteration
// order is randomized. The slice is the single source of iteration order.
type ContentIndex struct {
	// ids preserves document insertion order.
	ids []string

	// docs maps document ID to its indexed entry.
	docs map[string]*IndexedDocument
}

// NewContentIndex creates an empty content index.
func NewContentIndex() *ContentIndex {
	return &ContentIndex{
		ids:  make([]string, 0),
		docs: make(map[string]*IndexedDocument),
	}
}

// Add registers a document with its extracted keywords.
// The keyword list is truncated to MaxKeywordsPerDocument if the caller
// passed more. Adding a document with an empty ID or URL fails; adding a
// duplicate ID replaces the keywords but keeps the original position.
func (ci *ContentIndex) Add(doc Document, keywords []Keyword) error {
	if doc.ID == "" {
		return ErrEmptyDocumentID
	}
	if doc.URL == "" {
		return fmt.Errorf("document %q: %w", doc.ID, ErrEmptyDocumentURL)
	}

	if len(keywords) > MaxKeywordsPerDocument {
		keywords = keywords[:MaxKeywordsPerDocument]
	}

	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw.Token] = struct{}{}
	}

	if _, exists := ci.docs[doc.ID]; !exists {
		ci.ids = append(ci.ids, doc.ID)
	}
	ci.docs[doc.ID] = &IndexedDocument{
		Document:   doc,
		Keywords:   keywords,
		keywordSet: set,
	}
	return nil
}

// Get returns the indexed document for the given ID, or nil if absent.
func (ci *ContentIndex) Get(id string) *IndexedDocument {
	return ci.docs[id]
}

// Has reports whether the index contains the given document ID.
func (ci *ContentIndex) Has(id string) bool {
	_, ok := ci.docs[id]
	return ok
}

// Len returns the number of indexed documents.
func (ci *ContentIndex) Len() int {
	return len(ci.ids)
}

// IDs returns the document IDs in insertion order.
// The returned slice must not be modified by callers.
func (ci *ContentIndex) IDs() []string {
	return ci.ids
}

// Each calls fn for every indexed document in insertion order.
// Iteration stops early if fn returns false.
func (ci *ContentIndex) Each(fn func(*IndexedDocument) bool) {
	for _, id := range ci.ids {
		if !fn(ci.docs[id]) {
			return
		}
	}
}
