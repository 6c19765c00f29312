package model

import "strings"

// DocType classifies a document within the site.
//
// Design decision: We use a string type rather than iota constants because
// the type is serialized into reports and the snapshot database, and a
// self-describing string survives schema evolution better than an integer.
type DocType string

const (
	// TypeSection is a homepage section (hero, features, download, ...).
	TypeSection DocType = "homepage_section"

	// TypePage is a standalone documentation page.
	TypePage DocType = "documentation_page"
)

// Document is a single unit of site content eligible for recommendation.
// Documents are constructed once while the content index is built and are
// never mutated afterward.
type Document struct {
	// ID is the stable identifier: the page path relative to the site root
	// (e.g. "docs/installation.md") or a homepage anchor (e.g. "#features").
	// Must be non-empty for the document to be indexed.
	ID string `json:"id"`

	// Title is the human-readable document title.
	Title string `json:"title"`

	// Description is a short summary (meta description or first paragraph).
	Description string `json:"description,omitempty"`

	// Body is the free-text content of the document.
	// Excluded from JSON to keep reports and snapshots small.
	Body string `json:"-"`

	// Tags are curated labels used for the similarity tag bonus
	// (e.g. "getting-started", "addon", "development").
	Tags []string `json:"tags,omitempty"`

	// URL is the resolved site URL of the document.
	URL string `json:"url"`

	// Type classifies the document (homepage section vs documentation page).
	Type DocType `json:"type"`

	// SourcePath is the filesystem path the document was loaded from.
	// Empty for documents defined in the configuration content table.
	SourcePath string `json:"source_path,omitempty"`
}

// Keyword is a normalized token extracted from a document's text,
// paired with its occurrence count.
type Keyword struct {
	// Token is the normalized (lowercased, punctuation-stripped) term.
	Token string `json:"token"`

	// Count is the number of occurrences in the document's combined text.
	Count int `json:"count"`
}

// CombinedText returns the concatenated text fields used for keyword
// extraction. Title and description are included so that short documents
// still yield meaningful keywords.
func (d *Document) CombinedText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{d.Title, d.Description, d.Body, strings.Join(d.Tags, " ")} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// HasTag reports whether the document carries the given tag.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesTag reports whether two documents share at least one tag.
func (d *Document) SharesTag(other *Document) bool {
	if len(d.Tags) == 0 || len(other.Tags) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(d.Tags))
	for _, t := range d.Tags {
		set[t] = struct{}{}
	}
	for _, t := range other.Tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
