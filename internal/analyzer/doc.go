// Package analyzer implements the content relationship scorer: keyword
// extraction, Jaccard similarity with a curated tag bonus, related-content
// ranking, and keyword-based suggestions over an immutable content index.
package analyzer
