// Package search provides full-text search over the analyzed documents
// using an in-memory bleve index. The keyword extractor in
// internal/analyzer answers relationship queries; this package answers
// free-text ones, letting the CLI find documents by phrases the keyword
// list never surfaced.
package search
