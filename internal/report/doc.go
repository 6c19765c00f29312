// Package report renders analysis reports in several formats: a
// human-readable terminal format, JSON for tool integration, GitHub
// Flavored Markdown for documentation, and the related-content JSON
// artifact the site's client-side widgets consume.
package report
