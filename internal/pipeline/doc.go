// Package pipeline orchestrates a site analysis as an ordered sequence of
// steps that each enrich the analysis report: indexing the documents,
// computing the related-content map, and running the content-health
// checks. A batch processor runs the same pipeline over multiple site
// roots concurrently.
package pipeline
