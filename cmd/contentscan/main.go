// Package main provides the entry point for the contentscan CLI.
//
// Contentscan analyzes a static documentation site's content, scores
// relationships between documents, and reports content-health findings.
//
// Usage:
//
//	contentscan analyze <site-root>
//	contentscan related <site-root> <document-id>
//
// See --help for all available options.
package main

// main is the entry point for contentscan.
func main() {
	Execute()
}
