// Package model defines the core data structures shared across contentscan:
// documents, the content index, findings, and analysis reports.
package model
