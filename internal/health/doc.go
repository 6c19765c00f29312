// Package health runs content hygiene checks over an analyzed site:
// documents missing titles, descriptions, or tags, pages no widget will
// ever recommend, and EXIF metadata left in published images. Findings
// are attached to the analysis report with severities from the central
// mapping in internal/model.
package health
