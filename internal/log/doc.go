// Package log provides the slog construction used across contentscan.
// Document bodies and extracted keyword lists can be large, so the
// handlers here truncate oversized string attributes before they reach
// the output, keeping diagnostics readable.
package log
