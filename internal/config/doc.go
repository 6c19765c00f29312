// Package config provides configuration structures and utilities for
// contentscan. It defines the analysis options, the YAML site file with
// hand-authored homepage section tables and per-page overrides, and the
// XDG directory helpers for the snapshot database.
package config
