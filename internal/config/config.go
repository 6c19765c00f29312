package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/contentscan/contentscan/internal/analyzer"
)

// Default configuration values.
// The scoring defaults reproduce the behavior the site's client-side
// widgets shipped with; see internal/analyzer for the scoring model.
const (
	// DefaultMaxRelated is the number of related-content entries computed
	// per document. Widgets rarely render more than a handful of links,
	// and a small value keeps the published related-map artifact compact.
	DefaultMaxRelated = 5

	// DefaultMaxSuggestions is the default result limit for keyword-based
	// suggestion queries.
	DefaultMaxSuggestions = 5

	// DefaultTagBonus is the flat similarity bonus for a shared curated tag.
	// Aliased from the scoring package so the two values cannot drift.
	DefaultTagBonus = analyzer.DefaultTagBonus

	// DefaultMinRelevance is the minimum similarity a candidate must exceed
	// to appear as related content. Aliased from the scoring package.
	DefaultMinRelevance = analyzer.DefaultMinRelevance

	// DefaultBatchSize is the number of site roots analyzed concurrently
	// when several are passed on the command line. Analysis is CPU and
	// filesystem bound, so a small degree of parallelism is enough.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "contentscan"
)

// Config holds all options for a contentscan run.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// SiteRoots are the site source directories to analyze.
	// Must contain at least one entry.
	SiteRoots []string

	// MaxRelated is the number of related-content entries computed per
	// document for the related map and the report.
	MaxRelated int

	// TagBonus is the flat similarity bonus for a shared tag.
	TagBonus float64

	// MinRelevance is the related-content inclusion threshold; candidates
	// scoring <= MinRelevance are excluded.
	MinRelevance float64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of site roots analyzed concurrently.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .contentscan in the site root,
	// the current directory, and the user's home directory.
	ConfigFilePath string

	// Site holds the content tables and overrides loaded from the
	// configuration file. Populated by LoadConfigFile.
	Site *File

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables GitHub Flavored Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// RelatedJSONFile, when set, is where the related-content map is
	// written as JSON for the site's client-side widgets to consume.
	RelatedJSONFile string

	// DBDir is the directory path for storing the SQLite snapshot database.
	// When set, analysis reports are saved for historical comparison.
	DBDir string

	// SaveToDB indicates whether to save analysis reports to the database.
	SaveToDB bool

	// SkipHealth disables the content-health checks (EXIF scanning of
	// images can be slow on image-heavy sites).
	SkipHealth bool
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases; users override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (scoring constants,
// limits). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxRelated:   DefaultMaxRelated,
		TagBonus:     DefaultTagBonus,
		MinRelevance: DefaultMinRelevance,
		BatchSize:    DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for contentscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/contentscan
// On macOS: ~/Library/Application Support/contentscan
// On Windows: %LOCALAPPDATA%\contentscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for contentscan.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for contentscan.
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if len(c.SiteRoots) == 0 {
		return ErrNoSiteRoot
	}
	if c.MaxRelated <= 0 {
		return ErrInvalidMaxRelated
	}
	if c.TagBonus < 0 || c.TagBonus > 1 {
		return ErrInvalidTagBonus
	}
	if c.MinRelevance < 0 || c.MinRelevance >= 1 {
		return ErrInvalidMinRelevance
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
