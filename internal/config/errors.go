package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSiteRoot is returned when no site source directory is specified.
	ErrNoSiteRoot = errors.New("no site root specified: provide one or more site source directories")

	// ErrInvalidMaxRelated is returned when the per-document related-content
	// limit is not positive. A limit of zero would make every widget empty.
	ErrInvalidMaxRelated = errors.New("invalid max related: must be positive")

	// ErrInvalidTagBonus is returned when the tag bonus is negative or
	// greater than one. The final score is clamped to [0, 1], so a bonus
	// outside that range cannot be meaningful.
	ErrInvalidTagBonus = errors.New("invalid tag bonus: must be in [0, 1]")

	// ErrInvalidMinRelevance is returned when the relevance threshold is
	// negative or not below one. A threshold of 1 or more would exclude
	// every candidate.
	ErrInvalidMinRelevance = errors.New("invalid min relevance: must be in [0, 1)")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
