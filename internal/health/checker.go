package health

import (
	"context"
	"log/slog"

	"github.com/contentscan/contentscan/internal/model"
)

// Check defines the interface for individual content-health checks.
//
// Design decision: We use an interface rather than concrete types because
// it allows easy extension with new checks and testing with fakes.
type Check interface {
	// Name returns the check's name for logging and the performed-steps list.
	Name() string

	// Check inspects the analysis data and records findings on the report.
	Check(ctx context.Context, data *Data) error
}

// Data contains everything available to the health checks.
//
// Design decision: We pass all data in a single struct rather than
// multiple parameters so adding new data types does not change check
// signatures.
type Data struct {
	// Index is the built content index.
	Index *model.ContentIndex

	// Related maps each document ID to its ranked related content.
	Related map[string][]model.ScoredDocument

	// SiteRoot is the site source directory, used by filesystem checks.
	SiteRoot string

	// Report receives the findings.
	Report *model.AnalysisReport
}

// Checker coordinates the content-health checks.
type Checker struct {
	checks []Check
	logger *slog.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithLogger sets the checker's logger.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithChecks replaces the default check set.
func WithChecks(checks ...Check) CheckerOption {
	return func(c *Checker) { c.checks = checks }
}

// NewChecker creates a Checker with all built-in checks registered.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		checks: []Check{
			NewContentCheck(),
			NewConnectivityCheck(),
			NewEXIFCheck(),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes every registered check. A failing check is logged and
// skipped; the remaining checks still run. Only context cancellation
// aborts the run.
func (c *Checker) Run(ctx context.Context, data *Data) error {
	for _, check := range c.checks {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.logger.Debug("running health check", "check", check.Name())
		if err := check.Check(ctx, data); err != nil {
			if ctx.Err() != nil {
				return err
			}
			c.logger.Warn("health check failed",
				"check", check.Name(), "error", err)
		}
	}
	return nil
}
