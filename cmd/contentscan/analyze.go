package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/contentscan/contentscan/internal/analyzer"
	"github.com/contentscan/contentscan/internal/config"
	"github.com/contentscan/contentscan/internal/database"
	"github.com/contentscan/contentscan/internal/health"
	"github.com/contentscan/contentscan/internal/loader"
	"github.com/contentscan/contentscan/internal/log"
	"github.com/contentscan/contentscan/internal/model"
	"github.com/contentscan/contentscan/internal/pipeline"
	"github.com/contentscan/contentscan/internal/report"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [site-root]",
		Short: "Analyze a documentation site and score content relationships",
		Long: `Analyze indexes every document in a documentation site, extracts
keywords, and computes the related-content map the site's widgets consume.

It also runs content-health checks for:
- Missing titles, descriptions, and tags
- Orphaned and isolated documents
- Thin content
- EXIF metadata in published images (GPS, serial numbers, camera info)

Examples:
  # Analyze a single site
  contentscan analyze ./site

  # Analyze multiple sites concurrently
  contentscan analyze ./docs ./blog ./handbook

  # Output JSON report
  contentscan analyze --json ./site

  # Publish the related-content map for the site's widgets
  contentscan analyze --related-json static/related.json ./site

  # Use a custom configuration file
  contentscan analyze -c mysite.yaml ./site

Configuration file (.contentscan) example:
  sections:
    - id: "#features"
      title: "Features"
      tags: [product]
  pages:
    internal/style-guide.md:
      skip: true
  ignorePatterns:
    - "drafts/*"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Scoring flags
	cmd.Flags().IntP("max-related", "n", config.DefaultMaxRelated,
		"Number of related-content entries computed per document")
	cmd.Flags().Float64P("tag-bonus", "t", config.DefaultTagBonus,
		"Flat similarity bonus for a shared tag")
	cmd.Flags().Float64P("min-score", "s", config.DefaultMinRelevance,
		"Minimum similarity a candidate must exceed to count as related")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent site analyses")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .contentscan in site root, current, or home directory)")

	// Behavior flags
	cmd.Flags().Bool("skip-health", false,
		"Skip the content-health checks (EXIF scanning can be slow on image-heavy sites)")
	cmd.Flags().Bool("save", true,
		"Save the analysis report to the snapshot database for later comparison")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("related-json", "r", "",
		"Write the related-content map as JSON to the specified file")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAnalyze(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.MaxRelated, err = cmd.Flags().GetInt("max-related")
	if err != nil {
		return nil, err
	}

	cfg.TagBonus, err = cmd.Flags().GetFloat64("tag-bonus")
	if err != nil {
		return nil, err
	}

	cfg.MinRelevance, err = cmd.Flags().GetFloat64("min-score")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.SkipHealth, err = cmd.Flags().GetBool("skip-health")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.RelatedJSONFile, err = cmd.Flags().GetString("related-json")
	if err != nil {
		return nil, err
	}

	// Positional arguments are the site roots
	cfg.SiteRoots = args

	// Load content tables and overrides from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use an empty config if no file found.
	firstRoot := ""
	if len(cfg.SiteRoots) > 0 {
		firstRoot = cfg.SiteRoots[0]
	}
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath, firstRoot)

	if configPath != "" {
		cfg.Site, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.Site = &config.File{}
	}

	// Snapshot database lives in the XDG data directory
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// runAnalyze executes the analysis.
func runAnalyze(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"sites", cfg.SiteRoots,
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.ContentDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	// Use batch processor for parallel analysis if multiple sites
	if len(cfg.SiteRoots) > 1 && cfg.BatchSize > 1 {
		return runBatchAnalysis(ctx, cfg, db, logger)
	}

	// Single site or sequential analysis
	return runSequentialAnalysis(ctx, cfg, db, logger)
}

// runSequentialAnalysis analyzes sites one at a time.
func runSequentialAnalysis(ctx context.Context, cfg *config.Config, db *database.ContentDB, logger *slog.Logger) error {
	for _, siteRoot := range cfg.SiteRoots {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipelineForSite(siteRoot, cfg, logger)
		analysisReport := model.NewAnalysisReport(siteRoot)

		fmt.Printf("Analyzing %s...\n", siteRoot)
		startTime := time.Now()

		if err := p.Execute(ctx, analysisReport); err != nil {
			logger.Error("analysis failed", "site", siteRoot, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", siteRoot, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Analysis completed in %s\n\n", elapsed.Round(time.Millisecond))

		// Generate and output report
		if err := outputReport(cfg, analysisReport); err != nil {
			logger.Error("report failed", "site", siteRoot, "error", err)
		}

		// Save to database if enabled
		if err := saveAnalysisReport(ctx, db, analysisReport, logger); err != nil {
			logger.Error("failed to save analysis report", "site", siteRoot, "error", err)
		}
	}

	return nil
}

// runBatchAnalysis analyzes multiple sites concurrently using BatchProcessor.
func runBatchAnalysis(ctx context.Context, cfg *config.Config, db *database.ContentDB, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d sites (concurrency: %d)...\n\n",
		len(cfg.SiteRoots), cfg.BatchSize)

	startTime := time.Now()

	// Create batch processor with a per-site pipeline factory
	bp := pipeline.NewBatchProcessor(
		func(siteRoot string) *pipeline.Pipeline {
			return createPipelineForSite(siteRoot, cfg, logger)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.SiteRoots, func(analysisReport *model.AnalysisReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Printf("[%d/%d] Analysis completed: %s\n", index+1, len(cfg.SiteRoots), analysisReport.SiteRoot)

		// Generate and output report
		if err := outputReport(cfg, analysisReport); err != nil {
			logger.Error("report failed", "site", analysisReport.SiteRoot, "error", err)
		}

		// Save to database if enabled
		if err := saveAnalysisReport(ctx, db, analysisReport, logger); err != nil {
			logger.Error("failed to save analysis report", "site", analysisReport.SiteRoot, "error", err)
		}
	})

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return err
}

// createPipelineForSite creates the analysis pipeline for a single site.
func createPipelineForSite(siteRoot string, cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	src := loader.New(siteRoot,
		loader.WithSiteFile(cfg.Site),
		loader.WithLogger(logger),
	)

	a := analyzer.New(src,
		analyzer.WithOptions(analyzer.Options{
			TagBonus:     cfg.TagBonus,
			MinRelevance: cfg.MinRelevance,
		}),
		analyzer.WithLogger(logger),
	)

	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithContinueOnError(true),
	)
	p.AddStep(pipeline.NewIndexStep(a, pipeline.WithIndexLogger(logger)))
	p.AddStep(pipeline.NewRelateStep(a, cfg.MaxRelated, pipeline.WithRelateLogger(logger)))

	if !cfg.SkipHealth {
		checker := health.NewChecker(health.WithLogger(logger))
		p.AddStep(pipeline.NewHealthStep(checker, pipeline.WithHealthLogger(logger)))
	}

	return p
}

// outputReport outputs the analysis report in the requested format and,
// when configured, publishes the related-content map artifact.
func outputReport(cfg *config.Config, analysisReport *model.AnalysisReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		f, err := createOutputFile(cfg.ReportFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	if _, err := writer.Write(analysisReport); err != nil {
		return err
	}

	// Publish the related-content map for the site's widgets
	if cfg.RelatedJSONFile != "" {
		f, err := createOutputFile(cfg.RelatedJSONFile)
		if err != nil {
			return err
		}
		defer f.Close()

		relatedWriter := report.NewRelatedMapWriter(f, report.WithRelatedPrettyPrint())
		if _, err := relatedWriter.Write(analysisReport); err != nil {
			return fmt.Errorf("failed to write related map: %w", err)
		}
	}

	return nil
}

// createOutputFile creates an output file, creating parent directories as
// needed. Reports are plain site metadata, so default permissions apply.
func createOutputFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// saveAnalysisReport saves the analysis report to the database if enabled.
// If db is nil, this function is a no-op.
func saveAnalysisReport(ctx context.Context, db *database.ContentDB, analysisReport *model.AnalysisReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}

	if err := db.SaveReport(ctx, analysisReport); err != nil {
		return fmt.Errorf("failed to save analysis report: %w", err)
	}

	logger.Info("analysis report saved to database", "site", analysisReport.SiteRoot)
	return nil
}
