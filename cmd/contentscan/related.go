package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/contentscan/contentscan/internal/analyzer"
	"github.com/contentscan/contentscan/internal/config"
	"github.com/contentscan/contentscan/internal/loader"
	"github.com/contentscan/contentscan/internal/log"
	"github.com/contentscan/contentscan/internal/model"
	"github.com/spf13/cobra"
)

// NewRelatedCmd creates the related command.
func NewRelatedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related <site-root> <document-id>",
		Short: "Show the documents most related to one document",
		Long: `Related indexes the site and ranks the documents most related to the
given document by keyword overlap and shared tags.

Document IDs are site-relative page paths (e.g. guide/install.md) or
section IDs from the content table (e.g. "#features").

Examples:
  # Top related documents for a page
  contentscan related ./site guide/install.md

  # More results, as JSON
  contentscan related --max 10 --json ./site guide/install.md`,
		Args: cobra.ExactArgs(2),
		RunE: runRelatedCmd,
	}

	cmd.Flags().IntP("max", "n", config.DefaultMaxRelated,
		"Maximum number of related documents to show")
	cmd.Flags().BoolP("json", "j", false,
		"Output results in JSON format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .contentscan in site root, current, or home directory)")

	return cmd
}

// runRelatedCmd executes the related command.
func runRelatedCmd(cmd *cobra.Command, args []string) error {
	siteRoot, docID := args[0], args[1]

	max, err := cmd.Flags().GetInt("max")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	a, err := newSiteAnalyzer(cmd, siteRoot, logger)
	if err != nil {
		return err
	}

	results, err := a.RelatedContent(context.Background(), docID, max)
	if err != nil {
		return fmt.Errorf("related-content query failed: %w", err)
	}

	if jsonOutput {
		return printScoredJSON(results)
	}

	if len(results) == 0 {
		fmt.Printf("No related content found for %s\n", docID)
		return nil
	}

	fmt.Printf("Related to %s:\n\n", docID)
	printScoredTable(results)
	return nil
}

// newSiteAnalyzer builds an analyzer over the site root, resolving the
// configuration file the same way the analyze command does.
func newSiteAnalyzer(cmd *cobra.Command, siteRoot string, logger *slog.Logger) (*analyzer.Analyzer, error) {
	configPathFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	site := &config.File{}
	configPath := config.FindConfigFile(configPathFlag, siteRoot)
	if configPath != "" {
		site, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if configPathFlag != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPathFlag)
	}

	src := loader.New(siteRoot,
		loader.WithSiteFile(site),
		loader.WithLogger(logger),
	)
	return analyzer.New(src, analyzer.WithLogger(logger)), nil
}

// printScoredJSON prints scored documents as indented JSON.
func printScoredJSON(results []model.ScoredDocument) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// printScoredTable prints scored documents as an aligned text table.
func printScoredTable(results []model.ScoredDocument) {
	fmt.Printf("  %-6s  %-40s  %s\n", "Score", "Document", "URL")
	fmt.Println("  " + strings.Repeat("-", 70))
	for _, r := range results {
		title := r.Title
		if title == "" {
			title = r.ID
		}
		fmt.Printf("  %-6.2f  %-40s  %s\n", r.Score, title, r.URL)
	}
}
