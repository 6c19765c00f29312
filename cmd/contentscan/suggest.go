package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/contentscan/contentscan/internal/config"
	"github.com/contentscan/contentscan/internal/log"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the suggest command.
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <site-root> <keyword> [keyword...]",
		Short: "Suggest documents matching a set of keywords",
		Long: `Suggest ranks documents by how many of the given keywords they match:
a full point per extracted-keyword match and half a point per tag match.

This is the query the site's suggestion widget issues when a visitor
lands from a search engine.

Examples:
  # Documents matching two keywords
  contentscan suggest ./site deployment docker

  # Exclude the page the visitor is already on
  contentscan suggest --exclude guide/deploy.md ./site deployment docker`,
		Args: cobra.MinimumNArgs(2),
		RunE: runSuggestCmd,
	}

	cmd.Flags().IntP("max", "n", config.DefaultMaxSuggestions,
		"Maximum number of suggestions to show")
	cmd.Flags().StringP("exclude", "e", "",
		"Document ID to exclude from the suggestions")
	cmd.Flags().BoolP("json", "j", false,
		"Output results in JSON format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .contentscan in site root, current, or home directory)")

	return cmd
}

// runSuggestCmd executes the suggest command.
func runSuggestCmd(cmd *cobra.Command, args []string) error {
	siteRoot, keywords := args[0], args[1:]

	max, err := cmd.Flags().GetInt("max")
	if err != nil {
		return err
	}
	exclude, err := cmd.Flags().GetString("exclude")
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

	results, err := a.Suggestions(context.Background(), keywords, exclude, max)
	if err != nil {
		return fmt.Errorf("suggestion query failed: %w", err)
	}

	if jsonOutput {
		return printScoredJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No suggestions found for the given keywords.")
		return nil
	}

	fmt.Printf("Suggestions for %v:\n\n", keywords)
	printScoredTable(results)
	return nil
}
