package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/contentscan/contentscan/internal/log"
	"github.com/contentscan/contentscan/internal/search"
	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <site-root> <query>",
		Short: "Full-text search over the site's documents",
		Long: `Search indexes the site in memory and runs a full-text query over
document titles, descriptions, bodies, and tags.

Unlike 'related' and 'suggest', which rank by the extracted keyword
lists, search matches arbitrary phrases anywhere in the content.

Examples:
  # Find documents mentioning a phrase
  contentscan search ./site "connection pool"

  # More results, as JSON
  contentscan search --max 20 --json ./site timeout`,
		Args: cobra.ExactArgs(2),
		RunE: runSearchCmd,
	}

	cmd.Flags().IntP("max", "n", search.DefaultMaxResults,
		"Maximum number of search hits to show")
	cmd.Flags().BoolP("json", "j", false,
		"Output results in JSON format")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .contentscan in site root, current, or home directory)")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	siteRoot, query := args[0], args[1]

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

	index, err := a.Index(context.Background())
	if err != nil {
		return fmt.Errorf("failed to index site: %w", err)
	}

	searcher, err := search.NewSearcher(index, search.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	defer searcher.Close()

	hits, err := searcher.Search(query, max)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Printf("No documents match %q\n", query)
		return nil
	}

	fmt.Printf("Search results for %q:\n\n", query)
	fmt.Printf("  %-6s  %-40s  %s\n", "Score", "Document", "URL")
	fmt.Println("  " + strings.Repeat("-", 70))
	for _, h := range hits {
		title := h.Title
		if title == "" {
			title = h.ID
		}
		fmt.Printf("  %-6.2f  %-40s  %s\n", h.Score, title, h.URL)
	}
	return nil
}
