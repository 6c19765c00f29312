// Package main provides the entry point for the contentscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for contentscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contentscan",
		Short: "Content relationship scorer for static documentation sites",
		Long: `Contentscan analyzes a static documentation site's source tree,
extracts keywords from every document, and scores how strongly documents
relate to each other. It publishes the related-content map the site's
client-side widgets consume and reports content-health findings such as
orphaned pages and metadata left in published images.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewRelatedCmd())
	cmd.AddCommand(NewSuggestCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
