package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/contentscan/contentscan/internal/config"
	"github.com/contentscan/contentscan/internal/database"
	"github.com/contentscan/contentscan/internal/model"
	"github.com/spf13/cobra"
)

// Constants for health direction and summary messages.
const (
	healthDirectionWorsened  = "worsened"
	healthDirectionImproved  = "improved"
	healthDirectionUnchanged = "unchanged"
	noFindingsMessage        = "No findings"
)

// NewCompareCmd creates the compare command.
// This command compares analysis results with historical data stored in
// the snapshot database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [site-root]",
		Short: "Compare analysis results with historical data",
		Long: `Compare displays differences between the current and previous analysis
results for a site.

This command retrieves historical analysis data from the database and shows:
- New findings that appeared since the last analysis
- Resolved findings that are no longer present
- Changes in finding severity counts

The comparison requires at least two analyses in the database for the
specified site. Use 'contentscan analyze' to analyze and save results.

Examples:
  # Compare latest two analyses for a site
  contentscan compare ./site

  # List all analysis history for a site
  contentscan compare --list ./site

  # Compare with a specific historical analysis by ID
  contentscan compare --with-report-id 5 ./site

  # Compare analyses since a specific date
  contentscan compare --since "2026-01-01" ./site

  # Output comparison in JSON format
  contentscan compare --json ./site

  # List all analyzed sites in the database
  contentscan compare --list-sites`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List analysis history for the specified site")
	cmd.Flags().BoolP("list-sites", "L", false,
		"List all analyzed sites in the database")

	// Comparison target flags
	cmd.Flags().Int64P("with-report-id", "i", 0,
		"Compare with a specific analysis by ID (use --list to see available IDs)")
	cmd.Flags().StringP("since", "s", "",
		"Compare with the first analysis after this date (format: YYYY-MM-DD)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-sites flag first (requires database but no site root)
	listSites, err := cmd.Flags().GetBool("list-sites")
	if err != nil {
		return err
	}

	// Validate arguments before opening database (unless --list-sites)
	var siteRoot string
	if !listSites {
		if len(args) == 0 {
			return errors.New("site root is required (use --list-sites to see available sites)")
		}
		siteRoot = args[0]
	}

	// Use XDG data directory for database
	dbDir := config.XDGDataDir()

	// Open database
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Handle --list-sites flag
	if listSites {
		return listAnalyzedSites(ctx, db)
	}

	// Handle --list flag
	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listAnalysisHistory(ctx, db, siteRoot)
	}

	// Get output format flags
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	// Get comparison target flags
	withReportID, err := cmd.Flags().GetInt64("with-report-id")
	if err != nil {
		return err
	}
	sinceDate, err := cmd.Flags().GetString("since")
	if err != nil {
		return err
	}

	// Perform comparison
	return runComparison(ctx, db, siteRoot, withReportID, sinceDate, jsonOutput, markdownOutput)
}

// listAnalyzedSites lists all sites that have analysis records in the database.
func listAnalyzedSites(ctx context.Context, db *database.ContentDB) error {
	sites, err := db.ListSites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	if len(sites) == 0 {
		fmt.Println("No analyzed sites found in the database.")
		fmt.Println("\nUse 'contentscan analyze <site-root>' to analyze a site.")
		return nil
	}

	fmt.Printf("Analyzed sites (%d):\n\n", len(sites))
	for _, site := range sites {
		fmt.Printf("  • %s\n", site)
	}
	fmt.Println("\nUse 'contentscan compare --list <site-root>' to see analysis history for a site.")

	return nil
}

// listAnalysisHistory lists all analysis records for a specific site.
func listAnalysisHistory(ctx context.Context, db *database.ContentDB, siteRoot string) error {
	reports, err := db.ReportHistoryWithMetadata(ctx, siteRoot)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(reports) == 0 {
		fmt.Printf("No analysis history found for %s\n", siteRoot)
		fmt.Println("\nUse 'contentscan analyze' to analyze this site.")
		return nil
	}

	fmt.Printf("Analysis history for %s (%d analyses):\n\n", siteRoot, len(reports))
	fmt.Printf("  %-6s  %-20s  %s\n", "ID", "Date", "Finding Summary")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, meta := range reports {
		fmt.Printf("  %-6d  %-20s  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			formatFindingSummary(meta.FindingSummary),
		)
	}

	fmt.Println("\nUse 'contentscan compare <site-root>' to compare the latest two analyses.")
	fmt.Println("Use 'contentscan compare --with-report-id <id> <site-root>' to compare with a specific analysis.")

	return nil
}

// formatFindingSummary formats the finding summary map into a human-readable string.
func formatFindingSummary(summary map[string]int) string {
	if summary == nil {
		return "N/A"
	}

	var parts []string
	if v := summary["critical"]; v > 0 {
		parts = append(parts, fmt.Sprintf("C:%d", v))
	}
	if v := summary["high"]; v > 0 {
		parts = append(parts, fmt.Sprintf("H:%d", v))
	}
	if v := summary["medium"]; v > 0 {
		parts = append(parts, fmt.Sprintf("M:%d", v))
	}
	if v := summary["low"]; v > 0 {
		parts = append(parts, fmt.Sprintf("L:%d", v))
	}
	if v := summary["info"]; v > 0 {
		parts = append(parts, fmt.Sprintf("I:%d", v))
	}

	if len(parts) == 0 {
		return noFindingsMessage
	}
	return strings.Join(parts, " ")
}

// runComparison performs the actual comparison between analysis reports.
func runComparison(ctx context.Context, db *database.ContentDB, siteRoot string, withReportID int64, sinceDate string, jsonOutput, markdownOutput bool) error {
	// Get the analysis history
	reports, err := db.ReportHistory(ctx, siteRoot)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no analysis history found for %s", siteRoot)
	}

	if len(reports) < 2 && withReportID == 0 && sinceDate == "" {
		return fmt.Errorf("at least 2 analyses are required for comparison (found %d)", len(reports))
	}

	// Determine which reports to compare
	var currentReport, previousReport *model.AnalysisReport

	// Latest report is always the current one
	currentReport = reports[0]

	if withReportID > 0 {
		// Find the report with the specified ID
		previousReport, err = db.ReportByID(ctx, withReportID)
		if err != nil {
			return fmt.Errorf("failed to get analysis with ID %d: %w", withReportID, err)
		}
		if previousReport == nil {
			return fmt.Errorf("analysis with ID %d not found", withReportID)
		}
		// Validate that the report ID belongs to the same site
		if previousReport.SiteRoot != siteRoot {
			return fmt.Errorf("analysis ID %d belongs to %s, not %s", withReportID, previousReport.SiteRoot, siteRoot)
		}
	} else if sinceDate != "" {
		// Parse the date and find the first (oldest) report at or after the specified date
		parsedDate, err := time.Parse("2006-01-02", sinceDate)
		if err != nil {
			return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
		}

		// Reports are sorted by timestamp DESC (newest first), so iterate in
		// reverse to find the oldest report at or after the date
		for i := len(reports) - 1; i >= 0; i-- {
			r := reports[i]
			if r.DateAnalyzed.After(parsedDate) || r.DateAnalyzed.Equal(parsedDate) {
				previousReport = r
				break
			}
		}
		if previousReport == nil {
			return fmt.Errorf("no analyses found since %s", sinceDate)
		}
		if previousReport == currentReport {
			return fmt.Errorf("only one analysis found since %s; at least 2 analyses are required for comparison", sinceDate)
		}
	} else {
		// Default: compare with the previous analysis
		previousReport = reports[1]
	}

	// Generate comparison result
	comparison := compareReports(previousReport, currentReport)

	// Output the result
	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	if markdownOutput {
		return outputComparisonMarkdown(comparison)
	}
	return outputComparisonText(comparison)
}

// ComparisonResult holds the result of comparing two analysis reports.
type ComparisonResult struct {
	// SiteRoot is the analyzed site's source directory.
	SiteRoot string `json:"site_root"`

	// PreviousAnalysis contains metadata about the previous analysis.
	PreviousAnalysis AnalysisMetadata `json:"previous_analysis"`

	// CurrentAnalysis contains metadata about the current analysis.
	CurrentAnalysis AnalysisMetadata `json:"current_analysis"`

	// NewFindings contains findings that are new in the current analysis.
	NewFindings []model.Finding `json:"new_findings,omitempty"`

	// ResolvedFindings contains findings that were in the previous analysis
	// but not in the current one.
	ResolvedFindings []model.Finding `json:"resolved_findings,omitempty"`

	// DocumentsAdded lists document IDs indexed now but not previously.
	DocumentsAdded []string `json:"documents_added,omitempty"`

	// DocumentsRemoved lists document IDs indexed previously but not now.
	DocumentsRemoved []string `json:"documents_removed,omitempty"`

	// UnchangedCount is the number of findings that remain unchanged.
	UnchangedCount int `json:"unchanged_count"`

	// HealthChange describes the overall change in content health.
	HealthChange HealthChange `json:"health_change"`
}

// AnalysisMetadata contains metadata about an analysis for comparison display.
type AnalysisMetadata struct {
	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// DocumentCount is the number of indexed documents.
	DocumentCount int `json:"document_count"`

	// TotalFindings is the total number of findings in this analysis.
	TotalFindings int `json:"total_findings"`

	// CriticalCount is the number of critical findings.
	CriticalCount int `json:"critical_count"`

	// HighCount is the number of high severity findings.
	HighCount int `json:"high_count"`

	// MediumCount is the number of medium severity findings.
	MediumCount int `json:"medium_count"`

	// LowCount is the number of low severity findings.
	LowCount int `json:"low_count"`

	// InfoCount is the number of informational findings.
	InfoCount int `json:"info_count"`
}

// HealthChange describes the change in content health between analyses.
type HealthChange struct {
	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`

	// DocumentDelta is the change in indexed document count.
	DocumentDelta int `json:"document_delta"`

	// CriticalDelta is the change in critical findings count.
	CriticalDelta int `json:"critical_delta"`

	// HighDelta is the change in high severity findings count.
	HighDelta int `json:"high_delta"`

	// MediumDelta is the change in medium severity findings count.
	MediumDelta int `json:"medium_delta"`

	// LowDelta is the change in low severity findings count.
	LowDelta int `json:"low_delta"`

	// InfoDelta is the change in informational findings count.
	InfoDelta int `json:"info_delta"`
}

// compareReports compares two analysis reports and generates a comparison result.
func compareReports(previous, current *model.AnalysisReport) *ComparisonResult {
	result := &ComparisonResult{
		SiteRoot:         current.SiteRoot,
		PreviousAnalysis: analysisMetadata(previous),
		CurrentAnalysis:  analysisMetadata(current),
	}

	// Build finding maps for comparison
	previousFindings := make(map[string]model.Finding)
	currentFindings := make(map[string]model.Finding)

	for _, f := range previous.Findings {
		previousFindings[findingKey(f)] = f
	}
	for _, f := range current.Findings {
		currentFindings[findingKey(f)] = f
	}

	// Find new findings (in current but not in previous)
	for key, finding := range currentFindings {
		if _, exists := previousFindings[key]; !exists {
			result.NewFindings = append(result.NewFindings, finding)
		}
	}

	// Find resolved findings (in previous but not in current)
	for key, finding := range previousFindings {
		if _, exists := currentFindings[key]; !exists {
			result.ResolvedFindings = append(result.ResolvedFindings, finding)
		} else {
			result.UnchangedCount++
		}
	}

	// Diff the indexed document sets
	result.DocumentsAdded, result.DocumentsRemoved = diffDocuments(previous, current)

	// Calculate health change
	result.HealthChange = calculateHealthChange(result.PreviousAnalysis, result.CurrentAnalysis)

	return result
}

// diffDocuments returns the document IDs added and removed between two
// analyses, in the current and previous report's index order respectively.
func diffDocuments(previous, current *model.AnalysisReport) (added, removed []string) {
	previousIDs := make(map[string]struct{}, len(previous.Documents))
	for _, d := range previous.Documents {
		previousIDs[d.Document.ID] = struct{}{}
	}
	currentIDs := make(map[string]struct{}, len(current.Documents))
	for _, d := range current.Documents {
		currentIDs[d.Document.ID] = struct{}{}
	}

	for _, d := range current.Documents {
		if _, ok := previousIDs[d.Document.ID]; !ok {
			added = append(added, d.Document.ID)
		}
	}
	for _, d := range previous.Documents {
		if _, ok := currentIDs[d.Document.ID]; !ok {
			removed = append(removed, d.Document.ID)
		}
	}
	return added, removed
}

// analysisMetadata extracts the comparison metadata from a report.
func analysisMetadata(r *model.AnalysisReport) AnalysisMetadata {
	return AnalysisMetadata{
		DateAnalyzed:  r.DateAnalyzed,
		DocumentCount: r.DocumentCount(),
		TotalFindings: len(r.Findings),
		CriticalCount: r.CriticalCount,
		HighCount:     r.HighCount,
		MediumCount:   r.MediumCount,
		LowCount:      r.LowCount,
		InfoCount:     r.InfoCount,
	}
}

// findingKey generates a unique key for a finding for comparison purposes.
func findingKey(f model.Finding) string {
	return f.Type + "|" + f.Value + "|" + f.Location
}

// calculateHealthChange calculates the change in content health between analyses.
func calculateHealthChange(previous, current AnalysisMetadata) HealthChange {
	change := HealthChange{
		DocumentDelta: current.DocumentCount - previous.DocumentCount,
		CriticalDelta: current.CriticalCount - previous.CriticalCount,
		HighDelta:     current.HighCount - previous.HighCount,
		MediumDelta:   current.MediumCount - previous.MediumCount,
		LowDelta:      current.LowCount - previous.LowCount,
		InfoDelta:     current.InfoCount - previous.InfoCount,
	}

	// Determine overall direction based on weighted score.
	// Critical and high severity changes have more weight.
	previousScore := previous.CriticalCount*100 + previous.HighCount*50 + previous.MediumCount*10 + previous.LowCount*5 + previous.InfoCount
	currentScore := current.CriticalCount*100 + current.HighCount*50 + current.MediumCount*10 + current.LowCount*5 + current.InfoCount

	if currentScore < previousScore {
		change.Direction = healthDirectionImproved
	} else if currentScore > previousScore {
		change.Direction = healthDirectionWorsened
	} else {
		change.Direction = healthDirectionUnchanged
	}

	return change
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *ComparisonResult) error {
	fmt.Printf("# Analysis Comparison: %s\n\n", result.SiteRoot)

	// Health change summary
	fmt.Println("## Summary")
	fmt.Printf("\n**Content Health:** %s\n\n", formatHealthDirection(result.HealthChange.Direction))

	// Analysis metadata table
	fmt.Println("| Metric | Previous | Current | Change |")
	fmt.Println("|--------|----------|---------|--------|")
	fmt.Printf("| Date | %s | %s | - |\n",
		result.PreviousAnalysis.DateAnalyzed.Format("2006-01-02 15:04"),
		result.CurrentAnalysis.DateAnalyzed.Format("2006-01-02 15:04"))
	fmt.Printf("| Documents | %d | %d | %s |\n",
		result.PreviousAnalysis.DocumentCount,
		result.CurrentAnalysis.DocumentCount,
		formatDelta(result.HealthChange.DocumentDelta))
	fmt.Printf("| Critical | %d | %d | %s |\n",
		result.PreviousAnalysis.CriticalCount,
		result.CurrentAnalysis.CriticalCount,
		formatDelta(result.HealthChange.CriticalDelta))
	fmt.Printf("| High | %d | %d | %s |\n",
		result.PreviousAnalysis.HighCount,
		result.CurrentAnalysis.HighCount,
		formatDelta(result.HealthChange.HighDelta))
	fmt.Printf("| Medium | %d | %d | %s |\n",
		result.PreviousAnalysis.MediumCount,
		result.CurrentAnalysis.MediumCount,
		formatDelta(result.HealthChange.MediumDelta))
	fmt.Printf("| Low | %d | %d | %s |\n",
		result.PreviousAnalysis.LowCount,
		result.CurrentAnalysis.LowCount,
		formatDelta(result.HealthChange.LowDelta))
	fmt.Printf("| Info | %d | %d | %s |\n",
		result.PreviousAnalysis.InfoCount,
		result.CurrentAnalysis.InfoCount,
		formatDelta(result.HealthChange.InfoDelta))
	fmt.Printf("| **Total** | **%d** | **%d** | **%s** |\n",
		result.PreviousAnalysis.TotalFindings,
		result.CurrentAnalysis.TotalFindings,
		formatDelta(result.CurrentAnalysis.TotalFindings-result.PreviousAnalysis.TotalFindings))

	// Document changes
	if len(result.DocumentsAdded) > 0 {
		fmt.Printf("\n## Documents Added (%d)\n\n", len(result.DocumentsAdded))
		for _, id := range result.DocumentsAdded {
			fmt.Printf("- `%s`\n", id)
		}
	}
	if len(result.DocumentsRemoved) > 0 {
		fmt.Printf("\n## Documents Removed (%d)\n\n", len(result.DocumentsRemoved))
		for _, id := range result.DocumentsRemoved {
			fmt.Printf("- `%s`\n", id)
		}
	}

	// New findings
	if len(result.NewFindings) > 0 {
		fmt.Printf("\n## New Findings (%d)\n\n", len(result.NewFindings))
		for _, f := range result.NewFindings {
			fmt.Printf("- **[%s]** %s: %s\n", f.SeverityText, f.Title, f.Value)
			if f.Location != "" {
				fmt.Printf("  - Location: `%s`\n", f.Location)
			}
		}
	}

	// Resolved findings
	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\n## Resolved Findings (%d)\n\n", len(result.ResolvedFindings))
		for _, f := range result.ResolvedFindings {
			fmt.Printf("- ~~**[%s]** %s: %s~~\n", f.SeverityText, f.Title, f.Value)
		}
	}

	// Unchanged count
	if result.UnchangedCount > 0 {
		fmt.Printf("\n---\n\n*%d findings unchanged*\n", result.UnchangedCount)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("Analysis Comparison: %s\n", result.SiteRoot)
	fmt.Println(strings.Repeat("=", 60))

	// Health change summary
	fmt.Printf("\nContent Health: %s\n", formatHealthDirection(result.HealthChange.Direction))

	// Analysis dates
	fmt.Printf("\nPrevious analysis: %s\n", result.PreviousAnalysis.DateAnalyzed.Format("2006-01-02 15:04:05"))
	fmt.Printf("Current analysis:  %s\n", result.CurrentAnalysis.DateAnalyzed.Format("2006-01-02 15:04:05"))

	// Document count change
	fmt.Printf("\nDocuments: %d -> %d (%s)\n",
		result.PreviousAnalysis.DocumentCount,
		result.CurrentAnalysis.DocumentCount,
		formatDelta(result.HealthChange.DocumentDelta))

	// Summary table
	fmt.Println("\nFindings Summary:")
	fmt.Printf("  %-10s  %-10s  %-10s  %-10s\n", "Severity", "Previous", "Current", "Change")
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Critical",
		result.PreviousAnalysis.CriticalCount, result.CurrentAnalysis.CriticalCount,
		formatDelta(result.HealthChange.CriticalDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "High",
		result.PreviousAnalysis.HighCount, result.CurrentAnalysis.HighCount,
		formatDelta(result.HealthChange.HighDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Medium",
		result.PreviousAnalysis.MediumCount, result.CurrentAnalysis.MediumCount,
		formatDelta(result.HealthChange.MediumDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Low",
		result.PreviousAnalysis.LowCount, result.CurrentAnalysis.LowCount,
		formatDelta(result.HealthChange.LowDelta))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Info",
		result.PreviousAnalysis.InfoCount, result.CurrentAnalysis.InfoCount,
		formatDelta(result.HealthChange.InfoDelta))
	fmt.Println("  " + strings.Repeat("-", 45))
	fmt.Printf("  %-10s  %-10d  %-10d  %-10s\n", "Total",
		result.PreviousAnalysis.TotalFindings, result.CurrentAnalysis.TotalFindings,
		formatDelta(result.CurrentAnalysis.TotalFindings-result.PreviousAnalysis.TotalFindings))

	// Document changes
	if len(result.DocumentsAdded) > 0 {
		fmt.Printf("\nDocuments Added (%d):\n", len(result.DocumentsAdded))
		for _, id := range result.DocumentsAdded {
			fmt.Printf("  [+] %s\n", id)
		}
	}
	if len(result.DocumentsRemoved) > 0 {
		fmt.Printf("\nDocuments Removed (%d):\n", len(result.DocumentsRemoved))
		for _, id := range result.DocumentsRemoved {
			fmt.Printf("  [-] %s\n", id)
		}
	}

	// New findings
	if len(result.NewFindings) > 0 {
		fmt.Printf("\nNew Findings (%d):\n", len(result.NewFindings))
		for _, f := range result.NewFindings {
			fmt.Printf("  [+] [%s] %s: %s\n", f.SeverityText, f.Title, f.Value)
			if f.Location != "" {
				fmt.Printf("      Location: %s\n", f.Location)
			}
		}
	}

	// Resolved findings
	if len(result.ResolvedFindings) > 0 {
		fmt.Printf("\nResolved Findings (%d):\n", len(result.ResolvedFindings))
		for _, f := range result.ResolvedFindings {
			fmt.Printf("  [-] [%s] %s: %s\n", f.SeverityText, f.Title, f.Value)
		}
	}

	// Unchanged count
	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d findings\n", result.UnchangedCount)
	}

	return nil
}

// formatHealthDirection formats the health change direction for display.
func formatHealthDirection(direction string) string {
	switch direction {
	case healthDirectionImproved:
		return "IMPROVED (fewer or less severe findings)"
	case healthDirectionWorsened:
		return "WORSENED (more or worse findings)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
