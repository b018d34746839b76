package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about all matches stored in the database:
total match count, date range, per-slot totals, and ingest source breakdown.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.TotalMatches == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'padelmetrics analyze <tracking.csv>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	report.PrintOverview(os.Stdout, ov)

	aggs, err := db.GetSlotAggregates()
	if err != nil {
		return fmt.Errorf("get slot aggregates: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Players ---\n\n")
	report.PrintSlotAggregateTable(os.Stdout, aggs)

	sources, err := db.GetSourceCounts()
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}
	if len(sources) > 1 {
		fmt.Fprintf(os.Stdout, "\n--- Sources ---\n\n")
		report.PrintSourceTable(os.Stdout, sources)
	}
	return nil
}
