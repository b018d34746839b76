package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/analytics"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/report"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/storage"
)

var (
	analyzeName    string
	analyzeDate    string
	analyzePlayers string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <tracking.csv>",
	Short: "Analyze a tracking CSV file and store the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "match name (default: CSV file name)")
	analyzeCmd.Flags().StringVar(&analyzeDate, "date", "", "match date YYYY-MM-DD (default: today)")
	analyzeCmd.Flags().StringVar(&analyzePlayers, "players", "", "comma-separated player names for slots 1-4")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	sum := sha256.Sum256(raw)
	csvHash := hex.EncodeToString(sum[:])

	exists, err := db.MatchExistsByHash(csvHash)
	if err != nil {
		return fmt.Errorf("check match: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "CSV %s already stored — showing cached results.\n", csvHash[:12])
		return showByPrefix(db, csvHash[:12])
	}

	fmt.Fprintf(os.Stdout, "Analyzing %s...\n", csvPath)
	matchID := uuid.NewString()
	analysis := analytics.Compute(matchID, parser.Parse(string(raw)), analysisOptions())
	applyPlayerNames(analysis, analyzePlayers)

	name := analyzeName
	if name == "" {
		name = strings.TrimSuffix(csvPath[strings.LastIndex(csvPath, "/")+1:], ".csv")
	}
	date := analyzeDate
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	summary := model.MatchSummary{
		MatchID:   matchID,
		CSVHash:   csvHash,
		Name:      name,
		MatchDate: date,
		Source:    "local",
		Status:    model.StatusDone,
		FrameRate: cfg.FrameRate,
		RowCount:  analysis.RowCount,
	}

	if err := db.InsertMatch(summary); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	if err := db.InsertAnalysis(analysis); err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	report.PrintMatchHeader(os.Stdout, summary)
	report.PrintPlayerTable(analysis.Players[:])
	fmt.Fprintln(os.Stdout)
	report.PrintBallTable(os.Stdout, analysis.Ball)
	return nil
}

// applyPlayerNames assigns comma-separated names to player slots in order.
func applyPlayerNames(a *model.MatchAnalysis, names string) {
	if names == "" {
		return
	}
	for i, name := range strings.Split(names, ",") {
		if i >= model.NumPlayers {
			break
		}
		a.Players[i].Name = strings.TrimSpace(name)
	}
}

func showByPrefix(db *storage.DB, prefix string) error {
	match, err := db.GetMatchByPrefix(prefix)
	if err != nil || match == nil {
		return fmt.Errorf("match not found: %s", prefix)
	}
	stats, err := db.GetPlayerStats(match.MatchID)
	if err != nil {
		return err
	}
	ball, err := db.GetBallStats(match.MatchID)
	if err != nil {
		return err
	}

	report.PrintMatchHeader(os.Stdout, *match)
	report.PrintPlayerTable(stats)
	if ball != nil {
		fmt.Fprintln(os.Stdout)
		report.PrintBallTable(os.Stdout, *ball)
	}
	return nil
}
