package cmd

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/analytics"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/storage"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/vibora"
)

// fetch command flags.
var (
	// fetchCount is the maximum number of matches to ingest.
	fetchCount int
	// fetchMatchID restricts ingestion to one backend match.
	fetchMatchID string
)

// fetchCmd is the cobra command for downloading and ingesting backend analyses.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and ingest processed matches from the backend",
	Long: `Lists matches on the Vibora backend, downloads the analysis CSV of each
match whose processing has finished, and stores the computed statistics locally.

Examples:
  # Ingest up to 10 finished matches
  padelmetrics fetch --count 10

  # Ingest a single match by ID
  padelmetrics fetch --match 4f1c22d8`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchCount, "count", 10, "maximum number of matches to ingest")
	fetchCmd.Flags().StringVar(&fetchMatchID, "match", "", "ingest only this backend match ID")
}

func runFetch(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	client := vibora.NewClient(cfg.BackendURL, cfg.APIToken)

	var matches []vibora.Match
	if fetchMatchID != "" {
		m, err := client.GetMatch(ctx, fetchMatchID)
		if err != nil {
			return fmt.Errorf("get match %s: %w", fetchMatchID, err)
		}
		matches = []vibora.Match{*m}
	} else {
		matches, err = client.ListMatches(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
	}

	ingested := 0
	for _, m := range matches {
		if ingested >= fetchCount {
			break
		}
		if !strings.EqualFold(m.Status, model.StatusDone) {
			continue
		}

		stored, err := ingestBackendMatch(ctx, db, client, m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [skip] %s: %v\n", m.ID, err)
			continue
		}
		if stored {
			ingested++
		}
	}

	fmt.Printf("\nDone: %d/%d matches ingested\n", ingested, fetchCount)
	return nil
}

// ingestBackendMatch downloads one match's analysis CSV, computes statistics,
// and stores the result. Returns true when the match counts toward the ingest
// total, including the already-stored case.
func ingestBackendMatch(ctx context.Context, db *storage.DB, client *vibora.Client, m vibora.Match) (bool, error) {
	text, err := client.FetchAnalysisCSV(ctx, m.ID)
	if err != nil {
		return false, fmt.Errorf("fetch csv: %w", err)
	}

	sum := sha256.Sum256([]byte(text))
	csvHash := hex.EncodeToString(sum[:])

	exists, err := db.MatchExistsByHash(csvHash)
	if err != nil {
		return false, err
	}
	if exists {
		fmt.Printf("  %s already stored\n", m.ID)
		return true, nil
	}

	analysis := analytics.Compute(m.ID, parser.Parse(text), analysisOptions())

	summary := model.MatchSummary{
		MatchID:   m.ID,
		CSVHash:   csvHash,
		Name:      m.Name,
		MatchDate: matchDate(m.CreatedAt),
		Source:    "backend",
		Status:    m.Status,
		FrameRate: cfg.FrameRate,
		RowCount:  analysis.RowCount,
	}
	if err := db.InsertMatch(summary); err != nil {
		return false, fmt.Errorf("insert match: %w", err)
	}
	if err := db.InsertAnalysis(analysis); err != nil {
		return false, fmt.Errorf("insert analysis: %w", err)
	}

	fmt.Printf("  %s  name=%-20s  date=%s  rows=%d  hits=%d\n",
		m.ID, summary.Name, summary.MatchDate, analysis.RowCount, analysis.TotalHits())
	return true, nil
}

// matchDate extracts a YYYY-MM-DD date from a backend timestamp, falling back
// to today when the timestamp is missing or malformed.
func matchDate(createdAt string) string {
	if len(createdAt) >= 10 {
		if _, err := time.Parse("2006-01-02", createdAt[:10]); err == nil {
			return createdAt[:10]
		}
	}
	return time.Now().UTC().Format("2006-01-02")
}
