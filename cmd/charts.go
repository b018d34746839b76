package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/report"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/storage"
)

var chartsOut string

var chartsCmd = &cobra.Command{
	Use:   "charts <id-prefix>",
	Short: "Render velocity and heatmap charts for a stored match to HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharts,
}

func init() {
	chartsCmd.Flags().StringVar(&chartsOut, "out", "", "output HTML path (default: <match-id>.html)")
}

func runCharts(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if match == nil {
		return fmt.Errorf("no match found with prefix %q", prefix)
	}

	analysis, err := loadAnalysis(db, match.MatchID)
	if err != nil {
		return err
	}

	outPath := chartsOut
	if outPath == "" {
		outPath = match.MatchID + ".html"
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := report.WriteMatchCharts(f, *match, analysis); err != nil {
		return err
	}
	fmt.Printf("Charts written to %s\n", outPath)
	return nil
}

// loadAnalysis rebuilds a MatchAnalysis from stored rows.
func loadAnalysis(db *storage.DB, matchID string) (*model.MatchAnalysis, error) {
	a := &model.MatchAnalysis{MatchID: matchID}

	stats, err := db.GetPlayerStats(matchID)
	if err != nil {
		return nil, fmt.Errorf("get player stats: %w", err)
	}
	for _, s := range stats {
		if s.Slot >= 1 && s.Slot <= model.NumPlayers {
			a.Players[s.Slot-1] = s
		}
	}
	if ball, err := db.GetBallStats(matchID); err != nil {
		return nil, fmt.Errorf("get ball stats: %w", err)
	} else if ball != nil {
		a.Ball = *ball
	}

	if a.BallSeries, err = db.GetVelocitySamples(matchID, model.BallEntity); err != nil {
		return nil, fmt.Errorf("get ball series: %w", err)
	}
	for slot := 1; slot <= model.NumPlayers; slot++ {
		if a.PlayerSeries[slot-1], err = db.GetVelocitySamples(matchID, model.PlayerEntity(slot)); err != nil {
			return nil, fmt.Errorf("get player %d series: %w", slot, err)
		}
		if a.PlayerHeatmaps[slot-1], err = db.GetHeatmapPoints(matchID, model.PlayerEntity(slot)); err != nil {
			return nil, fmt.Errorf("get player %d heatmap: %w", slot, err)
		}
	}
	if a.BallHeatmap, err = db.GetHeatmapPoints(matchID, model.BallEntity); err != nil {
		return nil, fmt.Errorf("get ball heatmap: %w", err)
	}
	if a.HitHeatmap, err = db.GetHeatmapPoints(matchID, model.HitsEntity); err != nil {
		return nil, fmt.Errorf("get hit heatmap: %w", err)
	}
	return a, nil
}
