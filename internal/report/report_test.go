package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
)

func TestPrintPlayerTable(t *testing.T) {
	stats := []model.PlayerStats{
		{Slot: 1, Name: "Ana", TotalDistance: 812.5, AvgVelocity: 1.23, MaxVelocity: 4.56, HitCount: 31},
		{Slot: 2, TotalDistance: 640.0, AvgVelocity: 1.1, MaxVelocity: 3.9, HitCount: 18},
	}

	var buf bytes.Buffer
	PrintPlayerTableTo(&buf, stats)
	out := buf.String()

	for _, want := range []string{"Ana", "812.50", "31", "Player 2", "640.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMatchHeaderTruncatesHash(t *testing.T) {
	var buf bytes.Buffer
	PrintMatchHeader(&buf, model.MatchSummary{
		Name:      "semis",
		MatchDate: "2026-05-01",
		Source:    "local",
		RowCount:  5400,
		CSVHash:   "0123456789abcdef0123456789abcdef",
	})
	out := buf.String()

	if !strings.Contains(out, "0123456789ab") {
		t.Errorf("header missing hash prefix:\n%s", out)
	}
	if strings.Contains(out, "0123456789abc") {
		t.Errorf("header contains more than 12 hash chars:\n%s", out)
	}
}

func TestWriteMatchCharts(t *testing.T) {
	a := &model.MatchAnalysis{MatchID: "m1", RowCount: 40}
	a.BallSeries = []model.VelocitySample{
		{MatchID: "m1", Entity: model.BallEntity, Row: 10, Time: "0:00", Velocity: 5.5, Acceleration: 1.0},
		{MatchID: "m1", Entity: model.BallEntity, Row: 20, Time: "0:00", Velocity: 7.0, Acceleration: 0.5},
	}
	a.PlayerSeries[0] = []model.VelocitySample{
		{MatchID: "m1", Entity: model.PlayerEntity(1), Row: 10, Time: "0:00", Velocity: 1.5},
	}
	a.BallHeatmap = []model.HeatmapPoint{
		{MatchID: "m1", Entity: model.BallEntity, X: 0, Y: 0, Intensity: 1},
		{MatchID: "m1", Entity: model.BallEntity, X: 0.5, Y: 0, Intensity: 1},
	}
	a.PlayerHeatmaps[0] = []model.HeatmapPoint{
		{MatchID: "m1", Entity: model.PlayerEntity(1), X: -2, Y: 4, Intensity: 0},
	}

	var buf bytes.Buffer
	err := WriteMatchCharts(&buf, model.MatchSummary{MatchID: "m1", Name: "semis"}, a)
	if err != nil {
		t.Fatalf("WriteMatchCharts: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Velocity Over Time") {
		t.Error("output missing velocity chart title")
	}
	if !strings.Contains(out, "Ball Positions") {
		t.Error("output missing ball heatmap title")
	}
	if !strings.Contains(out, "Player 1 Positions") {
		t.Error("output missing player heatmap title")
	}
	if strings.Contains(out, "Ball Hits") {
		t.Error("hit heatmap rendered without hit points")
	}
}
