package analytics

import (
	"math"
	"strings"
	"testing"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
)

// buildCSV joins a header and data rows into CSV text.
func buildCSV(header string, rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestComputePlayerStats(t *testing.T) {
	csv := buildCSV(
		"player1_distance,player1_vnorm,player_ball_hit",
		"1.5,2.0,1",
		"2.5,6.0,2",
		"1.0,4.0,1",
	)
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	p1 := a.Players[0]
	if p1.TotalDistance != 5.0 {
		t.Errorf("TotalDistance = %v, want 5.0", p1.TotalDistance)
	}
	if p1.AvgVelocity != 4.0 {
		t.Errorf("AvgVelocity = %v, want 4.0", p1.AvgVelocity)
	}
	if p1.MaxVelocity != 6.0 {
		t.Errorf("MaxVelocity = %v, want 6.0", p1.MaxVelocity)
	}
	if p1.HitCount != 2 {
		t.Errorf("HitCount = %d, want 2", p1.HitCount)
	}
	if a.Players[1].HitCount != 1 {
		t.Errorf("player 2 HitCount = %d, want 1", a.Players[1].HitCount)
	}
	if a.RowCount != 3 {
		t.Errorf("RowCount = %d, want 3", a.RowCount)
	}
}

func TestComputeSkipsUnparseableFields(t *testing.T) {
	// The bad rows contribute nothing; they must not be counted as zeros.
	csv := buildCSV(
		"player1_distance,player1_vnorm",
		"1.0,2.0",
		"abc,NaN",
		"3.0,4.0",
	)
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	p1 := a.Players[0]
	if p1.TotalDistance != 4.0 {
		t.Errorf("TotalDistance = %v, want 4.0", p1.TotalDistance)
	}
	if p1.AvgVelocity != 3.0 {
		t.Errorf("AvgVelocity = %v, want 3.0 (mean of parseable rows only)", p1.AvgVelocity)
	}
}

func TestAvgVelocityZeroWithoutSamples(t *testing.T) {
	csv := buildCSV("player1_distance", "1.0", "2.0")
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	p1 := a.Players[0]
	if math.IsNaN(p1.AvgVelocity) || p1.AvgVelocity != 0 {
		t.Errorf("AvgVelocity = %v, want 0", p1.AvgVelocity)
	}
	if p1.MaxVelocity != 0 {
		t.Errorf("MaxVelocity = %v, want 0", p1.MaxVelocity)
	}
}

func TestBounceCountSumsColumnValues(t *testing.T) {
	// Bounce is a per-row column sum, not a row count: fractional values from
	// the tracker must accumulate as-is.
	csv := buildCSV("ball_bounce", "0.5", "1", "0.25", "0")
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	if a.Ball.BounceCount != 1.75 {
		t.Errorf("BounceCount = %v, want 1.75", a.Ball.BounceCount)
	}
}

func TestHitCountRequiresExactSlotValue(t *testing.T) {
	// 1.5 is not a slot number and 0 is no hit; neither may count.
	csv := buildCSV("player_ball_hit", "1", "1.5", "0", "3", "1")
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	if got := a.Players[0].HitCount; got != 2 {
		t.Errorf("slot 1 HitCount = %d, want 2", got)
	}
	if got := a.Players[2].HitCount; got != 1 {
		t.Errorf("slot 3 HitCount = %d, want 1", got)
	}
	if got := a.TotalHits(); got != 3 {
		t.Errorf("TotalHits = %d, want 3", got)
	}
}

func TestBallStats(t *testing.T) {
	csv := buildCSV(
		"ball_distance,ball_vnorm,ball_anorm",
		"2.0,10.0,1.0",
		"3.0,20.0,3.0",
	)
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	if a.Ball.TotalDistance != 5.0 {
		t.Errorf("TotalDistance = %v, want 5.0", a.Ball.TotalDistance)
	}
	if a.Ball.AvgVelocity != 15.0 {
		t.Errorf("AvgVelocity = %v, want 15.0", a.Ball.AvgVelocity)
	}
	if a.Ball.MaxVelocity != 20.0 {
		t.Errorf("MaxVelocity = %v, want 20.0", a.Ball.MaxVelocity)
	}
	if a.Ball.AvgAcceleration != 2.0 {
		t.Errorf("AvgAcceleration = %v, want 2.0", a.Ball.AvgAcceleration)
	}
}

func TestBallHitHeatmapStrictEquality(t *testing.T) {
	// Only rows whose indicator is exactly 1 are hit locations.
	csv := buildCSV(
		"ball_x,ball_y,ball_hit",
		"0.0,0.0,1",
		"1.0,1.0,2",
		"2.0,2.0,0",
		"3.0,3.0,1",
	)
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	if got := len(a.HitHeatmap); got != 2 {
		t.Fatalf("HitHeatmap has %d points, want 2", got)
	}
	if a.HitHeatmap[1].X != 3.0 {
		t.Errorf("second hit X = %v, want 3.0", a.HitHeatmap[1].X)
	}
	if got := len(a.BallHeatmap); got != 4 {
		t.Errorf("BallHeatmap has %d points, want 4", got)
	}
}

func TestPositionRequiresBothCoordinates(t *testing.T) {
	csv := buildCSV(
		"player1_x,player1_y",
		"1.0,2.0",
		"1.0,abc",
		"abc,2.0",
		"3.0,4.0",
	)
	a := Compute("m1", parser.Parse(csv), DefaultOptions())

	if got := len(a.PlayerHeatmaps[0]); got != 2 {
		t.Errorf("heatmap has %d points, want 2", got)
	}
}

func TestComputeEmptyTable(t *testing.T) {
	a := Compute("m1", parser.Parse(""), DefaultOptions())
	if !a.Empty() {
		t.Error("expected empty analysis for empty input")
	}
	for slot := 0; slot < len(a.Players); slot++ {
		if a.Players[slot].TotalDistance != 0 || a.Players[slot].HitCount != 0 {
			t.Errorf("slot %d has non-zero stats on empty input", slot+1)
		}
	}
}
