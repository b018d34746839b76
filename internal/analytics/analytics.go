// Package analytics derives per-match statistics from a parsed tracking
// table: per-entity summary numbers, downsampled velocity series for charts,
// and position-density heatmaps.
//
// Every function here is a pure, single-pass transform. Nothing is fatal: an
// absent column or an unparseable field degrades the statistics that depend
// on it and leaves everything else intact, so a partially broken CSV still
// produces a renderable match page.
package analytics

import (
	"fmt"
	"math"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
)

// Court bounds in court-relative units.
const (
	CourtXMin = -5.0
	CourtXMax = 5.0
	CourtYMin = -10.0
	CourtYMax = 10.0
)

// Options tunes the samplers. Zero values are replaced by defaults so a
// zero Options behaves like DefaultOptions().
type Options struct {
	// FrameRate is the recording frame rate used to label time buckets.
	FrameRate float64
	// SampleStride keeps every Nth row for the velocity series.
	SampleStride int
	// PlayerRadius is the density radius for player heatmaps.
	PlayerRadius float64
	// BallRadius is the density radius for ball and ball-hit heatmaps.
	// Wider than PlayerRadius to match the original tuning.
	BallRadius float64
}

// DefaultOptions returns the sampler tuning used by the original pipeline:
// 30 fps recordings, every 10th row charted, density radii of 1.0 court
// units for players and 1.5 for the ball.
func DefaultOptions() Options {
	return Options{
		FrameRate:    30,
		SampleStride: 10,
		PlayerRadius: 1.0,
		BallRadius:   1.5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FrameRate <= 0 {
		o.FrameRate = d.FrameRate
	}
	if o.SampleStride <= 0 {
		o.SampleStride = d.SampleStride
	}
	if o.PlayerRadius <= 0 {
		o.PlayerRadius = d.PlayerRadius
	}
	if o.BallRadius <= 0 {
		o.BallRadius = d.BallRadius
	}
	return o
}

// Compute runs the full analysis pass over a parsed table and returns fresh
// results. It never fails: a table with missing columns or no rows yields
// zero-valued statistics and empty series, which is exactly what the
// presentation layer renders as "no data available".
func Compute(matchID string, t *parser.Table, opts Options) *model.MatchAnalysis {
	opts = opts.withDefaults()

	a := &model.MatchAnalysis{
		MatchID:  matchID,
		RowCount: t.RowCount(),
	}
	a.Ball.MatchID = matchID

	hitCol := t.Column("player_ball_hit")
	n := t.RowCount()

	// Players.
	for slot := 1; slot <= model.NumPlayers; slot++ {
		distCol := t.Column(fmt.Sprintf("player%d_distance", slot))
		velCol := t.Column(fmt.Sprintf("player%d_vnorm", slot))
		xCol := t.Column(fmt.Sprintf("player%d_x", slot))
		yCol := t.Column(fmt.Sprintf("player%d_y", slot))

		ps := model.PlayerStats{
			MatchID: matchID,
			Slot:    slot,
			Name:    fmt.Sprintf("Player %d", slot),
		}

		var velSum float64
		var velN int
		var positions []model.PositionPoint
		for row := 0; row < n; row++ {
			if d, ok := t.Float(row, distCol); ok {
				ps.TotalDistance += d
			}
			if v, ok := t.Float(row, velCol); ok {
				velSum += v
				velN++
				if v > ps.MaxVelocity {
					ps.MaxVelocity = v
				}
			}
			if hit, ok := t.Int(row, hitCol); ok && hit == slot {
				ps.HitCount++
			}
			x, okX := t.Float(row, xCol)
			y, okY := t.Float(row, yCol)
			if okX && okY {
				positions = append(positions, model.PositionPoint{X: x, Y: y})
			}
		}
		if velN > 0 {
			ps.AvgVelocity = velSum / float64(velN)
		}

		a.Players[slot-1] = ps
		a.PlayerSeries[slot-1] = sampleEntitySeries(matchID, model.PlayerEntity(slot), t, velCol, -1, opts)
		a.PlayerHeatmaps[slot-1] = Heatmap(matchID, model.PlayerEntity(slot), positions, opts.PlayerRadius)
	}

	// Ball.
	distCol := t.Column("ball_distance")
	velCol := t.Column("ball_vnorm")
	accCol := t.Column("ball_anorm")
	bounceCol := t.Column("ball_bounce")
	xCol := t.Column("ball_x")
	yCol := t.Column("ball_y")
	ballHitCol := t.Column("ball_hit")

	var velSum, accSum float64
	var velN, accN int
	var positions, hitPositions []model.PositionPoint
	for row := 0; row < n; row++ {
		if d, ok := t.Float(row, distCol); ok {
			a.Ball.TotalDistance += d
		}
		if v, ok := t.Float(row, velCol); ok {
			velSum += v
			velN++
			if v > a.Ball.MaxVelocity {
				a.Ball.MaxVelocity = v
			}
		}
		if v, ok := t.Float(row, accCol); ok {
			accSum += v
			accN++
		}
		if b, ok := t.Float(row, bounceCol); ok {
			a.Ball.BounceCount += b
		}
		x, okX := t.Float(row, xCol)
		y, okY := t.Float(row, yCol)
		if okX && okY {
			positions = append(positions, model.PositionPoint{X: x, Y: y})
			// Strict equality with 1: any other indicator value is not a hit.
			if hit, ok := t.Int(row, ballHitCol); ok && hit == 1 {
				hitPositions = append(hitPositions, model.PositionPoint{X: x, Y: y})
			}
		}
	}
	if velN > 0 {
		a.Ball.AvgVelocity = velSum / float64(velN)
	}
	if accN > 0 {
		a.Ball.AvgAcceleration = accSum / float64(accN)
	}

	a.BallSeries = sampleEntitySeries(matchID, model.BallEntity, t, velCol, accCol, opts)
	a.BallHeatmap = Heatmap(matchID, model.BallEntity, positions, opts.BallRadius)
	a.HitHeatmap = Heatmap(matchID, model.HitsEntity, hitPositions, opts.BallRadius)

	return a
}

// round2 rounds to two decimal places for chart values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
