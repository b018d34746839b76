package model

// NumPlayers is the number of player slots tracked per padel match.
const NumPlayers = 4

// BallEntity is the entity label used for ball rows in storage and charts.
const BallEntity = "ball"

// HitsEntity is the entity label for ball-hit location points.
const HitsEntity = "hits"

// PlayerEntity returns the storage/chart entity label for a player slot (1-based).
func PlayerEntity(slot int) string {
	switch slot {
	case 1:
		return "player1"
	case 2:
		return "player2"
	case 3:
		return "player3"
	case 4:
		return "player4"
	default:
		return "unknown"
	}
}

// ---- Per-match statistics ----

// PlayerStats holds summary statistics for one player slot in one match.
// Distances and velocities are in the court-relative units produced by the
// tracking backend; no unit conversion happens in this tool.
type PlayerStats struct {
	MatchID string
	Slot    int // 1..4
	Name    string

	TotalDistance float64
	AvgVelocity   float64
	MaxVelocity   float64
	HitCount      int
}

// BallStats holds summary statistics for the ball in one match.
//
// BounceCount is the arithmetic sum of the ball_bounce column, not a count of
// its nonzero entries. The tracking backend emits a 0/1 indicator so the two
// normally coincide, but the sum is what the pipeline has always reported and
// re-deriving it as a count would silently shift historical numbers.
type BallStats struct {
	MatchID string

	TotalDistance   float64
	AvgVelocity     float64
	MaxVelocity     float64
	AvgAcceleration float64
	BounceCount     float64
}

// VelocitySample is one point of a downsampled velocity series used for
// charting. Time is an "M:SS" label derived from the source row index at the
// fixed recording frame rate. Acceleration is populated for the ball series
// only and stays zero for player series.
type VelocitySample struct {
	MatchID string
	Entity  string // "ball" or "player1".."player4"
	Row     int    // 1-based source row index, preserves chart ordering
	Time    string

	Velocity     float64
	Acceleration float64
}

// PositionPoint is a court-relative position. The court spans x in [-5, 5]
// and y in [-10, 10].
type PositionPoint struct {
	X, Y float64
}

// HeatmapPoint is a position annotated with normalized local density.
// Intensity is always within [0, 1]: the densest point(s) of a set carry
// exactly 1, and a set of mutually isolated points carries 0 everywhere.
type HeatmapPoint struct {
	MatchID string
	Entity  string // "ball", "player1".."player4", or "hits"

	X, Y      float64
	Intensity float64
}

// MatchAnalysis is the full output of one analysis pass over a tracking CSV.
// It is recomputed from scratch on every pass; nothing survives between runs.
type MatchAnalysis struct {
	MatchID  string
	RowCount int

	Players [NumPlayers]PlayerStats
	Ball    BallStats

	BallSeries     []VelocitySample
	PlayerSeries   [NumPlayers][]VelocitySample
	PlayerHeatmaps [NumPlayers][]HeatmapPoint
	BallHeatmap    []HeatmapPoint
	HitHeatmap     []HeatmapPoint
}

// TotalHits sums hit counts across all player slots.
func (a *MatchAnalysis) TotalHits() int {
	total := 0
	for _, p := range a.Players {
		total += p.HitCount
	}
	return total
}

// Empty reports whether the analysis carries no data at all, which is what a
// failed CSV fetch degrades to.
func (a *MatchAnalysis) Empty() bool {
	return a.RowCount == 0
}

// ---- Match records ----

// MatchSummary is a lightweight record for list/show commands and the
// matches table.
type MatchSummary struct {
	MatchID   string
	CSVHash   string
	Name      string
	MatchDate string
	Source    string // "local" or "backend"
	Status    string // backend processing status; "done" for local ingests
	FrameRate float64
	RowCount  int
}

// Processing states reported by the analysis backend.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)
