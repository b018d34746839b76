package analytics

import "github.com/Vibora-FCAI2025/padel-metrics/internal/model"

// Intensities computes the normalized local density of each point: the
// number of neighbouring points within radius, divided by the maximum such
// count in the set. An isolated point scores a raw 0, so a set where every
// point is beyond radius of every other (including a single-point set) comes
// out all zeros rather than dividing by zero.
//
// All-pairs O(n²); point sets are a few thousand entries per match. A
// uniform grid bucketed by radius would make this near-linear, but the
// neighbour-within-radius semantics must be kept bit-for-bit if that swap is
// ever made.
func Intensities(points []model.PositionPoint, radius float64) []float64 {
	out := make([]float64, len(points))
	if len(points) == 0 {
		return out
	}

	r2 := radius * radius
	raw := make([]int, len(points))
	maxRaw := 0
	for i, p := range points {
		count := 0
		for j, q := range points {
			if i == j {
				continue
			}
			dx := p.X - q.X
			dy := p.Y - q.Y
			if dx*dx+dy*dy <= r2 {
				count++
			}
		}
		raw[i] = count
		if count > maxRaw {
			maxRaw = count
		}
	}

	if maxRaw == 0 {
		return out
	}
	for i, c := range raw {
		out[i] = float64(c) / float64(maxRaw)
	}
	return out
}

// Heatmap annotates a point set with its density intensities.
func Heatmap(matchID, entity string, points []model.PositionPoint, radius float64) []model.HeatmapPoint {
	intensities := Intensities(points, radius)
	out := make([]model.HeatmapPoint, len(points))
	for i, p := range points {
		out[i] = model.HeatmapPoint{
			MatchID:   matchID,
			Entity:    entity,
			X:         p.X,
			Y:         p.Y,
			Intensity: intensities[i],
		}
	}
	return out
}
