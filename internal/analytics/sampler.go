package analytics

import (
	"fmt"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/parser"
)

// sampleEntitySeries produces the downsampled velocity series for one entity.
// Rows are 1-indexed and row i is kept when i is a multiple of the stride,
// which bounds chart cardinality regardless of recording length. A kept row
// whose required fields fail to parse contributes no sample at all, so the
// series can be shorter than rowCount/stride on sparse data.
//
// accCol is -1 for player series; when it is a real column, both velocity and
// acceleration must parse for the row to contribute.
func sampleEntitySeries(matchID, entity string, t *parser.Table, velCol, accCol int, opts Options) []model.VelocitySample {
	if velCol < 0 {
		return nil
	}

	var out []model.VelocitySample
	for i := 1; i <= t.RowCount(); i++ {
		if i%opts.SampleStride != 0 {
			continue
		}
		v, ok := t.Float(i-1, velCol)
		if !ok {
			continue
		}
		s := model.VelocitySample{
			MatchID:  matchID,
			Entity:   entity,
			Row:      i,
			Time:     timeLabel(i, opts.FrameRate),
			Velocity: round2(v),
		}
		if accCol >= 0 {
			acc, ok := t.Float(i-1, accCol)
			if !ok {
				continue
			}
			s.Acceleration = round2(acc)
		}
		out = append(out, s)
	}
	return out
}

// timeLabel formats the wall-clock offset of 1-based row i as "M:SS",
// assuming a constant frame rate. Row indices increase monotonically, so the
// labels of a series are non-decreasing.
func timeLabel(row int, frameRate float64) string {
	seconds := int(float64(row-1) / frameRate)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
