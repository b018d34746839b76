package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/analytics"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// viridisColors is the palette used for heatmap intensity coloring.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteMatchCharts renders an HTML page with the velocity line chart and one
// heatmap scatter per entity for a single match.
func WriteMatchCharts(w io.Writer, summary model.MatchSummary, a *model.MatchAnalysis) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Padel Match %s", summary.Name)

	page.AddCharts(velocityLine(summary, a))

	for slot := 1; slot <= model.NumPlayers; slot++ {
		if hm := a.PlayerHeatmaps[slot-1]; len(hm) > 0 {
			page.AddCharts(heatmapScatter(fmt.Sprintf("Player %d Positions", slot), hm))
		}
	}
	if len(a.BallHeatmap) > 0 {
		page.AddCharts(heatmapScatter("Ball Positions", a.BallHeatmap))
	}
	if len(a.HitHeatmap) > 0 {
		page.AddCharts(heatmapScatter("Ball Hits", a.HitHeatmap))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}

// velocityLine plots every entity's sampled velocity over match time on a
// shared axis. Series are aligned by source row; a series missing a row gets
// the echarts missing-value marker.
func velocityLine(summary model.MatchSummary, a *model.MatchAnalysis) *charts.Line {
	series := make(map[string][]model.VelocitySample, model.NumPlayers+1)
	series["Ball"] = a.BallSeries
	for slot := 1; slot <= model.NumPlayers; slot++ {
		series[fmt.Sprintf("Player %d", slot)] = a.PlayerSeries[slot-1]
	}

	// Union of sampled rows across all series, ascending.
	labelByRow := make(map[int]string)
	for _, ss := range series {
		for _, s := range ss {
			labelByRow[s.Row] = s.Time
		}
	}
	rows := make([]int, 0, len(labelByRow))
	for row := range labelByRow {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = labelByRow[row]
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Velocity Over Time", Subtitle: summary.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Velocity"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		byRow := make(map[int]float64, len(series[name]))
		for _, s := range series[name] {
			byRow[s.Row] = s.Velocity
		}
		data := make([]opts.LineData, len(rows))
		for i, row := range rows {
			if v, ok := byRow[row]; ok {
				data[i] = opts.LineData{Value: v}
			} else {
				data[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(name, data, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	}
	return line
}

// heatmapScatter plots points on a court-bounded plane colored by normalized
// density intensity.
func heatmapScatter(title string, points []model.HeatmapPoint) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y, p.Intensity}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "500px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d", len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Min: analytics.CourtXMin, Max: analytics.CourtXMax,
			Name: "X (m)", NameLocation: "middle", NameGap: 25,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: analytics.CourtYMin, Max: analytics.CourtYMax,
			Name: "Y (m)", NameLocation: "middle", NameGap: 30,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	scatter.AddSeries("density", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return scatter
}
