package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
	"github.com/Vibora-FCAI2025/padel-metrics/internal/storage"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMatchHeader prints a one-line summary header for the match.
func PrintMatchHeader(w io.Writer, s model.MatchSummary) {
	hash := s.CSVHash
	if len(hash) > 12 {
		hash = hash[:12]
	}
	fmt.Fprintf(w, "\nMatch: %s  |  Date: %s  |  Source: %s  |  Rows: %d  |  Hash: %s\n\n",
		s.Name, s.MatchDate, s.Source, s.RowCount, hash)
}

// PrintPlayerTable prints the player stats table to stdout.
func PrintPlayerTable(stats []model.PlayerStats) {
	PrintPlayerTableTo(os.Stdout, stats)
}

// PrintPlayerTableTo writes the player stats table to the provided writer.
// Columns: SLOT | NAME | DISTANCE | AVG_VEL | MAX_VEL | HITS
func PrintPlayerTableTo(w io.Writer, stats []model.PlayerStats) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("SLOT", "NAME", "DISTANCE", "AVG_VEL", "MAX_VEL", "HITS")

	for _, s := range stats {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", s.Slot)
		}
		table.Append(
			strconv.Itoa(s.Slot),
			name,
			fmt.Sprintf("%.2f", s.TotalDistance),
			fmt.Sprintf("%.2f", s.AvgVelocity),
			fmt.Sprintf("%.2f", s.MaxVelocity),
			strconv.Itoa(s.HitCount),
		)
	}
	table.Render()
}

// PrintBallTable prints the ball stats table.
func PrintBallTable(w io.Writer, b model.BallStats) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("DISTANCE", "AVG_VEL", "MAX_VEL", "AVG_ACCEL", "BOUNCES")
	table.Append(
		fmt.Sprintf("%.2f", b.TotalDistance),
		fmt.Sprintf("%.2f", b.AvgVelocity),
		fmt.Sprintf("%.2f", b.MaxVelocity),
		fmt.Sprintf("%.2f", b.AvgAcceleration),
		fmt.Sprintf("%.1f", b.BounceCount),
	)
	table.Render()
}

// PrintMatchList prints one row per stored match.
// Columns: ID | NAME | DATE | SOURCE | STATUS | ROWS
func PrintMatchList(w io.Writer, matches []model.MatchSummary) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("ID", "NAME", "DATE", "SOURCE", "STATUS", "ROWS")

	for _, m := range matches {
		id := m.MatchID
		if len(id) > 12 {
			id = id[:12]
		}
		table.Append(
			id,
			m.Name,
			m.MatchDate,
			m.Source,
			m.Status,
			strconv.Itoa(m.RowCount),
		)
	}
	table.Render()
}

// PrintSlotAggregateTable prints per-slot stats rolled up across all matches.
func PrintSlotAggregateTable(w io.Writer, aggs []storage.SlotAggregate) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("SLOT", "MATCHES", "DISTANCE", "AVG_VEL", "MAX_VEL", "HITS")

	for _, a := range aggs {
		table.Append(
			strconv.Itoa(a.Slot),
			strconv.Itoa(a.Matches),
			fmt.Sprintf("%.2f", a.TotalDistance),
			fmt.Sprintf("%.2f", a.AvgVelocity),
			fmt.Sprintf("%.2f", a.MaxVelocity),
			strconv.Itoa(a.TotalHits),
		)
	}
	table.Render()
}

// PrintSourceTable prints match counts grouped by ingest source.
func PrintSourceTable(w io.Writer, counts []storage.SourceCount) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	table.Header("SOURCE", "MATCHES")

	for _, c := range counts {
		table.Append(c.Source, strconv.Itoa(c.Matches))
	}
	table.Render()
}

// PrintOverview prints database-wide aggregate numbers.
func PrintOverview(w io.Writer, ov *storage.Overview) {
	fmt.Fprintf(w, "Matches: %d  |  Frames: %d", ov.TotalMatches, ov.TotalRows)
	if ov.EarliestMatch != "" {
		fmt.Fprintf(w, "  |  From: %s  To: %s", ov.EarliestMatch, ov.LatestMatch)
	}
	fmt.Fprintln(w)
}
