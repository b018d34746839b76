// Package parser turns raw tracking CSV text into an indexed row table.
//
// Tracking CSVs are machine-generated: one header line, one data row per
// video frame, comma-separated fields with no quoting or embedded commas.
// Column names vary in case and padding between backend versions, so header
// resolution is case-insensitive and whitespace-trimming. A missing column is
// not an error; callers get a -1 index and degrade that statistic to "no
// data".
package parser

import (
	"math"
	"strconv"
	"strings"
)

// Table is the parsed form of one tracking CSV: a build-once header resolver
// plus the ordered data rows. It is read-only after Parse.
type Table struct {
	index map[string]int
	rows  [][]string
}

// Parse splits raw CSV text into a Table. The first line is the header;
// every subsequent non-empty line is a data row. There is no RFC-4180
// quoting support and none is needed for backend output.
func Parse(text string) *Table {
	t := &Table{index: make(map[string]int)}

	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return t
	}

	for i, name := range strings.Split(lines[0], ",") {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}

	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.rows = append(t.rows, strings.Split(line, ","))
	}
	return t
}

// Column resolves a logical column name to its index in the header, or -1
// when the header has no such column. Matching trims whitespace and ignores
// case, so " Player1_Vnorm " and "player1_vnorm" resolve identically.
func (t *Table) Column(name string) int {
	idx, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return -1
	}
	return idx
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Float returns the field at (row, col) parsed as a finite float64.
// It reports false for an absent column (-1), a short row, or a field that
// does not parse to a finite number; callers skip such samples rather than
// zero-filling them.
func (t *Table) Float(row, col int) (float64, bool) {
	if col < 0 || row < 0 || row >= len(t.rows) {
		return 0, false
	}
	fields := t.rows[row]
	if col >= len(fields) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[col]), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Int returns the field at (row, col) parsed as an exact integer. Fields
// holding non-integral values report false; indicator columns are compared
// with strict equality downstream, never truthiness.
func (t *Table) Int(row, col int) (int, bool) {
	v, ok := t.Float(row, col)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}
