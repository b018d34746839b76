package storage

// Overview holds aggregate numbers about the whole database for the summary
// command.
type Overview struct {
	TotalMatches  int
	EarliestMatch string
	LatestMatch   string
	TotalRows     int
}

// SourceCount is the number of matches ingested from one source.
type SourceCount struct {
	Source  string
	Matches int
}

// SlotAggregate rolls one player slot up across all stored matches.
type SlotAggregate struct {
	Slot          int
	Matches       int
	TotalDistance float64
	AvgVelocity   float64 // mean of per-match means
	MaxVelocity   float64
	TotalHits     int
}

// GetOverview returns database-wide aggregate numbers.
func (db *DB) GetOverview() (*Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       COALESCE(MIN(match_date), ''),
		       COALESCE(MAX(match_date), ''),
		       COALESCE(SUM(row_count), 0)
		FROM matches`).
		Scan(&ov.TotalMatches, &ov.EarliestMatch, &ov.LatestMatch, &ov.TotalRows)
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

// GetSourceCounts returns match counts grouped by ingest source.
func (db *DB) GetSourceCounts() ([]SourceCount, error) {
	rows, err := db.conn.Query(`
		SELECT source, COUNT(1) FROM matches GROUP BY source ORDER BY COUNT(1) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SourceCount
	for rows.Next() {
		var sc SourceCount
		if err := rows.Scan(&sc.Source, &sc.Matches); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// GetSlotAggregates rolls player stats up across all stored matches, one row
// per player slot.
func (db *DB) GetSlotAggregates() ([]SlotAggregate, error) {
	rows, err := db.conn.Query(`
		SELECT slot, COUNT(1),
		       COALESCE(SUM(total_distance), 0),
		       COALESCE(AVG(avg_velocity), 0),
		       COALESCE(MAX(max_velocity), 0),
		       COALESCE(SUM(hit_count), 0)
		FROM player_stats GROUP BY slot ORDER BY slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SlotAggregate
	for rows.Next() {
		var a SlotAggregate
		if err := rows.Scan(&a.Slot, &a.Matches, &a.TotalDistance,
			&a.AvgVelocity, &a.MaxVelocity, &a.TotalHits); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
