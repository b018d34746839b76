package storage

import (
	"database/sql"
	"fmt"

	"github.com/Vibora-FCAI2025/padel-metrics/internal/model"
)

// MatchExistsByHash returns true if a match with the given CSV hash is
// already stored.
func (db *DB) MatchExistsByHash(csvHash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE csv_hash = ?", csvHash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch inserts a match record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertMatch(summary model.MatchSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO matches(id, csv_hash, name, match_date, source, status, frame_rate, row_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.MatchID, summary.CSVHash, summary.Name, summary.MatchDate,
		summary.Source, summary.Status, summary.FrameRate, summary.RowCount,
	)
	return err
}

// InsertAnalysis stores the full analysis output for a match in one
// transaction, replacing any rows left by a previous ingest of the same
// match.
func (db *DB) InsertAnalysis(a *model.MatchAnalysis) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"player_stats", "ball_stats", "velocity_samples", "heatmap_points"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE match_id = ?", a.MatchID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_stats(match_id, slot, name, total_distance, avg_velocity, max_velocity, hit_count)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	for _, p := range a.Players {
		if _, err := stmt.Exec(a.MatchID, p.Slot, p.Name,
			p.TotalDistance, p.AvgVelocity, p.MaxVelocity, p.HitCount); err != nil {
			stmt.Close()
			return fmt.Errorf("insert player_stats slot %d: %w", p.Slot, err)
		}
	}
	stmt.Close()

	if _, err := tx.Exec(`
		INSERT INTO ball_stats(match_id, total_distance, avg_velocity, max_velocity, avg_acceleration, bounce_count)
		VALUES (?,?,?,?,?,?)`,
		a.MatchID, a.Ball.TotalDistance, a.Ball.AvgVelocity, a.Ball.MaxVelocity,
		a.Ball.AvgAcceleration, a.Ball.BounceCount); err != nil {
		return fmt.Errorf("insert ball_stats: %w", err)
	}

	sampleStmt, err := tx.Prepare(`
		INSERT INTO velocity_samples(match_id, entity, seq, t_label, velocity, acceleration)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	insertSamples := func(samples []model.VelocitySample) error {
		for _, s := range samples {
			if _, err := sampleStmt.Exec(s.MatchID, s.Entity, s.Row, s.Time, s.Velocity, s.Acceleration); err != nil {
				return fmt.Errorf("insert velocity_samples %s/%d: %w", s.Entity, s.Row, err)
			}
		}
		return nil
	}
	if err := insertSamples(a.BallSeries); err != nil {
		sampleStmt.Close()
		return err
	}
	for _, series := range a.PlayerSeries {
		if err := insertSamples(series); err != nil {
			sampleStmt.Close()
			return err
		}
	}
	sampleStmt.Close()

	pointStmt, err := tx.Prepare(`
		INSERT INTO heatmap_points(match_id, entity, seq, x, y, intensity)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer pointStmt.Close()
	insertPoints := func(points []model.HeatmapPoint) error {
		for i, p := range points {
			if _, err := pointStmt.Exec(p.MatchID, p.Entity, i, p.X, p.Y, p.Intensity); err != nil {
				return fmt.Errorf("insert heatmap_points %s/%d: %w", p.Entity, i, err)
			}
		}
		return nil
	}
	for _, points := range a.PlayerHeatmaps {
		if err := insertPoints(points); err != nil {
			return err
		}
	}
	if err := insertPoints(a.BallHeatmap); err != nil {
		return err
	}
	if err := insertPoints(a.HitHeatmap); err != nil {
		return err
	}

	return tx.Commit()
}

// ListMatches returns all stored match summaries ordered by match_date desc.
func (db *DB) ListMatches() ([]model.MatchSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, csv_hash, name, match_date, source, status, frame_rate, row_count
		FROM matches ORDER BY match_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MatchSummary
	for rows.Next() {
		var s model.MatchSummary
		if err := rows.Scan(&s.MatchID, &s.CSVHash, &s.Name, &s.MatchDate,
			&s.Source, &s.Status, &s.FrameRate, &s.RowCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetMatchByPrefix finds the first match whose ID or CSV hash starts with the
// given prefix.
func (db *DB) GetMatchByPrefix(prefix string) (*model.MatchSummary, error) {
	var s model.MatchSummary
	err := db.conn.QueryRow(`
		SELECT id, csv_hash, name, match_date, source, status, frame_rate, row_count
		FROM matches WHERE id LIKE ? OR csv_hash LIKE ? LIMIT 1`, prefix+"%", prefix+"%").
		Scan(&s.MatchID, &s.CSVHash, &s.Name, &s.MatchDate,
			&s.Source, &s.Status, &s.FrameRate, &s.RowCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPlayerStats returns the per-slot player stats for a match, ordered by slot.
func (db *DB) GetPlayerStats(matchID string) ([]model.PlayerStats, error) {
	rows, err := db.conn.Query(`
		SELECT slot, name, total_distance, avg_velocity, max_velocity, hit_count
		FROM player_stats WHERE match_id = ? ORDER BY slot`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlayerStats
	for rows.Next() {
		var p model.PlayerStats
		if err := rows.Scan(&p.Slot, &p.Name, &p.TotalDistance,
			&p.AvgVelocity, &p.MaxVelocity, &p.HitCount); err != nil {
			return nil, err
		}
		p.MatchID = matchID
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetBallStats returns the ball stats for a match, or nil if none stored.
func (db *DB) GetBallStats(matchID string) (*model.BallStats, error) {
	var b model.BallStats
	err := db.conn.QueryRow(`
		SELECT total_distance, avg_velocity, max_velocity, avg_acceleration, bounce_count
		FROM ball_stats WHERE match_id = ?`, matchID).
		Scan(&b.TotalDistance, &b.AvgVelocity, &b.MaxVelocity, &b.AvgAcceleration, &b.BounceCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.MatchID = matchID
	return &b, nil
}

// GetVelocitySamples returns the stored velocity series for one entity of a
// match, in source-row order.
func (db *DB) GetVelocitySamples(matchID, entity string) ([]model.VelocitySample, error) {
	rows, err := db.conn.Query(`
		SELECT seq, t_label, velocity, acceleration
		FROM velocity_samples WHERE match_id = ? AND entity = ? ORDER BY seq`, matchID, entity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.VelocitySample
	for rows.Next() {
		var s model.VelocitySample
		if err := rows.Scan(&s.Row, &s.Time, &s.Velocity, &s.Acceleration); err != nil {
			return nil, err
		}
		s.MatchID = matchID
		s.Entity = entity
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetHeatmapPoints returns the stored heatmap points for one entity of a match.
func (db *DB) GetHeatmapPoints(matchID, entity string) ([]model.HeatmapPoint, error) {
	rows, err := db.conn.Query(`
		SELECT x, y, intensity
		FROM heatmap_points WHERE match_id = ? AND entity = ? ORDER BY seq`, matchID, entity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HeatmapPoint
	for rows.Next() {
		var p model.HeatmapPoint
		if err := rows.Scan(&p.X, &p.Y, &p.Intensity); err != nil {
			return nil, err
		}
		p.MatchID = matchID
		p.Entity = entity
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteMatch removes a match and all of its derived rows.
func (db *DB) DeleteMatch(matchID string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"heatmap_points", "velocity_samples", "ball_stats", "player_stats", "matches"} {
		col := "match_id"
		if table == "matches" {
			col = "id"
		}
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE "+col+" = ?", matchID); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return tx.Commit()
}
