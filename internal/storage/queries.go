package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// yearFilter appends "WHERE year = ?" when a season is given; year 0 selects
// every season.
func yearFilter(query string, year int) (string, []any) {
	if year == 0 {
		return query, nil
	}
	return query + " WHERE year = ?", []any{int64(year)}
}

// InsertGameRecords bulk-inserts game records in one transaction. Uses
// INSERT OR REPLACE so re-ingesting a feed is idempotent.
func (db *DB) InsertGameRecords(ctx context.Context, records []model.GameRecord) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf("INSERT OR REPLACE INTO game_stats(%s) VALUES (%s)",
		colList(gameCols), placeholders(len(gameCols)))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		if _, err := stmt.ExecContext(ctx, gameValues(&records[i])...); err != nil {
			return fmt.Errorf("insert game_stats for pid %d: %w", records[i].PlayerID, err)
		}
	}
	return tx.Commit()
}

// GameRecords returns every stored game, optionally limited to one season.
func (db *DB) GameRecords(ctx context.Context, year int) ([]model.GameRecord, error) {
	query, args := yearFilter(fmt.Sprintf("SELECT %s FROM game_stats", colList(gameCols)), year)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// PlayerGameRecords returns one player-season's games ordered by date.
func (db *DB) PlayerGameRecords(ctx context.Context, playerID, year int, team string) ([]model.GameRecord, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM game_stats WHERE pid = ? AND year = ? AND team = ? ORDER BY numdate",
		colList(gameCols))
	rows, err := db.conn.QueryContext(ctx, query, int64(playerID), int64(year), team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// InsertSeasonRatings bulk-inserts season ratings rows in one transaction.
func (db *DB) InsertSeasonRatings(ctx context.Context, ratings []model.SeasonRating) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf("INSERT OR REPLACE INTO season_ratings(%s) VALUES (%s)",
		colList(ratingCols), placeholders(len(ratingCols)))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range ratings {
		if _, err := stmt.ExecContext(ctx, ratingValues(&ratings[i])...); err != nil {
			return fmt.Errorf("insert season_ratings for pid %d: %w", ratings[i].PlayerID, err)
		}
	}
	return tx.Commit()
}

// SeasonRating returns the ratings row for one player-season, or nil when
// the player has none.
func (db *DB) SeasonRating(ctx context.Context, playerID, year int) (*model.SeasonRating, error) {
	query := fmt.Sprintf("SELECT %s FROM season_ratings WHERE pid = ? AND year = ? LIMIT 1",
		colList(ratingCols))
	r, err := scanRating(db.conn.QueryRowContext(ctx, query, int64(playerID), int64(year)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertTeamRatings bulk-inserts a season's team rows in one transaction.
func (db *DB) InsertTeamRatings(ctx context.Context, year int, teams []model.TeamRating) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf("INSERT OR REPLACE INTO team_ratings(%s) VALUES (%s)",
		colList(teamCols), placeholders(len(teamCols)))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range teams {
		if _, err := stmt.ExecContext(ctx, teamValues(year, &teams[i])...); err != nil {
			return fmt.Errorf("insert team_ratings for %s: %w", teams[i].Team, err)
		}
	}
	return tx.Commit()
}

// TeamRatings returns a season's team rows ordered by rank.
func (db *DB) TeamRatings(ctx context.Context, year int) ([]model.TeamRating, error) {
	query := fmt.Sprintf("SELECT %s FROM team_ratings WHERE year = ? ORDER BY rank", colList(teamCols))
	rows, err := db.conn.QueryContext(ctx, query, int64(year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TeamRating
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// InsertSeasonAverages bulk-inserts computed season averages.
func (db *DB) InsertSeasonAverages(ctx context.Context, avgs []model.SeasonAverages) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf("INSERT OR REPLACE INTO season_avg(%s) VALUES (%s)",
		colList(avgCols), placeholders(len(avgCols)))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range avgs {
		if _, err := stmt.ExecContext(ctx, avgValues(&avgs[i])...); err != nil {
			return fmt.Errorf("insert season_avg for pid %d: %w", avgs[i].PlayerID, err)
		}
	}
	return tx.Commit()
}

// SeasonAverages returns stored season averages, optionally for one season.
func (db *DB) SeasonAverages(ctx context.Context, year int) ([]model.SeasonAverages, error) {
	query, args := yearFilter(fmt.Sprintf("SELECT %s FROM season_avg", colList(avgCols)), year)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeasonAverages
	for rows.Next() {
		a, err := scanAvg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// InsertSeasonPercentiles bulk-inserts computed percentile profiles.
func (db *DB) InsertSeasonPercentiles(ctx context.Context, pcts []model.SeasonPercentiles) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := fmt.Sprintf("INSERT OR REPLACE INTO season_pct(%s) VALUES (%s)",
		colList(pctCols), placeholders(len(pctCols)))
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range pcts {
		if _, err := stmt.ExecContext(ctx, pctValues(&pcts[i])...); err != nil {
			return fmt.Errorf("insert season_pct for pid %d: %w", pcts[i].PlayerID, err)
		}
	}
	return tx.Commit()
}

// SeasonPercentiles returns stored percentile profiles, optionally for one
// season.
func (db *DB) SeasonPercentiles(ctx context.Context, year int) ([]model.SeasonPercentiles, error) {
	query, args := yearFilter(fmt.Sprintf("SELECT %s FROM season_pct", colList(pctCols)), year)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeasonPercentiles
	for rows.Next() {
		p, err := scanPct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Players returns stored season averages for one team-season ordered by
// points descending.
func (db *DB) Players(ctx context.Context, team string, year int) ([]model.SeasonAverages, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM season_avg WHERE team = ? AND year = ? ORDER BY pts DESC",
		colList(avgCols))
	rows, err := db.conn.QueryContext(ctx, query, team, int64(year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeasonAverages
	for rows.Next() {
		a, err := scanAvg(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Overview reports row counts and stored seasons for the summary command.
func (db *DB) Overview(ctx context.Context) (model.Overview, error) {
	var o model.Overview
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(1) FROM game_stats", &o.GameRecords},
		{"SELECT COUNT(DISTINCT pid) FROM game_stats", &o.Players},
		{"SELECT COUNT(DISTINCT team) FROM game_stats", &o.Teams},
		{"SELECT COUNT(1) FROM season_avg", &o.SeasonAvgRows},
		{"SELECT COUNT(1) FROM season_ratings", &o.RatingRows},
		{"SELECT COUNT(1) FROM team_ratings", &o.TeamRows},
	}
	for _, c := range counts {
		if err := db.conn.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return o, err
		}
	}

	rows, err := db.conn.QueryContext(ctx, "SELECT DISTINCT year FROM game_stats ORDER BY year")
	if err != nil {
		return o, err
	}
	defer rows.Close()
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return o, err
		}
		o.Years = append(o.Years, y)
	}
	return o, rows.Err()
}

// DeleteYear removes every row for a season across all tables.
func (db *DB) DeleteYear(ctx context.Context, year int) error {
	tables := []string{"game_stats", "season_ratings", "team_ratings", "season_avg", "season_pct"}
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE year = ?", int64(year)); err != nil {
			return fmt.Errorf("delete %s for %d: %w", table, year, err)
		}
	}
	return tx.Commit()
}
