package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

//go:embed schema_clickhouse.sql
var clickhouseSchemaSQL string

// ClickHouse is the column-store backed Store, for deployments where the
// database is shared between the ingest CLI and the API server.
type ClickHouse struct {
	conn driver.Conn
}

// OpenClickHouse connects to a ClickHouse server and applies the schema.
func OpenClickHouse(ctx context.Context, addr, database, username, password string) (*ClickHouse, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to clickhouse: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	// The driver executes one statement per call.
	for _, stmt := range strings.Split(clickhouseSchemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := conn.Exec(ctx, stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply clickhouse schema: %w", err)
		}
	}
	return &ClickHouse{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *ClickHouse) Close() error {
	return c.conn.Close()
}

// insertBatch streams rows into a table through one prepared batch. The
// ReplacingMergeTree engine deduplicates re-ingested rows on merge.
func (c *ClickHouse) insertBatch(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", table, err)
	}
	for _, row := range rows {
		if err := batch.Append(row...); err != nil {
			return fmt.Errorf("append to %s batch: %w", table, err)
		}
	}
	return batch.Send()
}

func (c *ClickHouse) InsertGameRecords(ctx context.Context, records []model.GameRecord) error {
	rows := make([][]any, len(records))
	for i := range records {
		rows[i] = gameValues(&records[i])
	}
	return c.insertBatch(ctx, "game_stats", rows)
}

func (c *ClickHouse) GameRecords(ctx context.Context, year int) ([]model.GameRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM game_stats FINAL", colList(gameCols))
	var args []any
	if year != 0 {
		query += " WHERE year = ?"
		args = append(args, int64(year))
	}
	rows, err := c.conn.Query(ctx, query, args...)
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

func (c *ClickHouse) PlayerGameRecords(ctx context.Context, playerID, year int, team string) ([]model.GameRecord, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM game_stats FINAL WHERE pid = ? AND year = ? AND team = ? ORDER BY numdate",
		colList(gameCols))
	rows, err := c.conn.Query(ctx, query, int64(playerID), int64(year), team)
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

func (c *ClickHouse) InsertSeasonRatings(ctx context.Context, ratings []model.SeasonRating) error {
	rows := make([][]any, len(ratings))
	for i := range ratings {
		rows[i] = ratingValues(&ratings[i])
	}
	return c.insertBatch(ctx, "season_ratings", rows)
}

func (c *ClickHouse) SeasonRating(ctx context.Context, playerID, year int) (*model.SeasonRating, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM season_ratings FINAL WHERE pid = ? AND year = ? LIMIT 1",
		colList(ratingCols))
	r, err := scanRating(c.conn.QueryRow(ctx, query, int64(playerID), int64(year)))
	if err != nil {
		// No ratings row for this player-season.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (c *ClickHouse) InsertTeamRatings(ctx context.Context, year int, teams []model.TeamRating) error {
	rows := make([][]any, len(teams))
	for i := range teams {
		rows[i] = teamValues(year, &teams[i])
	}
	return c.insertBatch(ctx, "team_ratings", rows)
}

func (c *ClickHouse) TeamRatings(ctx context.Context, year int) ([]model.TeamRating, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM team_ratings FINAL WHERE year = ? ORDER BY rank", colList(teamCols))
	rows, err := c.conn.Query(ctx, query, int64(year))
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

func (c *ClickHouse) InsertSeasonAverages(ctx context.Context, avgs []model.SeasonAverages) error {
	rows := make([][]any, len(avgs))
	for i := range avgs {
		rows[i] = avgValues(&avgs[i])
	}
	return c.insertBatch(ctx, "season_avg", rows)
}

func (c *ClickHouse) SeasonAverages(ctx context.Context, year int) ([]model.SeasonAverages, error) {
	query := fmt.Sprintf("SELECT %s FROM season_avg FINAL", colList(avgCols))
	var args []any
	if year != 0 {
		query += " WHERE year = ?"
		args = append(args, int64(year))
	}
	rows, err := c.conn.Query(ctx, query, args...)
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

func (c *ClickHouse) InsertSeasonPercentiles(ctx context.Context, pcts []model.SeasonPercentiles) error {
	rows := make([][]any, len(pcts))
	for i := range pcts {
		rows[i] = pctValues(&pcts[i])
	}
	return c.insertBatch(ctx, "season_pct", rows)
}

func (c *ClickHouse) SeasonPercentiles(ctx context.Context, year int) ([]model.SeasonPercentiles, error) {
	query := fmt.Sprintf("SELECT %s FROM season_pct FINAL", colList(pctCols))
	var args []any
	if year != 0 {
		query += " WHERE year = ?"
		args = append(args, int64(year))
	}
	rows, err := c.conn.Query(ctx, query, args...)
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

func (c *ClickHouse) Players(ctx context.Context, team string, year int) ([]model.SeasonAverages, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM season_avg FINAL WHERE team = ? AND year = ? ORDER BY pts DESC",
		colList(avgCols))
	rows, err := c.conn.Query(ctx, query, team, int64(year))
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

func (c *ClickHouse) Overview(ctx context.Context) (model.Overview, error) {
	var o model.Overview
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT count() FROM game_stats FINAL", &o.GameRecords},
		{"SELECT uniqExact(pid) FROM game_stats", &o.Players},
		{"SELECT uniqExact(team) FROM game_stats", &o.Teams},
		{"SELECT count() FROM season_avg FINAL", &o.SeasonAvgRows},
		{"SELECT count() FROM season_ratings FINAL", &o.RatingRows},
		{"SELECT count() FROM team_ratings FINAL", &o.TeamRows},
	}
	for _, q := range counts {
		var n uint64
		if err := c.conn.QueryRow(ctx, q.query).Scan(&n); err != nil {
			return o, err
		}
		*q.dst = int(n)
	}

	rows, err := c.conn.Query(ctx, "SELECT DISTINCT year FROM game_stats ORDER BY year")
	if err != nil {
		return o, err
	}
	defer rows.Close()
	for rows.Next() {
		var y int64
		if err := rows.Scan(&y); err != nil {
			return o, err
		}
		o.Years = append(o.Years, int(y))
	}
	return o, rows.Err()
}

func (c *ClickHouse) DeleteYear(ctx context.Context, year int) error {
	tables := []string{"game_stats", "season_ratings", "team_ratings", "season_avg", "season_pct"}
	for _, table := range tables {
		query := fmt.Sprintf("ALTER TABLE %s DELETE WHERE year = ?", table)
		if err := c.conn.Exec(ctx, query, int64(year)); err != nil {
			return fmt.Errorf("delete %s for %d: %w", table, year, err)
		}
	}
	return nil
}
