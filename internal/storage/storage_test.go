package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testGame(pid int, team, date, muid string, pts float64) model.GameRecord {
	return model.GameRecord{
		NumDate:    date,
		DateText:   "Jan 1",
		Opponent:   "Clemson",
		MatchID:    muid,
		MinPct:     30,
		Pts:        pts,
		Team:       team,
		PlayerName: "Player",
		PlayerID:   pid,
		Year:       2026,
	}
}

func TestOpenAppliesPragmas(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open file db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var mode string
	if err := db.conn.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var fk int
	if err := db.conn.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query foreign_keys: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestGameRecordsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	records := []model.GameRecord{
		testGame(1, "Duke", "20260110", "m2", 20),
		testGame(1, "Duke", "20260101", "m1", 10),
		testGame(2, "UNC", "20260101", "m1", 8),
	}
	if err := db.InsertGameRecords(ctx, records); err != nil {
		t.Fatalf("InsertGameRecords: %v", err)
	}

	all, err := db.GameRecords(ctx, 2026)
	if err != nil {
		t.Fatalf("GameRecords: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rows, got %d", len(all))
	}

	games, err := db.PlayerGameRecords(ctx, 1, 2026, "Duke")
	if err != nil {
		t.Fatalf("PlayerGameRecords: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 rows for pid 1, got %d", len(games))
	}
	// Ordered by numdate ascending.
	if games[0].NumDate != "20260101" || games[1].NumDate != "20260110" {
		t.Errorf("rows not in date order: %s, %s", games[0].NumDate, games[1].NumDate)
	}
	if games[0].Pts != 10 || games[0].MinPct != 30 {
		t.Errorf("row values mismatch: %+v", games[0])
	}
}

func TestInsertGameRecordsIdempotent(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	g := testGame(1, "Duke", "20260101", "m1", 10)
	if err := db.InsertGameRecords(ctx, []model.GameRecord{g}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	g.Pts = 14
	if err := db.InsertGameRecords(ctx, []model.GameRecord{g}); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	games, err := db.PlayerGameRecords(ctx, 1, 2026, "Duke")
	if err != nil {
		t.Fatalf("PlayerGameRecords: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 row after replace, got %d", len(games))
	}
	if games[0].Pts != 14 {
		t.Errorf("expected replaced row with Pts 14, got %v", games[0].Pts)
	}
}

func TestSeasonRatingLookup(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	ratings := []model.SeasonRating{
		{PlayerName: "A", Team: "Duke", Conf: "ACC", GP: 20, PlayerID: 1, Year: 2026,
			Porpag: 4.2, DRtg: 95.5, Role: "Scoring PG", Class: "So", Height: "6-5"},
		{PlayerName: "B", Team: "UNC", Conf: "ACC", GP: 18, PlayerID: 2, Year: 2026},
	}
	if err := db.InsertSeasonRatings(ctx, ratings); err != nil {
		t.Fatalf("InsertSeasonRatings: %v", err)
	}

	r, err := db.SeasonRating(ctx, 1, 2026)
	if err != nil {
		t.Fatalf("SeasonRating: %v", err)
	}
	if r == nil {
		t.Fatal("expected ratings row for pid 1")
	}
	if r.Porpag != 4.2 || r.Role != "Scoring PG" || r.Conf != "ACC" {
		t.Errorf("ratings row mismatch: %+v", r)
	}

	missing, err := db.SeasonRating(ctx, 99, 2026)
	if err != nil {
		t.Fatalf("SeasonRating missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown player")
	}
}

func TestTeamRatingsRoundTrip(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	teams := []model.TeamRating{
		{Rank: 2, Team: "UNC", Conf: "ACC", Record: "18-4", AdjOE: 118.2},
		{Rank: 1, Team: "Duke", Conf: "ACC", Record: "20-2", AdjOE: 125.1, WAB: 8.5},
	}
	if err := db.InsertTeamRatings(ctx, 2026, teams); err != nil {
		t.Fatalf("InsertTeamRatings: %v", err)
	}

	got, err := db.TeamRatings(ctx, 2026)
	if err != nil {
		t.Fatalf("TeamRatings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	// Ordered by rank: Duke first.
	if got[0].Team != "Duke" || got[0].WAB != 8.5 {
		t.Errorf("first team = %+v, want Duke", got[0])
	}

	other, err := db.TeamRatings(ctx, 2025)
	if err != nil {
		t.Fatalf("TeamRatings other year: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no teams for 2025, got %d", len(other))
	}
}

func TestSeasonAveragesAndPlayers(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	avgs := []model.SeasonAverages{
		{PlayerID: 1, Year: 2026, Team: "Duke", PlayerName: "A", GamesPlayed: 20, Pts: 12.5, EFG: 0.55},
		{PlayerID: 2, Year: 2026, Team: "Duke", PlayerName: "B", GamesPlayed: 18, Pts: 18.0},
		{PlayerID: 3, Year: 2026, Team: "UNC", PlayerName: "C", GamesPlayed: 21, Pts: 9.0},
	}
	if err := db.InsertSeasonAverages(ctx, avgs); err != nil {
		t.Fatalf("InsertSeasonAverages: %v", err)
	}

	all, err := db.SeasonAverages(ctx, 2026)
	if err != nil {
		t.Fatalf("SeasonAverages: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rows, got %d", len(all))
	}

	duke, err := db.Players(ctx, "Duke", 2026)
	if err != nil {
		t.Fatalf("Players: %v", err)
	}
	if len(duke) != 2 {
		t.Fatalf("expected 2 Duke players, got %d", len(duke))
	}
	// Ordered by points descending.
	if duke[0].PlayerName != "B" || duke[1].PlayerName != "A" {
		t.Errorf("players not ordered by pts: %s, %s", duke[0].PlayerName, duke[1].PlayerName)
	}
	if duke[1].GamesPlayed != 20 || duke[1].EFG != 0.55 {
		t.Errorf("player row mismatch: %+v", duke[1])
	}
}

func TestSeasonPercentilesRoundTrip(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	pcts := []model.SeasonPercentiles{
		{PlayerID: 1, Year: 2026, Team: "Duke", PlayerName: "A", Pts: 90.0, EFG: 75.0},
	}
	if err := db.InsertSeasonPercentiles(ctx, pcts); err != nil {
		t.Fatalf("InsertSeasonPercentiles: %v", err)
	}

	got, err := db.SeasonPercentiles(ctx, 2026)
	if err != nil {
		t.Fatalf("SeasonPercentiles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Pts != 90.0 || got[0].EFG != 75.0 || got[0].PlayerID != 1 {
		t.Errorf("percentile row mismatch: %+v", got[0])
	}
}

func TestOverviewAndDeleteYear(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	records := []model.GameRecord{
		testGame(1, "Duke", "20260101", "m1", 10),
		testGame(2, "UNC", "20260101", "m1", 8),
	}
	old := testGame(3, "UK", "20250101", "m9", 5)
	old.Year = 2025
	records = append(records, old)

	if err := db.InsertGameRecords(ctx, records); err != nil {
		t.Fatalf("InsertGameRecords: %v", err)
	}
	if err := db.InsertSeasonAverages(ctx, []model.SeasonAverages{
		{PlayerID: 1, Year: 2026, Team: "Duke"},
	}); err != nil {
		t.Fatalf("InsertSeasonAverages: %v", err)
	}

	o, err := db.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.GameRecords != 3 || o.Players != 3 || o.Teams != 3 || o.SeasonAvgRows != 1 {
		t.Errorf("overview mismatch: %+v", o)
	}
	if len(o.Years) != 2 || o.Years[0] != 2025 || o.Years[1] != 2026 {
		t.Errorf("overview years = %v, want [2025 2026]", o.Years)
	}

	if err := db.DeleteYear(ctx, 2026); err != nil {
		t.Fatalf("DeleteYear: %v", err)
	}
	o2, err := db.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview after delete: %v", err)
	}
	if o2.GameRecords != 1 || o2.SeasonAvgRows != 0 {
		t.Errorf("overview after delete mismatch: %+v", o2)
	}
	if len(o2.Years) != 1 || o2.Years[0] != 2025 {
		t.Errorf("years after delete = %v, want [2025]", o2.Years)
	}
}
