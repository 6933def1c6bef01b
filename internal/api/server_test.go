package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoopsight/cbbmetrics/internal/model"
	"github.com/hoopsight/cbbmetrics/internal/pipeline"
	"github.com/hoopsight/cbbmetrics/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	games := []model.GameRecord{
		{NumDate: "20260101", MatchID: "m1", PlayerID: 1, Year: 2026, Team: "Duke", PlayerName: "A", MinPct: 30, Pts: 10},
		{NumDate: "20260110", MatchID: "m2", PlayerID: 1, Year: 2026, Team: "Duke", PlayerName: "A", MinPct: 35, Pts: 20},
		{NumDate: "20260101", MatchID: "m1", PlayerID: 2, Year: 2026, Team: "UNC", PlayerName: "B", MinPct: 28, Pts: 8},
	}
	if err := db.InsertGameRecords(ctx, games); err != nil {
		t.Fatalf("seed games: %v", err)
	}
	if _, err := pipeline.RecomputeSeason(ctx, db, 2026); err != nil {
		t.Fatalf("seed aggregates: %v", err)
	}
	if err := db.InsertTeamRatings(ctx, 2026, []model.TeamRating{
		{Rank: 1, Team: "Duke", Conf: "ACC", Record: "20-2", AdjOE: 125.1},
	}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	return NewServer(db)
}

func doGet(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPlayers(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/players?team=Duke&year=2026")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var players []model.SeasonAverages
	if err := json.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(players) != 1 || players[0].PlayerName != "A" {
		t.Errorf("players = %+v, want one Duke player", players)
	}
	if players[0].GamesPlayed != 2 || players[0].Pts != 15.0 {
		t.Errorf("player aggregate = %+v, want gp 2, pts 15.0", players[0])
	}
}

func TestPlayers_MissingParams(t *testing.T) {
	s := newTestServer(t)
	if rec := doGet(t, s, "/api/players?team=Duke"); rec.Code != http.StatusBadRequest {
		t.Errorf("missing year: status = %d, want 400", rec.Code)
	}
	if rec := doGet(t, s, "/api/players?team=Duke&year=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad year: status = %d, want 400", rec.Code)
	}
}

func TestPlayers_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/players?team=Nowhere&year=2026")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlayerGames(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/games?pid=1&year=2026&team=Duke")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var games []model.GameRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].NumDate != "20260101" {
		t.Errorf("games not in date order: %s first", games[0].NumDate)
	}
}

func TestRolling(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&last=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var r model.RollingReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Averages.GamesPlayed != 1 || r.Averages.Pts != 20.0 {
		t.Errorf("last-1 window = %+v, want gp 1, pts 20.0", r.Averages)
	}
	if r.Percentiles == nil {
		t.Error("expected percentile profile by default")
	}
}

func TestRolling_DateRange(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&start=20260101&end=20260105&pct=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var r model.RollingReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Averages.Pts != 10.0 {
		t.Errorf("range window pts = %v, want 10.0", r.Averages.Pts)
	}
	if r.Percentiles != nil {
		t.Error("pct=0 should omit percentiles")
	}
}

func TestRolling_NoGames(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=999&year=2026&team=Duke")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body)
	}
}

func TestRolling_StartOnly(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&start=20260105")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var r model.RollingReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Averages.GamesPlayed != 1 || r.Averages.Pts != 20.0 {
		t.Errorf("start-only window = %+v, want gp 1, pts 20.0", r.Averages)
	}
}

func TestRolling_BadPct(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&pct=no")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}

	// Boolean spellings other than 0/1 work too.
	rec = doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&pct=false")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var r model.RollingReport
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if r.Percentiles != nil {
		t.Error("pct=false should omit percentiles")
	}
}

func TestRolling_BadLast(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/player/rolling?pid=1&year=2026&team=Duke&last=zero")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTeams(t *testing.T) {
	s := newTestServer(t)
	rec := doGet(t, s, "/api/teams?year=2026")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var teams []model.TeamRating
	if err := json.Unmarshal(rec.Body.Bytes(), &teams); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(teams) != 1 || teams[0].Team != "Duke" {
		t.Errorf("teams = %+v, want Duke", teams)
	}

	if rec := doGet(t, s, "/api/teams?year=1999"); rec.Code != http.StatusNotFound {
		t.Errorf("empty season: status = %d, want 404", rec.Code)
	}
}
