package aggregator

import (
	"errors"
	"math"
	"testing"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// game builds a minimal record for player 42 / 2026 / DUKE with the given
// date, minutes and points.
func game(date string, minPct, pts float64) model.GameRecord {
	return model.GameRecord{
		NumDate:    date,
		PlayerID:   42,
		Year:       2026,
		Team:       "DUKE",
		PlayerName: "Test Player",
		MinPct:     minPct,
		Pts:        pts,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate_MinutesFilter(t *testing.T) {
	// Three games, minutes [20, 0, 30], points [10, 5, 20]. The zero-minute
	// game is dropped: games_played = 2, avg_pts = 15.0.
	games := []model.GameRecord{
		game("20260101", 20, 10),
		game("20260105", 0, 5),
		game("20260110", 30, 20),
	}

	avg, err := Aggregate(games, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", avg.GamesPlayed)
	}
	if !almostEqual(avg.Pts, 15.0) {
		t.Errorf("avg Pts = %v, want 15.0", avg.Pts)
	}
	if avg.PlayerID != 42 || avg.Year != 2026 || avg.Team != "DUKE" {
		t.Errorf("identity = (%d, %d, %q), want (42, 2026, DUKE)", avg.PlayerID, avg.Year, avg.Team)
	}
}

func TestAggregate_AllGamesFiltered(t *testing.T) {
	games := []model.GameRecord{
		game("20260101", 0, 10),
		game("20260105", -1, 5),
	}
	_, err := Aggregate(games, 42, 2026, "DUKE")
	if !errors.Is(err, ErrNoGames) {
		t.Fatalf("err = %v, want ErrNoGames", err)
	}
}

func TestAggregate_EmptySlice(t *testing.T) {
	_, err := Aggregate(nil, 42, 2026, "DUKE")
	if !errors.Is(err, ErrNoGames) {
		t.Fatalf("err = %v, want ErrNoGames", err)
	}
}

// TestAggregate_EffectiveFGFromSums verifies eFG% is computed from summed
// makes/attempts, not by averaging per-game percentages. Two games with very
// different attempt volumes make the two approaches diverge.
func TestAggregate_EffectiveFGFromSums(t *testing.T) {
	g1 := game("20260101", 25, 4)
	g1.TwoPM, g1.TwoPA = 2, 2 // 100% on 2 attempts
	g2 := game("20260105", 25, 4)
	g2.TwoPM, g2.TwoPA = 2, 20 // 10% on 20 attempts

	avg, err := Aggregate([]model.GameRecord{g1, g2}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ratio of sums: (2+2)/(2+20) = 4/22.
	want := 4.0 / 22.0
	if !almostEqual(avg.EFG, want) {
		t.Errorf("EFG = %v, want %v", avg.EFG, want)
	}

	// The naive mean of per-game eFG (1.0 and 0.1) would be 0.55.
	naive := (1.0 + 0.1) / 2
	if almostEqual(avg.EFG, naive) {
		t.Errorf("EFG = %v equals the naive per-game mean, must be ratio of sums", avg.EFG)
	}
}

func TestAggregate_TrueShootingFromSums(t *testing.T) {
	g1 := game("20260101", 25, 20)
	g1.TwoPA, g1.TPA, g1.FTA = 8, 4, 5
	g2 := game("20260105", 25, 10)
	g2.TwoPA, g2.TPA, g2.FTA = 2, 1, 0

	avg, err := Aggregate([]model.GameRecord{g1, g2}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// TS% = total pts / (2 * (2PA + 3PA + 0.44*FTA)) over summed totals.
	want := 30.0 / (2 * (10 + 5 + 0.44*5))
	if !almostEqual(avg.TSPct, want) {
		t.Errorf("TSPct = %v, want %v", avg.TSPct, want)
	}
}

func TestAggregate_ZeroAttemptsZeroRatios(t *testing.T) {
	g := game("20260101", 30, 0)
	avg, err := Aggregate([]model.GameRecord{g}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.EFG != 0 {
		t.Errorf("EFG = %v, want 0 with zero attempts", avg.EFG)
	}
	if avg.TSPct != 0 {
		t.Errorf("TSPct = %v, want 0 with zero attempts", avg.TSPct)
	}
}

// TestAggregate_RateFieldsAreSimpleMeans: the per-game rate fields are
// averaged as supplied, not re-derived.
func TestAggregate_RateFieldsAreSimpleMeans(t *testing.T) {
	g1 := game("20260101", 25, 0)
	g1.ORBPct, g1.ASTPct = 10, 30
	g2 := game("20260105", 25, 0)
	g2.ORBPct, g2.ASTPct = 20, 10

	avg, err := Aggregate([]model.GameRecord{g1, g2}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(avg.ORBPct, 15) {
		t.Errorf("ORBPct = %v, want 15", avg.ORBPct)
	}
	if !almostEqual(avg.ASTPct, 20) {
		t.Errorf("ASTPct = %v, want 20", avg.ASTPct)
	}
}

func TestAggregate_NameResolution(t *testing.T) {
	g1 := game("20260101", 20, 10)
	g1.PlayerName = ""
	g2 := game("20260105", 25, 12)
	g2.PlayerName = "J. Smith"

	avg, err := Aggregate([]model.GameRecord{g1, g2}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.PlayerName != "J. Smith" {
		t.Errorf("PlayerName = %q, want first non-empty name", avg.PlayerName)
	}
}

func TestAggregate_NamelessSliceGetsSentinel(t *testing.T) {
	g := game("20260101", 20, 10)
	g.PlayerName = ""
	avg, err := Aggregate([]model.GameRecord{g}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.PlayerName != "Unknown" {
		t.Errorf("PlayerName = %q, want \"Unknown\"", avg.PlayerName)
	}
}

// TestAggregate_DuplicateRecordsSummed: duplicate game rows are tolerated and
// simply accumulate.
func TestAggregate_DuplicateRecordsSummed(t *testing.T) {
	g := game("20260101", 20, 10)
	avg, err := Aggregate([]model.GameRecord{g, g}, 42, 2026, "DUKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2 (duplicates count)", avg.GamesPlayed)
	}
	if !almostEqual(avg.Pts, 10) {
		t.Errorf("avg Pts = %v, want 10", avg.Pts)
	}
}
