package aggregator

import (
	"testing"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

func TestBuildSeasonAverages(t *testing.T) {
	var records []model.GameRecord
	// Player 1: two qualifying games and a DNP.
	records = append(records,
		model.GameRecord{NumDate: "20260101", PlayerID: 1, Year: 2026, Team: "DUKE", MinPct: 30, Pts: 10},
		model.GameRecord{NumDate: "20260105", PlayerID: 1, Year: 2026, Team: "DUKE", MinPct: 0, Pts: 0},
		model.GameRecord{NumDate: "20260110", PlayerID: 1, Year: 2026, Team: "DUKE", MinPct: 35, Pts: 20},
	)
	// Player 2 on another team.
	records = append(records,
		model.GameRecord{NumDate: "20260101", PlayerID: 2, Year: 2026, Team: "UNC", MinPct: 25, Pts: 8},
	)
	// Player 1 again, previous season: separate group.
	records = append(records,
		model.GameRecord{NumDate: "20250101", PlayerID: 1, Year: 2025, Team: "DUKE", MinPct: 20, Pts: 6},
	)
	// Invalid records: missing team, missing pid, missing year.
	records = append(records,
		model.GameRecord{NumDate: "20260101", PlayerID: 3, Year: 2026, Team: "", MinPct: 30, Pts: 9},
		model.GameRecord{NumDate: "20260101", PlayerID: 0, Year: 2026, Team: "UK", MinPct: 30, Pts: 9},
		model.GameRecord{NumDate: "20260101", PlayerID: 4, Year: 0, Team: "UK", MinPct: 30, Pts: 9},
	)
	// Player who never logged minutes: grouped but dropped by the filter.
	records = append(records,
		model.GameRecord{NumDate: "20260101", PlayerID: 5, Year: 2026, Team: "UCLA", MinPct: 0, Pts: 0},
	)

	avgs := BuildSeasonAverages(records)
	if len(avgs) != 3 {
		t.Fatalf("got %d season records, want 3: %+v", len(avgs), avgs)
	}

	// Output is sorted by (year, team, player).
	if avgs[0].Year != 2025 || avgs[0].PlayerID != 1 {
		t.Errorf("first record = %+v, want player 1 / 2025", avgs[0])
	}
	if avgs[1].Year != 2026 || avgs[1].Team != "DUKE" || avgs[1].PlayerID != 1 {
		t.Errorf("second record = %+v, want player 1 / 2026 / DUKE", avgs[1])
	}
	if avgs[2].Team != "UNC" || avgs[2].PlayerID != 2 {
		t.Errorf("third record = %+v, want player 2 / 2026 / UNC", avgs[2])
	}

	if avgs[1].GamesPlayed != 2 {
		t.Errorf("player 1 GamesPlayed = %d, want 2 (DNP excluded)", avgs[1].GamesPlayed)
	}
	if !almostEqual(avgs[1].Pts, 15.0) {
		t.Errorf("player 1 avg Pts = %v, want 15.0", avgs[1].Pts)
	}
}

func TestBuildSeasonAverages_Empty(t *testing.T) {
	if got := BuildSeasonAverages(nil); len(got) != 0 {
		t.Errorf("got %d records from empty input, want 0", len(got))
	}
}

// TestBuildSeasonAverages_ManyGroups exercises the worker pool with more
// groups than workers and checks the result is complete and ordered.
func TestBuildSeasonAverages_ManyGroups(t *testing.T) {
	var records []model.GameRecord
	for pid := 1; pid <= 200; pid++ {
		records = append(records, model.GameRecord{
			NumDate:  "20260101",
			PlayerID: pid,
			Year:     2026,
			Team:     "DUKE",
			MinPct:   30,
			Pts:      float64(pid),
		})
	}

	avgs := BuildSeasonAverages(records)
	if len(avgs) != 200 {
		t.Fatalf("got %d season records, want 200", len(avgs))
	}
	for i, a := range avgs {
		if a.PlayerID != i+1 {
			t.Fatalf("record %d has PlayerID %d, want %d", i, a.PlayerID, i+1)
		}
		if !almostEqual(a.Pts, float64(i+1)) {
			t.Fatalf("record %d avg Pts = %v, want %v", i, a.Pts, float64(i+1))
		}
	}
}
