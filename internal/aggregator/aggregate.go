// Package aggregator reduces per-game player records into season and rolling
// averages and ranks averages populations into percentile profiles. It is
// pure computation: no I/O, no shared state, inputs treated as immutable.
package aggregator

import (
	"errors"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// ErrNoGames is returned when a requested slice contains no qualifying games
// (none matched, or all were filtered out by the minutes filter). It is a
// distinct "no data" result: an all-zero averages record is never produced in
// its place.
var ErrNoGames = errors.New("no qualifying games")

// Aggregate reduces a slice of game records into one averages record for the
// given (player, year, team). Games where the player logged no minutes are
// dropped first; if nothing survives the filter, ErrNoGames is returned.
// GamesPlayed is always > 0 on success, so the mean divisions are safe.
func Aggregate(games []model.GameRecord, playerID, year int, team string) (model.SeasonAverages, error) {
	sums := make(map[string]float64, len(columns))
	played := 0

	for i := range games {
		g := &games[i]
		if g.MinPct <= 0 {
			continue
		}
		played++
		for _, c := range columns {
			sums[c.name] += c.game(g)
		}
	}
	if played == 0 {
		return model.SeasonAverages{}, ErrNoGames
	}

	avg := model.SeasonAverages{
		PlayerID:    playerID,
		Year:        year,
		Team:        team,
		PlayerName:  resolveName(games),
		GamesPlayed: played,
	}

	sum := func(name string) float64 { return sums[name] }
	gp := float64(played)
	for _, c := range columns {
		if c.ratio != nil {
			c.setAvg(&avg, c.ratio(sum))
		} else {
			c.setAvg(&avg, sums[c.name]/gp)
		}
	}
	return avg, nil
}

// resolveName returns the first non-empty display name in the slice, or
// "Unknown" when every record is nameless.
func resolveName(games []model.GameRecord) string {
	for i := range games {
		if games[i].PlayerName != "" {
			return games[i].PlayerName
		}
	}
	return "Unknown"
}
