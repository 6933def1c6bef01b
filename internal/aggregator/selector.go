package aggregator

import (
	"sort"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// matchKey filters records down to one (player, year, team).
func matchKey(records []model.GameRecord, playerID, year int, team string) []model.GameRecord {
	var out []model.GameRecord
	for i := range records {
		g := &records[i]
		if g.PlayerID == playerID && g.Year == year && g.Team == team {
			out = append(out, *g)
		}
	}
	return out
}

// SelectSeason returns every game for the given (player, year, team), in no
// particular order. ErrNoGames if nothing matches.
func SelectSeason(records []model.GameRecord, playerID, year int, team string) ([]model.GameRecord, error) {
	games := matchKey(records, playerID, year, team)
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}

// SelectLastN returns the player's most recent n games in chronological
// order. The input is never assumed sorted: the match set is sorted by
// NumDate ascending before the tail is taken. Fewer than n available games
// is not an error; all of them are returned.
func SelectLastN(records []model.GameRecord, playerID, year int, team string, n int) ([]model.GameRecord, error) {
	games := matchKey(records, playerID, year, team)
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	sort.Slice(games, func(i, j int) bool { return games[i].NumDate < games[j].NumDate })
	if n > 0 && len(games) > n {
		games = games[len(games)-n:]
	}
	return games, nil
}

// SelectDateRange returns the player's games whose date key lies in the
// closed interval [start, end]. The comparison is lexicographic, which is
// chronological because NumDate is fixed-width and zero-padded. An empty
// start or end leaves that side of the window unbounded.
func SelectDateRange(records []model.GameRecord, playerID, year int, team, start, end string) ([]model.GameRecord, error) {
	all := matchKey(records, playerID, year, team)
	var games []model.GameRecord
	for i := range all {
		if start != "" && all[i].NumDate < start {
			continue
		}
		if end != "" && all[i].NumDate > end {
			continue
		}
		games = append(games, all[i])
	}
	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}
