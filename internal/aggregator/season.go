package aggregator

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

type groupKey struct {
	playerID int
	year     int
	team     string
}

// BuildSeasonAverages partitions the full game-record store by
// (player, year, team) and aggregates each group into one season-averages
// record. Records missing a player id, year, or team are logged and dropped.
// Groups are independent, so they are aggregated on a bounded worker pool;
// the returned population is complete when this function returns, which is
// the precondition for percentile ranking.
func BuildSeasonAverages(records []model.GameRecord) []model.SeasonAverages {
	groups := make(map[groupKey][]model.GameRecord)
	for i := range records {
		g := &records[i]
		if g.PlayerID == 0 || g.Year == 0 || g.Team == "" {
			slog.Warn("skipping game record with missing key fields",
				"pid", g.PlayerID, "year", g.Year, "team", g.Team, "date", g.NumDate)
			continue
		}
		k := groupKey{g.PlayerID, g.Year, g.Team}
		groups[k] = append(groups[k], *g)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	results := make([]model.SeasonAverages, len(keys))
	valid := make([]bool, len(keys))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(keys) {
		workers = len(keys)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				k := keys[i]
				avg, err := Aggregate(groups[k], k.playerID, k.year, k.team)
				if err != nil {
					continue // ErrNoGames: player never logged minutes
				}
				results[i] = avg
				valid[i] = true
			}
		}()
	}
	for i := range keys {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]model.SeasonAverages, 0, len(keys))
	for i := range results {
		if valid[i] {
			out = append(out, results[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}
