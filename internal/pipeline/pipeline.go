// Package pipeline wires feeds, storage, and the aggregation engine into the
// operations the CLI commands and the API server share.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hoopsight/cbbmetrics/internal/aggregator"
	"github.com/hoopsight/cbbmetrics/internal/feed"
	"github.com/hoopsight/cbbmetrics/internal/model"
	"github.com/hoopsight/cbbmetrics/internal/storage"
)

// Ingest downloads a season's feeds and persists them: the per-game log, the
// season ratings table, and the team results table.
func Ingest(ctx context.Context, st storage.Store, fc *feed.Client, year int) error {
	games, err := fc.GameLog(year)
	if err != nil {
		return fmt.Errorf("fetch game log: %w", err)
	}
	if err := st.InsertGameRecords(ctx, games); err != nil {
		return fmt.Errorf("store game log: %w", err)
	}
	slog.Info("ingested game log", "year", year, "records", len(games))

	ratings, err := fc.SeasonRatings(year)
	if err != nil {
		return fmt.Errorf("fetch season ratings: %w", err)
	}
	if err := st.InsertSeasonRatings(ctx, ratings); err != nil {
		return fmt.Errorf("store season ratings: %w", err)
	}
	slog.Info("ingested season ratings", "year", year, "rows", len(ratings))

	teams, err := fc.TeamRatings(year)
	if err != nil {
		return fmt.Errorf("fetch team ratings: %w", err)
	}
	if err := st.InsertTeamRatings(ctx, year, teams); err != nil {
		return fmt.Errorf("store team ratings: %w", err)
	}
	slog.Info("ingested team ratings", "year", year, "rows", len(teams))
	return nil
}

// RecomputeSeason rebuilds the stored season averages and percentile
// profiles for one season from the stored game log. Returns the number of
// player-seasons computed.
func RecomputeSeason(ctx context.Context, st storage.Store, year int) (int, error) {
	games, err := st.GameRecords(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("load game log: %w", err)
	}

	avgs := aggregator.BuildSeasonAverages(games)
	if err := st.InsertSeasonAverages(ctx, avgs); err != nil {
		return 0, fmt.Errorf("store season averages: %w", err)
	}

	// Ranking runs on the complete set of averages, never a partial one.
	pcts := aggregator.RankPopulation(avgs)
	if err := st.InsertSeasonPercentiles(ctx, pcts); err != nil {
		return 0, fmt.Errorf("store season percentiles: %w", err)
	}
	return len(avgs), nil
}

// RollingOptions selects the window for a rolling report. Start/End take
// precedence over LastN; with neither set the whole season is used.
type RollingOptions struct {
	LastN       int
	Start, End  string
	Percentiles bool
}

// Rolling computes a windowed report for one player-season: averages over
// the selected games, enriched with season-long ratings, and optionally
// ranked against the stored full-season cohort. Returns
// aggregator.ErrNoGames when the window holds no qualifying games.
func Rolling(ctx context.Context, st storage.Store, playerID, year int, team string, opts RollingOptions) (*model.RollingReport, error) {
	games, err := st.PlayerGameRecords(ctx, playerID, year, team)
	if err != nil {
		return nil, fmt.Errorf("load player games: %w", err)
	}

	switch {
	case opts.Start != "" || opts.End != "":
		games, err = aggregator.SelectDateRange(games, playerID, year, team, opts.Start, opts.End)
	case opts.LastN > 0:
		games, err = aggregator.SelectLastN(games, playerID, year, team, opts.LastN)
	default:
		games, err = aggregator.SelectSeason(games, playerID, year, team)
	}
	if err != nil {
		return nil, err
	}

	avg, err := aggregator.Aggregate(games, playerID, year, team)
	if err != nil {
		return nil, err
	}

	report := &model.RollingReport{Averages: avg}

	rating, err := st.SeasonRating(ctx, playerID, year)
	if err != nil {
		return nil, fmt.Errorf("load season rating: %w", err)
	}
	if rating != nil {
		report.Conf = rating.Conf
		report.Role = rating.Role
		report.Class = rating.Class
		report.Height = rating.Height
		report.Porpag = rating.Porpag
		report.Dporpag = rating.Dporpag
		report.DRtg = rating.DRtg
		report.AdjOE = rating.AdjOE
	} else {
		slog.Debug("no season rating for player", "pid", playerID, "year", year)
	}

	if opts.Percentiles {
		cohort, err := st.SeasonAverages(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("load season cohort: %w", err)
		}
		pct := aggregator.RankAgainst(avg, cohort)
		report.Percentiles = &pct
	}
	return report, nil
}
