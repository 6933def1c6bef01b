// Package storage persists feed records and computed aggregates. Two
// backends implement the same Store interface: an embedded SQLite database
// for single-machine use and a ClickHouse cluster for shared deployments.
package storage

import (
	"context"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// Store is the persistence surface the commands and the API server run on.
// Inserts are idempotent: re-ingesting a feed replaces rows in place.
type Store interface {
	InsertGameRecords(ctx context.Context, records []model.GameRecord) error
	// GameRecords returns every stored game for a season; year 0 means all
	// seasons.
	GameRecords(ctx context.Context, year int) ([]model.GameRecord, error)
	PlayerGameRecords(ctx context.Context, playerID, year int, team string) ([]model.GameRecord, error)

	InsertSeasonRatings(ctx context.Context, ratings []model.SeasonRating) error
	// SeasonRating returns the ratings row for one player-season, or nil if
	// the player has none.
	SeasonRating(ctx context.Context, playerID, year int) (*model.SeasonRating, error)

	InsertTeamRatings(ctx context.Context, year int, teams []model.TeamRating) error
	TeamRatings(ctx context.Context, year int) ([]model.TeamRating, error)

	InsertSeasonAverages(ctx context.Context, avgs []model.SeasonAverages) error
	SeasonAverages(ctx context.Context, year int) ([]model.SeasonAverages, error)
	InsertSeasonPercentiles(ctx context.Context, pcts []model.SeasonPercentiles) error
	SeasonPercentiles(ctx context.Context, year int) ([]model.SeasonPercentiles, error)

	// Players returns the stored season averages for one team-season,
	// ordered by points descending.
	Players(ctx context.Context, team string, year int) ([]model.SeasonAverages, error)

	Overview(ctx context.Context) (model.Overview, error)
	// DeleteYear removes every row for a season from every table.
	DeleteYear(ctx context.Context, year int) error

	Close() error
}
