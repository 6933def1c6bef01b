// Package feed downloads and decodes the upstream statistics feeds: the
// gzipped per-game advanced log, the season ratings CSV, and the team
// results JSON.
package feed

import (
	"compress/gzip"
	"fmt"
	"net/http"
	"time"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// DefaultBaseURL is the root of the public feed host.
const DefaultBaseURL = "https://barttorvik.com"

// Client fetches feed files over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a feed client rooted at baseURL; pass DefaultBaseURL for
// the public host.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// get performs a GET and returns the response on HTTP 200. The caller owns
// the body.
func (c *Client) get(path string) (*http.Response, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return resp, nil
}

// GameLog downloads and decodes the full per-game advanced log for a season.
// The feed is a gzipped JSON array of positional rows; rows that fail to
// decode are logged and skipped.
func (c *Client) GameLog(year int) ([]model.GameRecord, error) {
	path := fmt.Sprintf("/%d_all_advgames.json.gz", year)
	resp, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	defer gz.Close()

	return DecodeGameLog(gz)
}

// SeasonRatings downloads and decodes the season-long advanced ratings CSV
// for a season.
func (c *Client) SeasonRatings(year int) ([]model.SeasonRating, error) {
	path := fmt.Sprintf("/getadvstats.php?year=%d&csv=1", year)
	resp, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return DecodeSeasonRatings(resp.Body)
}

// TeamRatings downloads and decodes the team results table for a season.
func (c *Client) TeamRatings(year int) ([]model.TeamRating, error) {
	path := fmt.Sprintf("/%d_team_results.json", year)
	resp, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return DecodeTeamRatings(resp.Body)
}
