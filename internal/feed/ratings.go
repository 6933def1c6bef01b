package feed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// ratingColumns is the number of columns in one season-ratings CSV row. The
// feed ships without a header line; the order is fixed upstream.
const ratingColumns = 64

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// decodeRatingRow maps one positional CSV row onto a SeasonRating.
func decodeRatingRow(row []string) (model.SeasonRating, error) {
	var sr model.SeasonRating
	if len(row) < ratingColumns {
		return sr, fmt.Errorf("row has %d columns, want %d", len(row), ratingColumns)
	}

	var err error
	num := func(i int, dst *float64) {
		if err != nil {
			return
		}
		var e error
		if *dst, e = parseFloat(row[i]); e != nil {
			err = fmt.Errorf("column %d %q: %w", i, row[i], e)
		}
	}
	integer := func(i int, dst *int) {
		if err != nil {
			return
		}
		var e error
		if *dst, e = parseInt(row[i]); e != nil {
			err = fmt.Errorf("column %d %q: %w", i, row[i], e)
		}
	}

	sr.PlayerName = row[0]
	sr.Team = row[1]
	sr.Conf = row[2]
	integer(3, &sr.GP)
	num(4, &sr.MinPct)
	num(5, &sr.ORtg)
	num(6, &sr.Usage)
	num(7, &sr.EFG)
	num(8, &sr.TSPct)
	num(9, &sr.ORBPct)
	num(10, &sr.DRBPct)
	num(11, &sr.ASTPct)
	num(12, &sr.TOPct)
	num(13, &sr.FTM)
	num(14, &sr.FTA)
	num(15, &sr.FTPct)
	num(16, &sr.TwoPM)
	num(17, &sr.TwoPA)
	num(18, &sr.TwoPct)
	num(19, &sr.TPM)
	num(20, &sr.TPA)
	num(21, &sr.TPPct)
	num(22, &sr.BlkPct)
	num(23, &sr.StlPct)
	num(24, &sr.FTR)
	sr.Class = row[25]
	sr.Height = row[26]
	sr.Number = row[27]
	num(28, &sr.Porpag)
	num(29, &sr.AdjOE)
	num(30, &sr.PFR)
	integer(31, &sr.Year)
	integer(32, &sr.PlayerID)
	sr.Role = row[33]
	num(34, &sr.RecRank)
	num(35, &sr.AstTov)
	num(36, &sr.RimMade)
	num(37, &sr.RimAtt)
	num(38, &sr.MidMade)
	num(39, &sr.MidAtt)
	num(40, &sr.RimPct)
	num(41, &sr.MidPct)
	num(42, &sr.DunksMade)
	num(43, &sr.DunksAtt)
	num(44, &sr.DunkPct)
	num(45, &sr.Pick)
	num(46, &sr.DRtg)
	num(47, &sr.AdjDRtg)
	num(48, &sr.Dporpag)
	num(49, &sr.Stops)
	num(50, &sr.BPM)
	num(51, &sr.OBPM)
	num(52, &sr.DBPM)
	num(53, &sr.GBPM)
	num(54, &sr.MP)
	num(55, &sr.OGBPM)
	num(56, &sr.DGBPM)
	num(57, &sr.OReb)
	num(58, &sr.DReb)
	num(59, &sr.TReb)
	num(60, &sr.Ast)
	num(61, &sr.Stl)
	num(62, &sr.Blk)
	num(63, &sr.Pts)

	return sr, err
}

// DecodeSeasonRatings decodes the headerless season-ratings CSV. Malformed
// rows are logged (up to maxRowErrors) and skipped.
func DecodeSeasonRatings(r io.Reader) ([]model.SeasonRating, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var ratings []model.SeasonRating
	errCount := 0
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ratings csv line %d: %w", line, err)
		}
		sr, err := decodeRatingRow(row)
		if err != nil {
			errCount++
			if errCount <= maxRowErrors {
				slog.Error("skipping malformed ratings row", "line", line, "err", err)
			} else if errCount == maxRowErrors+1 {
				slog.Error("further ratings row errors suppressed")
			}
			continue
		}
		ratings = append(ratings, sr)
	}
	if errCount > 0 {
		slog.Warn("ratings decode finished with errors", "rows", len(ratings), "skipped", errCount)
	}
	return ratings, nil
}

// DecodeTeamRatings decodes the team results feed, a plain JSON array.
func DecodeTeamRatings(r io.Reader) ([]model.TeamRating, error) {
	var teams []model.TeamRating
	if err := json.NewDecoder(r).Decode(&teams); err != nil {
		return nil, fmt.Errorf("decode team ratings: %w", err)
	}
	return teams, nil
}
