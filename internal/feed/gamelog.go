package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// gameLogColumns is the number of positional columns in one game-log row.
const gameLogColumns = 53

// maxRowErrors caps per-row decode error logging; further errors are counted
// but suppressed.
const maxRowErrors = 5

// asFloat coerces one feed cell to a float64. The feed mixes numbers with
// numeric strings, and uses null or "" for missing values, which decode to 0.
func asFloat(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return t, nil
	case string:
		if t == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("numeric cell %q: %w", t, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("numeric cell has type %T", v)
	}
}

// asInt coerces one feed cell to an int, tolerating floats like 2026.0 and
// numeric strings.
func asInt(v any) (int, error) {
	f, err := asFloat(v)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// asString requires a string cell; the feed never omits the textual columns.
func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("string cell has type %T", v)
	}
	return s, nil
}

// decodeGameRow maps one positional row onto a GameRecord.
func decodeGameRow(row []any) (model.GameRecord, error) {
	var g model.GameRecord
	if len(row) < gameLogColumns {
		return g, fmt.Errorf("row has %d columns, want %d", len(row), gameLogColumns)
	}

	var err error
	str := func(i int, dst *string) {
		if err != nil {
			return
		}
		var e error
		if *dst, e = asString(row[i]); e != nil {
			err = fmt.Errorf("column %d: %w", i, e)
		}
	}
	num := func(i int, dst *float64) {
		if err != nil {
			return
		}
		var e error
		if *dst, e = asFloat(row[i]); e != nil {
			err = fmt.Errorf("column %d: %w", i, e)
		}
	}
	integer := func(i int, dst *int) {
		if err != nil {
			return
		}
		var e error
		if *dst, e = asInt(row[i]); e != nil {
			err = fmt.Errorf("column %d: %w", i, e)
		}
	}

	str(0, &g.NumDate)
	str(1, &g.DateText)
	num(2, &g.OpStyle)
	num(3, &g.Quality)
	num(4, &g.Win1)
	str(5, &g.Opponent)
	str(6, &g.MatchID)
	num(7, &g.Win2)
	num(8, &g.MinPct)
	num(9, &g.ORtg)
	num(10, &g.Usage)
	num(11, &g.EFG)
	num(12, &g.TSPct)
	num(13, &g.ORBPct)
	num(14, &g.DRBPct)
	num(15, &g.ASTPct)
	num(16, &g.TOPct)
	num(17, &g.DunksMade)
	num(18, &g.DunksAtt)
	num(19, &g.RimMade)
	num(20, &g.RimAtt)
	num(21, &g.MidMade)
	num(22, &g.MidAtt)
	num(23, &g.TwoPM)
	num(24, &g.TwoPA)
	num(25, &g.TPM)
	num(26, &g.TPA)
	num(27, &g.FTM)
	num(28, &g.FTA)
	num(29, &g.BPMRound)
	num(30, &g.OBPM)
	num(31, &g.DBPM)
	num(32, &g.BPMNet)
	num(33, &g.Pts)
	num(34, &g.ORB)
	num(35, &g.DRB)
	num(36, &g.Ast)
	num(37, &g.Tov)
	num(38, &g.Stl)
	num(39, &g.Blk)
	num(40, &g.StlPct)
	num(41, &g.BlkPct)
	num(42, &g.PF)
	num(43, &g.Possessions)
	num(44, &g.BPM)
	num(45, &g.SBPM)
	str(46, &g.Loc)
	str(47, &g.Team)
	str(48, &g.PlayerName)
	num(49, &g.Inches)
	str(50, &g.Class)
	integer(51, &g.PlayerID)
	integer(52, &g.Year)

	return g, err
}

// DecodeGameLog decodes an uncompressed game-log feed: a JSON array of
// positional rows, one per player per game. Malformed rows are logged (up to
// maxRowErrors) and skipped; the rest of the feed still decodes.
func DecodeGameLog(r io.Reader) ([]model.GameRecord, error) {
	var raw [][]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode game log: %w", err)
	}

	records := make([]model.GameRecord, 0, len(raw))
	errCount := 0
	for i, row := range raw {
		g, err := decodeGameRow(row)
		if err != nil {
			errCount++
			if errCount <= maxRowErrors {
				slog.Error("skipping malformed game-log row", "row", i, "err", err)
			} else if errCount == maxRowErrors+1 {
				slog.Error("further game-log row errors suppressed")
			}
			continue
		}
		records = append(records, g)
	}
	if errCount > 0 {
		slog.Warn("game-log decode finished with errors", "rows", len(records), "skipped", errCount)
	}
	return records, nil
}
