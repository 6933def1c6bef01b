// Package report renders records and aggregates as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintGameLog prints a player's per-game lines in date order.
func PrintGameLog(w io.Writer, games []model.GameRecord) {
	table := newTable(w)
	table.Header(
		"DATE", "OPP", "LOC", "W", "MIN%", "PTS",
		"2PM-A", "3PM-A", "FTM-A", "ORB", "DRB", "AST", "TOV", "STL", "BLK",
		"ORTG", "USG%", "BPM",
	)

	for i := range games {
		g := &games[i]
		win := " "
		if g.Win1 > 0 {
			win = "W"
		}
		table.Append(
			g.DateText,
			g.Opponent,
			g.Loc,
			win,
			fmt.Sprintf("%.0f", g.MinPct),
			fmt.Sprintf("%.0f", g.Pts),
			fmt.Sprintf("%.0f-%.0f", g.TwoPM, g.TwoPA),
			fmt.Sprintf("%.0f-%.0f", g.TPM, g.TPA),
			fmt.Sprintf("%.0f-%.0f", g.FTM, g.FTA),
			fmt.Sprintf("%.0f", g.ORB),
			fmt.Sprintf("%.0f", g.DRB),
			fmt.Sprintf("%.0f", g.Ast),
			fmt.Sprintf("%.0f", g.Tov),
			fmt.Sprintf("%.0f", g.Stl),
			fmt.Sprintf("%.0f", g.Blk),
			fmt.Sprintf("%.1f", g.ORtg),
			fmt.Sprintf("%.1f", g.Usage),
			fmt.Sprintf("%.1f", g.BPM),
		)
	}
	table.Render()
}

// PrintSeasonTable prints season averages, one player per row.
func PrintSeasonTable(w io.Writer, avgs []model.SeasonAverages) {
	table := newTable(w)
	table.Header(
		"PLAYER", "TEAM", "GP", "MIN%", "PTS", "EFG%", "TS%",
		"ORB", "DRB", "AST", "TOV", "STL", "BLK", "ORTG", "USG%", "BPM",
	)

	for i := range avgs {
		a := &avgs[i]
		table.Append(
			a.PlayerName,
			a.Team,
			strconv.Itoa(a.GamesPlayed),
			fmt.Sprintf("%.1f", a.MinPct),
			fmt.Sprintf("%.1f", a.Pts),
			fmt.Sprintf("%.1f%%", a.EFG*100),
			fmt.Sprintf("%.1f%%", a.TSPct*100),
			fmt.Sprintf("%.1f", a.ORB),
			fmt.Sprintf("%.1f", a.DRB),
			fmt.Sprintf("%.1f", a.Ast),
			fmt.Sprintf("%.1f", a.Tov),
			fmt.Sprintf("%.1f", a.Stl),
			fmt.Sprintf("%.1f", a.Blk),
			fmt.Sprintf("%.1f", a.ORtg),
			fmt.Sprintf("%.1f", a.Usage),
			fmt.Sprintf("%.1f", a.BPM),
		)
	}
	table.Render()
}

// PrintTeamTable prints the team ratings table in rank order.
func PrintTeamTable(w io.Writer, teams []model.TeamRating) {
	table := newTable(w)
	table.Header("RANK", "TEAM", "CONF", "RECORD", "ADJOE", "ADJDE", "BARTHAG", "WAB", "TEMPO")

	for i := range teams {
		t := &teams[i]
		table.Append(
			strconv.Itoa(t.Rank),
			t.Team,
			t.Conf,
			t.Record,
			fmt.Sprintf("%.1f", t.AdjOE),
			fmt.Sprintf("%.1f", t.AdjDE),
			fmt.Sprintf("%.3f", t.Barthag),
			fmt.Sprintf("%.1f", t.WAB),
			fmt.Sprintf("%.1f", t.AdjTempo),
		)
	}
	table.Render()
}

// rollingRow is one line of the rolling report: a statistic, its window
// average, and optionally its cohort percentile.
type rollingRow struct {
	label string
	avg   string
	pct   float64
}

// PrintRollingReport prints a windowed report for one player: a header with
// season-long context, then the averages with percentile ranks when present.
func PrintRollingReport(w io.Writer, r *model.RollingReport) {
	a := &r.Averages
	fmt.Fprintf(w, "\n%s  |  %s %d  |  GP: %d\n", a.PlayerName, a.Team, a.Year, a.GamesPlayed)
	if r.Conf != "" || r.Role != "" {
		fmt.Fprintf(w, "%s  |  %s  |  %s  |  %s  |  PORPAG: %.2f  |  DRTG: %.1f  |  ADJOE: %.1f\n",
			r.Conf, r.Role, r.Class, r.Height, r.Porpag, r.DRtg, r.AdjOE)
	}
	fmt.Fprintln(w)

	p := r.Percentiles
	rows := []rollingRow{
		{"MIN%", fmt.Sprintf("%.1f", a.MinPct), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.MinPct })},
		{"PTS", fmt.Sprintf("%.1f", a.Pts), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Pts })},
		{"EFG%", fmt.Sprintf("%.1f%%", a.EFG*100), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.EFG })},
		{"TS%", fmt.Sprintf("%.1f%%", a.TSPct*100), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.TSPct })},
		{"ORTG", fmt.Sprintf("%.1f", a.ORtg), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.ORtg })},
		{"USG%", fmt.Sprintf("%.1f", a.Usage), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Usage })},
		{"ORB", fmt.Sprintf("%.1f", a.ORB), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.ORB })},
		{"DRB", fmt.Sprintf("%.1f", a.DRB), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.DRB })},
		{"AST", fmt.Sprintf("%.1f", a.Ast), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Ast })},
		{"TOV", fmt.Sprintf("%.1f", a.Tov), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Tov })},
		{"STL", fmt.Sprintf("%.1f", a.Stl), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Stl })},
		{"BLK", fmt.Sprintf("%.1f", a.Blk), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.Blk })},
		{"BPM", fmt.Sprintf("%.1f", a.BPM), pctOf(p, func(p *model.SeasonPercentiles) float64 { return p.BPM })},
	}

	table := newTable(w)
	if p != nil {
		table.Header("STAT", "AVG", "PCTL")
	} else {
		table.Header("STAT", "AVG")
	}
	for _, row := range rows {
		if p != nil {
			table.Append(row.label, row.avg, fmt.Sprintf("%.0f", row.pct))
		} else {
			table.Append(row.label, row.avg)
		}
	}
	table.Render()
}

func pctOf(p *model.SeasonPercentiles, get func(*model.SeasonPercentiles) float64) float64 {
	if p == nil {
		return 0
	}
	return get(p)
}

// PrintOverview prints the store summary.
func PrintOverview(w io.Writer, o model.Overview) {
	fmt.Fprintf(w, "Game records:       %d\n", o.GameRecords)
	fmt.Fprintf(w, "Players:            %d\n", o.Players)
	fmt.Fprintf(w, "Teams:              %d\n", o.Teams)
	fmt.Fprintf(w, "Season avg rows:    %d\n", o.SeasonAvgRows)
	fmt.Fprintf(w, "Season ratings:     %d\n", o.RatingRows)
	fmt.Fprintf(w, "Team ratings:       %d\n", o.TeamRows)
	if len(o.Years) > 0 {
		fmt.Fprint(w, "Seasons:            ")
		for i, y := range o.Years {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%d", y)
		}
		fmt.Fprintln(w)
	}
}
