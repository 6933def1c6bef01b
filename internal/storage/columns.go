package storage

import (
	"strings"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// scanner is satisfied by database/sql rows and by the column-store driver's
// rows, so both backends share one set of scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// gameCols is the column order for the game_stats table. Insert values and
// scans follow this order exactly.
var gameCols = []string{
	"numdate", "datetext", "opstyle", "quality", "win1", "opponent", "muid", "win2",
	"min_per", "o_rtg", "usg", "e_fg", "ts_per", "orb_per", "drb_per", "ast_per", "to_per",
	"dunks_made", "dunks_att", "rim_made", "rim_att", "mid_made", "mid_att",
	"two_pm", "two_pa", "tpm", "tpa", "ftm", "fta",
	"bpm_rd", "obpm", "dbpm", "bpm_net",
	"pts", "orb", "drb", "ast", "tov", "stl", "blk", "stl_per", "blk_per", "pf",
	"possessions", "bpm", "sbpm",
	"loc", "team", "player_name", "inches", "class", "pid", "year",
}

func gameValues(g *model.GameRecord) []any {
	return []any{
		g.NumDate, g.DateText, g.OpStyle, g.Quality, g.Win1, g.Opponent, g.MatchID, g.Win2,
		g.MinPct, g.ORtg, g.Usage, g.EFG, g.TSPct, g.ORBPct, g.DRBPct, g.ASTPct, g.TOPct,
		g.DunksMade, g.DunksAtt, g.RimMade, g.RimAtt, g.MidMade, g.MidAtt,
		g.TwoPM, g.TwoPA, g.TPM, g.TPA, g.FTM, g.FTA,
		g.BPMRound, g.OBPM, g.DBPM, g.BPMNet,
		g.Pts, g.ORB, g.DRB, g.Ast, g.Tov, g.Stl, g.Blk, g.StlPct, g.BlkPct, g.PF,
		g.Possessions, g.BPM, g.SBPM,
		g.Loc, g.Team, g.PlayerName, g.Inches, g.Class, int64(g.PlayerID), int64(g.Year),
	}
}

func scanGame(sc scanner) (model.GameRecord, error) {
	var g model.GameRecord
	var pid, year int64
	err := sc.Scan(
		&g.NumDate, &g.DateText, &g.OpStyle, &g.Quality, &g.Win1, &g.Opponent, &g.MatchID, &g.Win2,
		&g.MinPct, &g.ORtg, &g.Usage, &g.EFG, &g.TSPct, &g.ORBPct, &g.DRBPct, &g.ASTPct, &g.TOPct,
		&g.DunksMade, &g.DunksAtt, &g.RimMade, &g.RimAtt, &g.MidMade, &g.MidAtt,
		&g.TwoPM, &g.TwoPA, &g.TPM, &g.TPA, &g.FTM, &g.FTA,
		&g.BPMRound, &g.OBPM, &g.DBPM, &g.BPMNet,
		&g.Pts, &g.ORB, &g.DRB, &g.Ast, &g.Tov, &g.Stl, &g.Blk, &g.StlPct, &g.BlkPct, &g.PF,
		&g.Possessions, &g.BPM, &g.SBPM,
		&g.Loc, &g.Team, &g.PlayerName, &g.Inches, &g.Class, &pid, &year,
	)
	g.PlayerID, g.Year = int(pid), int(year)
	return g, err
}

// ratingCols is the column order for the season_ratings table, matching the
// upstream CSV order.
var ratingCols = []string{
	"player_name", "team", "conf", "gp",
	"min_per", "o_rtg", "usg", "e_fg", "ts_per", "orb_per", "drb_per", "ast_per", "to_per",
	"ftm", "fta", "ft_per", "two_pm", "two_pa", "two_p_per", "tpm", "tpa", "tp_per",
	"blk_per", "stl_per", "ftr",
	"yr", "ht", "num", "porpag", "adjoe", "pfr", "year", "pid", "player_type",
	"rec_rank", "ast_tov",
	"rim_made", "rim_attempted", "mid_made", "mid_attempted", "rim_pct", "mid_pct",
	"dunks_made", "dunks_attempted", "dunk_pct",
	"pick", "drtg", "adrtg", "dporpag", "stops",
	"bpm", "obpm", "dbpm", "gbpm", "mp", "ogbpm", "dgbpm",
	"oreb", "dreb", "treb", "ast", "stl", "blk", "pts",
}

func ratingValues(r *model.SeasonRating) []any {
	return []any{
		r.PlayerName, r.Team, r.Conf, int64(r.GP),
		r.MinPct, r.ORtg, r.Usage, r.EFG, r.TSPct, r.ORBPct, r.DRBPct, r.ASTPct, r.TOPct,
		r.FTM, r.FTA, r.FTPct, r.TwoPM, r.TwoPA, r.TwoPct, r.TPM, r.TPA, r.TPPct,
		r.BlkPct, r.StlPct, r.FTR,
		r.Class, r.Height, r.Number, r.Porpag, r.AdjOE, r.PFR, int64(r.Year), int64(r.PlayerID), r.Role,
		r.RecRank, r.AstTov,
		r.RimMade, r.RimAtt, r.MidMade, r.MidAtt, r.RimPct, r.MidPct,
		r.DunksMade, r.DunksAtt, r.DunkPct,
		r.Pick, r.DRtg, r.AdjDRtg, r.Dporpag, r.Stops,
		r.BPM, r.OBPM, r.DBPM, r.GBPM, r.MP, r.OGBPM, r.DGBPM,
		r.OReb, r.DReb, r.TReb, r.Ast, r.Stl, r.Blk, r.Pts,
	}
}

func scanRating(sc scanner) (model.SeasonRating, error) {
	var r model.SeasonRating
	var gp, year, pid int64
	err := sc.Scan(
		&r.PlayerName, &r.Team, &r.Conf, &gp,
		&r.MinPct, &r.ORtg, &r.Usage, &r.EFG, &r.TSPct, &r.ORBPct, &r.DRBPct, &r.ASTPct, &r.TOPct,
		&r.FTM, &r.FTA, &r.FTPct, &r.TwoPM, &r.TwoPA, &r.TwoPct, &r.TPM, &r.TPA, &r.TPPct,
		&r.BlkPct, &r.StlPct, &r.FTR,
		&r.Class, &r.Height, &r.Number, &r.Porpag, &r.AdjOE, &r.PFR, &year, &pid, &r.Role,
		&r.RecRank, &r.AstTov,
		&r.RimMade, &r.RimAtt, &r.MidMade, &r.MidAtt, &r.RimPct, &r.MidPct,
		&r.DunksMade, &r.DunksAtt, &r.DunkPct,
		&r.Pick, &r.DRtg, &r.AdjDRtg, &r.Dporpag, &r.Stops,
		&r.BPM, &r.OBPM, &r.DBPM, &r.GBPM, &r.MP, &r.OGBPM, &r.DGBPM,
		&r.OReb, &r.DReb, &r.TReb, &r.Ast, &r.Stl, &r.Blk, &r.Pts,
	)
	r.GP, r.Year, r.PlayerID = int(gp), int(year), int(pid)
	return r, err
}

// teamCols is the column order for the team_ratings table. The feed carries
// no season column, so the table leads with one.
var teamCols = []string{
	"year", "rank", "team", "conf", "record",
	"adjoe", "adjoe_rank", "adjde", "adjde_rank", "barthag", "barthag_rank",
	"proj_wins", "proj_losses", "proj_conf_wins", "proj_conf_losses", "conf_record",
	"sos", "nconf_sos", "conf_sos", "proj_sos", "proj_nconf_sos", "proj_conf_sos",
	"elite_sos", "elite_ncsos",
	"opp_adjoe", "opp_adjde", "opp_proj_adjoe", "opp_proj_adjde",
	"conf_adjoe", "conf_adjde", "qual_adjoe", "qual_adjde", "qual_barthag", "qual_games",
	"fun", "conf_pf", "conf_pa", "conf_poss", "conf_adj_o", "conf_adj_d",
	"conf_sos_remain", "conf_win_perc", "wab", "wab_rank", "fun_rank", "adj_tempo",
}

func teamValues(year int, t *model.TeamRating) []any {
	return []any{
		int64(year), int64(t.Rank), t.Team, t.Conf, t.Record,
		t.AdjOE, int64(t.AdjOERank), t.AdjDE, int64(t.AdjDERank), t.Barthag, int64(t.BarthagRank),
		int64(t.ProjWins), int64(t.ProjLosses), int64(t.ProjConfWins), int64(t.ProjConfLosses), t.ConfRecord,
		t.SOS, t.NConfSOS, t.ConfSOS, t.ProjSOS, t.ProjNConfSOS, t.ProjConfSOS,
		t.EliteSOS, t.EliteNCSOS,
		t.OppAdjOE, t.OppAdjDE, t.OppProjAdjOE, t.OppProjAdjDE,
		t.ConfAdjOE, t.ConfAdjDE, t.QualAdjOE, t.QualAdjDE, t.QualBarthag, int64(t.QualGames),
		t.Fun, t.ConfPF, t.ConfPA, t.ConfPoss, t.ConfAdjO, t.ConfAdjD,
		t.ConfSOSRemain, t.ConfWinPct, t.WAB, int64(t.WABRank), int64(t.FunRank), t.AdjTempo,
	}
}

func scanTeam(sc scanner) (model.TeamRating, error) {
	var t model.TeamRating
	var year, rank, adjoeRank, adjdeRank, barthagRank int64
	var projW, projL, projCW, projCL, qualGames, wabRank, funRank int64
	err := sc.Scan(
		&year, &rank, &t.Team, &t.Conf, &t.Record,
		&t.AdjOE, &adjoeRank, &t.AdjDE, &adjdeRank, &t.Barthag, &barthagRank,
		&projW, &projL, &projCW, &projCL, &t.ConfRecord,
		&t.SOS, &t.NConfSOS, &t.ConfSOS, &t.ProjSOS, &t.ProjNConfSOS, &t.ProjConfSOS,
		&t.EliteSOS, &t.EliteNCSOS,
		&t.OppAdjOE, &t.OppAdjDE, &t.OppProjAdjOE, &t.OppProjAdjDE,
		&t.ConfAdjOE, &t.ConfAdjDE, &t.QualAdjOE, &t.QualAdjDE, &t.QualBarthag, &qualGames,
		&t.Fun, &t.ConfPF, &t.ConfPA, &t.ConfPoss, &t.ConfAdjO, &t.ConfAdjD,
		&t.ConfSOSRemain, &t.ConfWinPct, &t.WAB, &wabRank, &funRank, &t.AdjTempo,
	)
	t.Rank = int(rank)
	t.AdjOERank, t.AdjDERank, t.BarthagRank = int(adjoeRank), int(adjdeRank), int(barthagRank)
	t.ProjWins, t.ProjLosses = int(projW), int(projL)
	t.ProjConfWins, t.ProjConfLosses = int(projCW), int(projCL)
	t.QualGames, t.WABRank, t.FunRank = int(qualGames), int(wabRank), int(funRank)
	return t, err
}

// statCols is the shared tail of the season_avg and season_pct tables: one
// column per aggregated statistic.
var statCols = []string{
	"min_per", "o_rtg", "usg", "e_fg", "ts_per", "orb_per", "drb_per", "ast_per", "to_per",
	"dunks_made", "dunks_att", "rim_made", "rim_att", "mid_made", "mid_att",
	"two_pm", "two_pa", "tpm", "tpa", "ftm", "fta",
	"bpm_rd", "obpm", "dbpm", "bpm_net",
	"pts", "orb", "drb", "ast", "tov", "stl", "blk", "stl_per", "blk_per", "pf",
	"possessions", "bpm", "sbpm",
	"inches", "opstyle", "quality", "win1", "win2",
}

var avgCols = append([]string{"pid", "year", "team", "player_name", "games_played"}, statCols...)

func avgValues(a *model.SeasonAverages) []any {
	return []any{
		int64(a.PlayerID), int64(a.Year), a.Team, a.PlayerName, int64(a.GamesPlayed),
		a.MinPct, a.ORtg, a.Usage, a.EFG, a.TSPct, a.ORBPct, a.DRBPct, a.ASTPct, a.TOPct,
		a.DunksMade, a.DunksAtt, a.RimMade, a.RimAtt, a.MidMade, a.MidAtt,
		a.TwoPM, a.TwoPA, a.TPM, a.TPA, a.FTM, a.FTA,
		a.BPMRound, a.OBPM, a.DBPM, a.BPMNet,
		a.Pts, a.ORB, a.DRB, a.Ast, a.Tov, a.Stl, a.Blk, a.StlPct, a.BlkPct, a.PF,
		a.Possessions, a.BPM, a.SBPM,
		a.Inches, a.OpStyle, a.Quality, a.Win1, a.Win2,
	}
}

func scanAvg(sc scanner) (model.SeasonAverages, error) {
	var a model.SeasonAverages
	var pid, year, gp int64
	err := sc.Scan(
		&pid, &year, &a.Team, &a.PlayerName, &gp,
		&a.MinPct, &a.ORtg, &a.Usage, &a.EFG, &a.TSPct, &a.ORBPct, &a.DRBPct, &a.ASTPct, &a.TOPct,
		&a.DunksMade, &a.DunksAtt, &a.RimMade, &a.RimAtt, &a.MidMade, &a.MidAtt,
		&a.TwoPM, &a.TwoPA, &a.TPM, &a.TPA, &a.FTM, &a.FTA,
		&a.BPMRound, &a.OBPM, &a.DBPM, &a.BPMNet,
		&a.Pts, &a.ORB, &a.DRB, &a.Ast, &a.Tov, &a.Stl, &a.Blk, &a.StlPct, &a.BlkPct, &a.PF,
		&a.Possessions, &a.BPM, &a.SBPM,
		&a.Inches, &a.OpStyle, &a.Quality, &a.Win1, &a.Win2,
	)
	a.PlayerID, a.Year, a.GamesPlayed = int(pid), int(year), int(gp)
	return a, err
}

var pctCols = append([]string{"pid", "year", "team", "player_name"}, statCols...)

func pctValues(p *model.SeasonPercentiles) []any {
	return []any{
		int64(p.PlayerID), int64(p.Year), p.Team, p.PlayerName,
		p.MinPct, p.ORtg, p.Usage, p.EFG, p.TSPct, p.ORBPct, p.DRBPct, p.ASTPct, p.TOPct,
		p.DunksMade, p.DunksAtt, p.RimMade, p.RimAtt, p.MidMade, p.MidAtt,
		p.TwoPM, p.TwoPA, p.TPM, p.TPA, p.FTM, p.FTA,
		p.BPMRound, p.OBPM, p.DBPM, p.BPMNet,
		p.Pts, p.ORB, p.DRB, p.Ast, p.Tov, p.Stl, p.Blk, p.StlPct, p.BlkPct, p.PF,
		p.Possessions, p.BPM, p.SBPM,
		p.Inches, p.OpStyle, p.Quality, p.Win1, p.Win2,
	}
}

func scanPct(sc scanner) (model.SeasonPercentiles, error) {
	var p model.SeasonPercentiles
	var pid, year int64
	err := sc.Scan(
		&pid, &year, &p.Team, &p.PlayerName,
		&p.MinPct, &p.ORtg, &p.Usage, &p.EFG, &p.TSPct, &p.ORBPct, &p.DRBPct, &p.ASTPct, &p.TOPct,
		&p.DunksMade, &p.DunksAtt, &p.RimMade, &p.RimAtt, &p.MidMade, &p.MidAtt,
		&p.TwoPM, &p.TwoPA, &p.TPM, &p.TPA, &p.FTM, &p.FTA,
		&p.BPMRound, &p.OBPM, &p.DBPM, &p.BPMNet,
		&p.Pts, &p.ORB, &p.DRB, &p.Ast, &p.Tov, &p.Stl, &p.Blk, &p.StlPct, &p.BlkPct, &p.PF,
		&p.Possessions, &p.BPM, &p.SBPM,
		&p.Inches, &p.OpStyle, &p.Quality, &p.Win1, &p.Win2,
	)
	p.PlayerID, p.Year = int(pid), int(year)
	return p, err
}

// placeholders returns n comma-separated "?" markers for SQL value lists.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func colList(cols []string) string {
	return strings.Join(cols, ", ")
}
