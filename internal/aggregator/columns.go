package aggregator

import "github.com/hoopsight/cbbmetrics/internal/model"

// sumFunc returns the accumulated sum of the named statistic over a slice of
// qualifying games.
type sumFunc func(name string) float64

// column describes one statistic: how to read it from a game record, how a
// slice of games combines into one average, and where the result lands on the
// averages and percentile records. A nil ratio means simple per-game mean;
// otherwise the average is derived from the summed raw columns (shooting
// efficiency must be a ratio of summed makes and attempts, never a mean of
// per-game percentages).
type column struct {
	name   string
	game   func(*model.GameRecord) float64
	ratio  func(sum sumFunc) float64
	avg    func(*model.SeasonAverages) float64
	setAvg func(*model.SeasonAverages, float64)
	setPct func(*model.SeasonPercentiles, float64)
}

// effectiveFG is (2PM + 3PM + 0.5*3PM) / (2PA + 3PA) over summed slice totals.
func effectiveFG(sum sumFunc) float64 {
	denom := sum("two_pa") + sum("tpa")
	if denom == 0 {
		return 0
	}
	return (sum("two_pm") + sum("tpm") + 0.5*sum("tpm")) / denom
}

// trueShooting is PTS / (2 * (2PA + 3PA + 0.44*FTA)) over summed slice totals.
func trueShooting(sum sumFunc) float64 {
	denom := 2 * (sum("two_pa") + sum("tpa") + 0.44*sum("fta"))
	if denom == 0 {
		return 0
	}
	return sum("pts") / denom
}

// columns is the single source of truth for every aggregated statistic. The
// rebounding/assist/turnover/steal/block rate fields are means of the per-game
// rates supplied upstream: the possession data needed to re-derive season-long
// rates is not available at this layer, so the upstream approximation is kept.
var columns = []column{
	{
		name:   "min_per",
		game:   func(g *model.GameRecord) float64 { return g.MinPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.MinPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.MinPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.MinPct = v },
	},
	{
		name:   "o_rtg",
		game:   func(g *model.GameRecord) float64 { return g.ORtg },
		avg:    func(a *model.SeasonAverages) float64 { return a.ORtg },
		setAvg: func(a *model.SeasonAverages, v float64) { a.ORtg = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.ORtg = v },
	},
	{
		name:   "usg",
		game:   func(g *model.GameRecord) float64 { return g.Usage },
		avg:    func(a *model.SeasonAverages) float64 { return a.Usage },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Usage = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Usage = v },
	},
	{
		name:   "e_fg",
		game:   func(g *model.GameRecord) float64 { return g.EFG },
		ratio:  effectiveFG,
		avg:    func(a *model.SeasonAverages) float64 { return a.EFG },
		setAvg: func(a *model.SeasonAverages, v float64) { a.EFG = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.EFG = v },
	},
	{
		name:   "ts_per",
		game:   func(g *model.GameRecord) float64 { return g.TSPct },
		ratio:  trueShooting,
		avg:    func(a *model.SeasonAverages) float64 { return a.TSPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TSPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TSPct = v },
	},
	{
		name:   "orb_per",
		game:   func(g *model.GameRecord) float64 { return g.ORBPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.ORBPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.ORBPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.ORBPct = v },
	},
	{
		name:   "drb_per",
		game:   func(g *model.GameRecord) float64 { return g.DRBPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.DRBPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.DRBPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.DRBPct = v },
	},
	{
		name:   "ast_per",
		game:   func(g *model.GameRecord) float64 { return g.ASTPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.ASTPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.ASTPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.ASTPct = v },
	},
	{
		name:   "to_per",
		game:   func(g *model.GameRecord) float64 { return g.TOPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.TOPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TOPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TOPct = v },
	},
	{
		name:   "dunks_made",
		game:   func(g *model.GameRecord) float64 { return g.DunksMade },
		avg:    func(a *model.SeasonAverages) float64 { return a.DunksMade },
		setAvg: func(a *model.SeasonAverages, v float64) { a.DunksMade = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.DunksMade = v },
	},
	{
		name:   "dunks_att",
		game:   func(g *model.GameRecord) float64 { return g.DunksAtt },
		avg:    func(a *model.SeasonAverages) float64 { return a.DunksAtt },
		setAvg: func(a *model.SeasonAverages, v float64) { a.DunksAtt = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.DunksAtt = v },
	},
	{
		name:   "rim_made",
		game:   func(g *model.GameRecord) float64 { return g.RimMade },
		avg:    func(a *model.SeasonAverages) float64 { return a.RimMade },
		setAvg: func(a *model.SeasonAverages, v float64) { a.RimMade = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.RimMade = v },
	},
	{
		name:   "rim_att",
		game:   func(g *model.GameRecord) float64 { return g.RimAtt },
		avg:    func(a *model.SeasonAverages) float64 { return a.RimAtt },
		setAvg: func(a *model.SeasonAverages, v float64) { a.RimAtt = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.RimAtt = v },
	},
	{
		name:   "mid_made",
		game:   func(g *model.GameRecord) float64 { return g.MidMade },
		avg:    func(a *model.SeasonAverages) float64 { return a.MidMade },
		setAvg: func(a *model.SeasonAverages, v float64) { a.MidMade = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.MidMade = v },
	},
	{
		name:   "mid_att",
		game:   func(g *model.GameRecord) float64 { return g.MidAtt },
		avg:    func(a *model.SeasonAverages) float64 { return a.MidAtt },
		setAvg: func(a *model.SeasonAverages, v float64) { a.MidAtt = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.MidAtt = v },
	},
	{
		name:   "two_pm",
		game:   func(g *model.GameRecord) float64 { return g.TwoPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.TwoPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TwoPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TwoPM = v },
	},
	{
		name:   "two_pa",
		game:   func(g *model.GameRecord) float64 { return g.TwoPA },
		avg:    func(a *model.SeasonAverages) float64 { return a.TwoPA },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TwoPA = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TwoPA = v },
	},
	{
		name:   "tpm",
		game:   func(g *model.GameRecord) float64 { return g.TPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.TPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TPM = v },
	},
	{
		name:   "tpa",
		game:   func(g *model.GameRecord) float64 { return g.TPA },
		avg:    func(a *model.SeasonAverages) float64 { return a.TPA },
		setAvg: func(a *model.SeasonAverages, v float64) { a.TPA = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.TPA = v },
	},
	{
		name:   "ftm",
		game:   func(g *model.GameRecord) float64 { return g.FTM },
		avg:    func(a *model.SeasonAverages) float64 { return a.FTM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.FTM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.FTM = v },
	},
	{
		name:   "fta",
		game:   func(g *model.GameRecord) float64 { return g.FTA },
		avg:    func(a *model.SeasonAverages) float64 { return a.FTA },
		setAvg: func(a *model.SeasonAverages, v float64) { a.FTA = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.FTA = v },
	},
	{
		name:   "bpm_rd",
		game:   func(g *model.GameRecord) float64 { return g.BPMRound },
		avg:    func(a *model.SeasonAverages) float64 { return a.BPMRound },
		setAvg: func(a *model.SeasonAverages, v float64) { a.BPMRound = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.BPMRound = v },
	},
	{
		name:   "obpm",
		game:   func(g *model.GameRecord) float64 { return g.OBPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.OBPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.OBPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.OBPM = v },
	},
	{
		name:   "dbpm",
		game:   func(g *model.GameRecord) float64 { return g.DBPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.DBPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.DBPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.DBPM = v },
	},
	{
		name:   "bpm_net",
		game:   func(g *model.GameRecord) float64 { return g.BPMNet },
		avg:    func(a *model.SeasonAverages) float64 { return a.BPMNet },
		setAvg: func(a *model.SeasonAverages, v float64) { a.BPMNet = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.BPMNet = v },
	},
	{
		name:   "pts",
		game:   func(g *model.GameRecord) float64 { return g.Pts },
		avg:    func(a *model.SeasonAverages) float64 { return a.Pts },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Pts = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Pts = v },
	},
	{
		name:   "orb",
		game:   func(g *model.GameRecord) float64 { return g.ORB },
		avg:    func(a *model.SeasonAverages) float64 { return a.ORB },
		setAvg: func(a *model.SeasonAverages, v float64) { a.ORB = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.ORB = v },
	},
	{
		name:   "drb",
		game:   func(g *model.GameRecord) float64 { return g.DRB },
		avg:    func(a *model.SeasonAverages) float64 { return a.DRB },
		setAvg: func(a *model.SeasonAverages, v float64) { a.DRB = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.DRB = v },
	},
	{
		name:   "ast",
		game:   func(g *model.GameRecord) float64 { return g.Ast },
		avg:    func(a *model.SeasonAverages) float64 { return a.Ast },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Ast = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Ast = v },
	},
	{
		name:   "tov",
		game:   func(g *model.GameRecord) float64 { return g.Tov },
		avg:    func(a *model.SeasonAverages) float64 { return a.Tov },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Tov = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Tov = v },
	},
	{
		name:   "stl",
		game:   func(g *model.GameRecord) float64 { return g.Stl },
		avg:    func(a *model.SeasonAverages) float64 { return a.Stl },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Stl = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Stl = v },
	},
	{
		name:   "blk",
		game:   func(g *model.GameRecord) float64 { return g.Blk },
		avg:    func(a *model.SeasonAverages) float64 { return a.Blk },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Blk = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Blk = v },
	},
	{
		name:   "stl_per",
		game:   func(g *model.GameRecord) float64 { return g.StlPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.StlPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.StlPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.StlPct = v },
	},
	{
		name:   "blk_per",
		game:   func(g *model.GameRecord) float64 { return g.BlkPct },
		avg:    func(a *model.SeasonAverages) float64 { return a.BlkPct },
		setAvg: func(a *model.SeasonAverages, v float64) { a.BlkPct = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.BlkPct = v },
	},
	{
		name:   "pf",
		game:   func(g *model.GameRecord) float64 { return g.PF },
		avg:    func(a *model.SeasonAverages) float64 { return a.PF },
		setAvg: func(a *model.SeasonAverages, v float64) { a.PF = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.PF = v },
	},
	{
		name:   "possessions",
		game:   func(g *model.GameRecord) float64 { return g.Possessions },
		avg:    func(a *model.SeasonAverages) float64 { return a.Possessions },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Possessions = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Possessions = v },
	},
	{
		name:   "bpm",
		game:   func(g *model.GameRecord) float64 { return g.BPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.BPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.BPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.BPM = v },
	},
	{
		name:   "sbpm",
		game:   func(g *model.GameRecord) float64 { return g.SBPM },
		avg:    func(a *model.SeasonAverages) float64 { return a.SBPM },
		setAvg: func(a *model.SeasonAverages, v float64) { a.SBPM = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.SBPM = v },
	},
	{
		name:   "inches",
		game:   func(g *model.GameRecord) float64 { return g.Inches },
		avg:    func(a *model.SeasonAverages) float64 { return a.Inches },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Inches = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Inches = v },
	},
	{
		name:   "opstyle",
		game:   func(g *model.GameRecord) float64 { return g.OpStyle },
		avg:    func(a *model.SeasonAverages) float64 { return a.OpStyle },
		setAvg: func(a *model.SeasonAverages, v float64) { a.OpStyle = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.OpStyle = v },
	},
	{
		name:   "quality",
		game:   func(g *model.GameRecord) float64 { return g.Quality },
		avg:    func(a *model.SeasonAverages) float64 { return a.Quality },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Quality = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Quality = v },
	},
	{
		name:   "win1",
		game:   func(g *model.GameRecord) float64 { return g.Win1 },
		avg:    func(a *model.SeasonAverages) float64 { return a.Win1 },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Win1 = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Win1 = v },
	},
	{
		name:   "win2",
		game:   func(g *model.GameRecord) float64 { return g.Win2 },
		avg:    func(a *model.SeasonAverages) float64 { return a.Win2 },
		setAvg: func(a *model.SeasonAverages, v float64) { a.Win2 = v },
		setPct: func(p *model.SeasonPercentiles, v float64) { p.Win2 = v },
	},
}
