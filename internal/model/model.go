// Package model defines the record types that flow through the pipeline:
// per-game box-score lines, season/rolling averages, percentile profiles,
// and the season-long rating tables used for enrichment.
package model

// GameRecord is one player's statistical line from one game, decoded from
// the advanced game-log feed. NumDate is a fixed-width "YYYYMMDD" string so
// lexicographic order is chronological order. Stats missing upstream decode
// to zero; MinPct <= 0 means the player did not play.
type GameRecord struct {
	NumDate  string
	DateText string
	OpStyle  float64
	Quality  float64
	Win1     float64
	Opponent string
	MatchID  string
	Win2     float64

	MinPct      float64
	ORtg        float64
	Usage       float64
	EFG         float64
	TSPct       float64
	ORBPct      float64
	DRBPct      float64
	ASTPct      float64
	TOPct       float64
	DunksMade   float64
	DunksAtt    float64
	RimMade     float64
	RimAtt      float64
	MidMade     float64
	MidAtt      float64
	TwoPM       float64
	TwoPA       float64
	TPM         float64
	TPA         float64
	FTM         float64
	FTA         float64
	BPMRound    float64
	OBPM        float64
	DBPM        float64
	BPMNet      float64
	Pts         float64
	ORB         float64
	DRB         float64
	Ast         float64
	Tov         float64
	Stl         float64
	Blk         float64
	StlPct      float64
	BlkPct      float64
	PF          float64
	Possessions float64
	BPM         float64
	SBPM        float64

	Loc        string
	Team       string
	PlayerName string
	Inches     float64
	Class      string
	PlayerID   int
	Year       int
}

// SeasonAverages is the aggregate for one (player, year, team) over a slice
// of qualifying games, either a full season or a rolling window. GamesPlayed counts
// only games that passed the minutes filter. EFG and TSPct are ratios of
// summed makes and attempts, not means of per-game percentages; every other
// field is a simple per-game mean.
type SeasonAverages struct {
	PlayerID   int    `json:"pid"`
	Year       int    `json:"year"`
	Team       string `json:"team"`
	PlayerName string `json:"player_name"`

	GamesPlayed int `json:"games_played"`

	MinPct      float64 `json:"avg_min_per"`
	ORtg        float64 `json:"avg_o_rtg"`
	Usage       float64 `json:"avg_usg"`
	EFG         float64 `json:"avg_e_fg"`
	TSPct       float64 `json:"avg_ts_per"`
	ORBPct      float64 `json:"avg_orb_per"`
	DRBPct      float64 `json:"avg_drb_per"`
	ASTPct      float64 `json:"avg_ast_per"`
	TOPct       float64 `json:"avg_to_per"`
	DunksMade   float64 `json:"avg_dunks_made"`
	DunksAtt    float64 `json:"avg_dunks_att"`
	RimMade     float64 `json:"avg_rim_made"`
	RimAtt      float64 `json:"avg_rim_att"`
	MidMade     float64 `json:"avg_mid_made"`
	MidAtt      float64 `json:"avg_mid_att"`
	TwoPM       float64 `json:"avg_two_pm"`
	TwoPA       float64 `json:"avg_two_pa"`
	TPM         float64 `json:"avg_tpm"`
	TPA         float64 `json:"avg_tpa"`
	FTM         float64 `json:"avg_ftm"`
	FTA         float64 `json:"avg_fta"`
	BPMRound    float64 `json:"avg_bpm_rd"`
	OBPM        float64 `json:"avg_obpm"`
	DBPM        float64 `json:"avg_dbpm"`
	BPMNet      float64 `json:"avg_bpm_net"`
	Pts         float64 `json:"avg_pts"`
	ORB         float64 `json:"avg_orb"`
	DRB         float64 `json:"avg_drb"`
	Ast         float64 `json:"avg_ast"`
	Tov         float64 `json:"avg_tov"`
	Stl         float64 `json:"avg_stl"`
	Blk         float64 `json:"avg_blk"`
	StlPct      float64 `json:"avg_stl_per"`
	BlkPct      float64 `json:"avg_blk_per"`
	PF          float64 `json:"avg_pf"`
	Possessions float64 `json:"avg_possessions"`
	BPM         float64 `json:"avg_bpm"`
	SBPM        float64 `json:"avg_sbpm"`
	Inches      float64 `json:"avg_inches"`
	OpStyle     float64 `json:"avg_opstyle"`
	Quality     float64 `json:"avg_quality"`
	Win1        float64 `json:"avg_win1"`
	Win2        float64 `json:"avg_win2"`
}

// SeasonPercentiles is one player's percentile-rank profile, each field in
// [0,100], ranked against the cohort the ranker was invoked with. Ranks from
// different cohorts are not comparable.
type SeasonPercentiles struct {
	PlayerID   int    `json:"pid"`
	Year       int    `json:"year"`
	Team       string `json:"team"`
	PlayerName string `json:"player_name"`

	MinPct      float64 `json:"pct_min_per"`
	ORtg        float64 `json:"pct_o_rtg"`
	Usage       float64 `json:"pct_usg"`
	EFG         float64 `json:"pct_e_fg"`
	TSPct       float64 `json:"pct_ts_per"`
	ORBPct      float64 `json:"pct_orb_per"`
	DRBPct      float64 `json:"pct_drb_per"`
	ASTPct      float64 `json:"pct_ast_per"`
	TOPct       float64 `json:"pct_to_per"`
	DunksMade   float64 `json:"pct_dunks_made"`
	DunksAtt    float64 `json:"pct_dunks_att"`
	RimMade     float64 `json:"pct_rim_made"`
	RimAtt      float64 `json:"pct_rim_att"`
	MidMade     float64 `json:"pct_mid_made"`
	MidAtt      float64 `json:"pct_mid_att"`
	TwoPM       float64 `json:"pct_two_pm"`
	TwoPA       float64 `json:"pct_two_pa"`
	TPM         float64 `json:"pct_tpm"`
	TPA         float64 `json:"pct_tpa"`
	FTM         float64 `json:"pct_ftm"`
	FTA         float64 `json:"pct_fta"`
	BPMRound    float64 `json:"pct_bpm_rd"`
	OBPM        float64 `json:"pct_obpm"`
	DBPM        float64 `json:"pct_dbpm"`
	BPMNet      float64 `json:"pct_bpm_net"`
	Pts         float64 `json:"pct_pts"`
	ORB         float64 `json:"pct_orb"`
	DRB         float64 `json:"pct_drb"`
	Ast         float64 `json:"pct_ast"`
	Tov         float64 `json:"pct_tov"`
	Stl         float64 `json:"pct_stl"`
	Blk         float64 `json:"pct_blk"`
	StlPct      float64 `json:"pct_stl_per"`
	BlkPct      float64 `json:"pct_blk_per"`
	PF          float64 `json:"pct_pf"`
	Possessions float64 `json:"pct_possessions"`
	BPM         float64 `json:"pct_bpm"`
	SBPM        float64 `json:"pct_sbpm"`
	Inches      float64 `json:"pct_inches"`
	OpStyle     float64 `json:"pct_opstyle"`
	Quality     float64 `json:"pct_quality"`
	Win1        float64 `json:"pct_win1"`
	Win2        float64 `json:"pct_win2"`
}

// SeasonRating is one row of the season-long advanced ratings feed. These are
// upstream-computed constants (conference, class, height, PORPAGATU, defensive
// rating) that never vary game to game; rolling reports are enriched from this
// table after aggregation.
type SeasonRating struct {
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Conf       string  `json:"conf"`
	GP         int     `json:"gp"`
	MinPct     float64 `json:"min_per"`
	ORtg       float64 `json:"o_rtg"`
	Usage      float64 `json:"usg"`
	EFG        float64 `json:"e_fg"`
	TSPct      float64 `json:"ts_per"`
	ORBPct     float64 `json:"orb_per"`
	DRBPct     float64 `json:"drb_per"`
	ASTPct     float64 `json:"ast_per"`
	TOPct      float64 `json:"to_per"`
	FTM        float64 `json:"ftm"`
	FTA        float64 `json:"fta"`
	FTPct      float64 `json:"ft_per"`
	TwoPM      float64 `json:"two_pm"`
	TwoPA      float64 `json:"two_pa"`
	TwoPct     float64 `json:"two_p_per"`
	TPM        float64 `json:"tpm"`
	TPA        float64 `json:"tpa"`
	TPPct      float64 `json:"tp_per"`
	BlkPct     float64 `json:"blk_per"`
	StlPct     float64 `json:"stl_per"`
	FTR        float64 `json:"ftr"`
	Class      string  `json:"yr"`
	Height     string  `json:"ht"`
	Number     string  `json:"num"`
	Porpag     float64 `json:"porpag"`
	AdjOE      float64 `json:"adjoe"`
	PFR        float64 `json:"pfr"`
	Year       int     `json:"year"`
	PlayerID   int     `json:"pid"`
	Role       string  `json:"player_type"`
	RecRank    float64 `json:"rec_rank"`
	AstTov     float64 `json:"ast_tov"`
	RimMade    float64 `json:"rim_made"`
	RimAtt     float64 `json:"rim_attempted"`
	MidMade    float64 `json:"mid_made"`
	MidAtt     float64 `json:"mid_attempted"`
	RimPct     float64 `json:"rim_pct"`
	MidPct     float64 `json:"mid_pct"`
	DunksMade  float64 `json:"dunks_made"`
	DunksAtt   float64 `json:"dunks_attempted"`
	DunkPct    float64 `json:"dunk_pct"`
	Pick       float64 `json:"pick"`
	DRtg       float64 `json:"drtg"`
	AdjDRtg    float64 `json:"adrtg"`
	Dporpag    float64 `json:"dporpag"`
	Stops      float64 `json:"stops"`
	BPM        float64 `json:"bpm"`
	OBPM       float64 `json:"obpm"`
	DBPM       float64 `json:"dbpm"`
	GBPM       float64 `json:"gbpm"`
	MP         float64 `json:"mp"`
	OGBPM      float64 `json:"ogbpm"`
	DGBPM      float64 `json:"dgbpm"`
	OReb       float64 `json:"oreb"`
	DReb       float64 `json:"dreb"`
	TReb       float64 `json:"treb"`
	Ast        float64 `json:"ast"`
	Stl        float64 `json:"stl"`
	Blk        float64 `json:"blk"`
	Pts        float64 `json:"pts"`
}

// TeamRating is one row of the team results feed.
type TeamRating struct {
	Rank           int     `json:"rank"`
	Team           string  `json:"team"`
	Conf           string  `json:"conf"`
	Record         string  `json:"record"`
	AdjOE          float64 `json:"adjoe"`
	AdjOERank      int     `json:"adjoe_rank"`
	AdjDE          float64 `json:"adjde"`
	AdjDERank      int     `json:"adjde_rank"`
	Barthag        float64 `json:"barthag"`
	BarthagRank    int     `json:"barthag_rank"`
	ProjWins       int     `json:"proj_wins"`
	ProjLosses     int     `json:"proj_losses"`
	ProjConfWins   int     `json:"proj_conf_wins"`
	ProjConfLosses int     `json:"proj_conf_losses"`
	ConfRecord     string  `json:"conf_record"`
	SOS            float64 `json:"sos"`
	NConfSOS       float64 `json:"nconf_sos"`
	ConfSOS        float64 `json:"conf_sos"`
	ProjSOS        float64 `json:"proj_sos"`
	ProjNConfSOS   float64 `json:"proj_nconf_sos"`
	ProjConfSOS    float64 `json:"proj_conf_sos"`
	EliteSOS       float64 `json:"elite_sos"`
	EliteNCSOS     float64 `json:"elite_ncsos"`
	OppAdjOE       float64 `json:"opp_adjoe"`
	OppAdjDE       float64 `json:"opp_adjde"`
	OppProjAdjOE   float64 `json:"opp_proj_adjoe"`
	OppProjAdjDE   float64 `json:"opp_proj_adjde"`
	ConfAdjOE      float64 `json:"conf_adjoe"`
	ConfAdjDE      float64 `json:"conf_adjde"`
	QualAdjOE      float64 `json:"qual_adjoe"`
	QualAdjDE      float64 `json:"qual_adjde"`
	QualBarthag    float64 `json:"qual_barthag"`
	QualGames      int     `json:"qual_games"`
	Fun            float64 `json:"fun"`
	ConfPF         float64 `json:"conf_pf"`
	ConfPA         float64 `json:"conf_pa"`
	ConfPoss       float64 `json:"conf_poss"`
	ConfAdjO       float64 `json:"conf_adj_o"`
	ConfAdjD       float64 `json:"conf_adj_d"`
	ConfSOSRemain  float64 `json:"conf_sos_remain"`
	ConfWinPct     float64 `json:"conf_win_perc"`
	WAB            float64 `json:"wab"`
	WABRank        int     `json:"wab_rank"`
	FunRank        int     `json:"fun_rank"`
	AdjTempo       float64 `json:"adj_tempo"`
}

// RollingReport is a rolling-window aggregate enriched with season-long
// constants from the ratings table and ranked against the cohort it was
// computed with. Enrichment fields are zero-valued when the player has no
// ratings row.
type RollingReport struct {
	Averages SeasonAverages `json:"averages"`

	Conf    string  `json:"conf,omitempty"`
	Role    string  `json:"player_type,omitempty"`
	Class   string  `json:"yr,omitempty"`
	Height  string  `json:"ht,omitempty"`
	Porpag  float64 `json:"porpag,omitempty"`
	Dporpag float64 `json:"dporpag,omitempty"`
	DRtg    float64 `json:"drtg,omitempty"`
	AdjOE   float64 `json:"adjoe,omitempty"`

	Percentiles *SeasonPercentiles `json:"percentiles,omitempty"`
}

// Overview summarizes the contents of the store for the summary command.
type Overview struct {
	GameRecords   int
	Players       int
	Teams         int
	Years         []int
	SeasonAvgRows int
	RatingRows    int
	TeamRows      int
}
