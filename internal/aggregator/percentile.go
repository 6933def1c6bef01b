package aggregator

import (
	"sort"

	"github.com/hoopsight/cbbmetrics/internal/model"
)

// Rank returns the mean-rank percentile of v against an ascending-sorted
// population: (strictly-less + 0.5*equal) / n * 100. The half-weight on ties
// makes the formula symmetric: in an all-equal population every member ranks
// exactly 50. An empty population ranks 0.
func Rank(v float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	less := sort.SearchFloat64s(sorted, v)
	upper := sort.Search(n, func(i int) bool { return sorted[i] > v })
	equal := upper - less
	return (float64(less) + 0.5*float64(equal)) / float64(n) * 100
}

// RankAgainst ranks one averages record against an external population,
// without adding the record to it. Used for rolling windows, which are ranked
// against the stored full-season cohort.
func RankAgainst(a model.SeasonAverages, population []model.SeasonAverages) model.SeasonPercentiles {
	out := model.SeasonPercentiles{
		PlayerID:   a.PlayerID,
		Year:       a.Year,
		Team:       a.Team,
		PlayerName: a.PlayerName,
	}
	sorted := make([]float64, len(population))
	for _, c := range columns {
		for i := range population {
			sorted[i] = c.avg(&population[i])
		}
		sort.Float64s(sorted)
		c.setPct(&out, Rank(c.avg(&a), sorted))
	}
	return out
}

// RankPopulation ranks every statistic of every averages record against the
// full column of that statistic across the same population. Each column is
// sorted once and shared by all lookups, so the batch costs
// O(k * (n log n)) rather than O(k * n²) for n members and k statistics.
func RankPopulation(avgs []model.SeasonAverages) []model.SeasonPercentiles {
	out := make([]model.SeasonPercentiles, len(avgs))
	for i := range avgs {
		out[i] = model.SeasonPercentiles{
			PlayerID:   avgs[i].PlayerID,
			Year:       avgs[i].Year,
			Team:       avgs[i].Team,
			PlayerName: avgs[i].PlayerName,
		}
	}
	if len(avgs) == 0 {
		return out
	}

	col := make([]float64, len(avgs))
	sorted := make([]float64, len(avgs))
	for _, c := range columns {
		for i := range avgs {
			col[i] = c.avg(&avgs[i])
		}
		copy(sorted, col)
		sort.Float64s(sorted)
		for i := range avgs {
			c.setPct(&out[i], Rank(col[i], sorted))
		}
	}
	return out
}
