package drawstats

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Summary condenses a Report into the headline figures shown on the
// dashboard front page. Ratio strings read like "3:3 (33.3%)" and are null
// when there is no draw.
type Summary struct {
	AvgSum          null.Float  `json:"avg_sum"`
	SumMin          null.Int    `json:"sum_min"`
	SumMax          null.Int    `json:"sum_max"`
	AvgAC           null.Float  `json:"avg_ac"`
	MostCommonAC    null.Int    `json:"most_common_ac"`
	OddEvenRatio    null.String `json:"odd_even_ratio"`
	HighLowRatio    null.String `json:"high_low_ratio"`
	Consecutive     null.String `json:"consecutive_pairs"`
	MostCommonPrime null.Int    `json:"most_common_prime"`
}

func mostCommonRatio(h *RatioHistogram) null.String {
	k, ok := h.MostCommon()
	if !ok {
		return null.String{}
	}
	return null.StringFrom(fmt.Sprintf("%s (%.1f%%)", complementLabel(k), h.Percentages[k]))
}

// SummaryOf builds a Summary from already computed histograms.
func SummaryOf(sum *SumHistogram, ac *ACHistogram, oddEven, highLow *RatioHistogram, patterns *PatternStats) *Summary {
	s := &Summary{
		AvgSum:       sum.AvgSum,
		SumMin:       sum.MinSum,
		SumMax:       sum.MaxSum,
		AvgAC:        ac.AvgAC,
		MostCommonAC: ac.MostCommonAC,
		OddEvenRatio: mostCommonRatio(oddEven),
		HighLowRatio: mostCommonRatio(highLow),
	}
	if k, ok := patterns.Consecutive.MostCommon(); ok {
		s.Consecutive = null.StringFrom(fmt.Sprintf("%d pairs (%.1f%%)", k, patterns.Consecutive.Percentages[k]))
	}
	if k, ok := patterns.PrimeDistribution.MostCommon(); ok {
		s.MostCommonPrime = null.IntFrom(int64(k))
	}
	return s
}
