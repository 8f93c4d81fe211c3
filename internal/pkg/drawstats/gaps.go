package drawstats

import (
	"github.com/ahmetb/go-linq/v3"
	"gopkg.in/guregu/null.v3"
)

// NumberGap describes how regularly a number shows up, measured in draw
// indexes. Gap statistics need at least two appearances and are null
// otherwise.
type NumberGap struct {
	Number         int        `json:"number"`
	Appearances    int        `json:"appearances"`
	LastAppearance null.Int   `json:"last_appearance"`
	AvgGap         null.Float `json:"avg_gap"`
	MaxGap         null.Int   `json:"max_gap"`
	Gaps           []int      `json:"gaps"`
}

type appearance struct {
	Number int
	Index  int
}

// Gaps computes a NumberGap for every number in [MinNumber, MaxNumber],
// ordered by number. Draws are walked in index order whatever their input
// order.
func Gaps(draws []Draw) ([]NumberGap, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}

	var groups []linq.Group
	linq.From(SortByIndex(draws)).
		SelectManyT(func(d Draw) linq.Query {
			return linq.From(d.Numbers).SelectT(func(n int) appearance {
				return appearance{Number: n, Index: d.Index}
			})
		}).
		GroupByT(
			func(a appearance) int { return a.Number },
			func(a appearance) int { return a.Index },
		).
		ToSlice(&groups)

	seen := make(map[int][]int, len(groups))
	for _, g := range groups {
		indexes := make([]int, len(g.Group))
		for i, el := range g.Group {
			indexes[i] = el.(int)
		}
		seen[g.Key.(int)] = indexes
	}

	result := make([]NumberGap, 0, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		indexes := seen[n]
		g := NumberGap{Number: n, Appearances: len(indexes), Gaps: []int{}}
		if len(indexes) > 0 {
			g.LastAppearance = null.IntFrom(int64(indexes[len(indexes)-1]))
		}
		if len(indexes) > 1 {
			maxGap := 0
			for i := 1; i < len(indexes); i++ {
				gap := indexes[i] - indexes[i-1]
				g.Gaps = append(g.Gaps, gap)
				if gap > maxGap {
					maxGap = gap
				}
			}
			g.AvgGap = mean(g.Gaps)
			g.MaxGap = null.IntFrom(int64(maxGap))
		}
		result = append(result, g)
	}
	return result, nil
}
