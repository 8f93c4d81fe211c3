package drawstats

import (
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// ACValue is the arithmetic complexity of six numbers: the count of
// distinct pairwise absolute differences minus 5. The result is not clamped.
func ACValue(numbers []int) (int, error) {
	if len(numbers) != NumbersPerDraw {
		return 0, newInvalidDraw(0, "expected %d numbers, got %d", NumbersPerDraw, len(numbers))
	}
	diffs := make(map[int]struct{}, 15)
	for i := 0; i < len(numbers); i++ {
		for j := i + 1; j < len(numbers); j++ {
			d := numbers[i] - numbers[j]
			if d < 0 {
				d = -d
			}
			if d == 0 {
				return 0, newInvalidDraw(0, "number %d appears more than once", numbers[i])
			}
			diffs[d] = struct{}{}
		}
	}
	return len(diffs) - (NumbersPerDraw - 1), nil
}

// ACHistogram buckets draws by their exact AC value.
type ACHistogram struct {
	// Counts[v] is the number of draws with AC value v, from 0 to the
	// largest observed value.
	Counts       []int       `json:"counts"`
	Labels       []string    `json:"labels"`
	Distribution map[int]int `json:"distribution"`
	Total        int         `json:"total"`

	AvgAC        null.Float `json:"avg_ac"`
	MostCommonAC null.Int   `json:"most_common_ac"`

	OptimalRange Range   `json:"optimal_range"`
	OptimalCount int     `json:"optimal_count"`
	OptimalRatio float64 `json:"optimal_ratio"`
}

// ACHistogramOf computes the AC value of every draw and summarizes them.
// OptimalRatio is the fraction of draws whose AC lies in optimal, inclusive.
func ACHistogramOf(draws []Draw, optimal Range) (*ACHistogram, error) {
	if err := validateRange(optimal); err != nil {
		return nil, err
	}
	if err := Validate(draws); err != nil {
		return nil, err
	}

	values := make([]int, 0, len(draws))
	maxAC := -1
	for _, d := range draws {
		ac, err := ACValue(d.Numbers)
		if err != nil {
			return nil, err
		}
		values = append(values, ac)
		if ac > maxAC {
			maxAC = ac
		}
	}

	h := &ACHistogram{
		Counts:       make([]int, maxAC+1),
		Labels:       make([]string, maxAC+1),
		Distribution: make(map[int]int),
		Total:        len(draws),
		AvgAC:        mean(values),
		MostCommonAC: mode(values),
		OptimalRange: optimal,
	}
	for v := range h.Labels {
		h.Labels[v] = strconv.Itoa(v)
	}
	for _, ac := range values {
		h.Counts[ac]++
		h.Distribution[ac]++
		if optimal.Contains(ac) {
			h.OptimalCount++
		}
	}
	h.OptimalRatio = ratio(h.OptimalCount, h.Total)
	return h, nil
}
