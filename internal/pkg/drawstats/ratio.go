package drawstats

import (
	"strconv"

	"github.com/samber/lo"
)

// RatioHistogram buckets draws by how many of their numbers fall in a
// category. Counts[k] is the number of draws with exactly k such numbers.
type RatioHistogram struct {
	Counts      []int     `json:"counts"`
	Percentages []float64 `json:"percentages"`
	Labels      []string  `json:"labels"`
	Total       int       `json:"total"`

	// Cutoff is only set on high/low histograms.
	Cutoff int `json:"cutoff,omitempty"`
}

// MostCommon returns the bucket with the largest count, the smallest on
// ties, and false when the histogram is empty.
func (h *RatioHistogram) MostCommon() (int, bool) {
	if h.Total == 0 {
		return 0, false
	}
	return argmax(h.Counts), true
}

func buildHistogram(draws []Draw, buckets int, category func(numbers []int) int, label func(k int) string) *RatioHistogram {
	h := &RatioHistogram{
		Counts:      make([]int, buckets),
		Percentages: make([]float64, buckets),
		Labels:      make([]string, buckets),
		Total:       len(draws),
	}
	for _, d := range draws {
		h.Counts[category(d.Sorted())]++
	}
	for k := range h.Counts {
		h.Percentages[k] = percentage(h.Counts[k], h.Total, 1)
		h.Labels[k] = label(k)
	}
	return h
}

func complementLabel(k int) string {
	return strconv.Itoa(k) + ":" + strconv.Itoa(NumbersPerDraw-k)
}

// OddCount is the number of odd values among numbers.
func OddCount(numbers []int) int {
	return lo.CountBy(numbers, func(n int) bool { return n%2 == 1 })
}

// HighCount is the number of values >= cutoff among numbers.
func HighCount(numbers []int, cutoff int) int {
	return lo.CountBy(numbers, func(n int) bool { return n >= cutoff })
}

// ConsecutivePairs counts adjacent pairs (n, n+1) in the sorted numbers.
// A run of three consecutive numbers holds two pairs.
func ConsecutivePairs(numbers []int) int {
	sorted := Draw{Numbers: numbers}.Sorted()
	pairs := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			pairs++
		}
	}
	return pairs
}

// OddEvenHistogram buckets draws by their count of odd numbers. Labels
// read "<odd>:<even>".
func OddEvenHistogram(draws []Draw) (*RatioHistogram, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}
	return buildHistogram(draws, NumbersPerDraw+1, OddCount, complementLabel), nil
}

// HighLowHistogram buckets draws by their count of numbers >= cutoff.
// Labels read "<high>:<low>".
func HighLowHistogram(draws []Draw, cutoff int) (*RatioHistogram, error) {
	if err := validateCutoff(cutoff); err != nil {
		return nil, err
	}
	if err := Validate(draws); err != nil {
		return nil, err
	}
	h := buildHistogram(draws, NumbersPerDraw+1, func(numbers []int) int {
		return HighCount(numbers, cutoff)
	}, complementLabel)
	h.Cutoff = cutoff
	return h, nil
}

// ConsecutiveHistogram buckets draws by their count of consecutive pairs,
// from 0 to NumbersPerDraw-1.
func ConsecutiveHistogram(draws []Draw) (*RatioHistogram, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}
	return buildHistogram(draws, NumbersPerDraw, ConsecutivePairs, strconv.Itoa), nil
}
