package drawstats

import (
	"sort"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

const (
	// BandCount and BandWidth partition [MinNumber, MaxNumber] into
	// 1-9, 10-18, 19-27, 28-36 and 37-45.
	BandCount = 5
	BandWidth = 9
)

// CountDistribution maps a per-draw count (0..6) to the number of draws
// showing it. Every key from 0 to NumbersPerDraw is present.
type CountDistribution map[int]int

// BandPattern is the per-band occupancy of a draw; it always sums to 6.
type BandPattern [BandCount]int

func (p BandPattern) String() string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

func (p BandPattern) less(q BandPattern) bool {
	for i := range p {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}

// BandOf returns the zero-based band of n.
func BandOf(n int) int {
	return (n - MinNumber) / BandWidth
}

func BandPatternOf(numbers []int) BandPattern {
	var p BandPattern
	for _, n := range numbers {
		p[BandOf(n)]++
	}
	return p
}

// BandLabels names each band by its inclusive bounds.
func BandLabels() []string {
	labels := make([]string, BandCount)
	for b := range labels {
		start := MinNumber + b*BandWidth
		labels[b] = strconv.Itoa(start) + "-" + strconv.Itoa(start+BandWidth-1)
	}
	return labels
}

// PatternCount is one band pattern with its draw count and share in percent.
type PatternCount struct {
	Pattern    BandPattern `json:"pattern"`
	Label      string      `json:"label"`
	Count      int         `json:"count"`
	Percentage float64     `json:"percentage"`
}

// BandPatternStats holds the most frequent band patterns, most common first.
type BandPatternStats struct {
	TopPatterns   []PatternCount `json:"top_patterns"`
	PatternLabels []string       `json:"pattern_labels"`
}

// LastDigitStats tallies the last digits of the primary numbers and the
// per-draw sum of those digits.
type LastDigitStats struct {
	// DigitDistribution is keyed by the digit as a string, "0" to "9".
	DigitDistribution map[string]int `json:"digit_distribution"`

	SumBucketWidth  int            `json:"sum_bucket_width"`
	SumBuckets      []Bucket       `json:"sum_buckets"`
	SumDistribution map[string]int `json:"sum_distribution"`
	SumAvg          null.Float     `json:"sum_avg"`
	SumMin          null.Int       `json:"sum_min"`
	SumMax          null.Int       `json:"sum_max"`
}

// PatternStats gathers the auxiliary per-draw distributions of a draw set.
type PatternStats struct {
	PrimeNumbers      []int             `json:"prime_numbers"`
	PrimeDistribution CountDistribution `json:"prime_distribution"`
	Mult3Distribution CountDistribution `json:"mult_3_distribution"`
	Mult5Distribution CountDistribution `json:"mult_5_distribution"`

	LastDigits   *LastDigitStats   `json:"last_digit_analysis"`
	Consecutive  *RatioHistogram   `json:"consecutive_pairs_stats"`
	BandPatterns *BandPatternStats `json:"combinations_analysis"`
}

func newCountDistribution() CountDistribution {
	d := make(CountDistribution, NumbersPerDraw+1)
	for k := 0; k <= NumbersPerDraw; k++ {
		d[k] = 0
	}
	return d
}

// MostCommon returns the count with the most draws, the smallest on ties,
// and false when no draw was tallied.
func (d CountDistribution) MostCommon() (int, bool) {
	best, bestDraws := 0, 0
	for k := 0; k <= NumbersPerDraw; k++ {
		if d[k] > bestDraws {
			best, bestDraws = k, d[k]
		}
	}
	return best, bestDraws > 0
}

func countMultiples(numbers []int, m int) int {
	c := 0
	for _, n := range numbers {
		if n%m == 0 {
			c++
		}
	}
	return c
}

// PrimeCount is the number of primes among numbers. 1 is not prime.
func PrimeCount(numbers []int) int {
	c := 0
	for _, n := range numbers {
		if isPrime(n) {
			c++
		}
	}
	return c
}

// PatternStatsOf computes the auxiliary distributions of draws. Only
// cfg.DigitSumBucketWidth and cfg.TopK are read.
func PatternStatsOf(draws []Draw, cfg Config) (*PatternStats, error) {
	if err := validateWidth("digit_sum_bucket_width", cfg.DigitSumBucketWidth); err != nil {
		return nil, err
	}
	if cfg.TopK <= 0 {
		return nil, &ConfigurationError{Field: "top_k", Reason: "must be positive, got " + strconv.Itoa(cfg.TopK)}
	}
	if err := Validate(draws); err != nil {
		return nil, err
	}

	consecutive, err := ConsecutiveHistogram(draws)
	if err != nil {
		return nil, err
	}

	s := &PatternStats{
		PrimeNumbers:      Primes(),
		PrimeDistribution: newCountDistribution(),
		Mult3Distribution: newCountDistribution(),
		Mult5Distribution: newCountDistribution(),
		Consecutive:       consecutive,
	}
	for _, d := range draws {
		s.PrimeDistribution[PrimeCount(d.Numbers)]++
		s.Mult3Distribution[countMultiples(d.Numbers, 3)]++
		s.Mult5Distribution[countMultiples(d.Numbers, 5)]++
	}
	s.LastDigits = lastDigitStats(draws, cfg.DigitSumBucketWidth)
	s.BandPatterns = bandPatternStats(draws, cfg.TopK)
	return s, nil
}

func lastDigitStats(draws []Draw, width int) *LastDigitStats {
	s := &LastDigitStats{
		DigitDistribution: make(map[string]int, 10),
		SumBucketWidth:    width,
	}
	for digit := 0; digit < 10; digit++ {
		s.DigitDistribution[strconv.Itoa(digit)] = 0
	}

	sums := make([]int, 0, len(draws))
	for _, d := range draws {
		sum := 0
		for _, n := range d.Numbers {
			s.DigitDistribution[strconv.Itoa(n%10)]++
			sum += n % 10
		}
		sums = append(sums, sum)
	}

	s.SumBuckets = bucketize(sums, width)
	_, _, s.SumDistribution = bucketLabels(s.SumBuckets)
	s.SumAvg = mean(sums)
	if len(sums) > 0 {
		sorted := append([]int(nil), sums...)
		sort.Ints(sorted)
		s.SumMin = null.IntFrom(int64(sorted[0]))
		s.SumMax = null.IntFrom(int64(sorted[len(sorted)-1]))
	}
	return s
}

func bandPatternStats(draws []Draw, topK int) *BandPatternStats {
	counts := make(map[BandPattern]int)
	for _, d := range draws {
		counts[BandPatternOf(d.Numbers)]++
	}

	ranked := make([]PatternCount, 0, len(counts))
	for p, c := range counts {
		ranked = append(ranked, PatternCount{
			Pattern:    p,
			Label:      p.String(),
			Count:      c,
			Percentage: percentage(c, len(draws), 2),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Pattern.less(ranked[j].Pattern)
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	return &BandPatternStats{
		TopPatterns:   ranked,
		PatternLabels: BandLabels(),
	}
}
