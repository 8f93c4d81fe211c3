package drawstats

import (
	"strconv"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

// Bucket is the half-open range [Start, End).
type Bucket struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// bucketize splits values into contiguous buckets of width, the first one
// starting at min(values) floored to a multiple of width. Empty input yields
// no buckets.
func bucketize(values []int, width int) []Bucket {
	if len(values) == 0 {
		return []Bucket{}
	}
	first := floorTo(lo.Min(values), width)
	last := floorTo(lo.Max(values), width)

	buckets := make([]Bucket, 0, (last-first)/width+1)
	for start := first; start <= last; start += width {
		buckets = append(buckets, Bucket{
			Start: start,
			End:   start + width,
			Label: strconv.Itoa(start) + "-" + strconv.Itoa(start+width-1),
		})
	}
	for _, v := range values {
		buckets[(floorTo(v, width)-first)/width].Count++
	}
	return buckets
}

func bucketLabels(buckets []Bucket) ([]string, []int, map[string]int) {
	labels := make([]string, len(buckets))
	counts := make([]int, len(buckets))
	dist := make(map[string]int, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		counts[i] = b.Count
		dist[b.Label] = b.Count
	}
	return labels, counts, dist
}

// DrawSum is the sum of the primary numbers.
func DrawSum(numbers []int) int {
	return lo.Sum(numbers)
}

// SumHistogram buckets draws by the sum of their primary numbers. The
// summary statistics are computed on the raw sums and are null when there
// is no draw.
type SumHistogram struct {
	BucketWidth     int            `json:"bucket_width"`
	Buckets         []Bucket       `json:"buckets"`
	Labels          []string       `json:"labels"`
	Counts          []int          `json:"counts"`
	SumDistribution map[string]int `json:"sum_distribution"`
	Total           int            `json:"total"`

	MinSum        null.Int   `json:"min_sum"`
	MaxSum        null.Int   `json:"max_sum"`
	AvgSum        null.Float `json:"avg_sum"`
	MedianSum     null.Float `json:"median_sum"`
	MostCommonSum null.Int   `json:"most_common_sum"`

	AllSums []int `json:"all_sums"`
}

func SumHistogramOf(draws []Draw, bucketWidth int) (*SumHistogram, error) {
	if err := validateWidth("bucket_width", bucketWidth); err != nil {
		return nil, err
	}
	if err := Validate(draws); err != nil {
		return nil, err
	}

	sums := lo.Map(draws, func(d Draw, _ int) int { return DrawSum(d.Numbers) })
	h := &SumHistogram{
		BucketWidth:   bucketWidth,
		Buckets:       bucketize(sums, bucketWidth),
		Total:         len(draws),
		AvgSum:        mean(sums),
		MedianSum:     median(sums),
		MostCommonSum: mode(sums),
		AllSums:       sums,
	}
	h.Labels, h.Counts, h.SumDistribution = bucketLabels(h.Buckets)
	if len(sums) > 0 {
		h.MinSum = null.IntFrom(int64(lo.Min(sums)))
		h.MaxSum = null.IntFrom(int64(lo.Max(sums)))
	}
	return h, nil
}
