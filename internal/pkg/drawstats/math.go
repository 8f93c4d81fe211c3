package drawstats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
	"gopkg.in/guregu/null.v3"
)

// Round rounds f to n decimal places, halves away from zero.
func Round(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(f*pow) / pow
}

// percentage returns part/total*100 rounded to places decimals, halves away
// from zero, with 0/0 := 0. The division is exact so that true halves such as
// 23/80 = 28.75% are not lost to float error. part and total are counts.
func percentage(part, total, places int) float64 {
	if total == 0 {
		return 0
	}
	scale := 1
	for i := 0; i < places; i++ {
		scale *= 10
	}
	num := part * 100 * scale
	q, r := num/total, num%total
	if 2*r >= total {
		q++
	}
	return float64(q) / float64(scale)
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func mean[T constraints.Integer](values []T) null.Float {
	if len(values) == 0 {
		return null.Float{}
	}
	var sum T
	for _, v := range values {
		sum += v
	}
	return null.FloatFrom(float64(sum) / float64(len(values)))
}

func median[T constraints.Integer](values []T) null.Float {
	n := len(values)
	if n == 0 {
		return null.Float{}
	}
	sorted := make([]T, n)
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if n%2 == 1 {
		return null.FloatFrom(float64(sorted[n/2]))
	}
	return null.FloatFrom(float64(sorted[n/2-1]+sorted[n/2]) / 2)
}

// mode returns the most frequent value, the smallest one on ties.
func mode(values []int) null.Int {
	if len(values) == 0 {
		return null.Int{}
	}
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	best, bestCount := 0, -1
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return null.IntFrom(int64(best))
}

// argmax returns the first index holding the largest count.
func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// floorTo rounds v down to a multiple of width.
func floorTo(v, width int) int {
	q := v / width
	if v%width != 0 && v < 0 {
		q--
	}
	return q * width
}
