// Package drawstats aggregates historical lottery draws into the
// distributions rendered by the statistics dashboards.
//
// Every function in this package is pure: it only reads its input and
// allocates a fresh result, so callers may share a DrawSet between
// goroutines freely.
package drawstats

import (
	"sort"
	"time"
)

const (
	// MinNumber and MaxNumber bound every primary and bonus number.
	MinNumber = 1
	MaxNumber = 45

	// NumbersPerDraw is the number of primary numbers in a draw.
	NumbersPerDraw = 6
)

// Draw is one historical lottery result.
type Draw struct {
	Index   int        `json:"draw_number"`
	Numbers []int      `json:"numbers"`
	Bonus   int        `json:"bonus"`
	Date    *time.Time `json:"draw_date,omitempty"`
}

// Sorted returns a sorted copy of the primary numbers.
func (d Draw) Sorted() []int {
	s := make([]int, len(d.Numbers))
	copy(s, d.Numbers)
	sort.Ints(s)
	return s
}

// Validate checks the structural invariants of a single draw.
func (d Draw) Validate() error {
	if d.Index <= 0 {
		return newInvalidDraw(d.Index, "draw index must be positive")
	}
	if len(d.Numbers) != NumbersPerDraw {
		return newInvalidDraw(d.Index, "expected %d numbers, got %d", NumbersPerDraw, len(d.Numbers))
	}

	var seen [MaxNumber + 1]bool
	for _, n := range d.Numbers {
		if n < MinNumber || n > MaxNumber {
			return newInvalidDraw(d.Index, "number %d is outside [%d,%d]", n, MinNumber, MaxNumber)
		}
		if seen[n] {
			return newInvalidDraw(d.Index, "number %d appears more than once", n)
		}
		seen[n] = true
	}

	if d.Bonus < MinNumber || d.Bonus > MaxNumber {
		return newInvalidDraw(d.Index, "bonus %d is outside [%d,%d]", d.Bonus, MinNumber, MaxNumber)
	}
	if seen[d.Bonus] {
		return newInvalidDraw(d.Index, "bonus %d collides with a primary number", d.Bonus)
	}
	return nil
}

// Validate checks every draw of the set and rejects duplicated indexes.
// The first offending draw is reported.
func Validate(draws []Draw) error {
	indexes := make(map[int]struct{}, len(draws))
	for _, d := range draws {
		if err := d.Validate(); err != nil {
			return err
		}
		if _, ok := indexes[d.Index]; ok {
			return newInvalidDraw(d.Index, "draw index appears more than once in the set")
		}
		indexes[d.Index] = struct{}{}
	}
	return nil
}

// SortByIndex returns a copy of draws ordered by index ascending.
func SortByIndex(draws []Draw) []Draw {
	sorted := make([]Draw, len(draws))
	copy(sorted, draws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})
	return sorted
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Primes lists the primes within [MinNumber, MaxNumber].
func Primes() []int {
	primes := make([]int, 0, 14)
	for n := MinNumber; n <= MaxNumber; n++ {
		if isPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}
