package drawstats

import (
	"math/rand"
	"sort"
	"testing"
)

func draw(index, bonus int, numbers ...int) Draw {
	return Draw{Index: index, Numbers: numbers, Bonus: bonus}
}

// sampleDraws is the fixture most tests share:
//
//	#1 {1,2,3,4,5,6}       sum 21  AC 0   odd 3 high 0 pairs 5
//	#3 {1,2,4,8,16,32}     sum 63  AC 10  odd 1 high 1 pairs 1
//	#7 {10,20,30,40,41,45} sum 186 AC 7   odd 2 high 4 pairs 1
func sampleDraws() []Draw {
	return []Draw{
		draw(1, 7, 1, 2, 3, 4, 5, 6),
		draw(3, 45, 1, 2, 4, 8, 16, 32),
		draw(7, 1, 10, 20, 30, 40, 41, 45),
	}
}

func randomDraws(t *testing.T, seed int64, n int) []Draw {
	t.Helper()

	r := rand.New(rand.NewSource(seed))
	draws := make([]Draw, 0, n)
	for i := 1; i <= n; i++ {
		perm := r.Perm(MaxNumber)
		numbers := make([]int, NumbersPerDraw)
		for j := range numbers {
			numbers[j] = perm[j] + 1
		}
		sort.Ints(numbers)
		draws = append(draws, draw(i, perm[NumbersPerDraw]+1, numbers...))
	}
	return draws
}

// splitDraws returns low copies of {1..6} followed by high copies of
// {2,4,...,12}, so each histogram splits the set low:high.
func splitDraws(low, high int) []Draw {
	draws := make([]Draw, 0, low+high)
	for i := 1; i <= low+high; i++ {
		if i <= low {
			draws = append(draws, draw(i, 45, 1, 2, 3, 4, 5, 6))
		} else {
			draws = append(draws, draw(i, 45, 2, 4, 6, 8, 10, 12))
		}
	}
	return draws
}
