package drawstats

import "github.com/samber/lo"

// FrequencyTable maps every number in [MinNumber, MaxNumber] to its count.
type FrequencyTable map[int]int

func newFrequencyTable() FrequencyTable {
	t := make(FrequencyTable, MaxNumber)
	for n := MinNumber; n <= MaxNumber; n++ {
		t[n] = 0
	}
	return t
}

// Total is the sum of all counts.
func (t FrequencyTable) Total() int {
	return lo.Sum(lo.Values(t))
}

// Frequency counts the appearances of each number among the primary numbers
// of draws. The bonus number is not counted.
func Frequency(draws []Draw) (FrequencyTable, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}
	t := newFrequencyTable()
	for _, d := range draws {
		for _, n := range d.Numbers {
			t[n]++
		}
	}
	return t, nil
}

// BonusFrequency counts the appearances of each number as the bonus number.
func BonusFrequency(draws []Draw) (FrequencyTable, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}
	t := newFrequencyTable()
	for _, d := range draws {
		t[d.Bonus]++
	}
	return t, nil
}
