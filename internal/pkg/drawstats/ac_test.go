package drawstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestACValue(t *testing.T) {
	type testCase struct {
		numbers []int
		expect  int
	}

	testCases := []testCase{
		{[]int{1, 2, 3, 4, 5, 6}, 0},
		{[]int{1, 3, 6, 10, 15, 21}, 8},
		{[]int{1, 2, 4, 8, 16, 32}, 10},
		{[]int{32, 16, 8, 4, 2, 1}, 10},
		{[]int{10, 20, 30, 40, 41, 45}, 7},
	}

	for _, tc := range testCases {
		ac, err := ACValue(tc.numbers)
		require.NoError(t, err)
		assert.Equalf(t, tc.expect, ac, "numbers: %v", tc.numbers)
	}
}

func TestACValueMatchesDefinition(t *testing.T) {
	for _, d := range randomDraws(t, 7, 100) {
		diffs := map[int]bool{}
		for i := range d.Numbers {
			for j := i + 1; j < len(d.Numbers); j++ {
				diff := d.Numbers[i] - d.Numbers[j]
				if diff < 0 {
					diff = -diff
				}
				diffs[diff] = true
			}
		}

		ac, err := ACValue(d.Numbers)
		require.NoError(t, err)
		assert.Equal(t, len(diffs)-5, ac)
		assert.GreaterOrEqual(t, ac, 0)
	}
}

func TestACValueRejectsMalformed(t *testing.T) {
	var invalid *InvalidDrawError

	_, err := ACValue([]int{1, 2, 3, 4, 5})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Index)

	_, err = ACValue([]int{1, 2, 3, 4, 5, 5})
	assert.ErrorAs(t, err, &invalid)
}

func TestACHistogram(t *testing.T) {
	h, err := ACHistogramOf(sampleDraws(), DefaultOptimalRange)
	require.NoError(t, err)

	assert.Len(t, h.Counts, 11)
	assert.Equal(t, 1, h.Counts[0])
	assert.Equal(t, 1, h.Counts[7])
	assert.Equal(t, 1, h.Counts[10])
	assert.Equal(t, map[int]int{0: 1, 7: 1, 10: 1}, h.Distribution)
	assert.InDelta(t, 17.0/3, h.AvgAC.Float64, 1e-9)
	assert.Equal(t, int64(0), h.MostCommonAC.Int64)
	assert.Equal(t, 2, h.OptimalCount)
	assert.InDelta(t, 2.0/3, h.OptimalRatio, 1e-9)
}

func TestACHistogramEmpty(t *testing.T) {
	h, err := ACHistogramOf(nil, DefaultOptimalRange)
	require.NoError(t, err)
	assert.Empty(t, h.Counts)
	assert.False(t, h.AvgAC.Valid)
	assert.False(t, h.MostCommonAC.Valid)
	assert.Equal(t, 0.0, h.OptimalRatio)
}

func TestACHistogramRejectsInvertedRange(t *testing.T) {
	var cfgErr *ConfigurationError
	_, err := ACHistogramOf(sampleDraws(), Range{Min: 12, Max: 7})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "optimal_range", cfgErr.Field)
}
