package drawstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaps(t *testing.T) {
	draws := sampleDraws()
	// input order does not matter
	draws[0], draws[2] = draws[2], draws[0]

	gaps, err := Gaps(draws)
	require.NoError(t, err)
	require.Len(t, gaps, MaxNumber)

	one := gaps[0]
	assert.Equal(t, 1, one.Number)
	assert.Equal(t, 2, one.Appearances)
	assert.Equal(t, int64(3), one.LastAppearance.Int64)
	assert.Equal(t, []int{2}, one.Gaps)
	assert.Equal(t, 2.0, one.AvgGap.Float64)
	assert.Equal(t, int64(2), one.MaxGap.Int64)

	fortyFive := gaps[44]
	assert.Equal(t, 1, fortyFive.Appearances)
	assert.Equal(t, int64(7), fortyFive.LastAppearance.Int64)
	assert.False(t, fortyFive.AvgGap.Valid)
	assert.False(t, fortyFive.MaxGap.Valid)
	assert.Empty(t, fortyFive.Gaps)

	seven := gaps[6]
	assert.Equal(t, 0, seven.Appearances, "bonus numbers are not appearances")
	assert.False(t, seven.LastAppearance.Valid)
}

func TestGapsAverage(t *testing.T) {
	draws := []Draw{
		draw(2, 45, 1, 2, 3, 4, 5, 6),
		draw(5, 45, 1, 12, 13, 14, 15, 16),
		draw(6, 45, 1, 22, 23, 24, 25, 26),
		draw(12, 45, 1, 32, 33, 34, 35, 36),
	}

	gaps, err := Gaps(draws)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 6}, gaps[0].Gaps)
	assert.Equal(t, 10.0/3, gaps[0].AvgGap.Float64)
	assert.Equal(t, int64(6), gaps[0].MaxGap.Int64)
	assert.Equal(t, int64(12), gaps[0].LastAppearance.Int64)
}
