package drawstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	freq, err := Frequency(sampleDraws())
	require.NoError(t, err)

	assert.Len(t, freq, MaxNumber)
	assert.Equal(t, 18, freq.Total())
	assert.Equal(t, 2, freq[1])
	assert.Equal(t, 2, freq[2])
	assert.Equal(t, 1, freq[45])
	assert.Equal(t, 0, freq[7], "bonus numbers are not counted")
}

func TestFrequencyConservation(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		draws := randomDraws(t, seed, int(seed)*37)
		freq, err := Frequency(draws)
		require.NoError(t, err)
		assert.Equal(t, NumbersPerDraw*len(draws), freq.Total())
	}
}

func TestFrequencyEmpty(t *testing.T) {
	freq, err := Frequency(nil)
	require.NoError(t, err)
	assert.Len(t, freq, MaxNumber)
	assert.Equal(t, 0, freq.Total())
}

func TestBonusFrequency(t *testing.T) {
	freq, err := BonusFrequency(sampleDraws())
	require.NoError(t, err)
	assert.Equal(t, 3, freq.Total())
	assert.Equal(t, 1, freq[7])
	assert.Equal(t, 1, freq[45])
	assert.Equal(t, 1, freq[1])
}
