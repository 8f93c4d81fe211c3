package drawstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumHistogram(t *testing.T) {
	h, err := SumHistogramOf(sampleDraws(), DefaultBucketWidth)
	require.NoError(t, err)

	assert.Len(t, h.Buckets, 34)
	assert.Equal(t, Bucket{Start: 20, End: 25, Label: "20-24", Count: 1}, h.Buckets[0])
	assert.Equal(t, "185-189", h.Labels[len(h.Labels)-1])
	assert.Equal(t, 1, h.SumDistribution["60-64"])
	assert.Equal(t, 0, h.SumDistribution["65-69"])
	assert.Equal(t, 3, h.Total)
	assert.Equal(t, []int{21, 63, 186}, h.AllSums)

	assert.Equal(t, int64(21), h.MinSum.Int64)
	assert.Equal(t, int64(186), h.MaxSum.Int64)
	assert.Equal(t, 90.0, h.AvgSum.Float64)
	assert.Equal(t, 63.0, h.MedianSum.Float64)
	assert.Equal(t, int64(21), h.MostCommonSum.Int64, "all sums tie, the smallest wins")
}

func TestSumHistogramMedian(t *testing.T) {
	draws := []Draw{
		draw(1, 1, 10, 15, 16, 17, 20, 22),
		draw(2, 1, 10, 15, 16, 17, 20, 32),
		draw(3, 1, 10, 15, 16, 17, 20, 42),
		draw(4, 1, 10, 15, 16, 17, 30, 42),
	}

	h, err := SumHistogramOf(draws, DefaultBucketWidth)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 110, 120, 130}, h.AllSums)
	assert.Equal(t, 115.0, h.MedianSum.Float64)

	h, err = SumHistogramOf(draws[:3], DefaultBucketWidth)
	require.NoError(t, err)
	assert.Equal(t, 110.0, h.MedianSum.Float64)
}

func TestSumHistogramMode(t *testing.T) {
	draws := []Draw{
		draw(1, 45, 1, 2, 3, 4, 5, 6),
		draw(2, 45, 1, 2, 3, 4, 5, 26),
		draw(3, 45, 1, 2, 3, 4, 6, 25),
		draw(4, 45, 2, 3, 4, 5, 6, 1),
	}

	h, err := SumHistogramOf(draws, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(21), h.MostCommonSum.Int64)
	assert.Equal(t, []string{"20-29", "30-39", "40-49"}, h.Labels)
	assert.Equal(t, []int{2, 0, 2}, h.Counts)
}

func TestSumHistogramEmpty(t *testing.T) {
	h, err := SumHistogramOf([]Draw{}, DefaultBucketWidth)
	require.NoError(t, err)

	assert.Empty(t, h.Buckets)
	assert.Empty(t, h.SumDistribution)
	assert.False(t, h.MinSum.Valid)
	assert.False(t, h.MaxSum.Valid)
	assert.False(t, h.AvgSum.Valid)
	assert.False(t, h.MedianSum.Valid)
	assert.False(t, h.MostCommonSum.Valid)
}

func TestSumHistogramRejectsWidth(t *testing.T) {
	var cfgErr *ConfigurationError
	_, err := SumHistogramOf(sampleDraws(), 0)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bucket_width", cfgErr.Field)
}
