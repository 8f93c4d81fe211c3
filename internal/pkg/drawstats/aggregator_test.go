package drawstats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAggregatorRejectsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BucketWidth = 0

	_, err := NewAggregator(cfg)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bucket_width", cfgErr.Field)
}

func TestAggregate(t *testing.T) {
	agg, err := NewAggregator(DefaultConfig())
	require.NoError(t, err)

	r, err := agg.Aggregate(sampleDraws())
	require.NoError(t, err)

	assert.Equal(t, 3, r.DrawCount)
	assert.Equal(t, int64(1), r.FirstIndex.Int64)
	assert.Equal(t, int64(7), r.LastIndex.Int64)
	assert.Equal(t, 18, r.Frequency.Total())
	assert.Equal(t, 3, r.BonusFrequency.Total())
	assert.Equal(t, DefaultCutoff, r.HighLowStats.Cutoff)

	s := r.Summary
	assert.Equal(t, 90.0, s.AvgSum.Float64)
	assert.Equal(t, int64(21), s.SumMin.Int64)
	assert.Equal(t, int64(186), s.SumMax.Int64)
	assert.Equal(t, int64(0), s.MostCommonAC.Int64)
	assert.Equal(t, "1:5 (33.3%)", s.OddEvenRatio.String)
	assert.Equal(t, "0:6 (33.3%)", s.HighLowRatio.String)
	assert.Equal(t, "1 pairs (66.7%)", s.Consecutive.String)
	assert.Equal(t, int64(1), s.MostCommonPrime.Int64)
}

func TestAggregateEmpty(t *testing.T) {
	agg, err := NewAggregator(DefaultConfig())
	require.NoError(t, err)

	r, err := agg.Aggregate(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.DrawCount)
	assert.False(t, r.FirstIndex.Valid)
	assert.False(t, r.Summary.AvgSum.Valid)
	assert.False(t, r.Summary.OddEvenRatio.Valid)
	assert.False(t, r.Summary.Consecutive.Valid)
	assert.False(t, r.Summary.MostCommonPrime.Valid)
}

func TestAggregateIsIdempotent(t *testing.T) {
	agg, err := NewAggregator(DefaultConfig())
	require.NoError(t, err)

	draws := randomDraws(t, 3, 120)
	first, err := agg.Aggregate(draws)
	require.NoError(t, err)
	second, err := agg.Aggregate(draws)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, randomDraws(t, 3, 120), draws, "input must not be mutated")
}

func TestEntryPointsRejectInvalidDraws(t *testing.T) {
	agg, err := NewAggregator(DefaultConfig())
	require.NoError(t, err)

	entryPoints := map[string]func([]Draw) error{
		"frequency":       func(d []Draw) error { _, err := agg.Frequency(d); return err },
		"bonus_frequency": func(d []Draw) error { _, err := BonusFrequency(d); return err },
		"odd_even":        func(d []Draw) error { _, err := agg.OddEvenHistogram(d); return err },
		"high_low":        func(d []Draw) error { _, err := agg.HighLowHistogram(d); return err },
		"ac":              func(d []Draw) error { _, err := agg.ACHistogram(d); return err },
		"sum":             func(d []Draw) error { _, err := agg.SumHistogram(d); return err },
		"patterns":        func(d []Draw) error { _, err := agg.PatternStats(d); return err },
		"consecutive":     func(d []Draw) error { _, err := ConsecutiveHistogram(d); return err },
		"gaps":            func(d []Draw) error { _, err := Gaps(d); return err },
		"aggregate":       func(d []Draw) error { _, err := agg.Aggregate(d); return err },
	}

	malformed := []Draw{
		draw(9, 7, 1, 2, 3, 4, 5),
		draw(9, 7, 1, 2, 3, 4, 5, 5),
		draw(9, 6, 1, 2, 3, 4, 5, 6),
	}

	for name, fn := range entryPoints {
		for _, bad := range malformed {
			draws := append(sampleDraws(), bad)
			err := fn(draws)

			var invalid *InvalidDrawError
			if assert.Truef(t, errors.As(err, &invalid), "%s: expect InvalidDrawError, got %v", name, err) {
				assert.Equalf(t, 9, invalid.Index, "%s: expect offending draw index", name)
			}
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	draws := []Draw{
		draw(1, 7, 1, 2, 3, 4, 5, 6),
		draw(2, 1, 10, 20, 30, 40, 41, 45),
		draw(3, 13, 2, 4, 6, 8, 10, 12),
	}

	agg, err := NewAggregator(DefaultConfig())
	require.NoError(t, err)

	freq, err := agg.Frequency(draws)
	require.NoError(t, err)
	assert.Equal(t, 2, freq[2])
	assert.Equal(t, 1, freq[1])

	oe, err := agg.OddEvenHistogram(draws)
	require.NoError(t, err)
	assert.Equal(t, 1, oe.Counts[3])
	assert.Equal(t, 1, oe.Counts[2], "41 and 45 are both odd")
	assert.Equal(t, 1, oe.Counts[0])
}

func TestFingerprint(t *testing.T) {
	a := sampleDraws()
	b := sampleDraws()
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b[1].Bonus = 44
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(a[:2]))
	assert.Equal(t, Fingerprint(nil), Fingerprint([]Draw{}))
}
