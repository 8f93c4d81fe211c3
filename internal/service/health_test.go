package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthReport(t *testing.T) {
	s := newServices(t, 8)
	ctx := context.Background()

	computedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.stats.now = func() time.Time { return computedAt }

	h := &Health{
		DrawService:  s.draw,
		StatsService: s.stats,
		checks:       []Check{func(context.Context) error { return nil }},
		now:          func() time.Time { return computedAt.Add(90 * time.Second) },
	}

	report, err := h.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.EqualValues(t, 8, report.LatestDraw.Int64)
	assert.False(t, report.CacheAgeMinutes.Valid)

	_, err = s.stats.GetFullStats(ctx, false)
	require.NoError(t, err)

	report, err = h.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.5, report.CacheAgeMinutes.Float64)
}

func TestHealthReportUnhealthy(t *testing.T) {
	s := newServices(t, 1)

	h := &Health{
		DrawService:  s.draw,
		StatsService: s.stats,
		checks: []Check{
			func(context.Context) error { return nil },
			func(context.Context) error { return ErrRedisNotReachable },
		},
		now: time.Now,
	}

	report, err := h.Report(context.Background())
	assert.True(t, errors.Is(err, ErrRedisNotReachable))
	assert.Equal(t, "error", report.Status)
}

func TestCacheAgeMinutes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, CacheAgeMinutes(now.Add(time.Minute), now))
	assert.Equal(t, 2.5, CacheAgeMinutes(now.Add(-150*time.Second), now))
}
