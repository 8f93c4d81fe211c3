package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/cache"
)

func TestFlushAll(t *testing.T) {
	Initialize(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, StatsBundle.Set(ctx, "k", model.StatsBundle{TotalDraws: 3}, time.Minute))
	LatestDrawIndex.Set(7, time.Minute)

	require.NoError(t, FlushAll())

	var bundle model.StatsBundle
	assert.ErrorIs(t, StatsBundle.Get(ctx, "k", &bundle), cache.ErrNotFound)
	var latest int
	assert.ErrorIs(t, LatestDrawIndex.Get(&latest), cache.ErrNotFound)
}

func TestDeleteByName(t *testing.T) {
	Initialize(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, StatsBundle.Set(ctx, "k", model.StatsBundle{TotalDraws: 3}, time.Minute))
	require.NoError(t, Delete("statsBundle#config", null.StringFrom("k")))

	var bundle model.StatsBundle
	assert.ErrorIs(t, StatsBundle.Get(ctx, "k", &bundle), cache.ErrNotFound)

	assert.NoError(t, Delete("unknown", null.String{}))
}
