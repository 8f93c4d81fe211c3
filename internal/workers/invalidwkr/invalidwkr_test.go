package invalidwkr

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotto-stats/backend/internal/model"
	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/pkg/cache"
	"github.com/lotto-stats/backend/internal/service"
)

func TestHandleFlushesCaches(t *testing.T) {
	modelcache.Initialize(cache.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, modelcache.StatsBundle.Set(ctx, "c23|b5|d5|ac7-12|k10", model.StatsBundle{TotalDraws: 3}, time.Hour))
	modelcache.LatestDrawIndex.Set(3, time.Hour)

	Handle(&nats.Msg{
		Subject: service.DrawsImportedSubject,
		Data:    []byte(`{"format":"csv","count":1,"affected":1,"first_draw":4,"last_draw":4,"fingerprint":"ab"}`),
	})

	var bundle model.StatsBundle
	assert.ErrorIs(t, modelcache.StatsBundle.Get(ctx, "c23|b5|d5|ac7-12|k10", &bundle), cache.ErrNotFound)

	var latest int
	assert.Error(t, modelcache.LatestDrawIndex.Get(&latest))
}
