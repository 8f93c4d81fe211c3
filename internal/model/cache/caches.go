package cache

import (
	"sync"

	"gopkg.in/guregu/null.v3"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/cache"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

type Flusher func() error

var (
	// StatsBundle is keyed by the aggregation config key.
	StatsBundle *cache.Set[model.StatsBundle]

	// Report is keyed by window|config key|fingerprint.
	Report *cache.Set[drawstats.Report]

	LatestDrawIndex *cache.Singular[int]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(store cache.Store) {
	once.Do(func() {
		initializeCaches(store)
	})
}

// Delete flushes the named cache. Sets are flushed as a whole even when a
// key is given.
func Delete(name string, key null.String) error {
	if key.Valid {
		if flush, ok := SetMap[name]; ok {
			return flush()
		}
		return nil
	}
	if flush, ok := SingularFlusherMap[name]; ok {
		return flush()
	}
	if flush, ok := SetMap[name]; ok {
		return flush()
	}
	return nil
}

// FlushAll flushes every registered cache, returning the first error.
func FlushAll() error {
	var firstErr error
	for _, flushers := range []map[string]Flusher{SetMap, SingularFlusherMap} {
		for _, flush := range flushers {
			if err := flush(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func initializeCaches(store cache.Store) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// stats
	StatsBundle = cache.NewSet[model.StatsBundle](store, "statsBundle#config")
	Report = cache.NewSet[drawstats.Report](store, "report#window|config|fingerprint")

	SetMap["statsBundle#config"] = StatsBundle.Flush
	SetMap["report#window|config|fingerprint"] = Report.Flush

	// draws
	LatestDrawIndex = cache.NewSingular[int]("latestDrawIndex")

	SingularFlusherMap["latestDrawIndex"] = LatestDrawIndex.Delete
}
