package calcwkr

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/observability"
	"github.com/lotto-stats/backend/internal/service"
)

const lockName = "mutex:calcwkr"

// Refresher recomputes and caches the full stats bundle.
type Refresher interface {
	RefreshFullStats(ctx context.Context) (*model.StatsBundle, error)
}

// Locker guards a batch across instances. *redsync.Mutex satisfies it.
type Locker interface {
	LockContext(ctx context.Context) error
	UnlockContext(ctx context.Context) (bool, error)
}

type WorkerDeps struct {
	fx.In
	StatsService *service.Stats
	RedSync      *redsync.Redsync
}

type Worker struct {
	// count counts batches worker has completed so far
	count atomic.Int64

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	// timeout bounds a single refresh
	timeout time.Duration

	refresher Refresher
	lock      Locker
}

func New(conf *appconfig.Config, refresher Refresher, lock Locker) *Worker {
	return &Worker{
		interval:  conf.WorkerInterval,
		timeout:   conf.WorkerTimeout,
		refresher: refresher,
		lock:      lock,
	}
}

func Start(conf *appconfig.Config, lc fx.Lifecycle, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Str("evt.name", "calcwkr.disabled").Msg("stats refresh worker disabled")
		return
	}

	mutex := deps.RedSync.NewMutex(lockName, redsync.WithExpiry(conf.WorkerLockTTL), redsync.WithTries(1))
	w := New(conf, deps.StatsService, mutex)

	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			log.Info().
				Int64("count", w.Count()).
				Msg("worker batch started")

			if err := w.RunOnce(ctx); err != nil {
				log.Error().Err(err).Msg("worker batch failed")
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return cancel
}

// RunOnce refreshes the stats bundle unless another instance holds the
// lock, in which case it returns nil without refreshing.
func (w *Worker) RunOnce(ctx context.Context) error {
	if err := w.lock.LockContext(ctx); err != nil {
		log.Info().Err(err).Msg("worker lock held elsewhere, skipping batch")
		return nil
	}
	defer func() {
		if _, err := w.lock.UnlockContext(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to release worker lock")
		}
	}()

	taskCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	var bundle *model.StatsBundle
	err := observeCalcDuration("stats", func() (err error) {
		bundle, err = w.refresher.RefreshFullStats(taskCtx)
		return err
	})
	if err != nil {
		return err
	}

	observability.LatestDrawIndex.Set(float64(bundle.LatestDraw))
	w.count.Add(1)
	log.Info().
		Int64("count", w.Count()).
		Int("latestDraw", bundle.LatestDraw).
		Int("totalDraws", bundle.TotalDraws).
		Msg("worker batch finished")
	return nil
}

func (w *Worker) Count() int64 {
	return w.count.Load()
}
