package service

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"github.com/lotto-stats/backend/internal/pkg/bininfo"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

var (
	ErrDatabaseNotReachable = errors.New("database not reachable")
	ErrRedisNotReachable    = errors.New("redis not reachable")
	ErrNATSNotReachable     = errors.New("nats not reachable")
)

type Check func(ctx context.Context) error

type HealthReport struct {
	Status          string     `json:"status"`
	Service         string     `json:"service"`
	Version         string     `json:"version"`
	LatestDraw      null.Int   `json:"latest_draw"`
	CacheAgeMinutes null.Float `json:"cache_age_minutes"`
	Timestamp       time.Time  `json:"timestamp"`
}

type Health struct {
	DrawService  *Draw
	StatsService *Stats

	checks []Check
	now    func() time.Time
}

func NewHealth(db *bun.DB, redisClient *redis.Client, nc *nats.Conn, drawService *Draw, statsService *Stats) *Health {
	return NewHealthWithChecks(drawService, statsService,
		func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(ErrDatabaseNotReachable, err.Error())
			}
			return nil
		},
		func(ctx context.Context) error {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				return errors.Wrap(ErrRedisNotReachable, err.Error())
			}
			return nil
		},
		func(ctx context.Context) error {
			// nats pings on its own every 20 seconds (see infra/nats.go)
			status := nc.Status()
			if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
				return errors.Wrap(ErrNATSNotReachable, status.String())
			}
			return nil
		},
	)
}

// NewHealthWithChecks builds a Health running checks on every Ping.
func NewHealthWithChecks(drawService *Draw, statsService *Stats, checks ...Check) *Health {
	return &Health{
		DrawService:  drawService,
		StatsService: statsService,
		checks:       checks,
		now:          time.Now,
	}
}

// Ping runs every dependency check and returns the first failure.
func (s *Health) Ping(ctx context.Context) error {
	var eg errgroup.Group
	for _, check := range s.checks {
		eg.Go(func() error {
			return check(ctx)
		})
	}
	return eg.Wait()
}

// Report pings the dependencies and describes the served data. Status is
// "ok" or "error"; the error is the failed check, if any.
func (s *Health) Report(ctx context.Context) (*HealthReport, error) {
	now := s.now()
	report := &HealthReport{
		Status:    "ok",
		Service:   bininfo.ServiceName,
		Version:   bininfo.Version,
		Timestamp: now.UTC(),
	}

	pingErr := s.Ping(ctx)
	if pingErr != nil {
		report.Status = "error"
		return report, pingErr
	}

	latest, err := s.DrawService.LatestIndex(ctx)
	if err != nil {
		report.Status = "error"
		return report, err
	}
	if latest > 0 {
		report.LatestDraw = null.IntFrom(int64(latest))
	}
	if bundle, ok := s.StatsService.PeekFullStats(ctx); ok {
		report.CacheAgeMinutes = null.FloatFrom(CacheAgeMinutes(bundle.ComputedAt, now))
	}
	return report, nil
}

// CacheAgeMinutes is the age of a result computed at computedAt, rounded
// to one decimal place.
func CacheAgeMinutes(computedAt, now time.Time) float64 {
	age := now.Sub(computedAt).Minutes()
	if age < 0 {
		age = 0
	}
	return drawstats.Round(age, 1)
}
