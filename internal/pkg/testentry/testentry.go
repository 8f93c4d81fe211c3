// Package testentry starts the HTTP stack over in-memory draws for tests.
package testentry

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/controller"
	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/pkg/cache"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
	"github.com/lotto-stats/backend/internal/server/httpserver"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
)

// Config is the default configuration with infrastructure left unset.
func Config() *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			TrustedProxies:              []string{"127.0.0.1"},
			HTTPServerShutdownTimeout:   time.Second,
			StatsCacheTTL:               time.Hour,
			AnalysisHighLowCutoff:       drawstats.DefaultCutoff,
			AnalysisSumBucketWidth:      drawstats.DefaultBucketWidth,
			AnalysisDigitSumBucketWidth: drawstats.DefaultDigitSumBucketWidth,
			AnalysisOptimalAC:           appconfig.AnalysisRange(drawstats.DefaultOptimalRange),
			AnalysisTopPatterns:         drawstats.DefaultTopK,
			WindowRecent:                100,
			WindowLatest:                10,
		},
	}
}

// Populate starts a fiber app serving every controller over source and
// fills targets from the graph. Caches are memory backed and emptied first.
func Populate(t zerolog.TestingLog, source *MemorySource, targets ...any) {
	modelcache.Initialize(cache.NewMemoryStore())
	if err := modelcache.FlushAll(); err != nil {
		panic(err)
	}

	// for testing, logger is too annoying. therefore, we use a NopLogger here
	opts := []fx.Option{
		fx.NopLogger,
		fx.Supply(Config()),
		fx.Provide(
			func() service.DrawSource { return source },
			service.NewDraw,
			service.NewStats,
			func(drawService *service.Draw, statsService *service.Stats) *service.Health {
				return service.NewHealthWithChecks(drawService, statsService)
			},
			func(conf *appconfig.Config) *fiber.App {
				return httpserver.Create(conf, nil)
			},
			svr.CreateEndpointGroups,
		),
		controller.Module(),
		fx.Populate(targets...),
		fx.Invoke(func() {
			log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
		}),
	}

	app := fx.New(
		opts...,
	)

	if err := app.Start(context.Background()); err != nil {
		panic(err)
	}
}
