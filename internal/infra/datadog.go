package infra

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/pkg/bininfo"
)

// Datadog starts the continuous profiler for server processes. A profiler
// that fails to start is logged and otherwise ignored.
func Datadog(conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevMode || !conf.DatadogProfilerEnabled {
		log.Info().
			Str("evt.name", "infra.datadog.disabled").
			Bool("devMode", conf.DevMode).
			Msg("datadog profiler is disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := profiler.Start(
				profiler.WithService(bininfo.ServiceName),
				profiler.WithEnv("prod"),
				profiler.WithVersion(bininfo.Version),
				profiler.WithAgentAddr(conf.DatadogProfilerAgentAddress),
				profiler.WithTags(
					"app.env:"+conf.AppContext.Env.String(),
					"app.worker_enabled:"+strconv.FormatBool(conf.WorkerEnabled),
				),
				profiler.WithProfileTypes(profiler.CPUProfile, profiler.HeapProfile),
			)
			if err != nil {
				log.Error().
					Err(err).
					Str("evt.name", "infra.datadog.error").
					Msg("datadog profiler failed to start")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			profiler.Stop()
			return nil
		},
	})
}
