package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/app"
	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/app/appcontext"
)

// Run serves the API until the process receives a termination signal.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
}

func run(serve *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			go func() {
				log.Info().Str("address", conf.ServiceAddress).Msg("server listening")
				if err := serve.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return serve.ShutdownWithContext(ctx)
		},
	})
}
