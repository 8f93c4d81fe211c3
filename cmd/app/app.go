package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lotto-stats/backend/cmd/app/cli/importer"
	"github.com/lotto-stats/backend/cmd/app/cli/migrate"
	"github.com/lotto-stats/backend/cmd/app/cli/publish"
	"github.com/lotto-stats/backend/cmd/app/cli/render"
	"github.com/lotto-stats/backend/cmd/app/server"
	"github.com/lotto-stats/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.ServiceName,
		Description: "Lottery draw statistics backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS to announce draw imports and Redis for caching and locking.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			migrate.Command(),
			importer.Command(),
			render.Command(),
			publish.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
