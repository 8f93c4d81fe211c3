package migrate

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/app/appcontext"
	"github.com/lotto-stats/backend/internal/migrations"
	"github.com/lotto-stats/backend/internal/pkg/logger"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or roll back the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: func(c *cli.Context) error {
					return withMigrator(func(m *migrations.Migrator) error {
						return m.Up()
					})
				},
			},
			{
				Name:  "down",
				Usage: "roll back the latest migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Usage: "number of migrations to roll back",
						Value: 1,
					},
				},
				Action: func(c *cli.Context) error {
					return withMigrator(func(m *migrations.Migrator) error {
						return m.Down(c.Int("steps"))
					})
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					return withMigrator(func(*migrations.Migrator) error {
						return nil
					})
				},
			},
		},
	}
}

// withMigrator runs fn and logs the schema version it leaves behind. Only
// the configuration is loaded; no other infrastructure is needed.
func withMigrator(fn func(m *migrations.Migrator) error) error {
	conf, err := appconfig.Parse(appcontext.Declare(appcontext.EnvCLI))
	if err != nil {
		return err
	}
	logger.Configure(conf)

	m, err := migrations.New(conf.PostgresDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close migrator")
		}
	}()

	if err := fn(m); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	log.Info().
		Str("evt.name", "migrate.done").
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("schema migrated")
	return nil
}
