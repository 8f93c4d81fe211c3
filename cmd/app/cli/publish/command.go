package publish

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/lotto-stats/backend/cmd/app/cli"
	"github.com/lotto-stats/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	PublishService *service.Publish
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "refresh the stats and upload a static snapshot to the publish bucket",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "publish even when the draws have not changed since the latest snapshot",
			},
		},
		Action: func(c *cli.Context) error {
			return cliapp.WithDeps(c.Context, func(ctx context.Context, deps CommandDeps) error {
				snapshot, err := deps.PublishService.Publish(ctx, c.Bool("force"))
				if errors.Is(err, service.ErrSnapshotUnchanged) {
					log.Info().
						Str("evt.name", "publish.skipped").
						Str("snapshot", snapshot.ULID).
						Msg("draws unchanged since the latest snapshot, use --force to publish anyway")
					return nil
				}
				if err != nil {
					return err
				}
				log.Info().
					Str("evt.name", "publish.done").
					Str("snapshot", snapshot.ULID).
					Str("bucket", snapshot.Bucket).
					Str("prefix", snapshot.Prefix).
					Strs("objects", snapshot.Objects).
					Msg("snapshot published")
				return nil
			})
		},
	}
}
