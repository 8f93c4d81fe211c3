package render

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/lotto-stats/backend/cmd/app/cli"
	"github.com/lotto-stats/backend/internal/pkg/charts"
	"github.com/lotto-stats/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	StatsService *service.Stats
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render the stats charts of a draw window into html files",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "out",
				Usage:    "output directory",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "only render the trailing N draws; shorthand for --window recent:N",
			},
			&cli.StringFlag{
				Name:  "window",
				Usage: "draw window: all, recent:N or range:S-E",
				Value: "all",
			},
		},
		Action: func(c *cli.Context) error {
			w, err := service.ParseWindow(c.String("window"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if limit := c.Int("limit"); limit > 0 {
				w = service.RecentDraws(limit)
			}

			return cliapp.WithDeps(c.Context, func(ctx context.Context, deps CommandDeps) error {
				report, _, err := deps.StatsService.Report(ctx, w, deps.StatsService.DefaultConfig())
				if err != nil {
					return err
				}

				subtitle := fmt.Sprintf("%d draws (%s)", report.DrawCount, w)
				files, err := charts.WriteDir(c.Path("out"), "Lotto draw statistics", report, subtitle)
				if err != nil {
					return err
				}
				log.Info().
					Str("evt.name", "render.done").
					Str("out", c.Path("out")).
					Strs("files", files).
					Msg("charts rendered")
				return nil
			})
		},
	}
}
