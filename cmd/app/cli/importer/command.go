package importer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/lotto-stats/backend/cmd/app/cli"
	"github.com/lotto-stats/backend/internal/pkg/drawio"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
	"github.com/lotto-stats/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	ImportService *service.Import
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import draws from a csv, jsonl or sqlite file",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "input format: " + strings.Join(formatNames(), ", ") + "; inferred from the file extension when empty",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("missing <path> argument", 2)
			}
			format, err := FormatOf(c.String("format"), path)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			// read and validate before connecting to anything
			draws, err := drawio.ReadFile(c.Context, format, path)
			if err != nil {
				return err
			}
			if err := drawstats.Validate(draws); err != nil {
				return err
			}

			return cliapp.WithDeps(c.Context, func(ctx context.Context, deps CommandDeps) error {
				result, err := deps.ImportService.Import(ctx, string(format), draws)
				if err != nil {
					return err
				}
				log.Info().
					Str("evt.name", "import.done").
					Interface("result", result).
					Msg("draws imported")
				return nil
			})
		},
	}
}

func formatNames() []string {
	names := make([]string, len(drawio.Formats))
	for i, f := range drawio.Formats {
		names[i] = string(f)
	}
	return names
}

// FormatOf returns the explicit format, or the one matching the extension
// of path. ".db" and ".sqlite3" read as sqlite.
func FormatOf(explicit, path string) (drawio.Format, error) {
	if explicit != "" {
		return drawio.ParseFormat(explicit)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "db", "sqlite3":
		ext = string(drawio.FormatSQLite)
	case "json", "ndjson":
		ext = string(drawio.FormatJSONL)
	}
	format, err := drawio.ParseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, "cannot infer format of %s, pass --format", path)
	}
	return format, nil
}
