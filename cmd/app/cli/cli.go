package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/app"
	"github.com/lotto-stats/backend/internal/app/appcontext"
)

// Start starts the CLI app graph with module appended. The returned stop
// func shuts the graph down, draining connections.
func Start(module fx.Option) (stop func(), err error) {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		return nil, err
	}
	return func() {
		if err := a.Stop(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to stop cli app")
		}
	}, nil
}

// WithDeps populates T from the app graph and runs fn with it.
func WithDeps[T any](ctx context.Context, fn func(ctx context.Context, deps T) error) error {
	var deps T
	stop, err := Start(fx.Populate(&deps))
	if err != nil {
		return err
	}
	defer stop()

	return fn(ctx, deps)
}
