package controller

import (
	"go.uber.org/fx"

	controllerapi "github.com/lotto-stats/backend/internal/controller/api"
	controllermeta "github.com/lotto-stats/backend/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (api)
		controllerapi.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
