package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/model/types"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
	"github.com/lotto-stats/backend/internal/util/rekuest"
)

type Analysis struct {
	fx.In

	StatsService *service.Stats
}

func RegisterAnalysis(api *svr.API, c Analysis) {
	api.Get("/analysis/:type", c.GetAnalysis)
}

// GetAnalysis serves one analysis. Query parameters override the configured
// aggregation defaults for this request only.
func (c *Analysis) GetAnalysis(ctx *fiber.Ctx) error {
	param := types.AnalysisTypeParam{Type: ctx.Params("type")}
	if err := rekuest.ValidStruct(&param); err != nil {
		return err
	}
	var q types.AnalysisQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	data, err := c.StatsService.GetAnalysis(ctx.UserContext(), param.Type, &q)
	if err != nil {
		return err
	}
	return success(ctx, "data", data)
}
