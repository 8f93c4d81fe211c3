package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/model/types"
	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
	"github.com/lotto-stats/backend/internal/util/rekuest"
)

type Draw struct {
	fx.In

	DrawService *service.Draw
}

func RegisterDraw(api *svr.API, c Draw) {
	api.Get("/draws", c.GetDraws)
	api.Get("/draws/:index", c.GetDrawByIndex)
}

// GetDraws serves the draws in [start, end] when both are given, or else
// the trailing limit draws.
func (c *Draw) GetDraws(ctx *fiber.Ctx) error {
	var q types.DrawsQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	w := service.RecentDraws(defaultRecentLimit)
	switch {
	case q.Start > 0 && q.End > 0:
		w = service.DrawRange(q.Start, q.End)
	case q.Limit > 0:
		w = service.RecentDraws(q.Limit)
	}

	draws, err := c.DrawService.Window(ctx.UserContext(), w)
	if err != nil {
		return err
	}
	return success(ctx, "draws", draws)
}

func (c *Draw) GetDrawByIndex(ctx *fiber.Ctx) error {
	index, err := ctx.ParamsInt("index")
	if err != nil {
		return apierr.ErrInvalidReq.Msg("invalid or missing draw index")
	}
	if err := rekuest.ValidStruct(&types.DrawIndexParam{Index: index}); err != nil {
		return err
	}

	detail, err := c.DrawService.GetDetail(ctx.UserContext(), index)
	if err != nil {
		return err
	}
	return success(ctx, "data", detail)
}
