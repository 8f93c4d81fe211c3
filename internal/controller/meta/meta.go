package meta

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/pkg/bininfo"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
)

// Meta serves process metadata and liveness under /api/_.
type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/ping", cache.New(cache.Config{
		// ping checks every dependency; callers within a second share one answer
		Expiration: time.Second,
	}), c.Ping)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"service": bininfo.ServiceName,
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
		"go":      runtime.Version(),
	})
}

func (c *Meta) Ping(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return apierr.ErrUnavailable.Msg("%s", err)
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
