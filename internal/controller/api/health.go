package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/pkg/cachectrl"
	"github.com/lotto-stats/backend/internal/pkg/flog"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
)

type Health struct {
	fx.In

	HealthService *service.Health
}

func RegisterHealth(api *svr.API, c Health) {
	api.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.GetHealth)
}

// GetHealth answers 503 along with the failure when a dependency is down.
func (c *Health) GetHealth(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	report, err := c.HealthService.Report(ctx.UserContext())
	if err != nil {
		flog.WarnFrom(ctx).Err(err).Msg("health check failed")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    report.Status,
			"service":   report.Service,
			"version":   report.Version,
			"error":     err.Error(),
			"timestamp": report.Timestamp,
		})
	}
	return ctx.JSON(report)
}
