package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotto-stats/backend/internal/pkg/flog"
)

// RequestID copies the id assigned by the logger middleware into Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(RequestIDLocalsKey, id.String())
		}
		return c.Next()
	}
}
