package middlewares

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// sentryHubLocalsKey is where fibersentry stores the per-request hub.
const sentryHubLocalsKey = "sentry-hub"

// SentryHub returns the request's sentry hub, or nil when the fibersentry
// middleware has not run for this request, as for requests fiber rejects
// before routing.
func SentryHub(c *fiber.Ctx) *sentry.Hub {
	hub, _ := c.Locals(sentryHubLocalsKey).(*sentry.Hub)
	return hub
}

func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if hub := SentryHub(c); hub != nil {
			if id, ok := c.Locals(RequestIDLocalsKey).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
			hub.Scope().SetTag("route", c.Path())
		}

		var r http.Request
		if err := fasthttpadaptor.ConvertRequest(c.Context(), &r, true); err != nil {
			return err
		}
		span := sentry.StartSpan(c.Context(), "http.server", sentry.ContinueFromRequest(&r))
		defer span.Finish()

		return c.Next()
	}
}
