package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// RequestIDHeader carries the request id back to the client.
	RequestIDHeader = "X-Lotto-Request-ID"

	// RequestIDLocalsKey is the fiber.Ctx Locals key holding the request id string.
	RequestIDLocalsKey = "requestId"
)

func Chained(app *fiber.App, middlewares ...fiber.Handler) {
	for _, middleware := range middlewares {
		app.Use(middleware)
	}
}
