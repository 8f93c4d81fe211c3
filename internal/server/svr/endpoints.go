package svr

import (
	"github.com/gofiber/fiber/v2"
)

// API serves the public JSON API under /api.
type API struct {
	fiber.Router
}

// Meta serves operational endpoints under /api/_.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta) {
	api := app.Group("/api")
	meta := app.Group("/api/_")

	return &API{Router: api}, &Meta{Router: meta}
}
