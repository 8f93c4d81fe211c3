package httpserver

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lotto-stats/backend/internal/app/appconfig"
)

func TestCreateRejectsOversizedHeaders(t *testing.T) {
	app := Create(&appconfig.Config{}, nil)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ok", nil)
	req.Header.Set("X-Big", strings.Repeat("a", 20000))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusRequestHeaderFieldsTooLarge, resp.StatusCode)
	assert.False(t, gjson.GetBytes(body, "success").Bool())

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
