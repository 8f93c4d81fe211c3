package meta_test

import (
	"io"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lotto-stats/backend/internal/pkg/bininfo"
	"github.com/lotto-stats/backend/internal/pkg/testentry"
)

func TestMeta(t *testing.T) {
	var app *fiber.App
	testentry.Populate(t, testentry.NewMemorySource(testentry.Draws(3)), &app)

	for target, field := range map[string]string{
		"/api/_/bininfo": "service",
		"/api/_/ping":    "status",
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, gjson.GetBytes(body, field).Exists(), target)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/_/bininfo", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, bininfo.ServiceName, gjson.GetBytes(body, "service").String())
	assert.Equal(t, runtime.Version(), gjson.GetBytes(body, "go").String())
}
