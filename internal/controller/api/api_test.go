package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lotto-stats/backend/internal/pkg/testentry"
)

func newApp(t *testing.T, n int) *fiber.App {
	t.Helper()
	var app *fiber.App
	testentry.Populate(t, testentry.NewMemorySource(testentry.Draws(n)), &app)
	return app
}

func get(t *testing.T, app *fiber.App, target string, headers ...string) (*http.Response, gjson.Result) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, gjson.ParseBytes(body)
}

func TestGetStats(t *testing.T) {
	app := newApp(t, 120)

	resp, body := get(t, app, "/api/stats")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	assert.True(t, body.Get("success").Bool())
	assert.EqualValues(t, 120, body.Get("stats.total_draws").Int())
	assert.EqualValues(t, 120, body.Get("stats.latest_draw").Int())
	assert.EqualValues(t, 120, body.Get("stats.all.draw_count").Int())
	assert.EqualValues(t, 100, body.Get("stats.recent.draw_count").Int())
	assert.EqualValues(t, 21, body.Get("stats.recent.first_draw").Int())
	assert.EqualValues(t, 10, body.Get("stats.latest.draw_count").Int())
	assert.True(t, body.Get("stats.cache_age_minutes").Exists())
	assert.True(t, body.Get("stats.cache_timestamp").Exists())

	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "max-age=300")

	resp, _ = get(t, app, "/api/stats", fiber.HeaderIfNoneMatch, etag)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	resp, body = get(t, app, "/api/stats?refresh=true")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")
	assert.EqualValues(t, 120, body.Get("stats.total_draws").Int())
}

func TestGetStatsEmpty(t *testing.T) {
	app := newApp(t, 0)

	resp, body := get(t, app, "/api/stats")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	assert.EqualValues(t, 0, body.Get("stats.all.draw_count").Int())
	assert.Equal(t, gjson.Null, body.Get("stats.all.sum_stats.min_sum").Type)
	assert.Equal(t, gjson.Null, body.Get("stats.all.ac_value_stats.avg_ac").Type)
	assert.EqualValues(t, 0, body.Get("stats.all.frequency.1").Int())
}

func TestGetRecent(t *testing.T) {
	app := newApp(t, 120)

	resp, body := get(t, app, "/api/recent")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	assert.EqualValues(t, 10, body.Get("stats.draw_count").Int())
	assert.EqualValues(t, 111, body.Get("stats.first_draw").Int())
	assert.EqualValues(t, 120, body.Get("stats.last_draw").Int())

	resp, body = get(t, app, "/api/recent?limit=0")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)

	resp, body = get(t, app, "/api/recent?limit=-4")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Get("success").Bool())
	assert.Equal(t, "INVALID_REQUEST", body.Get("code").String())
}

func TestGetFrequency(t *testing.T) {
	app := newApp(t, 120)

	// draw 120 is 22 23 25 26 27 28 + 24
	resp, body := get(t, app, "/api/frequency?limit=1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	frequency := body.Get("frequency").Map()
	assert.Len(t, frequency, 45)
	assert.EqualValues(t, 1, frequency["22"].Int())
	assert.EqualValues(t, 0, frequency["24"].Int(), "bonus numbers are not counted")

	_, body = get(t, app, "/api/frequency")
	total := int64(0)
	for _, v := range body.Get("frequency").Map() {
		total += v.Int()
	}
	assert.EqualValues(t, 120*6, total)
}

func TestGetDraws(t *testing.T) {
	app := newApp(t, 120)

	resp, body := get(t, app, "/api/draws?start=5&end=7")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	draws := body.Get("draws").Array()
	require.Len(t, draws, 3, spew.Sdump(draws))
	assert.EqualValues(t, 5, draws[0].Get("draw_number").Int())
	assert.EqualValues(t, 7, draws[2].Get("draw_number").Int())

	_, body = get(t, app, "/api/draws")
	draws = body.Get("draws").Array()
	require.Len(t, draws, 10)
	assert.EqualValues(t, 111, draws[0].Get("draw_number").Int())

	_, body = get(t, app, "/api/draws?limit=3&start=9")
	assert.Len(t, body.Get("draws").Array(), 3)

	resp, body = get(t, app, "/api/draws?start=7&end=5")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "End", body.Get("violations.0.field").String())
}

func TestGetDrawByIndex(t *testing.T) {
	app := newApp(t, 120)

	// draw 1 is 8 9 11 12 13 14 + 10
	resp, body := get(t, app, "/api/draws/1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	data := body.Get("data")
	assert.EqualValues(t, 1, data.Get("draw_number").Int())
	assert.EqualValues(t, 67, data.Get("sum").Int())
	assert.EqualValues(t, 3, data.Get("odd_count").Int())
	assert.EqualValues(t, 0, data.Get("high_count").Int())
	assert.EqualValues(t, 4, data.Get("consecutive_pairs").Int())
	assert.Equal(t, "24000", data.Get("band_pattern").String())

	resp, body = get(t, app, "/api/draws/999")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Get("code").String())

	resp, _ = get(t, app, "/api/draws/abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, app, "/api/draws/0")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAnalysis(t *testing.T) {
	app := newApp(t, 120)

	tests := []struct {
		target string
		status int
		check  func(t *testing.T, body gjson.Result)
	}{
		{"/api/analysis/odd_even", fiber.StatusOK, func(t *testing.T, body gjson.Result) {
			assert.Len(t, body.Get("data.counts").Array(), 7)
			assert.EqualValues(t, 120, body.Get("data.total").Int())
		}},
		{"/api/analysis/AC", fiber.StatusOK, func(t *testing.T, body gjson.Result) {
			assert.Equal(t, "7-12", body.Get("data.optimal_range").String())
		}},
		{"/api/analysis/high_low?cutoff=10&limit=1", fiber.StatusOK, func(t *testing.T, body gjson.Result) {
			assert.EqualValues(t, 10, body.Get("data.cutoff").Int())
			assert.EqualValues(t, 1, body.Get("data.counts.6").Int())
		}},
		{"/api/analysis/combinations?topK=2", fiber.StatusOK, func(t *testing.T, body gjson.Result) {
			assert.LessOrEqual(t, len(body.Get("data.top_patterns").Array()), 2)
			assert.Len(t, body.Get("data.pattern_labels").Array(), 5)
		}},
		{"/api/analysis/gaps", fiber.StatusOK, func(t *testing.T, body gjson.Result) {
			assert.Len(t, body.Get("data").Array(), 45)
		}},
		{"/api/analysis/sum?optimalAc=9-3", fiber.StatusBadRequest, func(t *testing.T, body gjson.Result) {
			assert.Equal(t, "INVALID_CONFIGURATION", body.Get("code").String())
		}},
		{"/api/analysis/high_low?cutoff=46", fiber.StatusBadRequest, func(t *testing.T, body gjson.Result) {
			assert.Equal(t, "lottonumber", body.Get("violations.0.violation").String())
		}},
		{"/api/analysis/nope", fiber.StatusBadRequest, func(t *testing.T, body gjson.Result) {
			assert.Equal(t, "INVALID_REQUEST", body.Get("code").String())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, body := get(t, app, tt.target)
			require.Equal(t, tt.status, resp.StatusCode, body.Raw)
			assert.Equal(t, tt.status == fiber.StatusOK, body.Get("success").Bool())
			tt.check(t, body)
		})
	}
}

func TestGetHealth(t *testing.T) {
	app := newApp(t, 120)

	resp, body := get(t, app, "/api/health")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, body.Raw)
	assert.Equal(t, "ok", body.Get("status").String())
	assert.EqualValues(t, 120, body.Get("latest_draw").Int())
	assert.Equal(t, gjson.Null, body.Get("cache_age_minutes").Type)
}
