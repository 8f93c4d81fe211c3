package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/sjson"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/model/types"
	"github.com/lotto-stats/backend/internal/pkg/cachectrl"
	"github.com/lotto-stats/backend/internal/server/svr"
	"github.com/lotto-stats/backend/internal/service"
	"github.com/lotto-stats/backend/internal/util/rekuest"
)

const (
	defaultRecentLimit = 10
	statsMaxAge        = time.Minute * 5
)

type Stats struct {
	fx.In

	StatsService *service.Stats

	// LimiterStorage is in memory when not provided.
	LimiterStorage fiber.Storage `optional:"true"`
}

func RegisterStats(api *svr.API, c Stats) {
	log.Info().Msg("enabling fiber-level limiter for /stats requests forcing a refresh.")

	api.Get("/stats", limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Query("refresh") != "true"
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"code":    "TOO_MANY_REQUESTS",
				"error":   "Your client is forcing stats refreshes too frequently. Stats are refreshed periodically; drop the refresh parameter to get the cached result.",
			})
		},
		Max:        5,
		Expiration: time.Minute,
		Storage:    c.LimiterStorage,
	}), c.GetStats)
	api.Get("/recent", c.GetRecent)
	api.Get("/frequency", c.GetFrequency)
}

// GetStats serves the stats bundle of the standard windows, stamped with
// its age in minutes.
func (c *Stats) GetStats(ctx *fiber.Ctx) error {
	var q types.StatsQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	bundle, err := c.StatsService.GetFullStats(ctx.UserContext(), q.Refresh)
	if err != nil {
		return err
	}

	if q.Refresh {
		cachectrl.OptOut(ctx)
	} else {
		cachectrl.OptIn(ctx, bundle.ComputedAt, statsMaxAge)
		if cachectrl.ETag(ctx, bundle.Fingerprint+"-"+strconv.FormatInt(bundle.ComputedAt.Unix(), 36)) {
			return ctx.SendStatus(fiber.StatusNotModified)
		}
	}

	raw, err := marshal(bundle)
	if err != nil {
		return err
	}
	raw, err = sjson.SetBytes(raw, "cache_age_minutes", service.CacheAgeMinutes(bundle.ComputedAt, time.Now()))
	if err != nil {
		return errors.Wrap(err, "stamp cache age")
	}
	return successRaw(ctx, "stats", raw)
}

// GetRecent serves the report of the trailing limit draws.
func (c *Stats) GetRecent(ctx *fiber.Ctx) error {
	var q types.RecentQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}
	if q.Limit == 0 {
		q.Limit = defaultRecentLimit
	}

	report, _, err := c.StatsService.Report(ctx.UserContext(), service.RecentDraws(q.Limit), c.StatsService.DefaultConfig())
	if err != nil {
		return err
	}
	return success(ctx, "stats", report)
}

// GetFrequency serves the frequency table of all draws, or of the trailing
// limit draws when set.
func (c *Stats) GetFrequency(ctx *fiber.Ctx) error {
	var q types.RecentQuery
	if err := rekuest.ValidQuery(ctx, &q); err != nil {
		return err
	}

	w := service.AllDraws()
	if q.Limit > 0 {
		w = service.RecentDraws(q.Limit)
	}
	report, _, err := c.StatsService.Report(ctx.UserContext(), w, c.StatsService.DefaultConfig())
	if err != nil {
		return err
	}
	return success(ctx, "frequency", report.Frequency)
}
