package invalidwkr

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"

	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/service"
)

// Start subscribes to draw import announcements and flushes every cache
// of this instance on each one.
func Start(lc fx.Lifecycle, nc *nats.Conn) {
	var sub *nats.Subscription
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var err error
			sub, err = nc.Subscribe(service.DrawsImportedSubject, Handle)
			if err != nil {
				return errors.Wrapf(err, "subscribe to %s", service.DrawsImportedSubject)
			}
			log.Info().Str("subject", service.DrawsImportedSubject).Msg("cache invalidation worker subscribed")
			return nil
		},
		OnStop: func(context.Context) error {
			if sub == nil {
				return nil
			}
			return sub.Unsubscribe()
		},
	})
}

func Handle(msg *nats.Msg) {
	announcement := gjson.ParseBytes(msg.Data)
	L := log.With().
		Str("evt.name", "cache.invalidate").
		Str("format", announcement.Get("format").String()).
		Int64("lastDraw", announcement.Get("last_draw").Int()).
		Str("fingerprint", announcement.Get("fingerprint").String()).
		Logger()

	if err := modelcache.FlushAll(); err != nil {
		L.Error().Err(err).Msg("failed to flush caches after draw import")
		return
	}
	L.Info().Msg("caches flushed after draw import")
}
