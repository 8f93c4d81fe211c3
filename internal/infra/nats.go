package infra

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/pkg/bininfo"
)

func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, error) {
	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		ev := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			ev = ev.Str("sub.subject", sub.Subject)
		}
		ev.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL,
		nats.Name(bininfo.ServiceName),
		nats.PingInterval(time.Second*20),
		nats.ErrorHandler(errorHandler),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return nc.Drain()
		},
	})

	return nc, nil
}
