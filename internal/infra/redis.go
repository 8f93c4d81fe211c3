package infra

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/pkg/bininfo"
	"github.com/lotto-stats/backend/internal/pkg/cache"
	"github.com/lotto-stats/backend/internal/pkg/fiberstore"
)

func Redis(conf *appconfig.Config) (*redis.Client, error) {
	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	ping := client.Ping(ctx)
	if ping.Err() != nil {
		log.Error().Err(ping.Err()).Msg("infra: redis: failed to ping database")
		return nil, ping.Err()
	}

	return client, nil
}

func CacheStore(client *redis.Client) cache.Store {
	return cache.NewRedisStore(client)
}

// LimiterStorage shares fiber limiter counters between instances.
func LimiterStorage(client *redis.Client) fiber.Storage {
	return fiberstore.NewRedis(client, bininfo.ServiceName+":limiter:")
}

// RedSync locks over the same client, so every instance pointed at one
// redis contends for the same worker mutexes.
func RedSync(client *redis.Client) *redsync.Redsync {
	return redsync.New(goredis.NewPool(client))
}
