package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/lotto-stats/backend/internal/app/appconfig"
)

// S3 returns nil when no publish bucket is configured.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	if conf.PublishBucket == "" {
		log.Info().
			Str("evt.name", "infra.s3.disabled").
			Msg("snapshot publishing is disabled due to missing bucket")
		return nil, nil
	}

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(conf.PublishRegion),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return s3.NewFromConfig(cfg), nil
}
