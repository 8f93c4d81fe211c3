package service

import (
	"context"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lotto-stats/backend/internal/model"
	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
	"github.com/lotto-stats/backend/internal/pkg/observability"
)

// DrawsImportedSubject is published to after every successful import so
// that running instances drop their in-process caches.
const DrawsImportedSubject = "DRAWS.imported"

type DrawWriter interface {
	BatchUpsert(ctx context.Context, draws []*model.Draw) (int, error)
}

type MessagePublisher interface {
	Publish(subj string, data []byte) error
}

type ImportResult struct {
	Format      string `json:"format"`
	Count       int    `json:"count"`
	Affected    int    `json:"affected"`
	FirstDraw   int    `json:"first_draw"`
	LastDraw    int    `json:"last_draw"`
	Fingerprint string `json:"fingerprint"`
}

type Import struct {
	Writer    DrawWriter
	Publisher MessagePublisher
}

func NewImport(writer DrawWriter, publisher MessagePublisher) *Import {
	return &Import{
		Writer:    writer,
		Publisher: publisher,
	}
}

// Import validates draws as a whole and upserts them. Nothing is written
// when any draw is invalid; the error then names the offending draw.
func (s *Import) Import(ctx context.Context, format string, draws []drawstats.Draw) (*ImportResult, error) {
	if len(draws) == 0 {
		return nil, errors.New("no draws to import")
	}
	if err := drawstats.Validate(draws); err != nil {
		return nil, err
	}

	sorted := drawstats.SortByIndex(draws)
	rows := lo.Map(sorted, func(d drawstats.Draw, _ int) *model.Draw {
		return model.DrawFrom(d)
	})
	affected, err := s.Writer.BatchUpsert(ctx, rows)
	if err != nil {
		return nil, errors.Wrap(err, "upsert draws")
	}
	observability.DrawsImported.WithLabelValues(format).Add(float64(len(rows)))

	result := &ImportResult{
		Format:      format,
		Count:       len(sorted),
		Affected:    affected,
		FirstDraw:   sorted[0].Index,
		LastDraw:    sorted[len(sorted)-1].Index,
		Fingerprint: strconv.FormatUint(drawstats.Fingerprint(sorted), 16),
	}

	if err := modelcache.FlushAll(); err != nil {
		log.Warn().Err(err).Msg("failed to flush caches after import")
	}
	s.announce(result)

	return result, nil
}

func (s *Import) announce(result *ImportResult) {
	if s.Publisher == nil {
		return
	}
	msg, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal import announcement")
		return
	}
	if err := s.Publisher.Publish(DrawsImportedSubject, msg); err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "import.announce.failed").
			Msg("failed to announce import; running instances keep stale caches until they expire")
	}
}
