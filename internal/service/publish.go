package service

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/sjson"
	"golang.org/x/sync/errgroup"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/pkg/archiver"
	"github.com/lotto-stats/backend/internal/pkg/charts"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

const (
	SnapshotStatsObject  = "stats.json"
	SnapshotChartsObject = "charts.html"
	SnapshotDrawsRealm   = "draws"
)

var (
	ErrPublishDisabled = errors.New("publishing is disabled: no bucket configured")
	// ErrSnapshotUnchanged is returned, with the latest snapshot, when the
	// draw history has not changed since it was published.
	ErrSnapshotUnchanged = errors.New("draw history unchanged since the latest snapshot")
)

type SnapshotSaver interface {
	GetLatest(ctx context.Context) (*model.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) (*model.Snapshot, error)
}

// Publish uploads a static snapshot of the stats bundle, its chart page
// and the draw history to S3, and records it.
type Publish struct {
	StatsService *Stats
	DrawService  *Draw
	Snapshots    SnapshotSaver
	Objects      archiver.ObjectStore
	Config       *appconfig.Config

	now func() time.Time
}

func NewPublish(statsService *Stats, drawService *Draw, snapshots SnapshotSaver, objects archiver.ObjectStore, conf *appconfig.Config) *Publish {
	return &Publish{
		StatsService: statsService,
		DrawService:  drawService,
		Snapshots:    snapshots,
		Objects:      objects,
		Config:       conf,
		now:          time.Now,
	}
}

// Publish skips the upload and returns ErrSnapshotUnchanged when the latest
// snapshot already covers the same draws, unless force is set.
func (s *Publish) Publish(ctx context.Context, force bool) (*model.Snapshot, error) {
	if s.Objects == nil || s.Config.PublishBucket == "" {
		return nil, ErrPublishDisabled
	}

	bundle, err := s.StatsService.GetFullStats(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "compute stats bundle")
	}
	if !force {
		latest, err := s.Snapshots.GetLatest(ctx)
		switch {
		case err == nil && latest.Fingerprint == bundle.Fingerprint && latest.LastDraw == bundle.LatestDraw:
			return latest, ErrSnapshotUnchanged
		case err != nil && !errors.Is(err, apierr.ErrNotFound):
			return nil, errors.Wrap(err, "load latest snapshot")
		}
	}
	draws, err := s.DrawService.Window(ctx, AllDraws())
	if err != nil {
		return nil, errors.Wrap(err, "load draws")
	}

	now := s.now().UTC()
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	logger := log.With().Str("evt.name", "publish.snapshot").Str("snapshot", id).Logger()

	statsJSON, err := stampSnapshot(bundle, id, now)
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	if err := charts.WritePage(&page, "Lotto statistics", bundle.All, "draws 1-"+strconv.Itoa(bundle.LatestDraw)); err != nil {
		return nil, errors.Wrap(err, "render charts")
	}

	prefix := s.Config.PublishPrefix + id + "/"
	bucket := s.Config.PublishBucket
	drawArchive := &archiver.Archiver{
		S3Client:  s.Objects,
		S3Bucket:  bucket,
		S3Prefix:  s.Config.PublishPrefix,
		RealmName: SnapshotDrawsRealm,
	}
	if err := drawArchive.Prepare(ctx, id); err != nil {
		return nil, errors.Wrap(err, "prepare draw archive")
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return archiver.PutBytes(egCtx, s.Objects, bucket, prefix+SnapshotStatsObject, statsJSON, "application/json")
	})
	eg.Go(func() error {
		return archiver.PutBytes(egCtx, s.Objects, bucket, prefix+SnapshotChartsObject, page.Bytes(), "text/html; charset=utf-8")
	})
	eg.Go(func() error {
		return drawArchive.Collect(egCtx)
	})
	eg.Go(func() error {
		ch := drawArchive.WriterCh()
		defer close(ch)
		for _, d := range draws {
			select {
			case ch <- d:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "upload snapshot")
	}

	snapshot := &model.Snapshot{
		ULID:        id,
		CreatedAt:   &now,
		FirstDraw:   firstIndex(draws),
		LastDraw:    bundle.LatestDraw,
		Fingerprint: bundle.Fingerprint,
		Bucket:      bucket,
		Prefix:      prefix,
		Objects:     []string{SnapshotStatsObject, SnapshotChartsObject, SnapshotDrawsRealm + archiver.FileExt},
	}
	saved, err := s.Snapshots.SaveSnapshot(ctx, snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "record snapshot")
	}

	logger.Info().
		Str("bucket", bucket).
		Str("prefix", prefix).
		Int("draws", len(draws)).
		Msg("snapshot published")
	return saved, nil
}

func firstIndex(draws []drawstats.Draw) int {
	if len(draws) == 0 {
		return 0
	}
	return draws[0].Index
}

// stampSnapshot renders bundle as JSON carrying its snapshot id and
// publication time.
func stampSnapshot(bundle *model.StatsBundle, id string, publishedAt time.Time) ([]byte, error) {
	b, err := json.Marshal(bundle)
	if err != nil {
		return nil, errors.Wrap(err, "marshal stats bundle")
	}
	if b, err = sjson.SetBytes(b, "snapshot_id", id); err != nil {
		return nil, errors.Wrap(err, "stamp snapshot id")
	}
	if b, err = sjson.SetBytes(b, "published_at", publishedAt.Format(time.RFC3339)); err != nil {
		return nil, errors.Wrap(err, "stamp publication time")
	}
	return b, nil
}
