package service

import (
	"context"
	"time"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/model"
	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

const latestDrawIndexTTL = time.Minute

// DrawSource reads stored draws. Every list is ordered by index ascending.
type DrawSource interface {
	GetAll(ctx context.Context) ([]*model.Draw, error)
	GetRecent(ctx context.Context, n int) ([]*model.Draw, error)
	GetByRange(ctx context.Context, start, end int) ([]*model.Draw, error)
	GetByIndex(ctx context.Context, index int) (*model.Draw, error)
	GetLatestIndex(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

type Draw struct {
	Source DrawSource
	Config *appconfig.Config
}

func NewDraw(source DrawSource, conf *appconfig.Config) *Draw {
	return &Draw{
		Source: source,
		Config: conf,
	}
}

// Window loads the draws w selects.
func (s *Draw) Window(ctx context.Context, w Window) ([]drawstats.Draw, error) {
	var (
		rows []*model.Draw
		err  error
	)
	switch w.Kind {
	case WindowRecent:
		rows, err = s.Source.GetRecent(ctx, w.N)
	case WindowRange:
		rows, err = s.Source.GetByRange(ctx, w.Start, w.End)
	default:
		rows, err = s.Source.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return model.ToDraws(rows), nil
}

func (s *Draw) Count(ctx context.Context) (int, error) {
	return s.Source.Count(ctx)
}

// Cache: latestDrawIndex, 1 min
func (s *Draw) LatestIndex(ctx context.Context) (int, error) {
	var latest int
	err := modelcache.LatestDrawIndex.MutexGetSet(&latest, func() (int, error) {
		return s.Source.GetLatestIndex(ctx)
	}, latestDrawIndexTTL)
	return latest, err
}

// GetDetail returns the draw with index along with its per-draw metrics,
// or apierr.ErrNotFound.
func (s *Draw) GetDetail(ctx context.Context, index int) (*model.DrawDetail, error) {
	row, err := s.Source.GetByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	return Detail(row.ToDraw(), s.Config.AnalysisHighLowCutoff)
}

// Detail computes the per-draw metrics of d.
func Detail(d drawstats.Draw, cutoff int) (*model.DrawDetail, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	ac, err := drawstats.ACValue(d.Numbers)
	if err != nil {
		return nil, err
	}

	sorted := d.Sorted()
	return &model.DrawDetail{
		Draw:             d,
		Sorted:           sorted,
		Sum:              drawstats.DrawSum(sorted),
		OddCount:         drawstats.OddCount(sorted),
		HighCount:        drawstats.HighCount(sorted, cutoff),
		ACValue:          ac,
		ConsecutivePairs: drawstats.ConsecutivePairs(sorted),
		PrimeCount:       drawstats.PrimeCount(sorted),
		BandPattern:      drawstats.BandPatternOf(sorted).String(),
	}, nil
}
