package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lotto-stats/backend/internal/app/appconfig"
	"github.com/lotto-stats/backend/internal/model"
	modelcache "github.com/lotto-stats/backend/internal/model/cache"
	"github.com/lotto-stats/backend/internal/model/types"
	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/pkg/cache"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
	"github.com/lotto-stats/backend/internal/pkg/observability"
)

type Stats struct {
	DrawService *Draw
	Config      *appconfig.Config

	// now is swapped in tests
	now func() time.Time
}

func NewStats(drawService *Draw, conf *appconfig.Config) *Stats {
	return &Stats{
		DrawService: drawService,
		Config:      conf,
		now:         time.Now,
	}
}

// DefaultConfig is the aggregation config built from the Analysis* settings.
func (s *Stats) DefaultConfig() drawstats.Config {
	return s.Config.AnalysisConfig()
}

// ConfigFrom overlays the non-zero fields of q on the default config.
func (s *Stats) ConfigFrom(q *types.AnalysisQuery) (drawstats.Config, error) {
	cfg := s.DefaultConfig()
	if err := copier.CopyWithOption(&cfg, q, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, errors.Wrap(err, "copy analysis query")
	}
	if q.OptimalAC != "" {
		if err := cfg.OptimalRange.UnmarshalText([]byte(q.OptimalAC)); err != nil {
			return cfg, apierr.FromDomain(&drawstats.ConfigurationError{Field: "optimal_range", Reason: err.Error()})
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, apierr.FromDomain(err)
	}
	return cfg, nil
}

func reportCacheKey(w Window, cfg drawstats.Config, draws []drawstats.Draw) string {
	return w.String() + "|" + cfg.Key() + "|" + strconv.FormatUint(drawstats.Fingerprint(draws), 16)
}

func (s *Stats) aggregate(w Window, cfg drawstats.Config, draws []drawstats.Draw) (*drawstats.Report, error) {
	agg, err := drawstats.NewAggregator(cfg)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}

	start := time.Now()
	report, err := agg.Aggregate(draws)
	if err != nil {
		return nil, apierr.FromDomain(err)
	}
	observability.StatsComputeDuration.WithLabelValues(string(w.Kind)).Observe(time.Since(start).Seconds())
	return report, nil
}

// Report aggregates the draws of w with cfg.
//
// Cache: report#window|config|fingerprint:{window}|{config}|{fingerprint}, StatsCacheTTL
func (s *Stats) Report(ctx context.Context, w Window, cfg drawstats.Config) (*drawstats.Report, []drawstats.Draw, error) {
	draws, err := s.DrawService.Window(ctx, w)
	if err != nil {
		return nil, nil, err
	}

	var report drawstats.Report
	calculated, err := modelcache.Report.MutexGetSet(ctx, reportCacheKey(w, cfg, draws), &report, func() (drawstats.Report, error) {
		r, err := s.aggregate(w, cfg, draws)
		if err != nil {
			return drawstats.Report{}, err
		}
		return *r, nil
	}, s.Config.StatsCacheTTL)
	if err != nil {
		return nil, nil, err
	}
	observability.StatsCacheResult.WithLabelValues(cacheResult(calculated)).Inc()
	return &report, draws, nil
}

func cacheResult(calculated bool) string {
	if calculated {
		return "miss"
	}
	return "hit"
}

// GetFullStats returns the stats bundle of the standard windows, computing
// it when absent from the cache or when refresh is set.
//
// Cache: statsBundle#config:{config}, StatsCacheTTL
func (s *Stats) GetFullStats(ctx context.Context, refresh bool) (*model.StatsBundle, error) {
	cfg := s.DefaultConfig()
	key := cfg.Key()

	if refresh {
		return s.RefreshFullStats(ctx)
	}

	var bundle model.StatsBundle
	calculated, err := modelcache.StatsBundle.MutexGetSet(ctx, key, &bundle, func() (model.StatsBundle, error) {
		b, err := s.computeFullStats(ctx, cfg)
		if err != nil {
			return model.StatsBundle{}, err
		}
		return *b, nil
	}, s.Config.StatsCacheTTL)
	if err != nil {
		return nil, err
	}
	observability.StatsCacheResult.WithLabelValues(cacheResult(calculated)).Inc()
	return &bundle, nil
}

// RefreshFullStats recomputes the stats bundle and replaces the cached one.
func (s *Stats) RefreshFullStats(ctx context.Context) (*model.StatsBundle, error) {
	cfg := s.DefaultConfig()
	bundle, err := s.computeFullStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := modelcache.StatsBundle.Set(ctx, cfg.Key(), *bundle, s.Config.StatsCacheTTL); err != nil {
		return nil, err
	}
	return bundle, nil
}

// PeekFullStats returns the cached stats bundle without computing one.
func (s *Stats) PeekFullStats(ctx context.Context) (*model.StatsBundle, bool) {
	var bundle model.StatsBundle
	if err := modelcache.StatsBundle.Get(ctx, s.DefaultConfig().Key(), &bundle); err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to peek stats bundle")
		}
		return nil, false
	}
	return &bundle, true
}

func trailing(draws []drawstats.Draw, n int) []drawstats.Draw {
	if n >= len(draws) {
		return draws
	}
	return draws[len(draws)-n:]
}

func (s *Stats) computeFullStats(ctx context.Context, cfg drawstats.Config) (*model.StatsBundle, error) {
	all, err := s.DrawService.Window(ctx, AllDraws())
	if err != nil {
		return nil, err
	}

	bundle := &model.StatsBundle{
		RecentSize:  s.Config.WindowRecent,
		LatestSize:  s.Config.WindowLatest,
		TotalDraws:  len(all),
		Fingerprint: strconv.FormatUint(drawstats.Fingerprint(all), 16),
		ComputedAt:  s.now().UTC(),
	}
	if len(all) > 0 {
		bundle.LatestDraw = all[len(all)-1].Index
	}

	var eg errgroup.Group
	windows := []struct {
		window Window
		draws  []drawstats.Draw
		dest   **drawstats.Report
	}{
		{AllDraws(), all, &bundle.All},
		{RecentDraws(s.Config.WindowRecent), trailing(all, s.Config.WindowRecent), &bundle.Recent},
		{RecentDraws(s.Config.WindowLatest), trailing(all, s.Config.WindowLatest), &bundle.Latest},
	}
	for _, w := range windows {
		eg.Go(func() error {
			report, err := s.aggregate(w.window, cfg, w.draws)
			if err != nil {
				return errors.Wrapf(err, "window %s", w.window)
			}
			*w.dest = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "stats.computed").
		Int("draws", bundle.TotalDraws).
		Int("latestDraw", bundle.LatestDraw).
		Str("fingerprint", bundle.Fingerprint).
		Msg("full stats computed")
	return bundle, nil
}

// GetAnalysis computes one named analysis over all draws, or over the
// trailing q.Limit draws when set.
func (s *Stats) GetAnalysis(ctx context.Context, analysisType string, q *types.AnalysisQuery) (any, error) {
	cfg, err := s.ConfigFrom(q)
	if err != nil {
		return nil, err
	}
	w := AllDraws()
	if q.Limit > 0 {
		w = RecentDraws(q.Limit)
	}

	report, draws, err := s.Report(ctx, w, cfg)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(analysisType) {
	case "ac":
		return report.ACValueStats, nil
	case "sum":
		return report.SumStats, nil
	case "odd_even":
		return report.OddEvenStats, nil
	case "high_low":
		return report.HighLowStats, nil
	case "consecutive":
		return report.PatternAnalysis.Consecutive, nil
	case "patterns":
		return report.PatternAnalysis, nil
	case "last_digits":
		return report.PatternAnalysis.LastDigits, nil
	case "combinations":
		return report.PatternAnalysis.BandPatterns, nil
	case "summary":
		return report.Summary, nil
	case "frequency":
		return report.Frequency, nil
	case "bonus_frequency":
		return report.BonusFrequency, nil
	case "gaps":
		gaps, err := drawstats.Gaps(draws)
		if err != nil {
			return nil, apierr.FromDomain(err)
		}
		return gaps, nil
	default:
		return nil, apierr.ErrInvalidReq.Msg("unknown analysis type %q", analysisType)
	}
}
