package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lotto-stats/backend/internal/pkg/bininfo"
)

var (
	StatsComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(bininfo.ServiceName, "stats", "compute_duration_seconds"),
		Help:    "Duration of a stats computation over one draw window in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"window"})
	StatsCacheResult = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "stats", "cache_result_total"),
		Help: "Stats bundle lookups by cache outcome",
	}, []string{"result"})
	DrawsImported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "draws", "imported_total"),
		Help: "Draws upserted by the importer",
	}, []string{"format"})
	LatestDrawIndex = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "draws", "latest_index"),
		Help: "Index of the latest stored draw",
	})
	WorkerCalcDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(bininfo.ServiceName, "worker", "calc_duration_seconds"),
		Help: "Duration of last worker calculation in seconds",
	}, []string{"worker"})
)
