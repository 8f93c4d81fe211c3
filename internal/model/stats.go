package model

import (
	"time"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

// StatsBundle is the cached result of the full stats computation: one
// report per standard window.
type StatsBundle struct {
	All    *drawstats.Report `json:"all"`
	Recent *drawstats.Report `json:"recent"`
	Latest *drawstats.Report `json:"latest"`

	RecentSize int `json:"recent_size"`
	LatestSize int `json:"latest_size"`

	LatestDraw int `json:"latest_draw"`
	TotalDraws int `json:"total_draws"`

	// Fingerprint is the content hash of the full draw history the bundle
	// was computed from.
	Fingerprint string    `json:"fingerprint"`
	ComputedAt  time.Time `json:"cache_timestamp"`
}

// DrawDetail is a single draw along with its per-draw metrics.
type DrawDetail struct {
	drawstats.Draw

	Sorted           []int  `json:"sorted_numbers"`
	Sum              int    `json:"sum"`
	OddCount         int    `json:"odd_count"`
	HighCount        int    `json:"high_count"`
	ACValue          int    `json:"ac_value"`
	ConsecutivePairs int    `json:"consecutive_pairs"`
	PrimeCount       int    `json:"prime_count"`
	BandPattern      string `json:"band_pattern"`
}
