package drawstats

import "gopkg.in/guregu/null.v3"

// Report bundles every aggregation of one draw set.
type Report struct {
	DrawCount  int      `json:"draw_count"`
	FirstIndex null.Int `json:"first_draw"`
	LastIndex  null.Int `json:"last_draw"`
	Config     Config   `json:"config"`

	Frequency       FrequencyTable  `json:"frequency"`
	BonusFrequency  FrequencyTable  `json:"bonus_frequency"`
	SumStats        *SumHistogram   `json:"sum_stats"`
	ACValueStats    *ACHistogram    `json:"ac_value_stats"`
	OddEvenStats    *RatioHistogram `json:"odd_even_stats"`
	HighLowStats    *RatioHistogram `json:"high_low_stats"`
	PatternAnalysis *PatternStats   `json:"pattern_analysis"`
	Summary         *Summary        `json:"summary"`
}

// Aggregator runs the aggregations with a fixed, validated Config. It holds
// no other state and is safe for concurrent use.
type Aggregator struct {
	cfg Config
}

func NewAggregator(cfg Config) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{cfg: cfg}, nil
}

func (a *Aggregator) Config() Config {
	return a.cfg
}

func (a *Aggregator) Frequency(draws []Draw) (FrequencyTable, error) {
	return Frequency(draws)
}

func (a *Aggregator) OddEvenHistogram(draws []Draw) (*RatioHistogram, error) {
	return OddEvenHistogram(draws)
}

func (a *Aggregator) HighLowHistogram(draws []Draw) (*RatioHistogram, error) {
	return HighLowHistogram(draws, a.cfg.Cutoff)
}

func (a *Aggregator) ACValue(numbers []int) (int, error) {
	return ACValue(numbers)
}

func (a *Aggregator) ACHistogram(draws []Draw) (*ACHistogram, error) {
	return ACHistogramOf(draws, a.cfg.OptimalRange)
}

func (a *Aggregator) SumHistogram(draws []Draw) (*SumHistogram, error) {
	return SumHistogramOf(draws, a.cfg.BucketWidth)
}

func (a *Aggregator) PatternStats(draws []Draw) (*PatternStats, error) {
	return PatternStatsOf(draws, a.cfg)
}

// Aggregate computes the full Report of draws.
func (a *Aggregator) Aggregate(draws []Draw) (*Report, error) {
	if err := Validate(draws); err != nil {
		return nil, err
	}

	r := &Report{
		DrawCount: len(draws),
		Config:    a.cfg,
	}
	if len(draws) > 0 {
		sorted := SortByIndex(draws)
		r.FirstIndex = null.IntFrom(int64(sorted[0].Index))
		r.LastIndex = null.IntFrom(int64(sorted[len(sorted)-1].Index))
	}

	var err error
	if r.Frequency, err = a.Frequency(draws); err != nil {
		return nil, err
	}
	if r.BonusFrequency, err = BonusFrequency(draws); err != nil {
		return nil, err
	}
	if r.SumStats, err = a.SumHistogram(draws); err != nil {
		return nil, err
	}
	if r.ACValueStats, err = a.ACHistogram(draws); err != nil {
		return nil, err
	}
	if r.OddEvenStats, err = a.OddEvenHistogram(draws); err != nil {
		return nil, err
	}
	if r.HighLowStats, err = a.HighLowHistogram(draws); err != nil {
		return nil, err
	}
	if r.PatternAnalysis, err = a.PatternStats(draws); err != nil {
		return nil, err
	}
	r.Summary = SummaryOf(r.SumStats, r.ACValueStats, r.OddEvenStats, r.HighLowStats, r.PatternAnalysis)
	return r, nil
}
