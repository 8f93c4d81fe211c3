package drawstats

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultCutoff              = 23
	DefaultBucketWidth         = 5
	DefaultDigitSumBucketWidth = 5
	DefaultTopK                = 10
)

// DefaultOptimalRange is the AC range the dashboards highlight.
var DefaultOptimalRange = Range{Min: 7, Max: 12}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return strconv.Itoa(r.Min) + "-" + strconv.Itoa(r.Max)
}

func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses the "<min>-<max>" form produced by MarshalText.
func (r *Range) UnmarshalText(text []byte) error {
	minText, maxText, ok := strings.Cut(strings.TrimSpace(string(text)), "-")
	if !ok {
		return fmt.Errorf("range %q: expected <min>-<max>", text)
	}
	lower, err := strconv.Atoi(strings.TrimSpace(minText))
	if err != nil {
		return fmt.Errorf("range %q: %w", text, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(maxText))
	if err != nil {
		return fmt.Errorf("range %q: %w", text, err)
	}
	r.Min, r.Max = lower, upper
	return nil
}

// Config carries every tunable of the aggregations. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Cutoff splits high from low numbers: a number is high when >= Cutoff.
	Cutoff int `json:"cutoff"`

	// BucketWidth is the width of the draw-sum buckets.
	BucketWidth int `json:"bucket_width"`

	// DigitSumBucketWidth is the width of the last-digit-sum buckets.
	DigitSumBucketWidth int `json:"digit_sum_bucket_width"`

	// OptimalRange is the inclusive AC range counted as "optimal".
	OptimalRange Range `json:"optimal_range"`

	// TopK bounds the number of band patterns reported.
	TopK int `json:"top_k"`
}

func DefaultConfig() Config {
	return Config{
		Cutoff:              DefaultCutoff,
		BucketWidth:         DefaultBucketWidth,
		DigitSumBucketWidth: DefaultDigitSumBucketWidth,
		OptimalRange:        DefaultOptimalRange,
		TopK:                DefaultTopK,
	}
}

// Key is a compact, stable rendering of c, used to key cached results.
func (c Config) Key() string {
	return fmt.Sprintf("c%d|b%d|d%d|ac%s|k%d", c.Cutoff, c.BucketWidth, c.DigitSumBucketWidth, c.OptimalRange, c.TopK)
}

func (c Config) Validate() error {
	if err := validateCutoff(c.Cutoff); err != nil {
		return err
	}
	if err := validateWidth("bucket_width", c.BucketWidth); err != nil {
		return err
	}
	if err := validateWidth("digit_sum_bucket_width", c.DigitSumBucketWidth); err != nil {
		return err
	}
	if err := validateRange(c.OptimalRange); err != nil {
		return err
	}
	if c.TopK <= 0 {
		return &ConfigurationError{Field: "top_k", Reason: fmt.Sprintf("must be positive, got %d", c.TopK)}
	}
	return nil
}

func validateCutoff(cutoff int) error {
	if cutoff < MinNumber || cutoff > MaxNumber {
		return &ConfigurationError{
			Field:  "cutoff",
			Reason: fmt.Sprintf("must be within [%d,%d], got %d", MinNumber, MaxNumber, cutoff),
		}
	}
	return nil
}

func validateWidth(field string, width int) error {
	if width <= 0 {
		return &ConfigurationError{Field: field, Reason: fmt.Sprintf("must be positive, got %d", width)}
	}
	return nil
}

func validateRange(r Range) error {
	if r.Min > r.Max {
		return &ConfigurationError{
			Field:  "optimal_range",
			Reason: fmt.Sprintf("min %d is greater than max %d", r.Min, r.Max),
		}
	}
	return nil
}
