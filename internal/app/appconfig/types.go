package appconfig

import (
	"fmt"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

type AnalysisRange drawstats.Range

func (r *AnalysisRange) Decode(value string) error {
	var parsed drawstats.Range
	if err := parsed.UnmarshalText([]byte(value)); err != nil {
		return fmt.Errorf("invalid analysis range: %w", err)
	}
	if parsed.Min > parsed.Max {
		return fmt.Errorf("invalid analysis range: min %d is greater than max %d", parsed.Min, parsed.Max)
	}
	*r = AnalysisRange(parsed)
	return nil
}
