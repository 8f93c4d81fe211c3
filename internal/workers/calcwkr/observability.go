package calcwkr

import (
	"time"

	"github.com/lotto-stats/backend/internal/pkg/observability"
)

func observeCalcDuration(worker string, f func() error) error {
	start := time.Now()
	defer func() {
		dur := time.Since(start)
		observability.WorkerCalcDuration.WithLabelValues(worker).Set(dur.Seconds())
	}()
	return f()
}
