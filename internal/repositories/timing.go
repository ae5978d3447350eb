package repositories

import (
	"time"

	"aura-crm/pkg/metrics"
)

// observe records the duration of a database operation and counts failures.
func observe(operation, table string, start time.Time, err error) {
	metrics.DBOperationDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues(operation, table).Inc()
	}
}
