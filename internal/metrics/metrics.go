// Package metrics holds the entity operation counters exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var EntityOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "entities_operations_total",
	Help: "Entity REST operations by entity, operation and outcome.",
}, []string{"entity", "operation", "outcome"})

// Observe counts one operation
func Observe(entity, operation, outcome string) {
	EntityOperations.WithLabelValues(entity, operation, outcome).Inc()
}
