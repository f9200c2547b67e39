// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "budgetwise"

var RequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
	},
	[]string{"code", "method", "url"},
)

var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var Rollovers = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "budget_rollovers_total",
		Help:      "Budgets archived by a new period, partitioned by achievement.",
	},
	[]string{"achievement"},
)

var ExpenseRejections = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expense_rejections_total",
		Help:      "Expenses refused by the ledger, partitioned by error code.",
	},
	[]string{"reason"},
)

var AdviceOutcomes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advice_requests_total",
		Help:      "Advice requests partitioned by outcome (generated, cached, unavailable).",
	},
	[]string{"outcome"},
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	Rollovers,
	ExpenseRejections,
	AdviceOutcomes,
}

// Register registers all collectors with reg. Collectors that are already
// registered are left alone, so building several routers in one process is
// fine.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}
	return nil
}

// Unregister removes all collectors from reg.
func Unregister(reg prometheus.Registerer) bool {
	ok := true
	for _, c := range collectors {
		if !reg.Unregister(c) {
			ok = false
		}
	}
	return ok
}
