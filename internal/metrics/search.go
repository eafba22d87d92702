package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "search_requests_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"sort", "status"},
	)

	SearchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "search_candidates",
			Help:      "Raw candidate count per search before consolidation",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	SearchResultsTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Name:      "search_results",
			Help:      "Consolidated result count per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	BatchLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Name:      "batch_lookups_total",
			Help:      "Total number of batch resource lookups",
		},
		[]string{"status"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchCandidates)
	prometheus.MustRegister(SearchResultsTotal)
	prometheus.MustRegister(BatchLookupsTotal)
	searchMetricsRegistered = true
}
