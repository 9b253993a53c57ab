package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the service.
type Metrics struct {
	RefreshesTotal     prometheus.Counter
	ProviderErrors     *prometheus.CounterVec
	AggregationSeconds prometheus.Histogram
}

// NewMetrics registers and returns the service metrics.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RefreshesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "The total number of data provider refreshes",
		}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of data provider errors",
		}, []string{"operation"}),
		AggregationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_seconds",
			Help:      "Time taken to compute a dashboard summary",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
