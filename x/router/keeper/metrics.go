package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RouterMetrics holds all Prometheus metrics for the router module
type RouterMetrics struct {
	SmartSwapsTotal   *prometheus.CounterVec
	SettlementVolume  *prometheus.CounterVec
	SettlementLatency prometheus.Histogram
	MinOutputFailures prometheus.Counter
}

var (
	routerMetricsOnce sync.Once
	routerMetrics     *RouterMetrics
)

// NewRouterMetrics creates and registers router metrics (singleton pattern)
func NewRouterMetrics() *RouterMetrics {
	routerMetricsOnce.Do(func() {
		routerMetrics = &RouterMetrics{
			SmartSwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "router",
					Name:      "smart_swaps_total",
					Help:      "Total number of hybrid settlements executed",
				},
				[]string{"status"},
			),
			SettlementVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "router",
					Name:      "settlement_volume_total",
					Help:      "Settlement output volume in base units",
				},
				[]string{"denom", "leg"},
			),
			SettlementLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "hydro",
					Subsystem: "router",
					Name:      "settlement_latency_seconds",
					Help:      "Hybrid settlement latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			MinOutputFailures: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "router",
					Name:      "min_output_failures_total",
					Help:      "Settlements aborted for missing the minimum output",
				},
			),
		}
	})
	return routerMetrics
}

// GetRouterMetrics returns the singleton router metrics instance
func GetRouterMetrics() *RouterMetrics {
	if routerMetrics == nil {
		return NewRouterMetrics()
	}
	return routerMetrics
}
