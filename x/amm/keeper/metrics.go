package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AMMMetrics holds all Prometheus metrics for the AMM module
type AMMMetrics struct {
	// Swap metrics
	SwapsTotal  *prometheus.CounterVec
	SwapVolume  *prometheus.CounterVec
	SwapLatency prometheus.Histogram

	// Pool metrics
	PoolsTotal    prometheus.Gauge
	LiquidityAdds prometheus.Counter
	PoolReserves  *prometheus.GaugeVec

	// Taxation metrics
	SwapTaxesCharged *prometheus.CounterVec
	JITTaxesCharged  *prometheus.CounterVec
	TaxVolume        *prometheus.CounterVec
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AMMMetrics
)

// NewAMMMetrics creates and registers AMM metrics (singleton pattern)
func NewAMMMetrics() *AMMMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AMMMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap volume in base units",
				},
				[]string{"pool_id", "denom"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),

			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Total number of liquidity pools",
				},
			),
			LiquidityAdds: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "liquidity_adds_total",
					Help:      "Total liquidity add operations",
				},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool_id", "denom"},
			),

			SwapTaxesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "swap_taxes_charged_total",
					Help:      "Priority taxes charged on first-of-window swaps",
				},
				[]string{"pool_id"},
			),
			JITTaxesCharged: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "jit_taxes_charged_total",
					Help:      "Priority taxes charged on just-in-time liquidity adds",
				},
				[]string{"pool_id"},
			),
			TaxVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "hydro",
					Subsystem: "amm",
					Name:      "tax_volume_total",
					Help:      "Total tax collected in base units",
				},
				[]string{"pool_id", "denom", "kind"},
			),
		}
	})
	return ammMetrics
}

// GetAMMMetrics returns the singleton AMM metrics instance
func GetAMMMetrics() *AMMMetrics {
	if ammMetrics == nil {
		return NewAMMMetrics()
	}
	return ammMetrics
}
