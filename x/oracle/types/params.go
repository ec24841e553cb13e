package types

import (
	"fmt"
)

// Volatility sampling constants. The history buffer holds one sample per hour
// for a full day; volatility is only computed once half the buffer is filled.
const (
	MaxSamples = 24
	MinSamples = 12

	// ReturnScale is the fixed-point scale for pairwise returns (basis points).
	ReturnScale = 10000

	// PriceScale is the canonical integer scale for stored prices (1e8).
	PriceScale = 100000000
)

// Params defines the oracle module parameters
type Params struct {
	// DefaultVolatility is returned while fewer than MinSamples samples exist.
	DefaultVolatility uint64 `json:"default_volatility"`
	// StablecoinVolatility is returned for assets flagged as stablecoins.
	StablecoinVolatility uint64 `json:"stablecoin_volatility"`
	// SampleInterval is the minimum seconds between recorded samples.
	SampleInterval int64 `json:"sample_interval"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		DefaultVolatility:    200, // 2%
		StablecoinVolatility: 10,  // 0.1%
		SampleInterval:       3600,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive: %d", p.SampleInterval)
	}
	if p.DefaultVolatility == 0 {
		return fmt.Errorf("default volatility cannot be zero")
	}
	return nil
}
