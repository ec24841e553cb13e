package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// TokenConfig holds the per-asset feed configuration. Set once by the module
// authority, read on every volatility query.
type TokenConfig struct {
	Denom string `json:"denom"`
	// FeedID identifies the asset on the external price feed.
	FeedID string `json:"feed_id"`
	// ManualVolatility overrides the computed volatility when non-zero.
	ManualVolatility uint64 `json:"manual_volatility"`
	// Stablecoin pins the asset to the stablecoin volatility constant.
	Stablecoin bool `json:"stablecoin"`
	Supported  bool `json:"supported"`
}

// Validate validates the token configuration
func (c TokenConfig) Validate() error {
	if c.Denom == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	if c.Supported && c.FeedID == "" {
		return fmt.Errorf("supported token %s requires a feed id", c.Denom)
	}
	return nil
}

// PriceHistory is a fixed-capacity circular buffer of hourly price samples.
// Cursor always stays in [0, MaxSamples); DataPoints grows until it saturates
// at MaxSamples and never shrinks.
type PriceHistory struct {
	Denom      string               `json:"denom"`
	Samples    [MaxSamples]math.Int `json:"samples"`
	Cursor     uint32               `json:"cursor"`
	DataPoints uint32               `json:"data_points"`
	LastUpdate int64                `json:"last_update"`
}

// NewPriceHistory returns an empty history buffer for an asset. Every slot is
// initialized to zero so uninitialized samples are distinguishable.
func NewPriceHistory(denom string) PriceHistory {
	h := PriceHistory{Denom: denom}
	for i := range h.Samples {
		h.Samples[i] = math.ZeroInt()
	}
	return h
}

// Record writes a sample at the cursor, advancing it modulo the buffer size
// and saturating the valid-sample count.
func (h *PriceHistory) Record(price math.Int, now int64) {
	h.Samples[h.Cursor] = price
	h.Cursor = (h.Cursor + 1) % MaxSamples
	if h.DataPoints < MaxSamples {
		h.DataPoints++
	}
	h.LastUpdate = now
}

// OrderedSamples returns the valid samples oldest to newest, respecting the
// circular indexing.
func (h PriceHistory) OrderedSamples() []math.Int {
	n := int(h.DataPoints)
	out := make([]math.Int, 0, n)
	start := 0
	if n == MaxSamples {
		start = int(h.Cursor)
	}
	for i := 0; i < n; i++ {
		out = append(out, h.Samples[(start+i)%MaxSamples])
	}
	return out
}
