package types

import (
	"cosmossdk.io/math"
)

// Spread parameter caps. Values beyond these are treated as malformed and the
// caller falls back to an unadjusted amount instead of failing the fill.
const (
	MaxBaseSpreadBps    = 1000
	MaxMaxSpreadBps     = 1000
	MaxSpreadMultiplier = 1000
)

// SpreadParams adjusts a matching-venue fill by a volatility-scaled spread.
// Supplied per fill by the order's extension data.
type SpreadParams struct {
	BaseSpreadBps        uint64 `json:"base_spread_bps"`
	VolatilityMultiplier uint64 `json:"volatility_multiplier"`
	MaxSpreadBps         uint64 `json:"max_spread_bps"`
	// UseTakerAssetVolatility selects the taker asset as the volatility
	// reference instead of the maker asset.
	UseTakerAssetVolatility bool `json:"use_taker_asset_volatility"`
}

// ValidateSpreadParams reports whether the spread parameters are within their
// caps. A false result is a soft failure: the fill proceeds unadjusted.
func ValidateSpreadParams(baseBps, multiplier, maxBps uint64) bool {
	if baseBps > MaxBaseSpreadBps {
		return false
	}
	if maxBps > MaxMaxSpreadBps {
		return false
	}
	if multiplier > MaxSpreadMultiplier {
		return false
	}
	return true
}

// Valid reports whether the params pass ValidateSpreadParams.
func (p SpreadParams) Valid() bool {
	return ValidateSpreadParams(p.BaseSpreadBps, p.VolatilityMultiplier, p.MaxSpreadBps)
}

// ComputeSpread maps a volatility score to an effective spread in basis
// points. The division order is load-bearing: volatility is divided by 100
// before multiplying, reproducing the reference truncation exactly.
func ComputeSpread(baseBps, multiplier, maxBps uint64, volatility math.Int) uint64 {
	impact := volatility.QuoRaw(100).MulRaw(int64(multiplier)).QuoRaw(100)

	spread := math.NewIntFromUint64(baseBps).Add(impact)
	ceiling := math.NewIntFromUint64(maxBps)
	if spread.GT(ceiling) {
		spread = ceiling
	}
	return spread.Uint64()
}
