package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params defines the amm module parameters
type Params struct {
	// SwapFee is the proportional fee retained by the pool on every swap.
	SwapFee math.LegacyDec `json:"swap_fee"`
	// MinLiquidity is the minimum initial deposit for a new pool.
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		SwapFee:      math.LegacyNewDecWithPrec(3, 3), // 0.3%
		MinLiquidity: math.NewInt(1000),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("swap fee must be in [0, 1): %s", p.SwapFee)
	}
	if p.MinLiquidity.IsNil() || !p.MinLiquidity.IsPositive() {
		return fmt.Errorf("min liquidity must be positive")
	}
	return nil
}
