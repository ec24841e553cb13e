package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool is a constant-product liquidity pool. Pools participating in priority
// taxation must be created with DynamicFee set; creation fails otherwise.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	DynamicFee  bool     `json:"dynamic_fee"`
}

// Validate validates the pool state
func (p Pool) Validate() error {
	if p.Id == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return fmt.Errorf("pool tokens cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return fmt.Errorf("pool tokens must differ")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return fmt.Errorf("pool reserves must be non-negative")
	}
	return nil
}

// TaxDenom returns the denom of the configured tax side of the pool.
func (p Pool) TaxDenom(cfg PoolTaxConfig) string {
	if cfg.TaxTokenA {
		return p.TokenA
	}
	return p.TokenB
}

// PoolTaxConfig is the per-pool taxation configuration, set at pool creation
// and reconfigurable only by the module authority.
type PoolTaxConfig struct {
	// TaxTokenA selects token A as the tax asset; otherwise token B.
	TaxTokenA bool `json:"tax_token_a"`
	// SwapFeeUnit is charged per unit of priority fee above the threshold on
	// the first qualifying swap of a window.
	SwapFeeUnit math.Int `json:"swap_fee_unit"`
	// JitFeeUnit is the elevated unit applied to liquidity inserted ahead of
	// the window's first taxed swap.
	JitFeeUnit math.Int `json:"jit_fee_unit"`
	// PriorityThreshold is the priority fee above which taxation starts.
	PriorityThreshold int64 `json:"priority_threshold"`
}

// Validate validates the tax configuration
func (c PoolTaxConfig) Validate() error {
	if c.SwapFeeUnit.IsNil() || c.SwapFeeUnit.IsNegative() {
		return fmt.Errorf("swap fee unit must be non-negative")
	}
	if c.JitFeeUnit.IsNil() || c.JitFeeUnit.IsNegative() {
		return fmt.Errorf("jit fee unit must be non-negative")
	}
	if c.PriorityThreshold < 0 {
		return fmt.Errorf("priority threshold must be non-negative")
	}
	return nil
}

// BalanceDelta is the signed net effect of a pool operation on the caller's
// holdings, pool-perspective: negative amounts are owed to the pool, positive
// amounts are owed to the caller.
type BalanceDelta struct {
	Amount0 math.Int `json:"amount0"`
	Amount1 math.Int `json:"amount1"`
}

// ZeroBalanceDelta returns an all-zero delta.
func ZeroBalanceDelta() BalanceDelta {
	return BalanceDelta{Amount0: math.ZeroInt(), Amount1: math.ZeroInt()}
}
