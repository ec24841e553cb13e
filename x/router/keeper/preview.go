package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/router/types"
)

// HybridSwapEstimate is the non-binding result of a settlement preview.
type HybridSwapEstimate struct {
	MatchingOut math.Int `json:"matching_out"`
	PoolOut     math.Int `json:"pool_out"`
	TotalOut    math.Int `json:"total_out"`
}

// PreviewHybridSwap estimates a hybrid settlement without executing it. The
// matching leg is quoted through the dynamic pricing adapter and the pool leg
// through a dry-run swap; neither taxes nor the venue's own fill logic are
// applied, so the estimate is approximate and non-binding.
func (k Keeper) PreviewHybridSwap(ctx sdk.Context, msg types.MsgSmartSwap) (HybridSwapEstimate, error) {
	estimate := HybridSwapEstimate{
		MatchingOut: math.ZeroInt(),
		PoolOut:     math.ZeroInt(),
		TotalOut:    math.ZeroInt(),
	}

	if err := msg.ValidateBasic(); err != nil {
		return estimate, err
	}

	pool, found := k.ammKeeper.GetPool(ctx, msg.PoolId)
	if !found {
		return estimate, types.ErrInvalidOrder.Wrapf("pool %d not found", msg.PoolId)
	}
	tokenIn := pool.TokenB
	if msg.ZeroForOne {
		tokenIn = pool.TokenA
	}

	remaining := msg.TotalIn
	if msg.Matching != nil && msg.Matching.FillAmount.IsPositive() {
		leg := msg.Matching
		if leg.FillAmount.GT(msg.TotalIn) {
			return estimate, types.ErrMatchingInputExceedsTotal.Wrapf(
				"declared %s, total %s", leg.FillAmount, msg.TotalIn)
		}

		making, err := k.QuoteMakingAmount(ctx, leg.Order, leg.FillAmount, leg.Extension)
		if err != nil {
			return estimate, err
		}
		estimate.MatchingOut = making
		remaining = msg.TotalIn.Sub(leg.FillAmount)
	}

	if remaining.IsPositive() {
		out, err := k.ammKeeper.SimulateSwap(ctx, msg.PoolId, tokenIn, remaining)
		if err != nil {
			return estimate, err
		}
		estimate.PoolOut = out
	}

	estimate.TotalOut = estimate.MatchingOut.Add(estimate.PoolOut)
	return estimate, nil
}
