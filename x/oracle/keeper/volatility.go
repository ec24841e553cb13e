package keeper

import (
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/oracle/types"
)

// GetVolatility returns an asset's volatility score in basis points.
// Resolution order: manual override, stablecoin constant, default constant
// while the buffer is underfilled, then the computed score.
func (k Keeper) GetVolatility(ctx sdk.Context, denom string) (math.Int, error) {
	cfg, found := k.GetTokenConfig(ctx, denom)
	if !found || !cfg.Supported {
		return math.ZeroInt(), types.ErrTokenNotSupported.Wrap(denom)
	}

	if cfg.ManualVolatility != 0 {
		return math.NewIntFromUint64(cfg.ManualVolatility), nil
	}

	params := k.GetParams(ctx)
	if cfg.Stablecoin {
		return math.NewIntFromUint64(params.StablecoinVolatility), nil
	}

	history, found := k.GetPriceHistory(ctx, denom)
	if !found || history.DataPoints < types.MinSamples {
		return math.NewIntFromUint64(params.DefaultVolatility), nil
	}

	return computeVolatility(history, params.DefaultVolatility), nil
}

// computeVolatility derives the population standard deviation of consecutive
// pairwise returns over the valid window. Returns are absolute moves in basis
// points: |cur*10000/prev - 10000|, truncating division. Pairs containing an
// uninitialized (zero) sample are skipped. Fewer than 2 valid returns falls
// back to the default constant. Bounded O(24) work, recomputed per query.
func computeVolatility(history types.PriceHistory, defaultVol uint64) math.Int {
	samples := history.OrderedSamples()
	scale := math.NewInt(types.ReturnScale)

	sum := math.ZeroInt()
	sumSquares := math.ZeroInt()
	n := int64(0)

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev.IsNil() || cur.IsNil() || prev.IsZero() || cur.IsZero() {
			continue
		}

		ret := cur.Mul(scale).Quo(prev).Sub(scale).Abs()
		sum = sum.Add(ret)
		sumSquares = sumSquares.Add(ret.Mul(ret))
		n++
	}

	if n < 2 {
		return math.NewIntFromUint64(defaultVol)
	}

	// Population variance: E[x^2] - E[x]^2, truncating like the reference.
	count := math.NewInt(n)
	mean := sum.Quo(count)
	variance := sumSquares.Quo(count).Sub(mean.Mul(mean))
	if variance.IsNegative() {
		// Truncation can push the difference slightly below zero.
		return math.ZeroInt()
	}

	return intSqrt(variance)
}

// intSqrt returns the integer square root of a non-negative value.
func intSqrt(v math.Int) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Sqrt(v.BigInt()))
}
