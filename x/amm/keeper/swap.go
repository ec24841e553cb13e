package keeper

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// SwapExactIn executes a constant-product swap of a fixed input amount. The
// swap fee stays in the pool: output is quoted on the fee-reduced input while
// the full input is added to reserves. If this is the first qualifying swap of
// the current window, the priority tax is collected on top of the input and
// donated to reserves.
func (k Keeper) SwapExactIn(ctx sdk.Context, trader sdk.AccAddress, msg types.MsgSwap) (math.Int, error) {
	start := time.Now()

	if err := msg.ValidateBasic(); err != nil {
		return math.ZeroInt(), err
	}

	pool, found := k.GetPool(ctx, msg.PoolId)
	if !found {
		return math.ZeroInt(), types.ErrPoolNotFound.Wrapf("pool %d", msg.PoolId)
	}

	reserveIn, reserveOut, tokenOut, err := swapSides(pool, msg.TokenIn)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	params := k.GetParams(ctx)
	amountOut := calculateSwapOutput(msg.AmountIn, reserveIn, reserveOut, params.SwapFee)
	if !amountOut.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	if amountOut.LT(msg.MinAmountOut) {
		return math.ZeroInt(), types.ErrSlippageTooHigh.Wrapf("output %s below minimum %s", amountOut, msg.MinAmountOut)
	}

	oldK := pool.ReserveA.Mul(pool.ReserveB)

	tax := math.ZeroInt()
	if cfg, hasCfg := k.GetTaxConfig(ctx, msg.PoolId); hasCfg {
		window := uint64(ctx.BlockHeight())
		tax, err = k.TaxManager().ChargeSwapTax(ctx, &pool, cfg, trader, window, ctx.Priority())
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	coinIn := sdk.NewCoins(sdk.NewCoin(msg.TokenIn, msg.AmountIn))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coinIn); err != nil {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("failed to transfer input: %v", err)
	}

	k.creditReserve(ctx, &pool, msg.TokenIn, msg.AmountIn)
	k.debitReserve(ctx, &pool, tokenOut, amountOut)

	if newK := pool.ReserveA.Mul(pool.ReserveB); newK.LT(oldK) {
		return math.ZeroInt(), types.ErrInvariantViolation.Wrapf("constant product decreased: %s -> %s", oldK, newK)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	coinOut := sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, coinOut); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer output: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", msg.PoolId)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, msg.TokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, msg.AmountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyTax, tax.String()),
		),
	)

	poolLabel := fmt.Sprintf("%d", msg.PoolId)
	k.metrics.SwapsTotal.WithLabelValues(poolLabel, "success").Inc()
	k.metrics.SwapVolume.WithLabelValues(poolLabel, msg.TokenIn).Add(float64(msg.AmountIn.Int64()))
	k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	k.metrics.PoolReserves.WithLabelValues(poolLabel, pool.TokenA).Set(float64(pool.ReserveA.Int64()))
	k.metrics.PoolReserves.WithLabelValues(poolLabel, pool.TokenB).Set(float64(pool.ReserveB.Int64()))

	return amountOut, nil
}

// SimulateSwap quotes a swap without mutating state or charging taxes.
func (k Keeper) SimulateSwap(ctx sdk.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.ZeroInt(), types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	reserveIn, reserveOut, _, err := swapSides(pool, tokenIn)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	amountOut := calculateSwapOutput(amountIn, reserveIn, reserveOut, k.GetParams(ctx).SwapFee)
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}

// swapSides resolves the input and output reserves for a swap direction.
func swapSides(pool types.Pool, tokenIn string) (reserveIn, reserveOut math.Int, tokenOut string, err error) {
	switch tokenIn {
	case pool.TokenA:
		return pool.ReserveA, pool.ReserveB, pool.TokenB, nil
	case pool.TokenB:
		return pool.ReserveB, pool.ReserveA, pool.TokenA, nil
	default:
		return math.Int{}, math.Int{}, "", types.ErrInvalidTokenPair.Wrapf("token %s not in pool", tokenIn)
	}
}

// debitReserve subtracts an amount from one side of the pool.
func (k Keeper) debitReserve(ctx sdk.Context, pool *types.Pool, denom string, amount math.Int) {
	if denom == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Sub(amount)
	} else {
		pool.ReserveB = pool.ReserveB.Sub(amount)
	}
}

// calculateSwapOutput applies the constant-product formula with the swap fee
// deducted from the input before the curve is evaluated.
func calculateSwapOutput(amountIn, reserveIn, reserveOut math.Int, fee math.LegacyDec) math.Int {
	inputAfterFee := math.LegacyOneDec().Sub(fee).MulInt(amountIn).TruncateInt()
	if !inputAfterFee.IsPositive() {
		return math.ZeroInt()
	}
	return reserveOut.Mul(inputAfterFee).Quo(reserveIn.Add(inputAfterFee))
}
