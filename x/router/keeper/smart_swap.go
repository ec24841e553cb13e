package keeper

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/hydro-dex/hydro/x/amm/types"
	"github.com/hydro-dex/hydro/x/router/types"
)

var _ ammtypes.UnlockCallback = Keeper{}

// swapCallbackData carries the pool leg parameters through the unlock.
type swapCallbackData struct {
	PoolId   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	AmountIn math.Int `json:"amount_in"`
	Trader   string   `json:"trader"`
}

// swapCallbackResult carries the pool leg output back out of the unlock.
type swapCallbackResult struct {
	AmountOut math.Int `json:"amount_out"`
}

// SmartSwap settles a hybrid order atomically: the trader's input is pulled
// into custody, the declared portion is filled on the matching venue, the
// remainder is swapped against the pool through the unlock protocol, and the
// combined output is paid out in one transfer. Any failure aborts the whole
// message, so no partial settlement survives.
func (k Keeper) SmartSwap(ctx sdk.Context, trader sdk.AccAddress, msg types.MsgSmartSwap) (math.Int, error) {
	start := time.Now()

	if err := msg.ValidateBasic(); err != nil {
		return math.ZeroInt(), err
	}

	pool, found := k.ammKeeper.GetPool(ctx, msg.PoolId)
	if !found {
		return math.ZeroInt(), types.ErrInvalidOrder.Wrapf("pool %d not found", msg.PoolId)
	}
	tokenIn, tokenOut := pool.TokenB, pool.TokenA
	if msg.ZeroForOne {
		tokenIn, tokenOut = pool.TokenA, pool.TokenB
	}

	self := k.GetModuleAddress()
	params := k.GetParams(ctx)

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, msg.TotalIn))); err != nil {
		return math.ZeroInt(), types.ErrInvalidOrder.Wrapf("failed to custody input: %v", err)
	}

	remaining := msg.TotalIn
	matchingOut := math.ZeroInt()
	orderHash := []byte(nil)

	if msg.Matching != nil && msg.Matching.FillAmount.IsPositive() {
		leg := msg.Matching
		if leg.FillAmount.GT(msg.TotalIn) {
			return math.ZeroInt(), types.ErrMatchingInputExceedsTotal.Wrapf(
				"declared %s, total %s", leg.FillAmount, msg.TotalIn)
		}

		// The venue moves both sides of the fill; the actual output is the
		// measured balance delta, not the venue's reported made amount.
		before := k.bankKeeper.GetBalance(ctx, self, tokenOut).Amount
		made, taken, hash, err := k.venue.FillOrder(ctx, self, leg.Order, leg.Signature, leg.FillAmount, leg.Extension)
		if err != nil {
			return math.ZeroInt(), types.ErrFillFailed.Wrap(err.Error())
		}
		after := k.bankKeeper.GetBalance(ctx, self, tokenOut).Amount

		matchingOut = after.Sub(before)
		orderHash = hash

		consumed := leg.FillAmount
		if params.UseActualFillInput {
			consumed = taken
		}
		if consumed.GT(msg.TotalIn) {
			return math.ZeroInt(), types.ErrMatchingInputExceedsTotal.Wrapf(
				"venue consumed %s, total %s", consumed, msg.TotalIn)
		}
		remaining = msg.TotalIn.Sub(consumed)

		k.Logger(ctx).Debug("matching leg filled",
			"order_hash", hex.EncodeToString(hash),
			"declared", leg.FillAmount.String(),
			"taken", taken.String(),
			"made", made.String(),
			"measured_out", matchingOut.String(),
		)
	}

	poolOut := math.ZeroInt()
	if remaining.IsPositive() {
		data, err := json.Marshal(swapCallbackData{
			PoolId:   msg.PoolId,
			TokenIn:  tokenIn,
			AmountIn: remaining,
			Trader:   trader.String(),
		})
		if err != nil {
			return math.ZeroInt(), types.ErrInvalidCallbackData.Wrap(err.Error())
		}

		resultBz, err := k.ammKeeper.Unlock(ctx, self, k, data)
		if err != nil {
			return math.ZeroInt(), err
		}

		var result swapCallbackResult
		if err := json.Unmarshal(resultBz, &result); err != nil {
			return math.ZeroInt(), types.ErrInvalidCallbackData.Wrap(err.Error())
		}
		poolOut = result.AmountOut
	}

	totalOut, err := SafeAdd(matchingOut, poolOut)
	if err != nil {
		return math.ZeroInt(), types.ErrInvalidOrder.Wrap(err.Error())
	}
	if params.EnforceMinOutput && totalOut.LT(msg.MinOut) {
		k.metrics.MinOutputFailures.Inc()
		return math.ZeroInt(), types.ErrMinOutputNotMet.Wrapf("output %s, minimum %s", totalOut, msg.MinOut)
	}

	if totalOut.IsPositive() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader,
			sdk.NewCoins(sdk.NewCoin(tokenOut, totalOut))); err != nil {
			return math.ZeroInt(), types.ErrInvalidOrder.Wrapf("failed to pay out: %v", err)
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSmartSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, msg.TotalIn.String()),
			sdk.NewAttribute(types.AttributeKeyMatchingOut, matchingOut.String()),
			sdk.NewAttribute(types.AttributeKeyPoolOut, poolOut.String()),
			sdk.NewAttribute(types.AttributeKeyTotalOut, totalOut.String()),
			sdk.NewAttribute(types.AttributeKeyOrderHash, hex.EncodeToString(orderHash)),
		),
	)

	k.metrics.SmartSwapsTotal.WithLabelValues("success").Inc()
	k.metrics.SettlementVolume.WithLabelValues(tokenOut, "matching").Add(float64(matchingOut.Int64()))
	k.metrics.SettlementVolume.WithLabelValues(tokenOut, "pool").Add(float64(poolOut.Int64()))
	k.metrics.SettlementLatency.Observe(time.Since(start).Seconds())

	return totalOut, nil
}

// UnlockCallback executes the pool leg inside the pool's unlock. The pool
// calls back here with the router holding the lock: the swap's signed delta
// is resolved by settling the owed side from the router's custody and taking
// the credited side into it.
func (k Keeper) UnlockCallback(ctx sdk.Context, data []byte) ([]byte, error) {
	var req swapCallbackData
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, types.ErrInvalidCallbackData.Wrap(err.Error())
	}

	pool, found := k.ammKeeper.GetPool(ctx, req.PoolId)
	if !found {
		return nil, types.ErrInvalidCallbackData.Wrapf("pool %d not found", req.PoolId)
	}

	trader, err := sdk.AccAddressFromBech32(req.Trader)
	if err != nil {
		return nil, types.ErrInvalidCallbackData.Wrapf("invalid trader address: %v", err)
	}

	self := k.GetModuleAddress()
	delta, err := k.ammKeeper.SwapWithDelta(ctx, self, req.PoolId, req.TokenIn, req.AmountIn)
	if err != nil {
		return nil, err
	}

	amountOut := math.ZeroInt()
	if err := k.resolveDelta(ctx, self, trader, req, pool.TokenA, delta.Amount0, &amountOut); err != nil {
		return nil, err
	}
	if err := k.resolveDelta(ctx, self, trader, req, pool.TokenB, delta.Amount1, &amountOut); err != nil {
		return nil, err
	}

	return json.Marshal(swapCallbackResult{AmountOut: amountOut})
}

// resolveDelta settles a negative delta or takes a positive one into custody,
// accumulating the credited side as the pool leg's output. The custodied
// remainder covers the swap input itself; anything owed beyond it is the
// priority tax, charged to the trader on top of the swap's own cost.
func (k Keeper) resolveDelta(ctx sdk.Context, self, trader sdk.AccAddress, req swapCallbackData, denom string, amount math.Int, amountOut *math.Int) error {
	switch {
	case amount.IsNegative():
		owed := amount.Neg()
		fromCustody := math.ZeroInt()
		if denom == req.TokenIn {
			fromCustody = math.MinInt(owed, req.AmountIn)
		}
		if fromCustody.IsPositive() {
			if err := k.ammKeeper.Settle(ctx, self, self, denom, fromCustody); err != nil {
				return err
			}
		}
		if excess := owed.Sub(fromCustody); excess.IsPositive() {
			if err := k.ammKeeper.Settle(ctx, self, trader, denom, excess); err != nil {
				return err
			}
		}
	case amount.IsPositive():
		if err := k.ammKeeper.Take(ctx, self, self, denom, amount); err != nil {
			return err
		}
		*amountOut = amountOut.Add(amount)
	}
	return nil
}
