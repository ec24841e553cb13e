package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// Unlock grants the callback temporary access to the delta-based pool
// operations. Exactly one unlock can be in flight at a time, and every
// balance delta the callback accrues must be resolved to zero before the
// lock releases. A failed callback aborts the whole message, so partial
// settlements never persist.
func (k Keeper) Unlock(ctx sdk.Context, locker sdk.AccAddress, callback types.UnlockCallback, data []byte) ([]byte, error) {
	store := k.getStore(ctx)
	if store.Has(types.ActiveLockerKey) {
		return nil, types.ErrAlreadyUnlocked.Wrap("an unlock is already in progress")
	}
	store.Set(types.ActiveLockerKey, []byte(locker.String()))
	defer k.getStore(ctx).Delete(types.ActiveLockerKey)

	result, err := callback.UnlockCallback(ctx, data)
	if err != nil {
		return nil, err
	}

	if denom, outstanding := k.firstOutstandingDelta(ctx); outstanding {
		return nil, types.ErrInvariantViolation.Wrapf("unresolved balance delta for %s", denom)
	}
	return result, nil
}

// GetActiveLocker returns the address holding the in-flight lock, if any.
func (k Keeper) GetActiveLocker(ctx sdk.Context) (string, bool) {
	bz := k.getStore(ctx).Get(types.ActiveLockerKey)
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// requireLocker verifies the caller holds the active lock.
func (k Keeper) requireLocker(ctx sdk.Context, locker sdk.AccAddress) error {
	active, found := k.GetActiveLocker(ctx)
	if !found {
		return types.ErrUnauthorizedCallback.Wrap("no unlock in progress")
	}
	if active != locker.String() {
		return types.ErrUnauthorizedCallback.Wrapf("lock held by %s, not %s", active, locker)
	}
	return nil
}

// SwapWithDelta swaps against the pool inside an unlock without moving funds.
// Reserves are updated immediately; the input (plus any accrued priority tax)
// is recorded as a debt on the locker's delta and the output as a credit,
// both to be resolved through Settle and Take before the lock releases.
func (k Keeper) SwapWithDelta(ctx sdk.Context, locker sdk.AccAddress, poolID uint64, tokenIn string, amountIn math.Int) (types.BalanceDelta, error) {
	if err := k.requireLocker(ctx, locker); err != nil {
		return types.ZeroBalanceDelta(), err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return types.ZeroBalanceDelta(), types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ZeroBalanceDelta(), types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	reserveIn, reserveOut, tokenOut, err := swapSides(pool, tokenIn)
	if err != nil {
		return types.ZeroBalanceDelta(), err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return types.ZeroBalanceDelta(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	amountOut := calculateSwapOutput(amountIn, reserveIn, reserveOut, k.GetParams(ctx).SwapFee)
	if !amountOut.IsPositive() {
		return types.ZeroBalanceDelta(), types.ErrInvalidAmount.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return types.ZeroBalanceDelta(), types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}

	oldK := pool.ReserveA.Mul(pool.ReserveB)

	tax := math.ZeroInt()
	taxDenom := ""
	if cfg, hasCfg := k.GetTaxConfig(ctx, poolID); hasCfg {
		taxDenom = pool.TaxDenom(cfg)
		tax = k.TaxManager().AccrueSwapTax(ctx, &pool, cfg, locker.String(), uint64(ctx.BlockHeight()), ctx.Priority())
	}

	k.creditReserve(ctx, &pool, tokenIn, amountIn)
	k.debitReserve(ctx, &pool, tokenOut, amountOut)

	if newK := pool.ReserveA.Mul(pool.ReserveB); newK.LT(oldK) {
		return types.ZeroBalanceDelta(), types.ErrInvariantViolation.Wrapf("constant product decreased: %s -> %s", oldK, newK)
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return types.ZeroBalanceDelta(), err
	}

	k.addDelta(ctx, tokenIn, amountIn.Neg())
	k.addDelta(ctx, tokenOut, amountOut)
	if tax.IsPositive() {
		k.addDelta(ctx, taxDenom, tax.Neg())
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, locker.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyTax, tax.String()),
		),
	)

	delta := types.ZeroBalanceDelta()
	k.applyToDelta(&delta, pool, tokenIn, amountIn.Neg())
	k.applyToDelta(&delta, pool, tokenOut, amountOut)
	if tax.IsPositive() {
		k.applyToDelta(&delta, pool, taxDenom, tax.Neg())
	}
	return delta, nil
}

// Settle pays coins from the payer into the pool module, reducing the
// locker's outstanding debt in that denom.
func (k Keeper) Settle(ctx sdk.Context, locker, payer sdk.AccAddress, denom string, amount math.Int) error {
	if err := k.requireLocker(ctx, locker); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("settle amount must be positive")
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.ModuleName, coins); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to settle: %v", err)
	}
	k.addDelta(ctx, denom, amount)
	return nil
}

// Take withdraws coins credited to the locker's delta to the recipient.
func (k Keeper) Take(ctx sdk.Context, locker, recipient sdk.AccAddress, denom string, amount math.Int) error {
	if err := k.requireLocker(ctx, locker); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("take amount must be positive")
	}
	if k.getDelta(ctx, denom).LT(amount) {
		return types.ErrInvalidAmount.Wrapf("take of %s%s exceeds credited balance", amount, denom)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrInsufficientLiquidity.Wrapf("failed to take: %v", err)
	}
	k.addDelta(ctx, denom, amount.Neg())
	return nil
}

func (k Keeper) getDelta(ctx sdk.Context, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.GetDeltaKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var delta math.Int
	if err := delta.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return delta
}

func (k Keeper) addDelta(ctx sdk.Context, denom string, change math.Int) {
	store := k.getStore(ctx)
	key := types.GetDeltaKey(denom)
	delta := k.getDelta(ctx, denom).Add(change)
	if delta.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := delta.Marshal()
	if err != nil {
		return
	}
	store.Set(key, bz)
}

// firstOutstandingDelta reports any denom with a non-zero delta remaining.
func (k Keeper) firstOutstandingDelta(ctx sdk.Context) (string, bool) {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.DeltaKey)
	defer iterator.Close()
	if iterator.Valid() {
		return string(iterator.Key()[len(types.DeltaKey):]), true
	}
	return "", false
}

// applyToDelta folds a per-denom change into the pool-indexed delta pair.
func (k Keeper) applyToDelta(delta *types.BalanceDelta, pool types.Pool, denom string, change math.Int) {
	if denom == pool.TokenA {
		delta.Amount0 = delta.Amount0.Add(change)
	} else {
		delta.Amount1 = delta.Amount1.Add(change)
	}
}
