package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// TaxManager charges priority-fee taxes on pool activity. Each pool tracks the
// last settlement window in which a swap tax was collected; only the first
// qualifying swap of a window pays, and liquidity inserted ahead of that swap
// pays the elevated just-in-time rate.
type TaxManager struct {
	keeper Keeper
}

// TaxManager returns the taxation manager bound to this keeper.
func (k Keeper) TaxManager() TaxManager {
	return TaxManager{keeper: k}
}

// GetLastTaxedWindow returns the most recent window in which a swap tax was
// collected for the pool. The second return reports whether any swap tax has
// ever been collected.
func (k Keeper) GetLastTaxedWindow(ctx sdk.Context, poolID uint64) (uint64, bool) {
	bz := k.getStore(ctx).Get(types.GetLastTaxedWindowKey(poolID))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

func (k Keeper) setLastTaxedWindow(ctx sdk.Context, poolID uint64, window uint64) {
	k.getStore(ctx).Set(types.GetLastTaxedWindowKey(poolID), sdk.Uint64ToBigEndian(window))
}

// taxUnits returns the priority fee in excess of the threshold, or zero.
func taxUnits(priority int64, threshold int64) math.Int {
	if priority <= threshold {
		return math.ZeroInt()
	}
	return math.NewInt(priority - threshold)
}

// swapTaxDue returns the swap tax owed for the window, zero if the window is
// already marked or the priority fee does not clear the threshold.
func (m TaxManager) swapTaxDue(ctx sdk.Context, poolID uint64, cfg types.PoolTaxConfig, window uint64, priority int64) math.Int {
	if last, found := m.keeper.GetLastTaxedWindow(ctx, poolID); found && last == window {
		return math.ZeroInt()
	}
	return taxUnits(priority, cfg.PriorityThreshold).Mul(cfg.SwapFeeUnit)
}

// bookSwapTax credits a collected swap tax to the pool's reserves and marks
// the window as taxed. The window is marked only on a positive collection,
// which keeps a zero-priority opener from shielding later swaps.
func (m TaxManager) bookSwapTax(ctx sdk.Context, pool *types.Pool, cfg types.PoolTaxConfig, payer string, tax math.Int, window uint64, priority int64) {
	denom := pool.TaxDenom(cfg)
	m.keeper.creditReserve(ctx, pool, denom, tax)
	m.keeper.setLastTaxedWindow(ctx, pool.Id, window)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwapTaxed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, payer),
			sdk.NewAttribute(types.AttributeKeyTax, tax.String()),
			sdk.NewAttribute(types.AttributeKeyTaxDenom, denom),
			sdk.NewAttribute(types.AttributeKeyWindow, fmt.Sprintf("%d", window)),
			sdk.NewAttribute(types.AttributeKeyPriorityFee, fmt.Sprintf("%d", priority)),
		),
	)

	poolLabel := fmt.Sprintf("%d", pool.Id)
	m.keeper.metrics.SwapTaxesCharged.WithLabelValues(poolLabel).Inc()
	m.keeper.metrics.TaxVolume.WithLabelValues(poolLabel, denom, "swap").Add(float64(tax.Int64()))

	m.keeper.Logger(ctx).Debug("swap tax collected",
		"pool_id", pool.Id,
		"window", window,
		"priority", priority,
		"tax", tax.String(),
	)
}

// ChargeSwapTax collects the swap tax for the given window if this is the
// window's first qualifying swap. The tax is funded by the trader and donated
// to the pool's reserves, so it accrues to liquidity providers in place.
//
// The pool's reserves are mutated in place; the caller persists the pool.
func (m TaxManager) ChargeSwapTax(
	ctx sdk.Context,
	pool *types.Pool,
	cfg types.PoolTaxConfig,
	trader sdk.AccAddress,
	window uint64,
	priority int64,
) (math.Int, error) {
	tax := m.swapTaxDue(ctx, pool.Id, cfg, window, priority)
	if !tax.IsPositive() {
		return math.ZeroInt(), nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TaxDenom(cfg), tax))
	if err := m.keeper.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("failed to collect swap tax: %v", err)
	}

	m.bookSwapTax(ctx, pool, cfg, trader.String(), tax, window, priority)
	return tax, nil
}

// AccrueSwapTax books the swap tax without moving funds. Used inside an
// unlock, where the debt lands on the locker's balance delta and is settled
// before the lock releases.
func (m TaxManager) AccrueSwapTax(
	ctx sdk.Context,
	pool *types.Pool,
	cfg types.PoolTaxConfig,
	payer string,
	window uint64,
	priority int64,
) math.Int {
	tax := m.swapTaxDue(ctx, pool.Id, cfg, window, priority)
	if !tax.IsPositive() {
		return math.ZeroInt()
	}
	m.bookSwapTax(ctx, pool, cfg, payer, tax, window, priority)
	return tax
}

// ChargeJITTax collects the just-in-time liquidity tax when liquidity is added
// before the window's first taxed swap. Once a window has been marked by a
// swap tax, later additions in the same window are free: they can no longer
// front-run the priority flow that already cleared. The JIT tax is routed to
// the module authority rather than the pool, and it never marks the window.
func (m TaxManager) ChargeJITTax(
	ctx sdk.Context,
	pool types.Pool,
	cfg types.PoolTaxConfig,
	provider sdk.AccAddress,
	window uint64,
	priority int64,
) (math.Int, error) {
	if last, found := m.keeper.GetLastTaxedWindow(ctx, pool.Id); found && last == window {
		return math.ZeroInt(), nil
	}

	tax := taxUnits(priority, cfg.PriorityThreshold).Mul(cfg.JitFeeUnit)
	if !tax.IsPositive() {
		return math.ZeroInt(), nil
	}

	authority, err := sdk.AccAddressFromBech32(m.keeper.authority)
	if err != nil {
		return math.ZeroInt(), types.ErrInvalidTaxConfig.Wrapf("invalid authority address: %v", err)
	}

	denom := pool.TaxDenom(cfg)
	coins := sdk.NewCoins(sdk.NewCoin(denom, tax))
	if err := m.keeper.bankKeeper.SendCoins(ctx, provider, authority, coins); err != nil {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("failed to collect jit tax: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJITTaxed,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyTax, tax.String()),
			sdk.NewAttribute(types.AttributeKeyTaxDenom, denom),
			sdk.NewAttribute(types.AttributeKeyWindow, fmt.Sprintf("%d", window)),
			sdk.NewAttribute(types.AttributeKeyPriorityFee, fmt.Sprintf("%d", priority)),
		),
	)

	poolLabel := fmt.Sprintf("%d", pool.Id)
	m.keeper.metrics.JITTaxesCharged.WithLabelValues(poolLabel).Inc()
	m.keeper.metrics.TaxVolume.WithLabelValues(poolLabel, denom, "jit").Add(float64(tax.Int64()))

	m.keeper.Logger(ctx).Debug("jit tax collected",
		"pool_id", pool.Id,
		"window", window,
		"priority", priority,
		"tax", tax.String(),
	)
	return tax, nil
}
