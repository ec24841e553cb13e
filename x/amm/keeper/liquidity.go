package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// GetShares returns a provider's shares in a pool
func (k Keeper) GetShares(ctx sdk.Context, poolID uint64, provider string) math.Int {
	bz := k.getStore(ctx).Get(types.GetSharesKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return shares
}

func (k Keeper) setShares(ctx sdk.Context, poolID uint64, provider string, shares math.Int) {
	store := k.getStore(ctx)
	key := types.GetSharesKey(poolID, provider)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		return
	}
	store.Set(key, bz)
}

// AddLiquidity deposits both tokens pro-rata against current reserves and
// mints shares. The post-add JIT tax hook fires here: liquidity inserted
// before the window's first taxed swap pays the elevated rate.
func (k Keeper) AddLiquidity(ctx sdk.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("amounts must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.ZeroInt(), types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	// Mint shares at the less favorable of the two single-sided ratios so a
	// skewed deposit cannot extract value.
	sharesFromA := amountA.Mul(pool.TotalShares).Quo(pool.ReserveA)
	sharesFromB := amountB.Mul(pool.TotalShares).Quo(pool.ReserveB)
	shares := math.MinInt(sharesFromA, sharesFromB)
	if !shares.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("deposit too small to mint shares")
	}

	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.TokenA, amountA),
		sdk.NewCoin(pool.TokenB, amountB),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("failed to transfer deposit: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}
	k.setShares(ctx, poolID, provider.String(), k.GetShares(ctx, poolID, provider.String()).Add(shares))

	// JIT taxation: adding liquidity never marks the window, so deposits
	// ahead of the first taxed swap stay exposed until a swap clears it.
	window := uint64(ctx.BlockHeight())
	priority := ctx.Priority()
	if cfg, found := k.GetTaxConfig(ctx, poolID); found {
		if _, err := k.TaxManager().ChargeJITTax(ctx, pool, cfg, provider, window, priority); err != nil {
			return math.ZeroInt(), err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
	k.metrics.LiquidityAdds.Inc()

	return shares, nil
}

// RemoveLiquidity burns shares for a pro-rata slice of both reserves.
func (k Keeper) RemoveLiquidity(ctx sdk.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	if !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return math.ZeroInt(), math.ZeroInt(), types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	held := k.GetShares(ctx, poolID, provider.String())
	if held.LT(shares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf("held %s, requested %s", held, shares)
	}

	amountA := shares.Mul(pool.ReserveA).Quo(pool.TotalShares)
	amountB := shares.Mul(pool.ReserveB).Quo(pool.TotalShares)
	if !amountA.IsPositive() && !amountB.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("shares too small to redeem")
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	k.setShares(ctx, poolID, provider.String(), held.Sub(shares))

	withdrawal := sdk.Coins{}
	if amountA.IsPositive() {
		withdrawal = withdrawal.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		withdrawal = withdrawal.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, withdrawal); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer withdrawal: %v", err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return amountA, amountB, nil
}
