package keeper

import (
	"encoding/json"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// SetPool stores a pool
func (k Keeper) SetPool(ctx sdk.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return types.ErrInvalidPoolID.Wrap(err.Error())
	}

	bz, err := json.Marshal(&pool)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.GetPoolKey(pool.Id), bz)
	return nil
}

// GetPool retrieves a pool by id
func (k Keeper) GetPool(ctx sdk.Context, poolID uint64) (types.Pool, bool) {
	bz := k.getStore(ctx).Get(types.GetPoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, false
	}
	return pool, true
}

// GetAllPools returns every pool in the store
func (k Keeper) GetAllPools(ctx sdk.Context) []types.Pool {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKey)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			continue
		}
		pools = append(pools, pool)
	}
	return pools
}

func (k Keeper) getPoolCount(ctx sdk.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setPoolCount(ctx sdk.Context, count uint64) {
	k.getStore(ctx).Set(types.PoolCountKey, sdk.Uint64ToBigEndian(count))
}

// SetTaxConfig stores a pool's tax configuration
func (k Keeper) SetTaxConfig(ctx sdk.Context, poolID uint64, cfg types.PoolTaxConfig) error {
	if err := cfg.Validate(); err != nil {
		return types.ErrInvalidTaxConfig.Wrap(err.Error())
	}

	bz, err := json.Marshal(&cfg)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.GetTaxConfigKey(poolID), bz)
	return nil
}

// GetTaxConfig retrieves a pool's tax configuration
func (k Keeper) GetTaxConfig(ctx sdk.Context, poolID uint64) (types.PoolTaxConfig, bool) {
	bz := k.getStore(ctx).Get(types.GetTaxConfigKey(poolID))
	if bz == nil {
		return types.PoolTaxConfig{}, false
	}

	var cfg types.PoolTaxConfig
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.PoolTaxConfig{}, false
	}
	return cfg, true
}

// UpdateTaxConfig reconfigures a pool's taxation parameters. Only the module
// authority may call this after pool creation.
func (k Keeper) UpdateTaxConfig(ctx sdk.Context, authority string, poolID uint64, cfg types.PoolTaxConfig) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if _, found := k.GetPool(ctx, poolID); !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	return k.SetTaxConfig(ctx, poolID, cfg)
}

// CreatePool creates a new constant-product pool with an initial deposit.
// The dynamic fee mode is mandatory: the tax state machine cannot attach to a
// static-fee pool, so creation without it fails.
func (k Keeper) CreatePool(ctx sdk.Context, creator sdk.AccAddress, msg types.MsgCreatePool) (uint64, error) {
	if err := msg.ValidateBasic(); err != nil {
		return 0, err
	}
	if !msg.DynamicFee {
		return 0, types.ErrDynamicFeeRequired.Wrap("pool creation requires the dynamic fee mode")
	}

	params := k.GetParams(ctx)
	shares := initialShares(msg.AmountA, msg.AmountB)
	if shares.LT(params.MinLiquidity) {
		return 0, types.ErrInsufficientLiquidity.Wrapf("initial shares %s below minimum %s", shares, params.MinLiquidity)
	}

	deposit := sdk.NewCoins(
		sdk.NewCoin(msg.TokenA, msg.AmountA),
		sdk.NewCoin(msg.TokenB, msg.AmountB),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, deposit); err != nil {
		return 0, types.ErrInvalidAmount.Wrapf("failed to transfer initial deposit: %v", err)
	}

	poolID := k.getPoolCount(ctx) + 1
	pool := types.Pool{
		Id:          poolID,
		TokenA:      msg.TokenA,
		TokenB:      msg.TokenB,
		ReserveA:    msg.AmountA,
		ReserveB:    msg.AmountB,
		TotalShares: shares,
		DynamicFee:  true,
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return 0, err
	}
	if err := k.SetTaxConfig(ctx, poolID, msg.TaxConfig); err != nil {
		return 0, err
	}
	k.setPoolCount(ctx, poolID)
	k.setShares(ctx, poolID, creator.String(), shares)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTokenIn, msg.TokenA),
			sdk.NewAttribute(types.AttributeKeyTokenOut, msg.TokenB),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
	k.metrics.PoolsTotal.Inc()

	return poolID, nil
}

// Donate credits reserves without minting shares, funded by the donor.
func (k Keeper) Donate(ctx sdk.Context, donor sdk.AccAddress, poolID uint64, amountA, amountB math.Int) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}
	if amountA.IsNegative() || amountB.IsNegative() {
		return types.ErrInvalidAmount.Wrap("donation amounts cannot be negative")
	}

	coins := sdk.Coins{}
	if amountA.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if coins.IsZero() {
		return nil
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, donor, types.ModuleName, coins); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to transfer donation: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDonation,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountB.String()),
		),
	)
	return nil
}

// creditReserve adds an already-custodied amount to one side of the pool.
func (k Keeper) creditReserve(ctx sdk.Context, pool *types.Pool, denom string, amount math.Int) {
	if denom == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Add(amount)
	} else {
		pool.ReserveB = pool.ReserveB.Add(amount)
	}
}

// initialShares returns sqrt(amountA * amountB), the geometric mean of the
// initial deposit.
func initialShares(amountA, amountB math.Int) math.Int {
	product := new(big.Int).Mul(amountA.BigInt(), amountB.BigInt())
	return math.NewIntFromBigInt(new(big.Int).Sqrt(product))
}
