package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/hydro-dex/hydro/testutil/keeper"
	"github.com/hydro-dex/hydro/x/amm/types"
)

func TestSwapExactInConstantProduct(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	// 10000 in at 0.3% fee against 1e6/1e6 reserves:
	// out = 1e6 * 9970 / (1e6 + 9970) = 9871.
	out, err := k.SwapExactIn(ctx, traderAddr, swapMsg(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9871), out)

	require.True(t, bank.GetBalance(ctx, traderAddr, "uatom").Amount.IsZero())
	require.Equal(t, math.NewInt(9871), bank.GetBalance(ctx, traderAddr, "uusdc").Amount)

	pool, _ := k.GetPool(ctx, poolID)
	require.Equal(t, math.NewInt(1_010_000), pool.ReserveA)
	require.Equal(t, math.NewInt(990_129), pool.ReserveB)

	// Constant product never decreases across a swap.
	require.True(t, pool.ReserveA.Mul(pool.ReserveB).GTE(math.NewInt(1_000_000).Mul(math.NewInt(1_000_000))))
}

func TestSwapExactInSlippage(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	msg := swapMsg(10_000)
	msg.MinAmountOut = math.NewInt(9_872)
	_, err := k.SwapExactIn(ctx, traderAddr, msg)
	require.ErrorIs(t, err, types.ErrSlippageTooHigh)

	msg.MinAmountOut = math.NewInt(9_871)
	_, err = k.SwapExactIn(ctx, traderAddr, msg)
	require.NoError(t, err)
}

func TestSwapExactInErrors(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	tests := []struct {
		name    string
		mutate  func(*types.MsgSwap)
		wantErr error
	}{
		{"unknown pool", func(m *types.MsgSwap) { m.PoolId = 99 }, types.ErrPoolNotFound},
		{"token not in pool", func(m *types.MsgSwap) { m.TokenIn = "ujunk" }, types.ErrInvalidTokenPair},
		{"zero amount", func(m *types.MsgSwap) { m.AmountIn = math.ZeroInt() }, types.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := swapMsg(10_000)
			tt.mutate(&msg)
			_, err := k.SwapExactIn(ctx, traderAddr, msg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSimulateSwapMatchesExecution(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	quoted, err := k.SimulateSwap(ctx, poolID, "uatom", math.NewInt(10_000))
	require.NoError(t, err)

	pool, _ := k.GetPool(ctx, poolID)
	executed, err := k.SwapExactIn(ctx, traderAddr, swapMsg(10_000))
	require.NoError(t, err)
	require.Equal(t, quoted, executed)

	// The simulation itself must not have touched the pool.
	after, _ := k.GetPool(ctx, poolID)
	require.Equal(t, pool.ReserveA.Add(math.NewInt(10_000)), after.ReserveA)
}

func TestAddRemoveLiquidity(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(providerAddr, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(100_000)),
		sdk.NewCoin("uusdc", math.NewInt(100_000)),
	))

	shares, err := k.AddLiquidity(ctx, providerAddr, poolID, math.NewInt(100_000), math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), shares)
	require.Equal(t, shares, k.GetShares(ctx, poolID, providerAddr.String()))

	amountA, amountB, err := k.RemoveLiquidity(ctx, providerAddr, poolID, shares)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), amountA)
	require.Equal(t, math.NewInt(100_000), amountB)
	require.True(t, k.GetShares(ctx, poolID, providerAddr.String()).IsZero())

	_, _, err = k.RemoveLiquidity(ctx, providerAddr, poolID, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestDonate(t *testing.T) {
	k, ctx, bank := keepertest.AmmKeeper(t)
	poolID := setupPool(t, k, ctx, bank, defaultTaxConfig())
	bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(5_000))))

	before, _ := k.GetPool(ctx, poolID)
	require.NoError(t, k.Donate(ctx, traderAddr, poolID, math.NewInt(5_000), math.ZeroInt()))

	after, _ := k.GetPool(ctx, poolID)
	require.Equal(t, before.ReserveA.Add(math.NewInt(5_000)), after.ReserveA)
	// Donations mint no shares.
	require.Equal(t, before.TotalShares, after.TotalShares)
}
