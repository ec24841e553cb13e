package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/hydro-dex/hydro/testutil/keeper"
	"github.com/hydro-dex/hydro/x/oracle/types"
)

func TestGetVolatilityResolutionOrder(t *testing.T) {
	k, ctx, _ := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))
	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uusdc", FeedID: "usdc-usd", Stablecoin: true, Supported: true,
	}))
	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uosmo", FeedID: "osmo-usd", ManualVolatility: 777, Supported: true,
	}))
	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "ujunk", FeedID: "junk-usd", Supported: false,
	}))

	params := k.GetParams(ctx)

	// No configuration at all.
	_, err := k.GetVolatility(ctx, "unknown")
	require.ErrorIs(t, err, types.ErrTokenNotSupported)

	// Configured but not supported.
	_, err = k.GetVolatility(ctx, "ujunk")
	require.ErrorIs(t, err, types.ErrTokenNotSupported)

	// Manual override wins over everything.
	vol, err := k.GetVolatility(ctx, "uosmo")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(777), vol)

	// Stablecoin constant.
	vol, err = k.GetVolatility(ctx, "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromUint64(params.StablecoinVolatility), vol)

	// No history yet: default constant.
	vol, err = k.GetVolatility(ctx, "uatom")
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromUint64(params.DefaultVolatility), vol)
}

func TestGetVolatilityUnderfilledBuffer(t *testing.T) {
	k, ctx, _ := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))

	history := types.NewPriceHistory("uatom")
	for i := 0; i < types.MinSamples-1; i++ {
		history.Record(math.NewInt(int64(10000+i*1000)), int64(i))
	}
	require.NoError(t, k.SetPriceHistory(ctx, history))

	vol, err := k.GetVolatility(ctx, "uatom")
	require.NoError(t, err)
	require.Equal(t, math.NewIntFromUint64(k.GetParams(ctx).DefaultVolatility), vol)
}

func TestGetVolatilityComputed(t *testing.T) {
	k, ctx, _ := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))

	// Eleven flat samples, a doubling, then a halving: returns are ten zeros,
	// 10000, and 5000. Population stddev of that set truncates to 2975.
	history := types.NewPriceHistory("uatom")
	for i := 0; i < 11; i++ {
		history.Record(math.NewInt(10000), int64(i))
	}
	history.Record(math.NewInt(20000), 11)
	history.Record(math.NewInt(10000), 12)
	require.NoError(t, k.SetPriceHistory(ctx, history))

	vol, err := k.GetVolatility(ctx, "uatom")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2975), vol)
}

func TestGetVolatilityFlatPrices(t *testing.T) {
	k, ctx, _ := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))

	history := types.NewPriceHistory("uatom")
	for i := 0; i < types.MaxSamples; i++ {
		history.Record(math.NewInt(500000000), int64(i))
	}
	require.NoError(t, k.SetPriceHistory(ctx, history))

	vol, err := k.GetVolatility(ctx, "uatom")
	require.NoError(t, err)
	require.True(t, vol.IsZero())
}
