package keeper_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/hydro-dex/hydro/testutil/keeper"
	oracletypes "github.com/hydro-dex/hydro/x/oracle/types"
	"github.com/hydro-dex/hydro/x/router/types"
)

func pricedOrder() types.MatchingOrder {
	return types.MatchingOrder{
		Maker:        makerAddr.String(),
		MakerAsset:   "uusdc",
		TakerAsset:   "uatom",
		MakingAmount: math.NewInt(1_000),
		TakingAmount: math.NewInt(2_000),
	}
}

func spreadExtension(t *testing.T, params oracletypes.SpreadParams) []byte {
	t.Helper()
	bz, err := json.Marshal(params)
	require.NoError(t, err)
	return bz
}

func TestQuotePassThroughWithoutExtension(t *testing.T) {
	f := keepertest.RouterKeeper(t)

	taking, err := f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), taking)

	making, err := f.Router.QuoteMakingAmount(f.Ctx, pricedOrder(), math.NewInt(1_000), nil)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), making)
}

func TestQuotePassThroughOnInvalidParams(t *testing.T) {
	f := keepertest.RouterKeeper(t)

	// Over-cap params degrade to no adjustment rather than failing the fill.
	ext := spreadExtension(t, oracletypes.SpreadParams{
		BaseSpreadBps:        1001,
		VolatilityMultiplier: 100,
		MaxSpreadBps:         200,
	})
	taking, err := f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), ext)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), taking)

	// Malformed extension bytes behave the same way.
	taking, err = f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), []byte("not json"))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), taking)
}

func TestQuoteVolatilityAdjustment(t *testing.T) {
	f := keepertest.RouterKeeper(t)

	// Manual override of 5000 bps with multiplier 100 adds 50 bps of impact
	// on top of the 50 bps base: a 100 bps spread.
	require.NoError(t, f.Oracle.SetTokenConfig(f.Ctx, oracletypes.TokenConfig{
		Denom:            "uusdc",
		FeedID:           "usdc-usd",
		ManualVolatility: 5000,
		Supported:        true,
	}))

	ext := spreadExtension(t, oracletypes.SpreadParams{
		BaseSpreadBps:        50,
		VolatilityMultiplier: 100,
		MaxSpreadBps:         200,
	})

	// Taking amount scales up by the spread.
	taking, err := f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), ext)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_010), taking)

	// Making amount scales down by the spread.
	making, err := f.Router.QuoteMakingAmount(f.Ctx, pricedOrder(), math.NewInt(1_000), ext)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(495), making)
}

func TestQuoteTakerAssetVolatilityFlag(t *testing.T) {
	f := keepertest.RouterKeeper(t)

	require.NoError(t, f.Oracle.SetTokenConfig(f.Ctx, oracletypes.TokenConfig{
		Denom:            "uatom",
		FeedID:           "atom-usd",
		ManualVolatility: 10_000,
		Supported:        true,
	}))

	ext := spreadExtension(t, oracletypes.SpreadParams{
		BaseSpreadBps:           50,
		VolatilityMultiplier:    100,
		MaxSpreadBps:            200,
		UseTakerAssetVolatility: true,
	})

	// 10000 bps of volatility adds 100 bps of impact: 150 bps spread.
	taking, err := f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), ext)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_015), taking)
}

func TestQuoteUnsupportedVolatilityAssetFails(t *testing.T) {
	f := keepertest.RouterKeeper(t)

	ext := spreadExtension(t, oracletypes.SpreadParams{
		BaseSpreadBps:        50,
		VolatilityMultiplier: 100,
		MaxSpreadBps:         200,
	})

	_, err := f.Router.QuoteTakingAmount(f.Ctx, pricedOrder(), math.NewInt(500), ext)
	require.ErrorIs(t, err, oracletypes.ErrTokenNotSupported)
}
