package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/hydro-dex/hydro/testutil/keeper"
	"github.com/hydro-dex/hydro/x/oracle/types"
)

func TestRefreshPricesRecordsCanonicalScale(t *testing.T) {
	k, ctx, feed := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))

	tests := []struct {
		name  string
		price math.Int
		expo  int32
		want  math.Int
	}{
		{"zero exponent", math.NewInt(5), 0, math.NewInt(500000000)},
		{"negative exponent above scale", math.NewInt(12345), -2, math.NewInt(12345000000)},
		{"negative exponent below scale, truncating", math.NewInt(123456789), -10, math.NewInt(1234567)},
	}

	now := time.Unix(1_700_000_000, 0)
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed.SetPrice("atom-usd", tt.price, tt.expo, now.Unix())
			ctx = ctx.WithBlockTime(now.Add(time.Duration(i) * time.Hour))

			require.NoError(t, k.RefreshPrices(ctx, []string{"uatom"}))

			history, found := k.GetPriceHistory(ctx, "uatom")
			require.True(t, found)
			require.Equal(t, uint32(i+1), history.DataPoints)
			require.Equal(t, tt.want, history.Samples[i])
		})
	}
}

func TestRefreshPricesHourlyGate(t *testing.T) {
	k, ctx, feed := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))

	now := time.Unix(1_700_000_000, 0)
	feed.SetPrice("atom-usd", math.NewInt(5), 0, now.Unix())
	ctx = ctx.WithBlockTime(now)

	require.NoError(t, k.RefreshPrices(ctx, []string{"uatom"}))
	history, _ := k.GetPriceHistory(ctx, "uatom")
	require.Equal(t, uint32(1), history.DataPoints)

	// A second refresh within the hour is an idempotent no-op, even if the
	// feed price has moved.
	feed.SetPrice("atom-usd", math.NewInt(9), 0, now.Unix())
	ctx = ctx.WithBlockTime(now.Add(30 * time.Minute))
	require.NoError(t, k.RefreshPrices(ctx, []string{"uatom"}))

	history, _ = k.GetPriceHistory(ctx, "uatom")
	require.Equal(t, uint32(1), history.DataPoints)
	require.Equal(t, math.NewInt(500000000), history.Samples[0])

	// Past the interval the new sample lands.
	ctx = ctx.WithBlockTime(now.Add(time.Hour))
	require.NoError(t, k.RefreshPrices(ctx, []string{"uatom"}))

	history, _ = k.GetPriceHistory(ctx, "uatom")
	require.Equal(t, uint32(2), history.DataPoints)
	require.Equal(t, math.NewInt(900000000), history.Samples[1])
}

func TestRefreshPricesErrors(t *testing.T) {
	k, ctx, feed := keepertest.OracleKeeper(t)

	require.NoError(t, k.SetTokenConfig(ctx, types.TokenConfig{
		Denom: "uatom", FeedID: "atom-usd", Supported: true,
	}))
	ctx = ctx.WithBlockTime(time.Unix(1_700_000_000, 0))

	// Unsupported assets are skipped, not failed.
	require.NoError(t, k.RefreshPrices(ctx, []string{"unknown"}))
	_, found := k.GetPriceHistory(ctx, "unknown")
	require.False(t, found)

	// Missing feed data is fatal.
	err := k.RefreshPrices(ctx, []string{"uatom"})
	require.ErrorIs(t, err, types.ErrFeedUnavailable)

	// Non-positive prices are fatal.
	feed.SetPrice("atom-usd", math.ZeroInt(), 0, ctx.BlockTime().Unix())
	err = k.RefreshPrices(ctx, []string{"uatom"})
	require.ErrorIs(t, err, types.ErrInvalidPrice)
}

func TestConfigureFeedsAuthority(t *testing.T) {
	k, ctx, _ := keepertest.OracleKeeper(t)

	configs := []types.TokenConfig{{Denom: "uatom", FeedID: "atom-usd", Supported: true}}

	err := k.ConfigureFeeds(ctx, "cosmos1notauthority", configs)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	_, found := k.GetTokenConfig(ctx, "uatom")
	require.False(t, found)

	require.NoError(t, k.ConfigureFeeds(ctx, k.GetAuthority(), configs))
	cfg, found := k.GetTokenConfig(ctx, "uatom")
	require.True(t, found)
	require.Equal(t, "atom-usd", cfg.FeedID)
}
