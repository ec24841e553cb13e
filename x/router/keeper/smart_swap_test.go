package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/hydro-dex/hydro/testutil/keeper"
	ammtypes "github.com/hydro-dex/hydro/x/amm/types"
	"github.com/hydro-dex/hydro/x/router/types"
)

var (
	creatorAddr = sdk.AccAddress("creator_____________")
	traderAddr  = sdk.AccAddress("trader______________")
	makerAddr   = sdk.AccAddress("maker_______________")
)

// setupFixture creates the settlement stack with a 1e6/1e6 uatom-uusdc pool.
func setupFixture(t *testing.T) keepertest.RouterTestFixture {
	t.Helper()
	f := keepertest.RouterKeeper(t)

	f.Bank.Fund(creatorAddr, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	_, err := f.Amm.CreatePool(f.Ctx, creatorAddr, ammtypes.MsgCreatePool{
		Creator:    creatorAddr.String(),
		TokenA:     "uatom",
		TokenB:     "uusdc",
		AmountA:    math.NewInt(1_000_000),
		AmountB:    math.NewInt(1_000_000),
		DynamicFee: true,
		TaxConfig: ammtypes.PoolTaxConfig{
			TaxTokenA:         true,
			SwapFeeUnit:       math.NewInt(2),
			JitFeeUnit:        math.NewInt(10),
			PriorityThreshold: 100,
		},
	})
	require.NoError(t, err)
	return f
}

func hybridMsg(totalIn, minOut int64, matching *types.MatchingLeg) types.MsgSmartSwap {
	return types.MsgSmartSwap{
		Trader:     traderAddr.String(),
		PoolId:     1,
		ZeroForOne: true,
		TotalIn:    math.NewInt(totalIn),
		MinOut:     math.NewInt(minOut),
		Matching:   matching,
	}
}

func matchingLeg(fillAmount int64) *types.MatchingLeg {
	return &types.MatchingLeg{
		Order: types.MatchingOrder{
			Maker:        makerAddr.String(),
			Receiver:     makerAddr.String(),
			MakerAsset:   "uusdc",
			TakerAsset:   "uatom",
			MakingAmount: math.NewInt(6_000),
			TakingAmount: math.NewInt(6_000),
			Salt:         1,
		},
		Signature:  []byte("sig"),
		FillAmount: math.NewInt(fillAmount),
	}
}

func TestSmartSwapHybridSettlement(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	f.Bank.Fund(makerAddr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(6_000))))

	// Matching leg fills 6000 at 1:1; the remaining 4000 swaps against the
	// pool for 3972.
	out, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 9_972, matchingLeg(6_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_972), out)

	// The trader is out exactly the total input and holds exactly F + P.
	require.True(t, f.Bank.GetBalance(f.Ctx, traderAddr, "uatom").Amount.IsZero())
	require.Equal(t, math.NewInt(9_972), f.Bank.GetBalance(f.Ctx, traderAddr, "uusdc").Amount)

	// The maker received the taken side of the fill.
	require.Equal(t, math.NewInt(6_000), f.Bank.GetBalance(f.Ctx, makerAddr, "uatom").Amount)
	require.True(t, f.Bank.GetBalance(f.Ctx, makerAddr, "uusdc").Amount.IsZero())

	// Nothing stranded in router custody.
	require.True(t, f.Bank.GetBalance(f.Ctx, f.Router.GetModuleAddress(), "uatom").Amount.IsZero())
	require.True(t, f.Bank.GetBalance(f.Ctx, f.Router.GetModuleAddress(), "uusdc").Amount.IsZero())
}

func TestSmartSwapPoolOnly(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	out, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 0, nil))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_871), out)
	require.Equal(t, math.NewInt(9_871), f.Bank.GetBalance(f.Ctx, traderAddr, "uusdc").Amount)
}

func TestSmartSwapMatchingOnly(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(6_000))))
	f.Bank.Fund(makerAddr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(6_000))))

	out, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(6_000, 0, matchingLeg(6_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6_000), out)
}

func TestSmartSwapDeclaredInputExceedsTotal(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(5_000))))

	_, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(5_000, 0, matchingLeg(6_000)))
	require.ErrorIs(t, err, types.ErrMatchingInputExceedsTotal)
}

func TestSmartSwapMinOutputEnforced(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	_, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 9_872, nil))
	require.ErrorIs(t, err, types.ErrMinOutputNotMet)
}

func TestSmartSwapMinOutputDisabled(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	require.NoError(t, f.Router.SetParams(f.Ctx, types.Params{
		EnforceMinOutput:   false,
		UseActualFillInput: false,
	}))

	out, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 99_999, nil))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_871), out)
}

func TestSmartSwapDeclaredVersusActualFill(t *testing.T) {
	// The venue consumes 5000 despite a declared 6000. Under declared-input
	// semantics the pool leg still runs on 4000 and the undrawn 1000 strands
	// in custody; under actual-input semantics the remainder is 5000.
	tests := []struct {
		name            string
		useActual       bool
		wantOut         math.Int
		wantStrandedIn  math.Int
		wantTraderSpent math.Int
	}{
		{"declared input", false, math.NewInt(5_000 + 3_972), math.NewInt(1_000), math.NewInt(10_000)},
		{"actual input", true, math.NewInt(5_000 + 4_960), math.ZeroInt(), math.NewInt(10_000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupFixture(t)
			f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
			f.Bank.Fund(makerAddr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(6_000))))
			f.Venue.TakenOverride = math.NewInt(5_000)
			f.Venue.MadeOverride = math.NewInt(5_000)

			require.NoError(t, f.Router.SetParams(f.Ctx, types.Params{
				EnforceMinOutput:   true,
				UseActualFillInput: tt.useActual,
			}))

			out, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 0, matchingLeg(6_000)))
			require.NoError(t, err)
			require.Equal(t, tt.wantOut, out)
			require.Equal(t, tt.wantStrandedIn, f.Bank.GetBalance(f.Ctx, f.Router.GetModuleAddress(), "uatom").Amount)
			require.Equal(t, tt.wantTraderSpent, math.NewInt(10_000).Sub(f.Bank.GetBalance(f.Ctx, traderAddr, "uatom").Amount))
		})
	}
}

func TestSmartSwapFillFailureAborts(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	f.Venue.Err = types.ErrFillFailed

	_, err := f.Router.SmartSwap(f.Ctx, traderAddr, hybridMsg(10_000, 0, matchingLeg(6_000)))
	require.ErrorIs(t, err, types.ErrFillFailed)
}

func TestSmartSwapChargesPriorityTax(t *testing.T) {
	f := setupFixture(t)
	// 10000 input plus (150 - 100) * 2 = 100 tax charged on top.
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_100))))

	ctx := f.Ctx.WithBlockHeight(5).WithPriority(150)
	out, err := f.Router.SmartSwap(ctx, traderAddr, hybridMsg(10_000, 0, nil))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_871), out)

	require.True(t, f.Bank.GetBalance(ctx, traderAddr, "uatom").Amount.IsZero())

	window, found := f.Amm.GetLastTaxedWindow(ctx, 1)
	require.True(t, found)
	require.Equal(t, uint64(5), window)

	// The tax landed in the pool's reserves.
	pool, _ := f.Amm.GetPool(ctx, 1)
	require.Equal(t, math.NewInt(1_010_100), pool.ReserveA)
}

func TestPreviewHybridSwapMatchesExecution(t *testing.T) {
	f := setupFixture(t)
	f.Bank.Fund(traderAddr, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	f.Bank.Fund(makerAddr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(6_000))))

	msg := hybridMsg(10_000, 0, matchingLeg(6_000))
	estimate, err := f.Router.PreviewHybridSwap(f.Ctx, msg)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6_000), estimate.MatchingOut)
	require.Equal(t, math.NewInt(3_972), estimate.PoolOut)
	require.Equal(t, math.NewInt(9_972), estimate.TotalOut)

	out, err := f.Router.SmartSwap(f.Ctx, traderAddr, msg)
	require.NoError(t, err)
	require.Equal(t, estimate.TotalOut, out)
}
