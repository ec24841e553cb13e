package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	oracletypes "github.com/hydro-dex/hydro/x/oracle/types"
	"github.com/hydro-dex/hydro/x/router/types"
)

const bpsDenominator = 10000

// QuoteTakingAmount returns the taker payment for a fill producing
// makingAmount of the maker asset. When the extension carries valid spread
// parameters, the pro-rata amount is scaled up by the volatility spread;
// otherwise it passes through unadjusted.
func (k Keeper) QuoteTakingAmount(ctx sdk.Context, order types.MatchingOrder, makingAmount math.Int, extension []byte) (math.Int, error) {
	naive, err := SafeMulDiv(makingAmount, order.TakingAmount, order.MakingAmount)
	if err != nil {
		return math.ZeroInt(), types.ErrQuoteUnavailable.Wrap(err.Error())
	}

	spread, adjusted, err := k.effectiveSpread(ctx, order, extension)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !adjusted {
		return naive, nil
	}

	scaled, err := SafeMulDiv(naive, math.NewInt(bpsDenominator+int64(spread)), math.NewInt(bpsDenominator))
	if err != nil {
		return math.ZeroInt(), types.ErrQuoteUnavailable.Wrap(err.Error())
	}
	return scaled, nil
}

// QuoteMakingAmount returns the maker payout for a fill consuming
// takingAmount of the taker asset, scaled down by the volatility spread when
// the extension carries valid parameters.
func (k Keeper) QuoteMakingAmount(ctx sdk.Context, order types.MatchingOrder, takingAmount math.Int, extension []byte) (math.Int, error) {
	naive, err := SafeMulDiv(takingAmount, order.MakingAmount, order.TakingAmount)
	if err != nil {
		return math.ZeroInt(), types.ErrQuoteUnavailable.Wrap(err.Error())
	}

	spread, adjusted, err := k.effectiveSpread(ctx, order, extension)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !adjusted {
		return naive, nil
	}

	scaled, err := SafeMulDiv(naive, math.NewInt(bpsDenominator-int64(spread)), math.NewInt(bpsDenominator))
	if err != nil {
		return math.ZeroInt(), types.ErrQuoteUnavailable.Wrap(err.Error())
	}
	return scaled, nil
}

// effectiveSpread decodes spread parameters from the order's extension data
// and resolves the volatility-adjusted spread. Malformed or out-of-cap
// parameters are a soft failure: the fill proceeds unadjusted. An unsupported
// volatility asset is a configuration error and aborts the quote.
func (k Keeper) effectiveSpread(ctx sdk.Context, order types.MatchingOrder, extension []byte) (uint64, bool, error) {
	if len(extension) == 0 {
		return 0, false, nil
	}

	var params oracletypes.SpreadParams
	if err := json.Unmarshal(extension, &params); err != nil {
		k.Logger(ctx).Debug("malformed spread extension, passing through", "err", err)
		return 0, false, nil
	}
	if !params.Valid() {
		k.Logger(ctx).Debug("spread params out of caps, passing through",
			"base_bps", params.BaseSpreadBps,
			"multiplier", params.VolatilityMultiplier,
			"max_bps", params.MaxSpreadBps,
		)
		return 0, false, nil
	}

	asset := order.MakerAsset
	if params.UseTakerAssetVolatility {
		asset = order.TakerAsset
	}
	volatility, err := k.oracleKeeper.GetVolatility(ctx, asset)
	if err != nil {
		return 0, false, err
	}

	spread := oracletypes.ComputeSpread(params.BaseSpreadBps, params.VolatilityMultiplier, params.MaxSpreadBps, volatility)
	return spread, true, nil
}
