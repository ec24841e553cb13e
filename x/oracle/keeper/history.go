package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/oracle/types"
)

// SetPriceHistory stores an asset's price history buffer
func (k Keeper) SetPriceHistory(ctx sdk.Context, history types.PriceHistory) error {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := json.Marshal(&history)
	if err != nil {
		return err
	}
	return store.Set(types.GetPriceHistoryKey(history.Denom), bz)
}

// GetPriceHistory retrieves an asset's price history buffer
func (k Keeper) GetPriceHistory(ctx sdk.Context, denom string) (types.PriceHistory, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.GetPriceHistoryKey(denom))
	if err != nil || bz == nil {
		return types.PriceHistory{}, false
	}

	var history types.PriceHistory
	if err := json.Unmarshal(bz, &history); err != nil {
		return types.PriceHistory{}, false
	}
	return history, true
}

// GetAllTokenConfigs returns every registered token configuration
func (k Keeper) GetAllTokenConfigs(ctx sdk.Context) []types.TokenConfig {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.TokenConfigKey, storetypes.PrefixEndBytes(types.TokenConfigKey))
	if err != nil {
		return nil
	}
	defer iterator.Close()

	var configs []types.TokenConfig
	for ; iterator.Valid(); iterator.Next() {
		var cfg types.TokenConfig
		if err := json.Unmarshal(iterator.Value(), &cfg); err != nil {
			continue
		}
		configs = append(configs, cfg)
	}
	return configs
}

// RefreshPrices fetches the current reference price for each supported asset
// and records it in the asset's circular buffer. Assets sampled within the
// last interval are skipped as an idempotent no-op, not an error.
func (k Keeper) RefreshPrices(ctx sdk.Context, denoms []string) error {
	params := k.GetParams(ctx)
	now := ctx.BlockTime().Unix()

	for _, denom := range denoms {
		cfg, found := k.GetTokenConfig(ctx, denom)
		if !found || !cfg.Supported {
			k.Logger(ctx).Debug("skipping unsupported asset", "denom", denom)
			continue
		}

		history, found := k.GetPriceHistory(ctx, denom)
		if !found {
			history = types.NewPriceHistory(denom)
		}

		// At most one sample per interval per asset.
		if history.LastUpdate != 0 && now-history.LastUpdate < params.SampleInterval {
			continue
		}

		rawPrice, expo, _, err := k.priceFeed.GetPrice(ctx, cfg.FeedID)
		if err != nil {
			return types.ErrFeedUnavailable.Wrapf("feed %s: %v", cfg.FeedID, err)
		}
		if !rawPrice.IsPositive() {
			return types.ErrInvalidPrice.Wrapf("feed %s returned %s", cfg.FeedID, rawPrice.String())
		}

		price := canonicalPrice(rawPrice, expo)
		history.Record(price, now)

		if err := k.SetPriceHistory(ctx, history); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypePriceRecorded,
				sdk.NewAttribute(types.AttributeKeyDenom, denom),
				sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
				sdk.NewAttribute(types.AttributeKeyCursor, fmt.Sprintf("%d", history.Cursor)),
				sdk.NewAttribute(types.AttributeKeyDataPoints, fmt.Sprintf("%d", history.DataPoints)),
			),
		)
	}
	return nil
}

// canonicalPrice converts a feed price of the form price * 10^expo to the
// canonical integer scale, truncating on negative exponents.
func canonicalPrice(price math.Int, expo int32) math.Int {
	shift := int(expo) + 8 // PriceScale is 1e8
	if shift >= 0 {
		return price.Mul(math.NewIntWithDecimal(1, shift))
	}
	return price.Quo(math.NewIntWithDecimal(1, -shift))
}
