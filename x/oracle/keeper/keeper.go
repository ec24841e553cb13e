package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hydro-dex/hydro/x/oracle/types"
)

// Keeper maintains the state of the oracle module: per-asset feed
// configuration and price history buffers.
type Keeper struct {
	storeService store.KVStoreService
	priceFeed    types.PriceFeed
	authority    string // module authority (usually governance module account)
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(
	storeService store.KVStoreService,
	priceFeed types.PriceFeed,
	authority string,
) *Keeper {
	return &Keeper{
		storeService: storeService,
		priceFeed:    priceFeed,
		authority:    authority,
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority (governance account)
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetParams gets all parameters from the store
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ParamsKey)
	if err != nil || bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the module parameters
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	store := k.storeService.OpenKVStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	return store.Set(types.ParamsKey, bz)
}

// SetTokenConfig stores a token's feed configuration
func (k Keeper) SetTokenConfig(ctx sdk.Context, cfg types.TokenConfig) error {
	if err := cfg.Validate(); err != nil {
		return types.ErrInvalidConfig.Wrap(err.Error())
	}

	store := k.storeService.OpenKVStore(ctx)
	bz, err := json.Marshal(&cfg)
	if err != nil {
		return err
	}
	return store.Set(types.GetTokenConfigKey(cfg.Denom), bz)
}

// GetTokenConfig retrieves a token's feed configuration
func (k Keeper) GetTokenConfig(ctx sdk.Context, denom string) (types.TokenConfig, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.GetTokenConfigKey(denom))
	if err != nil || bz == nil {
		return types.TokenConfig{}, false
	}

	var cfg types.TokenConfig
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.TokenConfig{}, false
	}
	return cfg, true
}

// ConfigureFeeds registers or updates token feed configurations. Only the
// module authority may call this.
func (k Keeper) ConfigureFeeds(ctx sdk.Context, authority string, configs []types.TokenConfig) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}

	for _, cfg := range configs {
		if err := k.SetTokenConfig(ctx, cfg); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedsConfigured,
			sdk.NewAttribute(types.AttributeKeyNumFeeds, fmt.Sprintf("%d", len(configs))),
		),
	)
	return nil
}

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, cfg := range genState.TokenConfigs {
		if err := k.SetTokenConfig(ctx, cfg); err != nil {
			k.Logger(ctx).Error("failed to set token config during genesis", "denom", cfg.Denom, "error", err)
		}
	}
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:       k.GetParams(ctx),
		TokenConfigs: k.GetAllTokenConfigs(ctx),
	}
}
