package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/hydro-dex/hydro/x/amm/types"
)

// Keeper of the amm store. Owns all per-pool state: reserves, shares, tax
// configuration and the per-pool tax window marker.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	authority  string
	metrics    *AMMMetrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		authority:  authority,
		metrics:    NewAMMMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the amm module account address
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

func (k Keeper) getStore(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// GetParams gets all parameters from the store
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
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

	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			panic(fmt.Sprintf("failed to set pool %d: %s", pool.Id, err))
		}
	}
	for _, rec := range genState.TaxConfigs {
		if err := k.SetTaxConfig(ctx, rec.PoolId, rec.Config); err != nil {
			panic(fmt.Sprintf("failed to set tax config for pool %d: %s", rec.PoolId, err))
		}
	}
	k.setPoolCount(ctx, genState.PoolCount)
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	pools := k.GetAllPools(ctx)
	taxConfigs := make([]types.TaxConfigRecord, 0, len(pools))
	for _, pool := range pools {
		if cfg, found := k.GetTaxConfig(ctx, pool.Id); found {
			taxConfigs = append(taxConfigs, types.TaxConfigRecord{PoolId: pool.Id, Config: cfg})
		}
	}

	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Pools:      pools,
		TaxConfigs: taxConfigs,
		PoolCount:  k.getPoolCount(ctx),
	}
}
