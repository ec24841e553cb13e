package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/hydro-dex/hydro/x/amm/keeper"
	ammtypes "github.com/hydro-dex/hydro/x/amm/types"
	oraclekeeper "github.com/hydro-dex/hydro/x/oracle/keeper"
	oracletypes "github.com/hydro-dex/hydro/x/oracle/types"
	routerkeeper "github.com/hydro-dex/hydro/x/router/keeper"
	routertypes "github.com/hydro-dex/hydro/x/router/types"
)

// RouterTestFixture wires the router keeper together with live amm and oracle
// keepers plus mock bank, feed, and venue collaborators.
type RouterTestFixture struct {
	Router *routerkeeper.Keeper
	Amm    *ammkeeper.Keeper
	Oracle *oraclekeeper.Keeper
	Bank   *MockBankKeeper
	Feed   *MockPriceFeed
	Venue  *MockMatchingVenue
	Ctx    sdk.Context
}

// RouterKeeper creates a full settlement stack for router tests
func RouterKeeper(t testing.TB) RouterTestFixture {
	routerStoreKey := storetypes.NewKVStoreKey(routertypes.StoreKey)
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	oracleStoreKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(routerStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(oracleStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	feed := NewMockPriceFeed()
	venue := NewMockMatchingVenue(bank)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	oracleK := oraclekeeper.NewKeeper(runtime.NewKVStoreService(oracleStoreKey), feed, authority)
	ammK := ammkeeper.NewKeeper(ammStoreKey, bank, authority)
	routerK := routerkeeper.NewKeeper(routerStoreKey, bank, ammK, oracleK, venue, authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, oracleK.SetParams(ctx, oracletypes.DefaultParams()))
	ammK.InitGenesis(ctx, *ammtypes.DefaultGenesis())
	routerK.InitGenesis(ctx, *routertypes.DefaultGenesis())

	return RouterTestFixture{
		Router: routerK,
		Amm:    ammK,
		Oracle: oracleK,
		Bank:   bank,
		Feed:   feed,
		Venue:  venue,
		Ctx:    ctx,
	}
}
