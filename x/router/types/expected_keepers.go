package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/hydro-dex/hydro/x/amm/types"
)

// AmmKeeper is the pool runtime the router settles against.
type AmmKeeper interface {
	GetPool(ctx sdk.Context, poolID uint64) (ammtypes.Pool, bool)
	Unlock(ctx sdk.Context, locker sdk.AccAddress, callback ammtypes.UnlockCallback, data []byte) ([]byte, error)
	SwapWithDelta(ctx sdk.Context, locker sdk.AccAddress, poolID uint64, tokenIn string, amountIn math.Int) (ammtypes.BalanceDelta, error)
	Settle(ctx sdk.Context, locker, payer sdk.AccAddress, denom string, amount math.Int) error
	Take(ctx sdk.Context, locker, recipient sdk.AccAddress, denom string, amount math.Int) error
	SimulateSwap(ctx sdk.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error)
}

// MatchingVenue is the peer-to-peer signed-order fill system. It verifies
// signatures, moves both legs of the fill, and consults the router's pricing
// hooks through the order's extension data.
type MatchingVenue interface {
	FillOrder(ctx sdk.Context, taker sdk.AccAddress, order MatchingOrder, signature []byte, fillAmount math.Int, extension []byte) (madeAmount, takenAmount math.Int, orderHash []byte, err error)
	HashOrder(order MatchingOrder) []byte
}

// OracleKeeper supplies volatility scores for dynamic fill pricing.
type OracleKeeper interface {
	GetVolatility(ctx sdk.Context, denom string) (math.Int, error)
}

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
